package rules

// Direction is a heading on the board. None means the snake is idle.
type Direction uint8

// Directions, None is the zero value.
const (
	None Direction = iota
	Left
	Right
	Up
	Down
)

// DX is the x component of the unit vector.
func (d Direction) DX() int {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	}
	return 0
}

// DY is the y component of the unit vector. Up is towards y = 0.
func (d Direction) DY() int {
	switch d {
	case Up:
		return -1
	case Down:
		return 1
	}
	return 0
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

// Vertical reports whether d moves along the y axis.
func (d Direction) Vertical() bool { return d == Up || d == Down }

// SameAxis reports whether d and other both move along the same axis. None is
// on no axis.
func (d Direction) SameAxis(other Direction) bool {
	return (d.Horizontal() && other.Horizontal()) || (d.Vertical() && other.Vertical())
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "none"
}
