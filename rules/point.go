package rules

import "fmt"

// Point is a cell on the board.
type Point struct {
	X int
	Y int
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Add returns p moved by the direction's unit vector.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX(), Y: p.Y + d.DY()}
}

// Wrap folds p back onto a width x height torus. The result is never
// negative.
func (p Point) Wrap(width, height int) Point {
	return Point{
		X: ((p.X % width) + width) % width,
		Y: ((p.Y % height) + height) % height,
	}
}

// In reports whether p lies within [0,width) x [0,height).
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func containsPoint(points []Point, p Point) bool {
	for _, o := range points {
		if o.Equal(p) {
			return true
		}
	}
	return false
}
