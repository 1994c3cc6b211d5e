package rules

import (
	"image/color"

	uuid "github.com/satori/go.uuid"
)

// Snake is one player's snake for the duration of a round.
type Snake struct {
	ID         string
	Slot       int
	Head       Point
	Tail       []Point // most recent segment first
	Size       int
	ShrinkRate int
	Color      color.NRGBA

	dir  Direction
	next Direction
	// moved is the direction of the last move.
	moved Direction

	// cause is the last reason the snake lost length.
	cause   Cause
	release func()
}

// Segment is a point of a snake with its draw opacity.
type Segment struct {
	Point
	Alpha float64
}

// NewSnake creates an idle snake with an empty tail at spawn.
func NewSnake(slot int, spawn Point, size, shrinkRate int, c color.NRGBA) *Snake {
	return &Snake{
		ID:         uuid.NewV4().String(),
		Slot:       slot,
		Head:       spawn,
		Size:       size,
		ShrinkRate: shrinkRate,
		Color:      c,
	}
}

// Direction returns the committed direction.
func (s *Snake) Direction() Direction { return s.dir }

// Queued returns the direction the next tick will use, None if nothing was
// requested since the last tick.
func (s *Snake) Queued() Direction { return s.next }

// SetDirection requests a heading change and reports whether it was accepted.
//
// None stops the snake. A moving snake rejects a request on the axis it
// will be travelling along when the request takes effect: the queued
// direction if one is waiting, else the direction of the last move. That way
// a snake can never turn back into its own neck. The first accepted request
// between two ticks is the one the next tick uses, later ones only become
// the committed direction for the ticks after that.
func (s *Snake) SetDirection(d Direction) bool {
	if d == None {
		s.dir = None
		s.next = None
		return true
	}
	if s.heading().SameAxis(d) {
		return false
	}
	s.dir = d
	if s.next == None {
		s.next = d
	}
	return true
}

// heading is the direction a new request is checked against, None for an
// idle snake.
func (s *Snake) heading() Direction {
	switch {
	case s.dir == None:
		return None
	case s.next != None:
		return s.next
	case s.moved != None:
		return s.moved
	}
	return s.dir
}

// Tick moves the snake one cell and reports whether it moved. An idle snake
// stays where it is.
func (s *Snake) Tick(width, height int, portal bool) bool {
	if s.dir == None {
		return false
	}
	d := s.dir
	if s.next != None {
		d = s.next
	}
	s.next = None
	s.moved = d

	s.Tail = append([]Point{s.Head}, s.Tail...)
	s.truncate()

	s.Head = s.Head.Add(d)
	if portal {
		s.Head = s.Head.Wrap(width, height)
	}
	return true
}

// Points returns the head followed by the tail.
func (s *Snake) Points() []Point {
	points := make([]Point, 0, len(s.Tail)+1)
	points = append(points, s.Head)
	return append(points, s.Tail...)
}

// Segments returns Points with an opacity fading from 1 at the head towards
// floor at the end of the tail.
func (s *Snake) Segments(floor float64) []Segment {
	points := s.Points()
	segments := make([]Segment, len(points))
	n := float64(len(points))
	for i, p := range points {
		segments[i] = Segment{
			Point: p,
			Alpha: floor + (1-float64(i)/n)*(1-floor),
		}
	}
	return segments
}

// Dead reports whether the snake has to leave the roster.
func (s *Snake) Dead() bool {
	return s.Size <= 0
}

// truncate drops tail segments beyond Size.
func (s *Snake) truncate() {
	limit := s.Size
	if limit < 0 {
		limit = 0
	}
	if len(s.Tail) > limit {
		s.Tail = s.Tail[:limit]
	}
}

func (s *Snake) shrink(by int, cause Cause) {
	s.Size -= by
	s.cause = cause
}

func (s *Snake) retire() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
}
