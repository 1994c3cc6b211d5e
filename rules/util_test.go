package rules

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeBinder struct {
	active map[int]func(Direction) bool
	binds  int
}

func newFakeBinder() *fakeBinder {
	return &fakeBinder{active: map[int]func(Direction) bool{}}
}

func (b *fakeBinder) Bind(slot int, controls ControlMap, steer func(Direction) bool) (func(), error) {
	b.active[slot] = steer
	b.binds++
	return func() { delete(b.active, slot) }, nil
}

type fakeRenderer struct {
	cleared int
	flushed int
	points  map[Point]color.NRGBA
	status  *Round
}

func (r *fakeRenderer) Clear() {
	r.cleared++
	r.points = map[Point]color.NRGBA{}
}

func (r *fakeRenderer) DrawPoint(p Point, c color.NRGBA) { r.points[p] = c }

func (r *fakeRenderer) Flush() error {
	r.flushed++
	return nil
}

func (r *fakeRenderer) DrawStatus(round *Round) { r.status = round }

func testEngine(t *testing.T, mutate func(*Settings), opts ...Option) *Engine {
	s := DefaultSettings()
	if mutate != nil {
		mutate(&s)
	}
	opts = append([]Option{WithSeed(42)}, opts...)
	e, err := NewEngine(s, opts...)
	require.NoError(t, err)
	e.Reset()
	return e
}

// setBoard replaces the roster and food of the current round.
func setBoard(e *Engine, snakes []*Snake, food ...*Food) {
	e.round.Snakes = snakes
	e.round.Food = FoodList(food)
	e.round.Mode = Mode(len(snakes))
}

func testSnake(slot int, head Point, size int, dir Direction) *Snake {
	s := NewSnake(slot, head, size, 20, slotColor(slot))
	s.SetDirection(dir)
	return s
}
