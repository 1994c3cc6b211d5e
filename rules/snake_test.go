package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnake_SetDirection(t *testing.T) {
	tests := []struct {
		Name      string
		Committed Direction
		Request   Direction
		Accepted  bool
		Expected  Direction
	}{
		{Name: "idle accepts", Committed: None, Request: Left, Accepted: true, Expected: Left},
		{Name: "reverse x", Committed: Right, Request: Left, Accepted: false, Expected: Right},
		{Name: "same x", Committed: Right, Request: Right, Accepted: false, Expected: Right},
		{Name: "reverse y", Committed: Up, Request: Down, Accepted: false, Expected: Up},
		{Name: "turn", Committed: Up, Request: Left, Accepted: true, Expected: Left},
		{Name: "stop", Committed: Up, Request: None, Accepted: true, Expected: None},
	}
	for _, test := range tests {
		s := NewSnake(0, Point{X: 5, Y: 5}, 10, 20, slotColor(0))
		s.dir = test.Committed
		require.Equal(t, test.Accepted, s.SetDirection(test.Request), test.Name)
		require.Equal(t, test.Expected, s.Direction(), test.Name)
	}
}

func TestSnake_StopClearsQueue(t *testing.T) {
	s := testSnake(0, Point{X: 5, Y: 5}, 10, Right)
	require.True(t, s.SetDirection(Up))
	require.True(t, s.SetDirection(None))
	require.Equal(t, None, s.Direction())
	require.Equal(t, None, s.Queued())

	require.False(t, s.Tick(40, 30, true))
	require.Equal(t, Point{X: 5, Y: 5}, s.Head)
}

func TestSnake_TickIdle(t *testing.T) {
	s := NewSnake(0, Point{X: 5, Y: 5}, 10, 20, slotColor(0))
	for i := 0; i < 10; i++ {
		require.False(t, s.Tick(40, 30, true))
	}
	require.Equal(t, Point{X: 5, Y: 5}, s.Head)
	require.Empty(t, s.Tail)
}

func TestSnake_TickUsesFirstQueuedDirection(t *testing.T) {
	s := testSnake(0, Point{X: 5, Y: 5}, 10, Right)
	s.Tick(40, 30, true)
	require.Equal(t, Point{X: 6, Y: 5}, s.Head)

	// up then left before the next tick: up is used first, left after
	require.True(t, s.SetDirection(Up))
	require.True(t, s.SetDirection(Left))
	require.Equal(t, Up, s.Queued())

	s.Tick(40, 30, true)
	require.Equal(t, Point{X: 6, Y: 4}, s.Head)
	require.Equal(t, None, s.Queued())

	s.Tick(40, 30, true)
	require.Equal(t, Point{X: 5, Y: 4}, s.Head)
}

func TestSnake_NoReversalWithinOneTick(t *testing.T) {
	s := testSnake(0, Point{X: 5, Y: 5}, 10, Right)
	s.Tick(40, 30, true)

	require.True(t, s.SetDirection(Up))
	require.False(t, s.SetDirection(Down))
	s.Tick(40, 30, true)
	require.Equal(t, Point{X: 6, Y: 4}, s.Head)
	require.Equal(t, Up, s.Direction())
}

func TestSnake_TickWraps(t *testing.T) {
	tests := []struct {
		Head      Point
		Direction Direction
		Expected  Point
	}{
		{Head: Point{X: 0, Y: 3}, Direction: Left, Expected: Point{X: 39, Y: 3}},
		{Head: Point{X: 39, Y: 3}, Direction: Right, Expected: Point{X: 0, Y: 3}},
		{Head: Point{X: 3, Y: 0}, Direction: Up, Expected: Point{X: 3, Y: 29}},
		{Head: Point{X: 3, Y: 29}, Direction: Down, Expected: Point{X: 3, Y: 0}},
	}
	for _, test := range tests {
		s := testSnake(0, test.Head, 10, test.Direction)
		s.Tick(40, 30, true)
		require.Equal(t, test.Expected, s.Head, "Direction: %s", test.Direction)

		s = testSnake(0, test.Head, 10, test.Direction)
		s.Tick(40, 30, false)
		require.False(t, s.Head.In(40, 30), "Direction: %s", test.Direction)
	}
}

func TestSnake_TailFollowsHead(t *testing.T) {
	s := testSnake(0, Point{X: 5, Y: 5}, 3, Right)
	for i := 0; i < 5; i++ {
		s.Tick(40, 30, true)
		require.True(t, len(s.Tail) <= s.Size)
	}
	require.Equal(t, Point{X: 10, Y: 5}, s.Head)
	require.Equal(t, []Point{{X: 9, Y: 5}, {X: 8, Y: 5}, {X: 7, Y: 5}}, s.Tail)
	require.Equal(t, append([]Point{{X: 10, Y: 5}}, s.Tail...), s.Points())
}

func TestSnake_Segments(t *testing.T) {
	s := testSnake(0, Point{X: 5, Y: 5}, 4, Right)
	for i := 0; i < 4; i++ {
		s.Tick(40, 30, true)
	}
	segments := s.Segments(0.4)
	require.Len(t, segments, 5)
	require.InDelta(t, 1.0, segments[0].Alpha, 1e-9)
	require.Equal(t, s.Head, segments[0].Point)
	for i := 1; i < len(segments); i++ {
		require.True(t, segments[i].Alpha < segments[i-1].Alpha)
		require.True(t, segments[i].Alpha >= 0.4)
	}
}

func TestSnake_TruncateNegativeSize(t *testing.T) {
	s := testSnake(0, Point{X: 5, Y: 5}, 3, Right)
	s.Tick(40, 30, true)
	s.Tick(40, 30, true)
	s.Size = -4
	s.truncate()
	require.Empty(t, s.Tail)
	require.True(t, s.Dead())
}

func TestSnake_NoReversalAcrossQueuedTurn(t *testing.T) {
	s := testSnake(0, Point{X: 5, Y: 5}, 10, Right)
	s.Tick(40, 30, true)
	require.Equal(t, Point{X: 6, Y: 5}, s.Head)

	// up is queued, left committed for the tick after
	require.True(t, s.SetDirection(Up))
	require.True(t, s.SetDirection(Left))
	s.Tick(40, 30, true)
	require.Equal(t, Point{X: 6, Y: 4}, s.Head)

	// the last move was up, down would run into the neck
	require.False(t, s.SetDirection(Down))
	require.Equal(t, Left, s.Direction())
	s.Tick(40, 30, true)
	require.Equal(t, Point{X: 5, Y: 4}, s.Head)
	require.False(t, containsPoint(s.Tail, s.Head))

	// a turn off the axis of motion is still fine
	require.True(t, s.SetDirection(Up))
	s.Tick(40, 30, true)
	require.Equal(t, Point{X: 5, Y: 3}, s.Head)
}

func TestSnake_QueuedTurnGuardsLaterRequests(t *testing.T) {
	s := testSnake(0, Point{X: 5, Y: 5}, 10, Right)
	s.Tick(40, 30, true)

	require.True(t, s.SetDirection(Up))
	// left is off the queued axis, so it is accepted for the tick after
	require.True(t, s.SetDirection(Left))
	// down is on the queued axis
	require.False(t, s.SetDirection(Down))
	require.Equal(t, Up, s.Queued())
	require.Equal(t, Left, s.Direction())
}
