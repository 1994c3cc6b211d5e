package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEngineReset(t *testing.T) {
	e := testEngine(t, func(s *Settings) { s.Players = 3 })
	r := e.Round()
	require.Equal(t, StatusActive, e.Status())
	require.Equal(t, 0, r.Frame)
	require.Equal(t, 100*time.Millisecond, r.Step)
	require.False(t, r.Ending())
	require.Len(t, r.Snakes, 3)
	require.Len(t, r.Food, 8)
	require.NotEmpty(t, r.ID)

	for _, s := range r.Snakes {
		require.Equal(t, 10, s.Size)
		require.Empty(t, s.Tail)
		require.Equal(t, None, s.Direction())
		for _, f := range r.Food {
			require.False(t, f.Position.Equal(s.Head))
		}
	}
}

func TestEngineResetRebindsPlayers(t *testing.T) {
	binder := newFakeBinder()
	e := testEngine(t, nil, WithBinder(binder))
	for i := 0; i < 25; i++ {
		e.Reset()
		require.Len(t, binder.active, 2)
	}
	require.Equal(t, 26*2, binder.binds)

	// steering reaches the snake of the current round
	require.True(t, binder.active[1](Up))
	require.Equal(t, Up, e.Round().Snake(1).Direction())

	e.Close()
	require.Empty(t, binder.active)
}

func TestEngineRender(t *testing.T) {
	rd := &fakeRenderer{}
	e := testEngine(t, nil, WithRenderer(rd))
	snake := testSnake(0, Point{X: 5, Y: 5}, 3, Right)
	other := testSnake(1, Point{X: 20, Y: 20}, 3, None)
	food := newFood(FoodBig, Point{X: 30, Y: 3})
	setBoard(e, []*Snake{snake, other}, food)
	e.Tick()
	e.Tick()

	require.NoError(t, e.Render())
	require.Equal(t, 1, rd.cleared)
	require.Equal(t, 1, rd.flushed)
	require.Equal(t, e.Round(), rd.status)
	require.Len(t, rd.points, 3+1+1)
	require.Equal(t, uint8(0xff), rd.points[snake.Head].A)
	require.True(t, rd.points[Point{X: 5, Y: 5}].A < rd.points[Point{X: 6, Y: 5}].A, "tail fades out")
	require.Equal(t, food.Color, rd.points[food.Position])
}

func TestEngineRenderWithoutRenderer(t *testing.T) {
	e := testEngine(t, nil)
	require.NoError(t, e.Render())
}

func TestEngineObserversSeeRoundStart(t *testing.T) {
	var events []EventType
	e := testEngine(t, nil, WithObserver(ObserverFunc(func(ev Event) {
		events = append(events, ev.Type)
	})))
	require.Equal(t, []EventType{EventRoundStarted}, events)
	require.NotNil(t, e.Round())
}
