package sim

import (
	"bytes"
	"context"
	"testing"

	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ticks = 3000

	report, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, cfg.Ticks, report.Ticks)
	require.GreaterOrEqual(t, report.Rounds, 1)
	require.Greater(t, report.Frames, report.Ticks)
	// starvation alone ends a round of two size ten snakes within 200 ticks
	require.Greater(t, report.Rounds, 1)
	require.NotEmpty(t, report.Removed)
}

func TestRun_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ticks = 1000
	cfg.Settings.Players = 4

	a, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	b, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	require.Equal(t, a.Rounds, b.Rounds)
	require.Equal(t, a.Eaten, b.Eaten)
	require.Equal(t, a.Collisions, b.Collisions)
	require.Equal(t, a.Wins, b.Wins)
}

func TestRun_Layout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ticks = 500
	cfg.Layout = input.AZERTY
	var moved bool
	cfg.Observers = []rules.Observer{rules.ObserverFunc(func(ev rules.Event) {
		if ev.Type == rules.EventFoodEaten || ev.Type == rules.EventCollision {
			moved = true
		}
	})}
	cfg.Settings.InitialFood = 200

	_, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.True(t, moved)
}

func TestRun_Dump(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ticks = 10
	var buf bytes.Buffer
	cfg.Dump = &buf

	_, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Frame: (int) 10")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 0, report.Ticks)
}

func TestRun_Invalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FPS = 0
	_, err := Run(context.Background(), cfg)
	require.Error(t, err)

	cfg = DefaultConfig()
	cfg.Settings.Players = 9
	_, err = Run(context.Background(), cfg)
	require.Error(t, err)
}
