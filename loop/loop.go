package loop

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// ErrQuit is returned by a BeforeFrame hook to end Run without an error.
var ErrQuit = errors.New("loop: quit")

// DefaultMaxTicks is the tick cap per frame used by New.
const DefaultMaxTicks = 10

// Renderable is a game that can draw itself.
type Renderable interface {
	Game
	Render() error
}

// Loop paces frames for front ends that do not bring their own frame clock.
type Loop struct {
	// BeforeFrame runs at the start of every frame, before any tick. Input
	// is drained here.
	BeforeFrame func() error

	game    Renderable
	acc     Accumulator
	limiter *rate.Limiter
	now     func() time.Time
}

// New creates a loop drawing fps frames per second.
func New(g Renderable, fps int) (*Loop, error) {
	if fps < 1 {
		return nil, errors.Errorf("loop: fps %d must be positive", fps)
	}
	return &Loop{
		game:    g,
		acc:     Accumulator{MaxTicks: DefaultMaxTicks},
		limiter: rate.NewLimiter(rate.Limit(fps), 1),
		now:     time.Now,
	}, nil
}

// Frame runs one frame at now: the BeforeFrame hook, every tick that is due,
// then a render. It returns the hook's error without ticking.
func (l *Loop) Frame(now time.Duration) error {
	if l.BeforeFrame != nil {
		if err := l.BeforeFrame(); err != nil {
			return err
		}
	}
	l.acc.Advance(now, l.game)
	if err := l.game.Render(); err != nil {
		return errors.Wrap(err, "loop: render")
	}
	return nil
}

// Run produces frames until ctx is done or a frame fails. ErrQuit and
// context cancellation end the loop cleanly.
func (l *Loop) Run(ctx context.Context) error {
	start := l.now()
	for {
		if err := l.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "loop: pacing")
		}
		err := l.Frame(l.now().Sub(start))
		if err == ErrQuit {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
