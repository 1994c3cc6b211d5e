// Package sim plays rounds without a screen. Bots press keys through the
// same dispatcher people use, which makes it suitable for soak testing the
// engine.
package sim

import (
	"context"
	"io"
	"time"

	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/loop"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Config describes a simulation run.
type Config struct {
	Settings rules.Settings
	Layout   input.Layout
	Seed     uint64
	// Ticks is how many engine ticks to run.
	Ticks int
	// FPS is the simulated frame rate bots press keys at.
	FPS int
	// TurnChance is the probability a bot presses a key in a frame.
	TurnChance float64
	// Observers receive the engine events next to the report.
	Observers []rules.Observer
	// Dump receives the final round when set.
	Dump io.Writer
}

// DefaultConfig returns a ten thousand tick run with the default settings.
func DefaultConfig() Config {
	return Config{
		Settings:   rules.DefaultSettings(),
		Layout:     input.QWERTY,
		Seed:       1,
		Ticks:      10000,
		FPS:        60,
		TurnChance: 0.05,
	}
}

// Report sums up a run.
type Report struct {
	Ticks      int
	Frames     int
	Rounds     int
	Eaten      map[rules.FoodKind]int
	Collisions map[rules.Cause]int
	Removed    map[rules.Cause]int
	// Wins counts the rounds won per player slot.
	Wins map[int]int
	// Simulated is the game time the run covered.
	Simulated time.Duration
	Elapsed   time.Duration
}

func newReport() *Report {
	return &Report{
		Eaten:      map[rules.FoodKind]int{},
		Collisions: map[rules.Cause]int{},
		Removed:    map[rules.Cause]int{},
		Wins:       map[int]int{},
	}
}

// Observe implements rules.Observer.
func (r *Report) Observe(ev rules.Event) {
	switch ev.Type {
	case rules.EventRoundStarted:
		r.Rounds++
	case rules.EventFoodEaten:
		if ev.Food != nil {
			r.Eaten[ev.Food.Kind]++
		}
	case rules.EventCollision:
		r.Collisions[ev.Cause]++
	case rules.EventSnakeRemoved:
		r.Removed[ev.Cause]++
	case rules.EventRoundOver:
		if ev.Winner != nil {
			r.Wins[ev.Winner.Slot]++
		}
	}
}

// counter counts ticks on their way to the engine.
type counter struct {
	*rules.Engine
	ticks int
}

func (c *counter) Tick() {
	c.ticks++
	c.Engine.Tick()
}

// Run plays until cfg.Ticks ticks ran or ctx is done.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.FPS < 1 {
		return nil, errors.Errorf("sim: fps %d must be positive", cfg.FPS)
	}
	report := newReport()
	d := input.NewDispatcher(cfg.Layout)
	opts := []rules.Option{
		rules.WithBinder(d),
		rules.WithSeed(cfg.Seed),
		rules.WithObserver(report),
	}
	for _, o := range cfg.Observers {
		opts = append(opts, rules.WithObserver(o))
	}
	e, err := rules.NewEngine(cfg.Settings, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "sim: create engine")
	}
	defer e.Close()

	bots := newBots(e.Settings(), cfg, rand.New(rand.NewSource(cfg.Seed+1)))
	game := &counter{Engine: e}
	acc := loop.Accumulator{MaxTicks: loop.DefaultMaxTicks}
	frame := time.Second / time.Duration(cfg.FPS)
	start := time.Now()

	e.Reset()
	var now time.Duration
	for game.ticks < cfg.Ticks {
		if report.Frames%cfg.FPS == 0 {
			if err := ctx.Err(); err != nil {
				break
			}
		}
		bots.press(e.Round(), d)
		acc.Advance(now, game)
		report.Frames++
		now += frame
	}

	report.Ticks = game.ticks
	report.Simulated = now
	report.Elapsed = time.Since(start)
	log.WithFields(log.Fields{
		"ticks":   report.Ticks,
		"rounds":  report.Rounds,
		"elapsed": report.Elapsed,
	}).Info("simulation finished")

	if cfg.Dump != nil {
		spew.Fdump(cfg.Dump, e.Round())
	}
	return report, nil
}

// bots press a random key of their player now and then. A bot whose turn
// is still queued waits for the next tick.
type bots struct {
	slots  []int
	keys   map[int][]string
	chance float64
	rand   *rand.Rand
}

func newBots(s rules.Settings, cfg Config, r *rand.Rand) *bots {
	b := &bots{keys: map[int][]string{}, chance: cfg.TurnChance, rand: r}
	for _, p := range rules.Roster(s) {
		b.slots = append(b.slots, p.Slot)
		b.keys[p.Slot] = cfg.Layout.Resolve(p.Controls).Keys()
	}
	return b
}

func (b *bots) press(r *rules.Round, d *input.Dispatcher) {
	if r == nil || r.Ending() {
		return
	}
	for _, slot := range b.slots {
		s := r.Snake(slot)
		if s == nil || s.Queued() != rules.None {
			continue
		}
		if s.Direction() != rules.None && b.rand.Float64() >= b.chance {
			continue
		}
		keys := b.keys[slot]
		d.Dispatch(keys[b.rand.Intn(len(keys))])
	}
}
