// Package metrics exports engine timings and events to prometheus.
package metrics

import (
	"time"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	engineCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "arcade",
			Subsystem: "engine",
			Name:      "calls",
			Help:      "Time spent in engine calls.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"method"},
	)
	events = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "engine",
			Name:      "events_total",
			Help:      "Engine events by type.",
		},
		[]string{"type"},
	)
	removals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "engine",
			Name:      "snakes_removed_total",
			Help:      "Snakes removed from a round by cause.",
		},
		[]string{"cause"},
	)
	snakes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "arcade",
			Subsystem: "round",
			Name:      "snakes",
			Help:      "Snakes alive in the current round.",
		},
	)
	food = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "arcade",
			Subsystem: "round",
			Name:      "food",
			Help:      "Food items on the board by kind.",
		},
		[]string{"kind"},
	)
	ending = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "arcade",
			Subsystem: "round",
			Name:      "ending",
			Help:      "1 while the end of round countdown runs.",
		},
	)
	step = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "arcade",
			Subsystem: "round",
			Name:      "step_seconds",
			Help:      "Current tick interval.",
		},
	)
)

func init() {
	prometheus.MustRegister(engineCalls, events, removals, snakes, food, ending, step)
}

func instrument(method string) func() {
	t := prometheus.NewTimer(engineCalls.WithLabelValues(method))
	return func() { t.ObserveDuration() }
}

// Engine is the part of rules.Engine that gets instrumented.
type Engine interface {
	Tick()
	Step() time.Duration
	Render() error
	Round() *rules.Round
	Status() rules.Status
}

// Instrumented times every tick and render of an engine and publishes the
// round gauges after each tick.
type Instrumented struct{ e Engine }

// InstrumentEngine wraps e.
func InstrumentEngine(e Engine) *Instrumented { return &Instrumented{e} }

// Tick ticks the engine.
func (m *Instrumented) Tick() {
	func() {
		defer instrument("Tick")()
		m.e.Tick()
	}()
	if r := m.e.Round(); r != nil {
		snakes.Set(float64(len(r.Snakes)))
		for _, kind := range []rules.FoodKind{rules.FoodCommon, rules.FoodBig, rules.FoodPoison} {
			food.WithLabelValues(kind.String()).Set(float64(r.Food.Count(kind)))
		}
		step.Set(r.Step.Seconds())
	}
	if m.e.Status() == rules.StatusEnding {
		ending.Set(1)
	} else {
		ending.Set(0)
	}
}

// Step returns the engine's tick interval.
func (m *Instrumented) Step() time.Duration { return m.e.Step() }

// Render renders the engine.
func (m *Instrumented) Render() error {
	defer instrument("Render")()
	return m.e.Render()
}

// Round returns the engine's current round.
func (m *Instrumented) Round() *rules.Round { return m.e.Round() }

// Status returns the engine's status.
func (m *Instrumented) Status() rules.Status { return m.e.Status() }

// Observer counts engine events.
type Observer struct{}

// Observe implements rules.Observer.
func (Observer) Observe(ev rules.Event) {
	events.WithLabelValues(string(ev.Type)).Inc()
	if ev.Type == rules.EventSnakeRemoved {
		removals.WithLabelValues(string(ev.Cause)).Inc()
	}
}
