package rules

import (
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Binder connects a player slot's controls to a steering func for as long as
// the returned release func has not been called.
type Binder interface {
	Bind(slot int, controls ControlMap, steer func(Direction) bool) (release func(), err error)
}

// Engine runs rounds back to back. It is not safe for concurrent use, input
// has to be delivered on the goroutine that calls Tick.
type Engine struct {
	settings  Settings
	binder    Binder
	renderer  Renderer
	observers []Observer
	rand      *rand.Rand

	round *Round
}

// Option configures an Engine.
type Option func(*Engine)

// WithBinder routes player input to the snakes of every round.
func WithBinder(b Binder) Option {
	return func(e *Engine) { e.binder = b }
}

// WithRenderer sets where Render draws.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// WithObserver adds an event observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observers = append(e.observers, o) }
}

// WithSeed makes food placement reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.rand = rand.New(rand.NewSource(seed)) }
}

// NewEngine creates an idle engine. Call Reset to start the first round.
func NewEngine(s Settings, opts ...Option) (*Engine, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{settings: s}
	for _, opt := range opts {
		opt(e)
	}
	if e.rand == nil {
		e.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	for _, spec := range Roster(s) {
		if err := spec.Controls.Validate(); err != nil {
			return nil, errors.Wrapf(err, "player %d", spec.Slot)
		}
	}
	return e, nil
}

// Settings returns the engine settings.
func (e *Engine) Settings() Settings { return e.settings }

// Round returns the current round, nil before the first Reset.
func (e *Engine) Round() *Round { return e.round }

// Status returns where the engine is in the round lifecycle.
func (e *Engine) Status() Status {
	switch {
	case e.round == nil:
		return StatusIdle
	case e.round.Ending():
		return StatusEnding
	}
	return StatusActive
}

// Step returns the current tick interval.
func (e *Engine) Step() time.Duration {
	if e.round == nil {
		return e.settings.BaseStep
	}
	return e.round.Step
}

// Reset starts a new round: fresh roster, fresh food, frame 0 and the base
// tick interval. Input bindings of the previous round are released before
// the new snakes are bound.
func (e *Engine) Reset() {
	e.retireAll()

	s := e.settings
	r := &Round{
		ID:   uuid.NewV4().String(),
		Mode: Mode(s.Players),
		Step: s.BaseStep,
	}
	e.round = r

	for _, spec := range Roster(s) {
		snake := NewSnake(spec.Slot, spec.Spawn, s.InitialSize, spec.ShrinkRate, spec.Color)
		e.bind(snake, spec.Controls)
		r.Snakes = append(r.Snakes, snake)
	}
	for i := 0; i < s.InitialFood; i++ {
		e.placeFood(e.randomKind())
	}

	log.WithFields(log.Fields{
		"round":   r.ID,
		"mode":    r.Mode,
		"players": len(r.Snakes),
		"food":    len(r.Food),
	}).Info("round started")
	e.notify(Event{Type: EventRoundStarted})
}

// Close releases every input binding held by the current round.
func (e *Engine) Close() {
	e.retireAll()
}

func (e *Engine) bind(s *Snake, controls ControlMap) {
	if e.binder == nil {
		return
	}
	release, err := e.binder.Bind(s.Slot, controls, s.SetDirection)
	if err != nil {
		log.WithError(err).WithField("slot", s.Slot).Warn("unable to bind player controls")
		return
	}
	s.release = release
}

func (e *Engine) retireAll() {
	if e.round == nil {
		return
	}
	for _, s := range e.round.Snakes {
		s.retire()
	}
}
