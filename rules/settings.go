package rules

import (
	"time"

	"github.com/pkg/errors"
)

// Settings are the fixed parameters of a game. They never change while the
// engine runs.
type Settings struct {
	Width   int
	Height  int
	Portal  bool
	Players int

	// BaseStep is the tick interval every round starts with.
	BaseStep time.Duration

	InitialSize   int
	ShrinkRate    int
	InitialFood   int
	BigFoodChance float64

	// HungerInterval is how many ticks pass between two passive shrinks.
	HungerInterval int

	PoisonInterval int
	PoisonBatch    int
	// ReplenishPoison decides whether eaten poison is replaced by new food
	// like every other item is.
	ReplenishPoison bool

	SpeedUpInterval int
	SpeedUpFactor   float64

	// EndGrace is the number of ticks between the end of a round and the
	// start of the next one.
	EndGrace int

	// PlacementAttempts bounds the random draws made before food placement
	// falls back to scanning the board.
	PlacementAttempts int

	// TailFadeFloor is the opacity the end of a tail fades towards.
	TailFadeFloor float64
}

// DefaultSettings returns the settings of a standard 40x30 portal game for
// two players.
func DefaultSettings() Settings {
	return Settings{
		Width:             40,
		Height:            30,
		Portal:            true,
		Players:           2,
		BaseStep:          100 * time.Millisecond,
		InitialSize:       10,
		ShrinkRate:        20,
		InitialFood:       8,
		BigFoodChance:     0.1,
		HungerInterval:    20,
		PoisonInterval:    500,
		PoisonBatch:       9,
		SpeedUpInterval:   100,
		SpeedUpFactor:     0.98,
		EndGrace:          20,
		PlacementAttempts: 64,
		TailFadeFloor:     0.4,
	}
}

// Validate checks the settings can run a game.
func (s Settings) Validate() error {
	switch {
	case s.Width < 4 || s.Height < 4:
		return errors.Errorf("rules: board %dx%d is too small", s.Width, s.Height)
	case s.Players < 1 || s.Players > MaxPlayers:
		return errors.Errorf("rules: player count %d out of range 1-%d", s.Players, MaxPlayers)
	case s.BaseStep <= 0:
		return errors.New("rules: base step must be positive")
	case s.InitialSize < 1:
		return errors.New("rules: initial size must be at least 1")
	case s.SpeedUpFactor <= 0 || s.SpeedUpFactor > 1:
		return errors.Errorf("rules: speed up factor %v out of range (0, 1]", s.SpeedUpFactor)
	case s.BigFoodChance < 0 || s.BigFoodChance > 1:
		return errors.Errorf("rules: big food chance %v out of range [0, 1]", s.BigFoodChance)
	case s.TailFadeFloor < 0 || s.TailFadeFloor > 1:
		return errors.Errorf("rules: tail fade floor %v out of range [0, 1]", s.TailFadeFloor)
	case s.EndGrace < 1:
		return errors.New("rules: end grace must be at least one tick")
	}
	return nil
}

// every reports whether frame is a multiple of a positive interval.
func every(frame, interval int) bool {
	return interval > 0 && frame%interval == 0
}
