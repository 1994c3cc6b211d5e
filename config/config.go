// Package config reads the launch configuration. Values come from the
// environment, and under js/wasm the page's query string, once at start up.
// Command line flags default to them.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/battlesnakeio/arcade/rules"
)

// Launch configuration.
var (
	Players  = getPlayers()
	Layout   = getEnvString("SNAKE_LAYOUT", "qwerty")
	Portal   = getEnvBool("SNAKE_PORTAL", true)
	Width    = getEnvInt("SNAKE_WIDTH", 40)
	Height   = getEnvInt("SNAKE_HEIGHT", 30)
	FPS      = getEnvInt("SNAKE_FPS", 60)
	Sound    = getEnvBool("SNAKE_SOUND", false)
	LogLevel = getEnvString("SNAKE_LOG_LEVEL", "info")
)

// Tuning knobs. These aren't user facing but useful to try out variations
// of the rules.
var (
	BaseStep        = time.Duration(getEnvInt("SNAKE_BASE_STEP_MS", 100)) * time.Millisecond
	InitialSize     = getEnvInt("SNAKE_INITIAL_SIZE", 10)
	ShrinkRate      = getEnvInt("SNAKE_SHRINK_RATE", 20)
	InitialFood     = getEnvInt("SNAKE_INITIAL_FOOD", 8)
	HungerInterval  = getEnvInt("SNAKE_HUNGER_INTERVAL", 20)
	PoisonInterval  = getEnvInt("SNAKE_POISON_INTERVAL", 500)
	PoisonBatch     = getEnvInt("SNAKE_POISON_BATCH", 9)
	ReplenishPoison = getEnvBool("SNAKE_REPLENISH_POISON", false)
)

// Settings returns the rules settings the configuration describes.
func Settings() rules.Settings {
	s := rules.DefaultSettings()
	s.Players = Players
	s.Portal = Portal
	s.Width = Width
	s.Height = Height
	s.BaseStep = BaseStep
	s.InitialSize = InitialSize
	s.ShrinkRate = ShrinkRate
	s.InitialFood = InitialFood
	s.HungerInterval = HungerInterval
	s.PoisonInterval = PoisonInterval
	s.PoisonBatch = PoisonBatch
	s.ReplenishPoison = ReplenishPoison
	return s
}

func getPlayers() int {
	if n, ok := queryInt("players"); ok {
		return clampPlayers(n)
	}
	return clampPlayers(getEnvInt("SNAKE_PLAYERS", 2))
}

// clampPlayers falls back to two players for a count below one and caps it
// at the largest roster.
func clampPlayers(n int) int {
	switch {
	case n < 1:
		return 2
	case n > rules.MaxPlayers:
		return rules.MaxPlayers
	}
	return n
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvString(varName string, defaults string) string {
	val := strings.TrimSpace(os.Getenv(varName))
	if val == "" {
		return defaults
	}
	return val
}

func getEnvBool(varName string, defaults bool) bool {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaults
	}
	return b
}
