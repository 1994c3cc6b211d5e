package rules

import "image/color"

// GameMode represents the mode the game is running in
type GameMode string

const (
	// GameModeSinglePlayer represents the game running in single player mode, this means the round will
	// run until the only snake in the game dies
	GameModeSinglePlayer GameMode = "single-player"
	// GameModeMultiPlayer represents when there is more then 1 snake in the game, this means the round will
	// run until there is zero or one snakes left alive in the game.
	GameModeMultiPlayer GameMode = "multi-player"
)

// MaxPlayers is the number of distinct control maps available.
const MaxPlayers = 4

var arrowControls = ControlMap{Left: "arrowleft", Up: "arrowup", Right: "arrowright", Down: "arrowdown"}

// multiPlayerControls are indexed by slot. Letter keys are named by their
// position on a qwerty keyboard, the input layer translates them to the
// active layout.
var multiPlayerControls = []ControlMap{
	{Left: "a", Up: "w", Right: "d", Down: "s"},
	arrowControls,
	{Left: "g", Up: "y", Right: "j", Down: "h"},
	{Left: "k", Up: "o", Right: ";", Down: "l"},
}

// PlayerSpec describes how a player's snake is created at round start.
type PlayerSpec struct {
	Slot       int
	Spawn      Point
	Controls   ControlMap
	Color      color.NRGBA
	ShrinkRate int
}

// Mode returns the game mode for a player count.
func Mode(players int) GameMode {
	if players == 1 {
		return GameModeSinglePlayer
	}
	return GameModeMultiPlayer
}

// Roster derives the players of a round from the settings. Every slot gets
// its own spawn point, control map and color.
func Roster(s Settings) []PlayerSpec {
	w, h := s.Width, s.Height
	if s.Players == 1 {
		return []PlayerSpec{{
			Slot:       0,
			Spawn:      Point{X: w / 2, Y: h / 2},
			Controls:   arrowControls,
			Color:      mustHex(soloColor, 0xff),
			ShrinkRate: s.ShrinkRate,
		}}
	}

	spawns := []Point{
		{X: w / 4, Y: h / 2},
		{X: w / 4 * 3, Y: h / 2},
		{X: w / 2, Y: h / 2},
		{X: w / 2, Y: h / 4},
	}
	n := s.Players
	if n > MaxPlayers {
		n = MaxPlayers
	}
	specs := make([]PlayerSpec, 0, n)
	for slot := 0; slot < n; slot++ {
		specs = append(specs, PlayerSpec{
			Slot:       slot,
			Spawn:      spawns[slot],
			Controls:   multiPlayerControls[slot],
			Color:      slotColor(slot),
			ShrinkRate: s.ShrinkRate,
		})
	}
	return specs
}
