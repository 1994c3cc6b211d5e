package rules

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// slotColors are the snake colors, indexed by player slot.
var slotColors = []string{
	"#ff0000",
	"#ff7d00",
	"#00ff00",
	"#1ecdc7",
}

// soloColor is used when a single player plays alone.
const soloColor = "#00ff00"

var (
	commonFoodColor = mustHex("#0099ff", 0xbb)
	bigFoodColor    = mustHex("#ffff00", 0xff)
	poisonColor     = mustHex("#cc00ff", 0xff)
)

// Background is the board color.
var Background = color.NRGBA{A: 0xff}

func slotColor(slot int) color.NRGBA {
	return mustHex(slotColors[slot%len(slotColors)], 0xff)
}

func mustHex(hex string, alpha uint8) color.NRGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("rules: invalid color %q: %v", hex, err))
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

// Fade scales the opacity of c by alpha, clamped to [0, 1].
func Fade(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float64(c.A)*alpha + 0.5)
	return c
}
