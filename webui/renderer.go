// Package webui plays the game in a window, or in a browser when built for
// js/wasm, through ebiten.
package webui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// TileSize is the edge of a board cell in pixels.
	TileSize = 16
	// statusHeight is the strip below the board used for the status line.
	statusHeight = 16
)

// Renderer draws onto the screen ebiten hands to Draw. Points drawn over
// each other are alpha blended by ebiten.
type Renderer struct {
	width, height int
	screen        *ebiten.Image
}

// NewRenderer creates a renderer for a width x height board.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// ScreenSize is the logical size of the screen in pixels.
func (r *Renderer) ScreenSize() (int, int) {
	return r.width * TileSize, r.height*TileSize + statusHeight
}

func (r *Renderer) target(screen *ebiten.Image) {
	r.screen = screen
}

// Clear fills the screen with the background color.
func (r *Renderer) Clear() {
	if r.screen == nil {
		return
	}
	r.screen.Fill(rules.Background)
}

// DrawPoint fills the tile at p.
func (r *Renderer) DrawPoint(p rules.Point, c color.NRGBA) {
	if r.screen == nil || !p.In(r.width, r.height) {
		return
	}
	vector.DrawFilledRect(r.screen,
		float32(p.X*TileSize), float32(p.Y*TileSize),
		TileSize, TileSize, c, false)
}

// DrawStatus prints the round details below the board.
func (r *Renderer) DrawStatus(round *rules.Round) {
	if r.screen == nil {
		return
	}
	ebitenutil.DebugPrintAt(r.screen, statusText(round), 4, r.height*TileSize)
}

// Flush is a no-op, ebiten presents the screen after Draw.
func (r *Renderer) Flush() error {
	return nil
}

func statusText(round *rules.Round) string {
	parts := []string{fmt.Sprintf("frame %d", round.Frame)}
	for _, s := range round.Snakes {
		parts = append(parts, fmt.Sprintf("P%d %d", s.Slot+1, s.Size))
	}
	if round.Ending() {
		if w := round.Winner(); w != nil {
			parts = append(parts, fmt.Sprintf("P%d wins", w.Slot+1))
		} else {
			parts = append(parts, "round over")
		}
	}
	return strings.Join(parts, "  ")
}
