package webui

import (
	"strings"
	"time"

	"github.com/battlesnakeio/arcade/loop"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Engine is what the window plays.
type Engine interface {
	loop.Renderable
	Round() *rules.Round
}

// Dispatcher receives normalized key names.
type Dispatcher interface {
	Dispatch(key string) bool
}

// Game adapts an engine to ebiten. ebiten calls Update and Draw on the same
// goroutine, so input, ticks and drawing never overlap.
type Game struct {
	engine     Engine
	dispatcher Dispatcher
	renderer   *Renderer

	acc   loop.Accumulator
	start time.Time
	keys  []ebiten.Key
}

// NewGame creates the ebiten game. The engine must draw through renderer.
func NewGame(e Engine, d Dispatcher, renderer *Renderer) *Game {
	return &Game{
		engine:     e,
		dispatcher: d,
		renderer:   renderer,
		acc:        loop.Accumulator{MaxTicks: loop.DefaultMaxTicks},
	}
}

// Update dispatches the keys pressed since the last update, then runs every
// tick that is due.
func (g *Game) Update() error {
	if g.start.IsZero() {
		g.start = time.Now()
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if k == ebiten.KeyEscape {
			return ebiten.Termination
		}
		if name := KeyName(k); name != "" {
			g.dispatcher.Dispatch(name)
		}
	}
	g.acc.Advance(time.Since(g.start), g.engine)
	return nil
}

// Draw renders the engine onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.target(screen)
	if err := g.engine.Render(); err != nil {
		log.WithError(err).Error("unable to render")
	}
}

// Layout keeps the logical screen at the board size, ebiten scales it to
// the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.ScreenSize()
}

// Run opens the window and plays until it is closed or Escape is pressed.
func Run(g *Game, title string, scale int) error {
	w, h := g.renderer.ScreenSize()
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(g); err != nil {
		return errors.Wrap(err, "webui: run game")
	}
	return nil
}

var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:    "arrowleft",
	ebiten.KeyArrowUp:      "arrowup",
	ebiten.KeyArrowRight:   "arrowright",
	ebiten.KeyArrowDown:    "arrowdown",
	ebiten.KeySpace:        "space",
	ebiten.KeySemicolon:    ";",
	ebiten.KeyComma:        ",",
	ebiten.KeyPeriod:       ".",
	ebiten.KeySlash:        "/",
	ebiten.KeyQuote:        "'",
	ebiten.KeyBracketLeft:  "[",
	ebiten.KeyBracketRight: "]",
	ebiten.KeyMinus:        "-",
	ebiten.KeyEqual:        "=",
}

// KeyName returns the name a key is dispatched under. ebiten reports
// physical keys, so names follow the US layout whatever the user's layout.
func KeyName(k ebiten.Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	s := k.String()
	switch {
	case len(s) == 1:
		return strings.ToLower(s)
	case strings.HasPrefix(s, "Digit") && len(s) == len("Digit")+1:
		return s[len("Digit"):]
	}
	return ""
}
