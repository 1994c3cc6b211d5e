// Package termui plays the game in a terminal through termbox. Every board
// cell is drawn as two terminal columns so the board keeps its proportions.
package termui

import (
	"fmt"
	"image/color"

	"github.com/battlesnakeio/arcade/rules"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault

	left = 2
	top  = 1
	// cellWidth is the number of terminal columns per board cell.
	cellWidth = 2
)

// Renderer implements rules.Renderer and rules.StatusRenderer. Drawing
// composes colors in memory, Flush writes the result to the terminal.
type Renderer struct {
	width, height int
	board         []colorful.Color
	status        []statusLine
}

type statusLine struct {
	text  string
	color color.NRGBA
}

// NewRenderer creates a renderer for a width x height board.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		board:  make([]colorful.Color, width*height),
	}
}

// Clear paints the board with the background color and forgets the status.
func (r *Renderer) Clear() {
	bg := toColorful(rules.Background)
	for i := range r.board {
		r.board[i] = bg
	}
	r.status = r.status[:0]
}

// DrawPoint blends c over the cell at p using c's alpha.
func (r *Renderer) DrawPoint(p rules.Point, c color.NRGBA) {
	if !p.In(r.width, r.height) {
		return
	}
	i := p.Y*r.width + p.X
	r.board[i] = r.board[i].BlendRgb(toColorful(c), float64(c.A)/0xff).Clamped()
}

// DrawStatus lists the round details next to the board.
func (r *Renderer) DrawStatus(round *rules.Round) {
	r.status = append(r.status,
		statusLine{text: fmt.Sprintf("Snake - frame %d", round.Frame)},
		statusLine{text: fmt.Sprintf("step %s", round.Step)},
		statusLine{},
	)
	for _, s := range round.Snakes {
		r.status = append(r.status, statusLine{
			text:  fmt.Sprintf("player %d  size %d", s.Slot+1, s.Size),
			color: s.Color,
		})
	}
	if round.Ending() {
		text := "round over"
		if w := round.Winner(); w != nil {
			text = fmt.Sprintf("player %d wins", w.Slot+1)
		}
		r.status = append(r.status, statusLine{}, statusLine{text: text})
	}
}

// At returns the composed color of a cell.
func (r *Renderer) At(p rules.Point) color.NRGBA {
	if !p.In(r.width, r.height) {
		return rules.Background
	}
	red, green, blue := r.board[p.Y*r.width+p.X].RGB255()
	return color.NRGBA{R: red, G: green, B: blue, A: 0xff}
}

// Flush writes the board and the status to the terminal.
func (r *Renderer) Flush() error {
	if err := termbox.Clear(defaultColor, bgColor); err != nil {
		return err
	}
	r.renderBoard()
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			attr := attribute(r.At(rules.Point{X: x, Y: y}))
			fill(left+x*cellWidth, top+1+y, cellWidth, 1, termbox.Cell{Ch: ' ', Fg: attr, Bg: attr})
		}
	}
	statusLeft := left + r.width*cellWidth + 3
	for i, l := range r.status {
		fg := defaultColor
		if l.color.A > 0 {
			fg = attribute(l.color)
		}
		tbprint(statusLeft, top+1+i, fg, bgColor, l.text)
	}
	return termbox.Flush()
}

func (r *Renderer) renderBoard() {
	right := left + r.width*cellWidth
	bottom := top + r.height + 1
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(right, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(right, top, '┐', defaultColor, bgColor)
	termbox.SetCell(right, bottom, '┘', defaultColor, bgColor)

	fill(left, top, r.width*cellWidth, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, r.width*cellWidth, 1, termbox.Cell{Ch: '─'})
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 0xff, G: float64(c.G) / 0xff, B: float64(c.B) / 0xff}
}

func attribute(c color.NRGBA) termbox.Attribute {
	return termbox.RGBToAttribute(c.R, c.G, c.B)
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
