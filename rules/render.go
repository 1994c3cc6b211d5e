package rules

import "image/color"

// Renderer draws a frame. Points outside the board are to be ignored.
type Renderer interface {
	// Clear fills the whole board with the background color.
	Clear()
	DrawPoint(p Point, c color.NRGBA)
	// Flush presents everything drawn since Clear.
	Flush() error
}

// StatusRenderer is implemented by renderers that can show round details
// next to the board.
type StatusRenderer interface {
	DrawStatus(r *Round)
}

// Render draws the current round: snakes with their tails fading out, then
// food on top.
func (e *Engine) Render() error {
	if e.renderer == nil {
		return nil
	}
	rd := e.renderer
	rd.Clear()
	if r := e.round; r != nil {
		for _, s := range r.Snakes {
			for _, seg := range s.Segments(e.settings.TailFadeFloor) {
				rd.DrawPoint(seg.Point, Fade(s.Color, seg.Alpha))
			}
		}
		for _, f := range r.Food {
			rd.DrawPoint(f.Position, f.Color)
		}
		if sr, ok := rd.(StatusRenderer); ok {
			sr.DrawStatus(r)
		}
	}
	return rd.Flush()
}
