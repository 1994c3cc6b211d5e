package webui

import (
	"image/color"
	"testing"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
)

func TestKeyName(t *testing.T) {
	tests := map[ebiten.Key]string{
		ebiten.KeyW:          "w",
		ebiten.KeyA:          "a",
		ebiten.KeySemicolon:  ";",
		ebiten.KeyArrowRight: "arrowright",
		ebiten.KeySpace:      "space",
		ebiten.KeyDigit4:     "4",
		ebiten.KeyF1:         "",
		ebiten.KeyShiftLeft:  "",
	}
	for k, name := range tests {
		require.Equal(t, name, KeyName(k), k.String())
	}
}

func TestStatusText(t *testing.T) {
	green := color.NRGBA{G: 0xff, A: 0xff}
	round := &rules.Round{
		Frame: 40,
		Snakes: []*rules.Snake{
			rules.NewSnake(0, rules.Point{}, 10, 20, green),
			rules.NewSnake(2, rules.Point{X: 5}, 3, 20, green),
		},
	}
	require.Equal(t, "frame 40  P1 10  P3 3", statusText(round))

	round.Snakes = round.Snakes[1:]
	round.EndFrame = 60
	require.Equal(t, "frame 40  P3 3  P3 wins", statusText(round))
}

func TestRenderer_ScreenSize(t *testing.T) {
	w, h := NewRenderer(40, 30).ScreenSize()
	require.Equal(t, 40*TileSize, w)
	require.Equal(t, 30*TileSize+statusHeight, h)

	// nothing to draw on before ebiten hands over a screen
	r := NewRenderer(4, 4)
	r.Clear()
	r.DrawPoint(rules.Point{X: 1, Y: 1}, color.NRGBA{A: 0xff})
	require.NoError(t, r.Flush())
}
