package commands

import (
	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/webui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var scale = 2

func init() {
	windowCmd.Flags().IntVar(&scale, "scale", scale, "window pixels per screen pixel")
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "plays in a window, Esc quits",
	RunE: func(*cobra.Command, []string) error {
		return window()
	},
}

// window plays through ebiten. ebiten reports physical keys, so the controls
// are bound to their qwerty positions whatever --layout says.
func window() error {
	if layoutName != input.QWERTY.Name {
		log.WithField("layout", layoutName).Info("window mode uses physical key positions, ignoring layout")
	}
	s := settings()
	renderer := webui.NewRenderer(s.Width, s.Height)
	g, err := newGame(input.QWERTY, renderer)
	if err != nil {
		return err
	}
	defer g.Close()
	return webui.Run(webui.NewGame(g.play, g.dispatcher, renderer), "Snake", scale)
}
