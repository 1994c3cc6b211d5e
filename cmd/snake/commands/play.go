package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/loop"
	"github.com/battlesnakeio/arcade/termui"
	"github.com/pkg/errors"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays in the terminal, Esc quits",
	RunE: func(*cobra.Command, []string) error {
		return play()
	},
}

func play() error {
	layout, err := input.LookupLayout(layoutName)
	if err != nil {
		return err
	}
	s := settings()
	g, err := newGame(layout, termui.NewRenderer(s.Width, s.Height))
	if err != nil {
		return err
	}
	defer g.Close()

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to open terminal")
	}
	defer termbox.Close()
	termbox.SetOutputMode(termbox.OutputRGB)

	l, err := loop.New(g.play, fps)
	if err != nil {
		return err
	}
	events := termui.StartEvents()
	l.BeforeFrame = func() error {
		return termui.Drain(events, g.dispatcher)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	log.WithFields(log.Fields{
		"players": s.Players,
		"layout":  g.dispatcher.Layout().Name,
		"portal":  s.Portal,
	}).Info("playing in the terminal")
	return l.Run(ctx)
}
