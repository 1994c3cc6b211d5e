package commands

import (
	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/metrics"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/sound"
	log "github.com/sirupsen/logrus"
)

// settings applies the command line to the configured settings.
func settings() rules.Settings {
	s := config.Settings()
	s.Players = players
	s.Portal = portal
	s.Width = width
	s.Height = height
	return s
}

// game is an engine together with everything attached to it.
type game struct {
	engine     *rules.Engine
	dispatcher *input.Dispatcher
	sound      *sound.Player
	// play is what the front end drives, instrumented when metrics are on.
	play metrics.Engine
}

func newGame(layout input.Layout, renderer rules.Renderer) (*game, error) {
	g := &game{dispatcher: input.NewDispatcher(layout)}
	opts := []rules.Option{
		rules.WithBinder(g.dispatcher),
		rules.WithRenderer(renderer),
	}
	if seed != 0 {
		opts = append(opts, rules.WithSeed(seed))
	}
	if playSound {
		p, err := sound.NewPlayer(0)
		if err != nil {
			log.WithError(err).Warn("sound disabled")
		} else {
			g.sound = p
			opts = append(opts, rules.WithObserver(p))
		}
	}
	if promEnable {
		opts = append(opts, rules.WithObserver(metrics.Observer{}))
	}

	e, err := rules.NewEngine(settings(), opts...)
	if err != nil {
		return nil, err
	}
	g.engine = e
	g.play = e
	if promEnable {
		g.play = metrics.InstrumentEngine(e)
	}
	e.Reset()
	return g, nil
}

func (g *game) Close() {
	g.engine.Close()
	if g.sound != nil {
		g.sound.Close()
	}
}
