// Command arcade is the windowed build of the game. Built for js/wasm it
// runs in the browser, where the player count comes from the players query
// parameter.
package main

import (
	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/webui"
	log "github.com/sirupsen/logrus"
)

func main() {
	if level, err := log.ParseLevel(config.LogLevel); err == nil {
		log.SetLevel(level)
	}

	s := config.Settings()
	renderer := webui.NewRenderer(s.Width, s.Height)
	dispatcher := input.NewDispatcher(input.QWERTY)
	e, err := rules.NewEngine(s, rules.WithBinder(dispatcher), rules.WithRenderer(renderer))
	if err != nil {
		log.WithError(err).WithField("players", s.Players).Fatal("invalid configuration")
	}
	e.Reset()
	defer e.Close()

	if err := webui.Run(webui.NewGame(e, dispatcher, renderer), "Snake", 2); err != nil {
		log.WithError(err).Fatal("game failed")
	}
}
