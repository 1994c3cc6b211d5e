package termui

import (
	"strings"

	"github.com/battlesnakeio/arcade/loop"
	"github.com/pkg/errors"
	termbox "github.com/nsf/termbox-go"
)

// Dispatcher receives normalized key names.
type Dispatcher interface {
	Dispatch(key string) bool
}

var keyNames = map[termbox.Key]string{
	termbox.KeyArrowLeft:  "arrowleft",
	termbox.KeyArrowUp:    "arrowup",
	termbox.KeyArrowRight: "arrowright",
	termbox.KeyArrowDown:  "arrowdown",
	termbox.KeySpace:      "space",
}

// KeyName returns the name a key event is dispatched under and whether it
// asks to quit. Events that are not keys have no name.
func KeyName(ev termbox.Event) (name string, quit bool) {
	if ev.Type != termbox.EventKey {
		return "", false
	}
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return "", true
	}
	if ev.Ch != 0 {
		return strings.ToLower(string(ev.Ch)), false
	}
	return keyNames[ev.Key], false
}

// StartEvents polls termbox on its own goroutine. Events are handed over on
// the returned channel so that only the frame goroutine touches the game.
func StartEvents() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event, 64)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}

// Drain dispatches every queued key without blocking. It returns
// loop.ErrQuit when a quit key was pressed.
func Drain(events <-chan termbox.Event, d Dispatcher) error {
	for {
		select {
		case ev := <-events:
			if ev.Type == termbox.EventError {
				return errors.Wrap(ev.Err, "termui: poll event")
			}
			name, quit := KeyName(ev)
			if quit {
				return loop.ErrQuit
			}
			if name != "" {
				d.Dispatch(name)
			}
		default:
			return nil
		}
	}
}
