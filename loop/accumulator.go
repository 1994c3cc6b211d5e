// Package loop drives a game on a fixed step: frames arrive whenever the
// front end is ready to draw, ticks happen at the game's own pace.
package loop

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// Game is advanced by the loop. Step is read again after every tick, so a
// game may change its pace as it runs.
type Game interface {
	Tick()
	Step() time.Duration
}

// Accumulator decides how many ticks a frame runs. Times are offsets from
// an arbitrary origin, usually the moment the loop started.
type Accumulator struct {
	// MaxTicks caps the ticks run for a single frame. When a frame falls
	// further behind, the pending time is dropped. Zero means no cap.
	MaxTicks int

	next    time.Duration
	started bool
}

// Advance runs every tick that is due at now and returns how many ran. The
// first call only sets the schedule and runs one tick.
func (a *Accumulator) Advance(now time.Duration, g Game) int {
	if !a.started {
		a.next = now
		a.started = true
	}
	ticks := 0
	for a.next <= now {
		if a.MaxTicks > 0 && ticks >= a.MaxTicks {
			log.WithFields(log.Fields{
				"behind": now - a.next,
				"ticks":  ticks,
			}).Debug("frame fell behind, dropping pending ticks")
			a.next = now + g.Step()
			break
		}
		g.Tick()
		ticks++
		a.next += g.Step()
	}
	return ticks
}
