// Package sound plays short tones for engine events.
package sound

import (
	"time"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const sampleRate = beep.SampleRate(44100)

// tone is a single note of a cue.
type tone struct {
	freq     float64
	duration time.Duration
}

// cues are the notes played per event type. Events without a cue are silent.
var cues = map[rules.EventType][]tone{
	rules.EventFoodEaten:     {{freq: 880, duration: 40 * time.Millisecond}},
	rules.EventCollision:     {{freq: 160, duration: 120 * time.Millisecond}},
	rules.EventSnakeRemoved:  {{freq: 330, duration: 90 * time.Millisecond}, {freq: 220, duration: 160 * time.Millisecond}},
	rules.EventPoisonSpawned: {{freq: 587, duration: 60 * time.Millisecond}, {freq: 554, duration: 60 * time.Millisecond}},
	rules.EventRoundOver:     {{freq: 523, duration: 100 * time.Millisecond}, {freq: 659, duration: 100 * time.Millisecond}, {freq: 784, duration: 200 * time.Millisecond}},
}

// bigFood is the cue for food that grows a snake by more than the common
// amount.
var bigFood = []tone{{freq: 1175, duration: 40 * time.Millisecond}, {freq: 1568, duration: 80 * time.Millisecond}}

// poisonFood is the cue for eating poison.
var poisonFood = []tone{{freq: 200, duration: 150 * time.Millisecond}}

// Player implements rules.Observer by mixing cues into the speaker.
type Player struct {
	mixer  *beep.Mixer
	volume float64
}

// NewPlayer opens the speaker. volume is relative, 0 leaves the tones as
// generated and negative values make them quieter.
func NewPlayer(volume float64) (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}, volume: volume}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, errors.Wrap(err, "sound: init speaker")
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Observe plays the cue of an event, if it has one.
func (p *Player) Observe(ev rules.Event) {
	s, err := streamer(cueFor(ev), p.volume)
	if err != nil {
		log.WithError(err).WithField("event", ev.Type).Debug("unable to build sound cue")
		return
	}
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}

func cueFor(ev rules.Event) []tone {
	if ev.Type == rules.EventFoodEaten && ev.Food != nil {
		switch ev.Food.Kind {
		case rules.FoodBig:
			return bigFood
		case rules.FoodPoison:
			return poisonFood
		}
	}
	return cues[ev.Type]
}

// streamer renders a cue as consecutive sine tones, nil for an empty cue.
func streamer(cue []tone, volume float64) (beep.Streamer, error) {
	if len(cue) == 0 {
		return nil, nil
	}
	notes := make([]beep.Streamer, 0, len(cue))
	for _, t := range cue {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, errors.Wrapf(err, "sound: tone %vHz", t.freq)
		}
		notes = append(notes, beep.Take(sampleRate.N(t.duration), sine))
	}
	return &effects.Volume{
		Streamer: beep.Seq(notes...),
		Base:     2,
		Volume:   volume - 2,
	}, nil
}
