package sound

import (
	"testing"
	"time"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/stretchr/testify/require"
)

func TestCueFor(t *testing.T) {
	common := &rules.Food{Kind: rules.FoodCommon, Size: 3}
	big := &rules.Food{Kind: rules.FoodBig, Size: 20}
	poison := &rules.Food{Kind: rules.FoodPoison, Size: -9}

	require.Equal(t, cues[rules.EventFoodEaten], cueFor(rules.Event{Type: rules.EventFoodEaten, Food: common}))
	require.Equal(t, bigFood, cueFor(rules.Event{Type: rules.EventFoodEaten, Food: big}))
	require.Equal(t, poisonFood, cueFor(rules.Event{Type: rules.EventFoodEaten, Food: poison}))
	require.Len(t, cueFor(rules.Event{Type: rules.EventRoundOver}), 3)
	require.Empty(t, cueFor(rules.Event{Type: rules.EventSpeedUp}))
	require.Empty(t, cueFor(rules.Event{Type: rules.EventRoundStarted}))
}

func TestStreamer(t *testing.T) {
	s, err := streamer(nil, 0)
	require.NoError(t, err)
	require.Nil(t, s)

	cue := []tone{{freq: 440, duration: 10 * time.Millisecond}, {freq: 880, duration: 20 * time.Millisecond}}
	s, err = streamer(cue, 0)
	require.NoError(t, err)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
		for _, sample := range buf[:n] {
			require.LessOrEqual(t, sample[0], 1.0)
			require.GreaterOrEqual(t, sample[0], -1.0)
		}
	}
	require.Equal(t, sampleRate.N(10*time.Millisecond)+sampleRate.N(20*time.Millisecond), total)
}
