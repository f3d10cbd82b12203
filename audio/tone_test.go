// File: audio/tone_test.go
package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

func TestTone_StreamsWithinRangeAndEnds(t *testing.T) {
	rate := beep.SampleRate(44100)
	streamer := NewTone(440, 10*time.Millisecond, 0.8, rate)

	total := 0
	samples := make([][2]float64, 128)
	for {
		n, ok := streamer.Stream(samples)
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, math.Abs(samples[i][0]), 0.8)
			assert.Equal(t, samples[i][0], samples[i][1])
		}
		total += n
		if !ok {
			break
		}
	}

	assert.Equal(t, rate.N(10*time.Millisecond), total)
	assert.NoError(t, streamer.Err())
}

func TestTone_ClampsVolume(t *testing.T) {
	streamer := NewTone(440, 20*time.Millisecond, 5, beep.SampleRate(8000))
	samples := make([][2]float64, 160)
	n, ok := streamer.Stream(samples)

	assert.True(t, ok)
	assert.Equal(t, 160, n)
	for i := 0; i < n; i++ {
		assert.LessOrEqual(t, math.Abs(samples[i][0]), 1.0)
	}
}

func TestHitFrequency(t *testing.T) {
	testCases := []struct {
		name     string
		ratio    float64
		expected float64
	}{
		{"Slowest", 0, 440},
		{"Half", 0.5, 660},
		{"Fastest", 1, 880},
		{"Above range", 3, 880},
		{"Negative", -1, 440},
		{"NaN", math.NaN(), 440},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HitFrequency(tc.ratio))
		})
	}
}

func TestSoundManager_SilentUntilInitialized(t *testing.T) {
	sm := NewSoundManager()
	assert.NotPanics(t, func() {
		sm.PlayHit(0.5)
		sm.PlayServe()
		sm.PlayScore()
		sm.PlayWin()
		sm.Cleanup()
	})
}
