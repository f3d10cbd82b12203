// File: audio/tone.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a sine blip with a short linear attack and an exponential decay.
type tone struct {
	freq     float64
	phase    float64
	rate     beep.SampleRate
	length   int
	position int
	volume   float64
}

// NewTone returns a finite streamer playing freq Hz for duration at volume (0..1).
func NewTone(freq float64, duration time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:   freq,
		rate:   rate,
		length: rate.N(duration),
		volume: math.Max(0, math.Min(volume, 1)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.length {
		return 0, false
	}
	attack := t.rate.N(5 * time.Millisecond)
	for i := range samples {
		if t.position >= t.length {
			return i, true
		}

		envelope := math.Exp(-4 * float64(t.position) / float64(t.length))
		if attack > 0 && t.position < attack {
			envelope *= float64(t.position) / float64(attack)
		}
		val := t.volume * envelope * math.Sin(2*math.Pi*t.phase)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
