// File: audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Pitches of the game's sound effects.
const (
	hitBaseFreq  = 440.0
	wallFreq     = 330.0
	scoreFreq    = 220.0
	winFirstFreq = 523.25
	winLastFreq  = 783.99
)

// SoundManager plays short effects through one mixer. Every Play method is a no-op
// until Initialize succeeds, so the game runs silently without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences every effect and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayHit pitches the paddle blip up with the ball speed ratio (speed / max speed).
func (sm *SoundManager) PlayHit(speedRatio float64) {
	sm.play(NewTone(HitFrequency(speedRatio), 60*time.Millisecond, 0.3, sampleRate))
}

func (sm *SoundManager) PlayServe() {
	sm.play(NewTone(wallFreq, 40*time.Millisecond, 0.2, sampleRate))
}

func (sm *SoundManager) PlayScore() {
	sm.play(NewTone(scoreFreq, 250*time.Millisecond, 0.35, sampleRate))
}

func (sm *SoundManager) PlayWin() {
	sm.play(beep.Seq(
		NewTone(winFirstFreq, 150*time.Millisecond, 0.3, sampleRate),
		NewTone(winLastFreq, 300*time.Millisecond, 0.3, sampleRate),
	))
}

func (sm *SoundManager) play(streamer beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// HitFrequency maps a speed ratio in [0, 1] onto one octave above the base pitch.
func HitFrequency(speedRatio float64) float64 {
	if speedRatio < 0 || speedRatio != speedRatio {
		speedRatio = 0
	}
	if speedRatio > 1 {
		speedRatio = 1
	}
	return hitBaseFreq * (1 + speedRatio)
}
