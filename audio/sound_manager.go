package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager manages all game audio. Speaker initialization failure is
// non-fatal: the game runs silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and clears the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	sm.initialized = false
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	return sm.muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	sm.mixer.Add(s)
}

// PlayReveal plays the card-flip tick
func (sm *SoundManager) PlayReveal() {
	sm.play(CreateRevealSound(sampleRate))
}

// PlayMatch plays the resolved-pair ding
func (sm *SoundManager) PlayMatch() {
	sm.play(CreateMatchSound(sampleRate))
}

// PlayMismatch plays the failed-turn buzz
func (sm *SoundManager) PlayMismatch() {
	sm.play(CreateMismatchSound(sampleRate))
}

// PlayVictory plays the completion chime
func (sm *SoundManager) PlayVictory() {
	sm.play(CreateVictorySound(sampleRate))
}
