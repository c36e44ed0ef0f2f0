package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"snake-canvas/log"
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultVolume = 0.3
)

// SoundManager plays the game's effects through the speaker. Until
// Initialize succeeds every Play call is a no-op, so the game runs fine on
// machines without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

func (sm *SoundManager) PlayReward() {
	sm.play(RewardSound)
}

func (sm *SoundManager) PlayLost() {
	sm.play(LostSound)
}

func (sm *SoundManager) PlayWon() {
	sm.play(WonSound)
}

func (sm *SoundManager) play(build func(beep.SampleRate, float64) (beep.Streamer, error)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s, err := build(sampleRate, sm.volume)
	if err != nil {
		log.Warn("Failed to build sound: %v", err)
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
