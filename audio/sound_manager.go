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

// SoundKind represents different sound effects
type SoundKind int

const (
	SoundMoveBlip    SoundKind = iota // Actor position change
	SoundSpawnChirp                   // Actor entering the arena
	SoundDespawnFall                  // Actor leaving the arena
	SoundKindCount
)

// SoundManager manages all arena audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
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

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// Note: beep doesn't provide a Close() method for speaker,
	// but clearing all streamers ensures no audio artifacts
	sm.mixer.Clear()
	sm.initialized = false
}

// Play queues the effect for the given sound kind
// Safe to call without initialization; degrades to a no-op
func (sm *SoundManager) Play(kind SoundKind) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var streamer beep.Streamer
	switch kind {
	case SoundMoveBlip:
		streamer = beep.Take(sampleRate.N(time.Millisecond*50), NewBlipGenerator(sampleRate, 880))
	case SoundSpawnChirp:
		streamer = beep.Take(sampleRate.N(time.Millisecond*180), NewSweepGenerator(sampleRate, 300, 900, time.Millisecond*180))
	case SoundDespawnFall:
		streamer = beep.Take(sampleRate.N(time.Millisecond*220), NewSweepGenerator(sampleRate, 700, 150, time.Millisecond*220))
	default:
		return
	}

	sm.mixer.Add(streamer)
}
