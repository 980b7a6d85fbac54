package listeners

import (
	"github.com/tolvren/arena/audio"
	"github.com/tolvren/arena/events"
)

// SoundListener bridges sound request events to the audio backend
type SoundListener struct {
	sounds *audio.SoundManager
}

// NewSoundListener creates a sound listener backed by the given manager
func NewSoundListener(sm *audio.SoundManager) *SoundListener {
	return &SoundListener{sounds: sm}
}

// OnEvent handles a sound request
func (l *SoundListener) OnEvent(p *events.SoundRequestPayload) {
	l.sounds.Play(p.Sound)
}
