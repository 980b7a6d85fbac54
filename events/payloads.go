package events

import (
	"github.com/tolvren/arena/audio"
)

// ActorMovePayload contains the new position for a moving actor
type ActorMovePayload struct {
	UID uint64
	X   float64
	Y   float64
}

// ActorSpawnPayload contains identity and entry position for a spawned actor
type ActorSpawnPayload struct {
	Species string
	UID     uint64
	X       float64
	Y       float64
}

// ActorDespawnPayload identifies the actor leaving the arena
type ActorDespawnPayload struct {
	UID uint64
}

// SoundRequestPayload selects the effect for the audio backend
type SoundRequestPayload struct {
	Sound audio.SoundKind
}
