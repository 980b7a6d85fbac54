package events

// EventKind represents the kind of game event
type EventKind int

const (
	// EventActorMove signals an actor position change
	// Trigger: Movement simulation, player input
	// Consumer: MovementListener, TrackerListener | Payload: *ActorMovePayload
	EventActorMove EventKind = iota

	// EventActorSpawn signals a new actor entering the arena
	// Trigger: Spawn scheduler
	// Consumer: SpawnListener, TrackerListener | Payload: *ActorSpawnPayload
	EventActorSpawn

	// EventActorDespawn signals an actor leaving the arena
	// Trigger: Lifetime expiry, edge exit
	// Consumer: TrackerListener | Payload: *ActorDespawnPayload
	EventActorDespawn

	// EventSoundRequest requests audio playback
	// Trigger: Listeners requiring audio feedback
	// Consumer: SoundListener | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventArenaReset clears all tracked actors
	// Trigger: Monitor reset key
	// Consumer: TrackerListener | Payload: nil
	EventArenaReset
)

// GameEvent represents a single game event
// The payload is immutable after emit and discarded after dispatch
type GameEvent struct {
	Kind    EventKind
	Payload any
}
