package events

import (
	"reflect"
)

var (
	nameToKind    = make(map[string]EventKind)
	kindToName    = make(map[EventKind]string)
	kindToPayload = make(map[EventKind]reflect.Type)
	registryInit  = false
)

// RegisterKind maps a string name to an EventKind and its payload struct type
// payloadInstance should be a pointer to the payload struct (e.g., &ActorMovePayload{})
// Pass nil if the event has no payload
func RegisterKind(name string, k EventKind, payloadInstance any) {
	nameToKind[name] = k
	kindToName[k] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		kindToPayload[k] = t
	}
}

// KindForName returns the EventKind for a given name
func KindForName(name string) (EventKind, bool) {
	k, ok := nameToKind[name]
	return k, ok
}

// NameForKind returns the string name for an EventKind
func NameForKind(k EventKind) string {
	return kindToName[k]
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event kind
// Returns nil if no payload is registered
func NewPayloadStruct(k EventKind) any {
	t, ok := kindToPayload[k]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

// InitRegistry populates the registry with all game events
// Must be called from a single goroutine at startup, before any lookups;
// the registry maps are not guarded for concurrent mutation
func InitRegistry() {
	if registryInit {
		return
	}
	registryInit = true

	RegisterKind("EventActorMove", EventActorMove, &ActorMovePayload{})
	RegisterKind("EventActorSpawn", EventActorSpawn, &ActorSpawnPayload{})
	RegisterKind("EventActorDespawn", EventActorDespawn, &ActorDespawnPayload{})
	RegisterKind("EventSoundRequest", EventSoundRequest, &SoundRequestPayload{})
	RegisterKind("EventArenaReset", EventArenaReset, nil)
}
