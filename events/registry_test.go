package events

import (
	"testing"
)

// TestRegistryRoundTrip verifies name to kind mapping in both directions
func TestRegistryRoundTrip(t *testing.T) {
	InitRegistry()

	k, ok := KindForName("EventActorMove")
	if !ok {
		t.Fatalf("EventActorMove not registered")
	}
	if k != EventActorMove {
		t.Errorf("Expected kind %v, got %v", EventActorMove, k)
	}
	if name := NameForKind(EventActorMove); name != "EventActorMove" {
		t.Errorf("Expected name EventActorMove, got %q", name)
	}
}

// TestRegistryUnknownName verifies lookup of an unregistered name fails
func TestRegistryUnknownName(t *testing.T) {
	InitRegistry()

	if _, ok := KindForName("EventDoesNotExist"); ok {
		t.Errorf("Expected unknown name lookup to fail")
	}
}

// TestNewPayloadStruct verifies payload prototypes are constructed with the
// right concrete type
func TestNewPayloadStruct(t *testing.T) {
	InitRegistry()

	p := NewPayloadStruct(EventActorSpawn)
	if _, ok := p.(*ActorSpawnPayload); !ok {
		t.Errorf("Expected *ActorSpawnPayload, got %T", p)
	}

	// EventArenaReset carries no payload
	if p := NewPayloadStruct(EventArenaReset); p != nil {
		t.Errorf("Expected nil payload prototype for reset, got %T", p)
	}
}

// TestInitRegistryIdempotent verifies repeated initialization is safe
func TestInitRegistryIdempotent(t *testing.T) {
	InitRegistry()
	InitRegistry()

	if name := NameForKind(EventSoundRequest); name != "EventSoundRequest" {
		t.Errorf("Registry lost mapping after re-init: %q", name)
	}
}
