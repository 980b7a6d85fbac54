package events

import (
	"sync"
	"testing"

	"github.com/tolvren/arena/constants"
)

// TestQueueBasic tests basic push and consume operations
func TestQueueBasic(t *testing.T) {
	q := NewQueue()

	event1 := GameEvent{Kind: EventActorMove, Payload: "test1"}
	event2 := GameEvent{Kind: EventActorSpawn, Payload: "test2"}
	event3 := GameEvent{Kind: EventActorDespawn, Payload: "test3"}

	q.Push(event1)
	q.Push(event2)
	q.Push(event3)

	// First consume should return all 3 events
	got := q.Consume()
	if len(got) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(got))
	}

	// Verify events are in FIFO order
	if got[0].Kind != EventActorMove || got[0].Payload != "test1" {
		t.Errorf("Event 1 mismatch: got kind=%v, payload=%v", got[0].Kind, got[0].Payload)
	}
	if got[1].Kind != EventActorSpawn || got[1].Payload != "test2" {
		t.Errorf("Event 2 mismatch: got kind=%v, payload=%v", got[1].Kind, got[1].Payload)
	}
	if got[2].Kind != EventActorDespawn || got[2].Payload != "test3" {
		t.Errorf("Event 3 mismatch: got kind=%v, payload=%v", got[2].Kind, got[2].Payload)
	}

	// Second consume should return empty slice
	if rest := q.Consume(); len(rest) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(rest))
	}
}

// TestQueueConcurrent tests concurrent push operations from multiple goroutines
func TestQueueConcurrent(t *testing.T) {
	q := NewQueue()
	numGoroutines := 10
	eventsPerGoroutine := 10
	totalEvents := numGoroutines * eventsPerGoroutine

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(goroutineID int) {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				q.Push(GameEvent{
					Kind:    EventActorMove,
					Payload: goroutineID*100 + j,
				})
			}
		}(i)
	}

	wg.Wait()

	got := q.Consume()
	if len(got) != totalEvents {
		t.Errorf("Expected %d events, got %d", totalEvents, len(got))
	}

	// All payloads should be distinct
	seen := make(map[any]bool)
	for _, ev := range got {
		if seen[ev.Payload] {
			t.Errorf("Duplicate payload: %v", ev.Payload)
		}
		seen[ev.Payload] = true
	}
}

// TestQueueOverflow verifies the oldest events are overwritten when the
// ring buffer wraps
func TestQueueOverflow(t *testing.T) {
	q := NewQueue()

	total := constants.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Kind: EventActorMove, Payload: i})
	}

	got := q.Consume()
	if len(got) != constants.EventQueueSize {
		t.Fatalf("Expected %d events after overflow, got %d", constants.EventQueueSize, len(got))
	}

	// Oldest 10 events were overwritten; first surviving payload is 10
	if got[0].Payload != 10 {
		t.Errorf("Expected first surviving payload 10, got %v", got[0].Payload)
	}
	if got[len(got)-1].Payload != total-1 {
		t.Errorf("Expected last payload %d, got %v", total-1, got[len(got)-1].Payload)
	}
}
