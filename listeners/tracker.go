package listeners

import (
	"fmt"
	"io"
	"sort"

	"github.com/tolvren/arena/events"
)

// Actor is the tracked state of one arena actor
type Actor struct {
	UID     uint64
	Species string
	X       float64
	Y       float64
}

// TrackerListener consumes both move and spawn events through one object,
// one handler method per event kind, and maintains the actor roster
//
// Not safe for concurrent use: handlers and snapshot reads belong to the
// dispatch goroutine
type TrackerListener struct {
	out    io.Writer
	actors map[uint64]Actor
}

// NewTrackerListener creates a tracker writing reports to out
// Pass io.Discard to track silently
func NewTrackerListener(out io.Writer) *TrackerListener {
	return &TrackerListener{
		out:    out,
		actors: make(map[uint64]Actor),
	}
}

// Register subscribes every handler method against its event kind
func (l *TrackerListener) Register(d *events.Dispatcher) {
	events.SubscribeFunc(d, events.EventActorMove, l.HandleActorMove)
	events.SubscribeFunc(d, events.EventActorSpawn, l.HandleActorSpawn)
	events.SubscribeFunc(d, events.EventActorDespawn, l.HandleActorDespawn)
	d.Register(events.EventArenaReset, func(events.GameEvent) { l.Reset() })
}

// HandleActorMove updates the roster position for a known actor
func (l *TrackerListener) HandleActorMove(p *events.ActorMovePayload) {
	fmt.Fprintf(l.out, "TrackerListener uid: %d moved to (%g, %g)\n", p.UID, p.X, p.Y)

	a, ok := l.actors[p.UID]
	if !ok {
		return
	}
	a.X = p.X
	a.Y = p.Y
	l.actors[p.UID] = a
}

// HandleActorSpawn adds the actor to the roster
func (l *TrackerListener) HandleActorSpawn(p *events.ActorSpawnPayload) {
	fmt.Fprintf(l.out, "TrackerListener uid: %d species: %s spawned at (%g, %g)\n", p.UID, p.Species, p.X, p.Y)

	l.actors[p.UID] = Actor{
		UID:     p.UID,
		Species: p.Species,
		X:       p.X,
		Y:       p.Y,
	}
}

// HandleActorDespawn removes the actor from the roster
func (l *TrackerListener) HandleActorDespawn(p *events.ActorDespawnPayload) {
	delete(l.actors, p.UID)
}

// Reset clears the roster
func (l *TrackerListener) Reset() {
	l.actors = make(map[uint64]Actor)
}

// Actors returns a roster snapshot ordered by UID
func (l *TrackerListener) Actors() []Actor {
	out := make([]Actor, 0, len(l.actors))
	for _, a := range l.actors {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out
}

// Len returns the number of tracked actors
func (l *TrackerListener) Len() int {
	return len(l.actors)
}
