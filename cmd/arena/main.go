package main

import (
	"os"

	"github.com/tolvren/arena/events"
	"github.com/tolvren/arena/listeners"
)

// buildDispatcher is the composition root: it constructs every listener
// and registers each against the event kinds it handles
func buildDispatcher() *events.Dispatcher {
	d := events.NewDispatcher()

	movement := listeners.NewMovementListener(os.Stdout)
	events.SubscribeFunc(d, events.EventActorMove, movement.OnEvent)

	spawn := listeners.NewSpawnListener(os.Stdout)
	events.SubscribeFunc(d, events.EventActorSpawn, spawn.OnEvent)

	tracker := listeners.NewTrackerListener(os.Stdout)
	tracker.Register(d)

	return d
}

func main() {
	events.InitRegistry()

	d := buildDispatcher()

	d.Dispatch(events.GameEvent{
		Kind:    events.EventActorMove,
		Payload: &events.ActorMovePayload{UID: 10001, X: 10.0, Y: 20.0},
	})
	d.Dispatch(events.GameEvent{
		Kind:    events.EventActorSpawn,
		Payload: &events.ActorSpawnPayload{Species: "Goblin", UID: 10001, X: 15.0, Y: 25.0},
	})
}
