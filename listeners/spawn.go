package listeners

import (
	"fmt"
	"io"
	"os"

	"github.com/tolvren/arena/events"
)

// SpawnListener reports actors entering the arena
type SpawnListener struct {
	out io.Writer
}

// NewSpawnListener creates a spawn listener writing to out
// A nil out defaults to stdout
func NewSpawnListener(out io.Writer) *SpawnListener {
	if out == nil {
		out = os.Stdout
	}
	return &SpawnListener{out: out}
}

// OnEvent handles an actor spawn
func (l *SpawnListener) OnEvent(p *events.ActorSpawnPayload) {
	fmt.Fprintf(l.out, "SpawnListener uid: %d species: %s spawned at (%g, %g)\n", p.UID, p.Species, p.X, p.Y)
}
