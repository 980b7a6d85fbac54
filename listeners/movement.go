package listeners

import (
	"fmt"
	"io"
	"os"

	"github.com/tolvren/arena/events"
)

// MovementListener reports actor position changes
type MovementListener struct {
	out io.Writer
}

// NewMovementListener creates a movement listener writing to out
// A nil out defaults to stdout
func NewMovementListener(out io.Writer) *MovementListener {
	if out == nil {
		out = os.Stdout
	}
	return &MovementListener{out: out}
}

// OnEvent handles an actor move
func (l *MovementListener) OnEvent(p *events.ActorMovePayload) {
	fmt.Fprintf(l.out, "MovementListener uid: %d moved to (%g, %g)\n", p.UID, p.X, p.Y)
}
