package events

// Listener handles the payload of a single event kind
// A concrete type can only implement one instantiation; consumers of
// several kinds expose one named method per kind and register each
// with SubscribeFunc, or implement Handler
type Listener[P any] interface {
	OnEvent(payload P)
}

// Subscribe registers a typed listener for the given event kind
func Subscribe[P any](d *Dispatcher, kind EventKind, l Listener[P]) {
	SubscribeFunc(d, kind, l.OnEvent)
}

// SubscribeFunc registers a typed function for the given event kind
// The stored callback checks the payload type before forwarding; a
// mismatch is a silent no-op, unreachable when registration keys match
// the kinds' declared payload types
func SubscribeFunc[P any](d *Dispatcher, kind EventKind, fn func(P)) {
	d.Register(kind, func(ev GameEvent) {
		if p, ok := ev.Payload.(P); ok {
			fn(p)
		}
	})
}
