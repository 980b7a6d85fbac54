package events

// Callback is the type-erased handler shape stored in the registry
// Each callback performs its own payload check before acting
type Callback func(event GameEvent)

// Handler processes specific event kinds
// Multi-kind consumers implement this interface and register once
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously during dispatch
	HandleEvent(event GameEvent)

	// EventKinds returns the event kinds this handler processes
	// The dispatcher uses this for registration
	EventKinds() []EventKind
}

// Dispatcher routes events to registered callbacks
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple callbacks can register for the same event kind
//   - Callbacks are invoked in registration order
//   - Registration is append-only; there is no unregister
//
// All registration must complete before the first dispatch; the
// registry itself is not guarded against concurrent mutation.
type Dispatcher struct {
	handlers map[EventKind][]Callback
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[EventKind][]Callback),
	}
}

// Register appends a callback for the given event kind
// No duplicate detection: registering twice yields two deliveries
func (d *Dispatcher) Register(kind EventKind, cb Callback) {
	d.handlers[kind] = append(d.handlers[kind], cb)
}

// RegisterHandler adds a handler for its declared event kinds
// A handler can register for multiple event kinds
func (d *Dispatcher) RegisterHandler(h Handler) {
	for _, k := range h.EventKinds() {
		d.Register(k, h.HandleEvent)
	}
}

// Dispatch invokes every callback registered for the event's kind,
// in registration order. A kind with no registrations is a no-op.
// A panicking callback propagates and aborts the remaining callbacks.
func (d *Dispatcher) Dispatch(event GameEvent) {
	for _, cb := range d.handlers[event.Kind] {
		cb(event)
	}
}

// DispatchAll consumes all pending events from the queue and
// dispatches each in FIFO order
// All callbacks for an event are invoked before moving to the next event
func (d *Dispatcher) DispatchAll(q *Queue) {
	for _, ev := range q.Consume() {
		d.Dispatch(ev)
	}
}

// HasHandlers returns true if any callbacks are registered for the given kind
func (d *Dispatcher) HasHandlers(kind EventKind) bool {
	return len(d.handlers[kind]) > 0
}

// HandlerCount returns the number of callbacks registered for the given kind
func (d *Dispatcher) HandlerCount(kind EventKind) int {
	return len(d.handlers[kind])
}
