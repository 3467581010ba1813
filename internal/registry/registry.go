package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/rzbill/pulse/pkg/events"
)

// Handle is a type-erased view of a registered queue, letting the scheduler
// and status surfaces iterate all queues without knowing their event types.
type Handle struct {
	name   string
	update func() int
	stats  func() Stats
}

// Stats is a point-in-time snapshot of one queue.
type Stats struct {
	Name     string `json:"name"`
	Buffered int    `json:"buffered"`
	Sequence uint64 `json:"sequence"`
}

// Name returns the queue's event type name.
func (h Handle) Name() string { return h.name }

// Update rotates the queue's buffers and returns the number of events freed.
func (h Handle) Update() int { return h.update() }

// Stats returns the queue's current counters.
func (h Handle) Stats() Stats { return h.stats() }

// Registry maps event types to their queues. The zero value is not usable;
// construct with New.
type Registry struct {
	mu     sync.Mutex
	sealed bool
	queues map[reflect.Type]any
	order  []Handle
}

// New returns an empty, unsealed registry.
func New() *Registry {
	return &Registry{queues: make(map[reflect.Type]any)}
}

// Seal ends the setup phase. Register panics after Seal; lookups do not.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Handles returns the registered queues in registration order.
func (r *Registry) Handles() []Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Handle, len(r.order))
	copy(out, r.order)
	return out
}

// UpdateAll rotates every registered queue once and returns the freed-event
// count keyed by queue name. The scheduler calls this at each frame boundary.
func (r *Registry) UpdateAll() map[string]int {
	freed := make(map[string]int, len(r.order))
	for _, h := range r.Handles() {
		freed[h.Name()] = h.Update()
	}
	return freed
}

// Register creates the queue for event type T, or returns the existing one.
// It panics if called after Seal and the type is not yet registered.
func Register[T any](r *Registry) *events.Queue[T] {
	typ := reflect.TypeFor[T]()
	r.mu.Lock()
	defer r.mu.Unlock()
	if q, ok := r.queues[typ]; ok {
		return q.(*events.Queue[T])
	}
	if r.sealed {
		panic(fmt.Sprintf("registry: cannot register event type %v after seal", typ))
	}
	q := events.NewQueue[T]()
	r.queues[typ] = q
	r.order = append(r.order, Handle{
		name:   typ.String(),
		update: q.Update,
		stats: func() Stats {
			return Stats{Name: typ.String(), Buffered: q.Len(), Sequence: q.Sequence()}
		},
	})
	return q
}

// Lookup returns the queue for event type T. It panics if the type was never
// registered; that is a wiring bug, not a runtime condition.
func Lookup[T any](r *Registry) *events.Queue[T] {
	typ := reflect.TypeFor[T]()
	r.mu.Lock()
	q, ok := r.queues[typ]
	r.mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("registry: no queue registered for event type %v", typ))
	}
	return q.(*events.Queue[T])
}

// CursorFor returns a history-inclusive cursor for event type T, panicking
// like Lookup if the type is unregistered.
func CursorFor[T any](r *Registry) *events.Cursor[T] {
	return Lookup[T](r).NewCursor()
}

// CursorCurrentFor returns a future-only cursor for event type T, panicking
// like Lookup if the type is unregistered.
func CursorCurrentFor[T any](r *Registry) *events.Cursor[T] {
	return Lookup[T](r).NewCursorCurrent()
}
