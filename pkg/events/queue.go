package events

// instance pairs an event with the sequence number assigned when it was sent.
type instance[T any] struct {
	seq   uint64
	event T
}

// Queue is a double-buffered store for events of type T. See the package
// documentation for the retention and concurrency model.
type Queue[T any] struct {
	buffers [2][]instance[T]
	// starts[i] is the sequence counter captured when buffers[i] was last
	// cleared. Cursor offset arithmetic depends on it.
	starts [2]uint64
	active int
	next   uint64
}

// NewQueue returns an empty queue. The zero value is also ready to use.
func NewQueue[T any]() *Queue[T] { return &Queue[T]{} }

// Send appends event to the active buffer, stamped with the next sequence
// number. It never fails and never blocks; memory grows until the next
// Update, which is the caller's cost to bound.
func (q *Queue[T]) Send(event T) {
	q.buffers[q.active] = append(q.buffers[q.active], instance[T]{seq: q.next, event: event})
	q.next++
}

// Update rotates the buffers: the inactive buffer is cleared and becomes the
// active one, and its start marker is set to the current sequence counter.
// Call it exactly once per frame. Events sent before the previous Update are
// freed here; the count of freed events is returned.
func (q *Queue[T]) Update() int {
	retired := q.active ^ 1
	freed := len(q.buffers[retired])
	q.buffers[retired] = nil
	q.active = retired
	q.starts[retired] = q.next
	return freed
}

// NewCursor returns a cursor positioned at sequence zero. Its first read
// sees everything still buffered.
func (q *Queue[T]) NewCursor() *Cursor[T] { return &Cursor[T]{} }

// NewCursorCurrent returns a cursor positioned at the current sequence
// counter. It ignores already-buffered events and reads only future ones.
func (q *Queue[T]) NewCursorCurrent() *Cursor[T] { return &Cursor[T]{lastSeen: q.next} }

// Sequence returns the next sequence number to be assigned, which equals the
// count of events ever sent.
func (q *Queue[T]) Sequence() uint64 { return q.next }

// Len returns the number of events currently buffered across both buffers.
func (q *Queue[T]) Len() int { return len(q.buffers[0]) + len(q.buffers[1]) }
