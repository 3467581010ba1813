package events

import "iter"

// Cursor tracks a single reader's position in a Queue. Cursors are created
// with Queue.NewCursor or Queue.NewCursorCurrent; many cursors may read the
// same queue independently. A cursor holds no reference to the queue and may
// outlive it or be dropped at any time.
type Cursor[T any] struct {
	lastSeen uint64
}

// Consume returns the events this cursor has not seen yet, oldest first.
// The read is committed immediately: the cursor advances to the queue's
// current sequence counter when Consume is called, so a second Consume with
// no intervening Send yields nothing, even if the first iteration was
// abandoned early. The returned sequence is lazy, finite, and single-use;
// callers needing multiple passes must collect it first.
func (c *Cursor[T]) Consume(q *Queue[T]) iter.Seq[*T] {
	older, newer := c.pending(q)
	return func(yield func(*T) bool) {
		for i := range older {
			if !yield(&older[i].event) {
				return
			}
		}
		for i := range newer {
			if !yield(&newer[i].event) {
				return
			}
		}
	}
}

// Latest returns the newest unseen event, or false if there is none. It
// advances the cursor exactly as Consume does.
func (c *Cursor[T]) Latest(q *Queue[T]) (*T, bool) {
	older, newer := c.pending(q)
	if n := len(newer); n > 0 {
		return &newer[n-1].event, true
	}
	if n := len(older); n > 0 {
		return &older[n-1].event, true
	}
	return nil, false
}

// FindLatest returns the newest unseen event matching pred, scanning newest
// to oldest. The cursor advances past every unseen event, matched or not;
// events skipped over by the predicate are still considered consumed.
func (c *Cursor[T]) FindLatest(q *Queue[T], pred func(*T) bool) (*T, bool) {
	older, newer := c.pending(q)
	for i := len(newer) - 1; i >= 0; i-- {
		if pred(&newer[i].event) {
			return &newer[i].event, true
		}
	}
	for i := len(older) - 1; i >= 0; i-- {
		if pred(&older[i].event) {
			return &older[i].event, true
		}
	}
	return nil, false
}

// Earliest returns the oldest unseen event, or false if there is none. It
// advances the cursor exactly as Consume does.
func (c *Cursor[T]) Earliest(q *Queue[T]) (*T, bool) {
	older, newer := c.pending(q)
	if len(older) > 0 {
		return &older[0].event, true
	}
	if len(newer) > 0 {
		return &newer[0].event, true
	}
	return nil, false
}

// pending resolves the unseen spans of both buffers in chronological order:
// the buffer that was active before the last rotation first, then the
// currently active one. It commits the read by advancing lastSeen to the
// queue's sequence counter, not to the last event actually yielded.
func (c *Cursor[T]) pending(q *Queue[T]) (older, newer []instance[T]) {
	inactive := q.active ^ 1
	older = tail(q.buffers[inactive], c.offset(q.starts[inactive]))
	newer = tail(q.buffers[q.active], c.offset(q.starts[q.active]))
	c.lastSeen = q.next
	return older, newer
}

// offset clamps to zero when the cursor is behind a buffer's start marker,
// meaning the whole buffer is unseen.
func (c *Cursor[T]) offset(start uint64) int {
	if c.lastSeen > start {
		return int(c.lastSeen - start)
	}
	return 0
}

func tail[T any](buf []instance[T], off int) []instance[T] {
	if off >= len(buf) {
		return nil
	}
	return buf[off:]
}
