// Package events implements Pulse's double-buffered broadcast queue.
//
// # Overview
//
// A Queue[T] holds the events of type T sent within the last two Update
// calls. Any number of Cursors can read from the same queue; each cursor
// tracks only its own position, so reads are cheap and independent. The
// queue is meant to be paired with a scheduler that calls Update exactly
// once per frame. Cursors are expected to read at least once per frame;
// events not consumed within two updates are dropped.
//
// Usage
//
//	q := events.NewQueue[Click]()
//	cur := q.NewCursor()
//
//	// once per frame, from the scheduler
//	q.Update()
//
//	// somewhere else: send an event
//	q.Send(Click{X: 10, Y: 20})
//
//	// somewhere else: read the events
//	for ev := range cur.Consume(q) {
//	    handle(ev)
//	}
//
// # Details
//
// The queue keeps two buffers and an active slot. Each Update clears the
// inactive buffer, makes it the active one, and records the sequence number
// at which it restarted. A cursor that reads at least once per update never
// misses an event; a cursor that reads once within two updates may still
// catch some; a cursor that skips two updates has lost everything sent
// before them. Buffers grow without bound if Update is never called.
//
// Send and Update mutate the queue and must not run concurrently with each
// other or with reads. Cursor reads only borrow the queue and may run in
// parallel with one another. The intended model is a cooperative frame
// scheduler with a single mutator per queue; the package does no locking of
// its own.
package events
