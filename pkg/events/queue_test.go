package events

import "testing"

type testEvent struct {
	i int
}

// drain collects a cursor's unseen events by value.
func drain(t *testing.T, c *Cursor[testEvent], q *Queue[testEvent]) []testEvent {
	t.Helper()
	var out []testEvent
	for ev := range c.Consume(q) {
		out = append(out, *ev)
	}
	return out
}

func equal(a, b []testEvent) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSendAssignsSequentialFromZero(t *testing.T) {
	q := NewQueue[testEvent]()
	if q.Sequence() != 0 {
		t.Fatalf("fresh queue sequence = %d, want 0", q.Sequence())
	}
	for i := 0; i < 5; i++ {
		q.Send(testEvent{i: i})
		if q.Sequence() != uint64(i+1) {
			t.Fatalf("after %d sends sequence = %d", i+1, q.Sequence())
		}
	}
	for i, b := range q.buffers[q.active] {
		if b.seq != uint64(i) {
			t.Fatalf("instance %d has seq %d", i, b.seq)
		}
	}
}

func TestUpdateRotatesAndClears(t *testing.T) {
	q := NewQueue[testEvent]()
	q.Send(testEvent{i: 0})
	q.Send(testEvent{i: 1})
	if q.Len() != 2 {
		t.Fatalf("len = %d, want 2", q.Len())
	}

	// first rotation retains both events in the now-inactive buffer
	if freed := q.Update(); freed != 0 {
		t.Fatalf("first update freed %d, want 0", freed)
	}
	if q.Len() != 2 {
		t.Fatalf("len after first update = %d, want 2", q.Len())
	}
	if q.starts[q.active] != 2 {
		t.Fatalf("active start marker = %d, want 2", q.starts[q.active])
	}

	// second rotation frees them
	if freed := q.Update(); freed != 2 {
		t.Fatalf("second update freed %d, want 2", freed)
	}
	if q.Len() != 0 {
		t.Fatalf("len after second update = %d, want 0", q.Len())
	}
}

func TestUpdateAlternatesActiveBuffer(t *testing.T) {
	q := NewQueue[testEvent]()
	a := q.active
	q.Update()
	if q.active == a {
		t.Fatalf("active buffer did not flip")
	}
	q.Update()
	if q.active != a {
		t.Fatalf("active buffer did not flip back")
	}
}

func TestSendOnlyTouchesActiveBuffer(t *testing.T) {
	q := NewQueue[testEvent]()
	q.Send(testEvent{i: 0})
	q.Update()
	q.Send(testEvent{i: 1})
	if n := len(q.buffers[q.active]); n != 1 {
		t.Fatalf("active buffer has %d events, want 1", n)
	}
	if n := len(q.buffers[q.active^1]); n != 1 {
		t.Fatalf("retained buffer has %d events, want 1", n)
	}
}

// Mirrors the documented retention contract: a reader that consumes once
// between every pair of updates sees every event exactly once, in order.
func TestReadEachFrameMissesNothing(t *testing.T) {
	q := NewQueue[testEvent]()
	cur := q.NewCursor()
	var got []testEvent
	next := 0
	for frame := 0; frame < 10; frame++ {
		for i := 0; i < 3; i++ {
			q.Send(testEvent{i: next})
			next++
		}
		got = append(got, drain(t, cur, q)...)
		q.Update()
	}
	if len(got) != next {
		t.Fatalf("observed %d events, want %d", len(got), next)
	}
	for i, ev := range got {
		if ev.i != i {
			t.Fatalf("event %d out of order: %+v", i, ev)
		}
	}
}

func TestSkippingTwoUpdatesDropsOldEvents(t *testing.T) {
	q := NewQueue[testEvent]()
	cur := q.NewCursor()

	q.Send(testEvent{i: 0}) // lost: sent before both updates
	q.Update()
	q.Send(testEvent{i: 1}) // retained: sent between the two updates
	q.Update()
	q.Send(testEvent{i: 2}) // retained: sent after both

	got := drain(t, cur, q)
	want := []testEvent{{i: 1}, {i: 2}}
	if !equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
