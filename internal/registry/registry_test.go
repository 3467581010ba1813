package registry

import (
	"testing"
)

type clickEvent struct {
	x, y int
}

type keyEvent struct {
	code int
}

func TestRegisterReturnsSameQueue(t *testing.T) {
	r := New()
	q1 := Register[clickEvent](r)
	q2 := Register[clickEvent](r)
	if q1 != q2 {
		t.Fatalf("expected one queue per type")
	}
}

func TestQueuesAreSeparatePerType(t *testing.T) {
	r := New()
	clicks := Register[clickEvent](r)
	keys := Register[keyEvent](r)
	clicks.Send(clickEvent{x: 1})
	if keys.Len() != 0 {
		t.Fatalf("key queue received click events")
	}
	if clicks.Len() != 1 {
		t.Fatalf("click queue len = %d", clicks.Len())
	}
}

func TestLookupPanicsOnUnregisteredType(t *testing.T) {
	r := New()
	defer func() {
		if recover() == nil {
			t.Fatalf("lookup of unregistered type did not panic")
		}
	}()
	Lookup[keyEvent](r)
}

func TestCursorForPanicsOnUnregisteredType(t *testing.T) {
	r := New()
	defer func() {
		if recover() == nil {
			t.Fatalf("cursor for unregistered type did not panic")
		}
	}()
	CursorFor[keyEvent](r)
}

func TestRegisterAfterSealPanics(t *testing.T) {
	r := New()
	Register[clickEvent](r)
	r.Seal()
	// re-registering an existing type is fine
	Register[clickEvent](r)
	defer func() {
		if recover() == nil {
			t.Fatalf("register of new type after seal did not panic")
		}
	}()
	Register[keyEvent](r)
}

func TestUpdateAllRotatesEveryQueue(t *testing.T) {
	r := New()
	clicks := Register[clickEvent](r)
	keys := Register[keyEvent](r)
	clicks.Send(clickEvent{x: 1})
	clicks.Send(clickEvent{x: 2})
	keys.Send(keyEvent{code: 3})

	r.UpdateAll()
	freed := r.UpdateAll()
	if freed["registry.clickEvent"] != 2 {
		t.Fatalf("freed = %v", freed)
	}
	if freed["registry.keyEvent"] != 1 {
		t.Fatalf("freed = %v", freed)
	}
	if clicks.Len() != 0 || keys.Len() != 0 {
		t.Fatalf("queues not drained: %d %d", clicks.Len(), keys.Len())
	}
}

func TestHandlesReportStats(t *testing.T) {
	r := New()
	q := Register[clickEvent](r)
	q.Send(clickEvent{x: 1})
	hs := r.Handles()
	if len(hs) != 1 {
		t.Fatalf("handles = %d", len(hs))
	}
	st := hs[0].Stats()
	if st.Name != "registry.clickEvent" || st.Buffered != 1 || st.Sequence != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestCursorCurrentForSkipsHistory(t *testing.T) {
	r := New()
	q := Register[clickEvent](r)
	q.Send(clickEvent{x: 1})
	cur := CursorCurrentFor[clickEvent](r)
	if _, ok := cur.Latest(q); ok {
		t.Fatalf("current cursor saw history")
	}
}
