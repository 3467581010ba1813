package filter

import (
	"testing"

	"github.com/rzbill/pulse/pkg/events"
)

type order struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

func TestEmptyExpressionAlwaysMatches(t *testing.T) {
	pred, err := Compile[order]("")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !pred(&order{Item: "x"}) {
		t.Fatalf("empty expression should match everything")
	}
}

func TestFieldFilter(t *testing.T) {
	pred, err := Compile[order](`event.count > 2`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if pred(&order{Item: "a", Count: 1}) {
		t.Fatalf("count 1 matched")
	}
	if !pred(&order{Item: "b", Count: 3}) {
		t.Fatalf("count 3 did not match")
	}
}

func TestTextAndSizeVariables(t *testing.T) {
	pred, err := Compile[order](`text.contains("widget") && size > 0`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !pred(&order{Item: "widget", Count: 1}) {
		t.Fatalf("text filter did not match")
	}
	if pred(&order{Item: "gadget", Count: 1}) {
		t.Fatalf("text filter matched wrong item")
	}
}

func TestCompileErrorSurfaces(t *testing.T) {
	if _, err := Compile[order](`event.count >`); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := Compile[order](`no_such_var == 1`); err == nil {
		t.Fatalf("expected check error")
	}
}

func TestNonBoolExpressionNeverMatches(t *testing.T) {
	pred, err := Compile[order](`size`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if pred(&order{Item: "x"}) {
		t.Fatalf("non-bool result treated as match")
	}
}

func TestPredicateWithFindLatest(t *testing.T) {
	q := events.NewQueue[order]()
	cur := q.NewCursor()
	q.Send(order{Item: "widget", Count: 1})
	q.Send(order{Item: "gadget", Count: 5})
	q.Send(order{Item: "widget", Count: 9})

	pred, err := Compile[order](`event.item == "widget"`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	ev, ok := cur.FindLatest(q, pred)
	if !ok || ev.Count != 9 {
		t.Fatalf("find latest = %+v, %v", ev, ok)
	}
}
