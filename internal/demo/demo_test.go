package demo

import (
	"context"
	"testing"

	cfgpkg "github.com/rzbill/pulse/internal/config"
	"github.com/rzbill/pulse/internal/runtime"
)

func TestSetupAndStep(t *testing.T) {
	rt := runtime.New(runtime.Options{})
	if err := Setup(rt, cfgpkg.Demo{EventsPerFrame: 3, Filter: `event.item == "widget"`}, nil); err != nil {
		t.Fatalf("setup: %v", err)
	}
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		if err := rt.Step(ctx); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	st := rt.Snapshot()
	if len(st.Queues) != 1 {
		t.Fatalf("queues = %d", len(st.Queues))
	}
	if st.Queues[0].Sequence != 12 {
		t.Fatalf("sequence = %d, want 12", st.Queues[0].Sequence)
	}
	// events older than two frames have been freed
	if st.Queues[0].Buffered > 6 {
		t.Fatalf("buffered = %d", st.Queues[0].Buffered)
	}
}

func TestSetupRejectsBadFilter(t *testing.T) {
	rt := runtime.New(runtime.Options{})
	if err := Setup(rt, cfgpkg.Demo{Filter: `event.item ==`}, nil); err == nil {
		t.Fatalf("bad filter accepted")
	}
}
