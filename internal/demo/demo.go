// Package demo provides the self-contained workload behind `pulse demo`:
// a producer system that emits synthetic orders each frame, a consumer that
// tallies everything, and a filtered consumer driven by an optional CEL
// expression.
package demo

import (
	"context"
	"fmt"

	cfgpkg "github.com/rzbill/pulse/internal/config"
	"github.com/rzbill/pulse/internal/filter"
	"github.com/rzbill/pulse/internal/registry"
	"github.com/rzbill/pulse/internal/runtime"
	logpkg "github.com/rzbill/pulse/pkg/log"
)

// Order is the demo's event type.
type Order struct {
	ID    uint64 `json:"id"`
	Item  string `json:"item"`
	Count int    `json:"count"`
}

var items = []string{"widget", "gadget", "gizmo"}

// Setup registers the demo queue and systems on rt.
func Setup(rt *runtime.Runtime, cfg cfgpkg.Demo, logger logpkg.Logger) error {
	pred, err := filter.Compile[Order](cfg.Filter)
	if err != nil {
		return fmt.Errorf("compile demo filter: %w", err)
	}
	if logger == nil {
		logger = logpkg.Nop()
	}
	logger = logger.With(logpkg.Component("demo"))

	q := registry.Register[Order](rt.Registry())
	tally := q.NewCursor()
	matched := q.NewCursor()

	var nextID uint64
	rt.AddSystem("demo.producer", func(ctx context.Context) error {
		for i := 0; i < cfg.EventsPerFrame; i++ {
			nextID++
			q.Send(Order{
				ID:    nextID,
				Item:  items[nextID%uint64(len(items))],
				Count: int(nextID % 7),
			})
		}
		return nil
	})

	var total uint64
	rt.AddSystem("demo.tally", func(ctx context.Context) error {
		for range tally.Consume(q) {
			total++
		}
		if total%1000 == 0 && total > 0 {
			logger.Info("orders tallied", logpkg.Uint64("total", total))
		}
		return nil
	})

	rt.AddSystem("demo.filtered", func(ctx context.Context) error {
		if ev, ok := matched.FindLatest(q, pred); ok {
			logger.Debug("filter matched",
				logpkg.Uint64("id", ev.ID),
				logpkg.Str("item", ev.Item),
				logpkg.Int("count", ev.Count),
			)
		}
		return nil
	})
	return nil
}
