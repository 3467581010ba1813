// Package runtime wires the event registry, systems, and the frame loop for
// a single-process instance.
//
// A Runtime owns one registry.Registry and an ordered list of systems. Each
// frame it runs the systems sequentially, then rotates every registered
// queue exactly once. Systems are the only code that may send events or
// advance cursors; the runtime serializes frames, which provides the
// exclusive access Send and Update require while leaving cursor reads free
// to fan out inside a system.
//
//	rt := runtime.New(runtime.Options{FrameInterval: 16 * time.Millisecond})
//	q := registry.Register[Click](rt.Registry())
//	cur := q.NewCursor()
//	rt.AddSystem("clicks", func(ctx context.Context) error {
//	    for ev := range cur.Consume(q) {
//	        handle(ev)
//	    }
//	    return nil
//	})
//	_ = rt.Run(ctx)
package runtime
