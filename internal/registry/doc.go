// Package registry maintains the process-wide mapping from event type to its
// queue. Each event type has exactly one queue per registry, created during a
// setup phase and live for the rest of the run.
//
// Registration is synchronized and ends when Seal is called; the scheduler
// seals the registry before the frame loop starts. Looking up an event type
// that was never registered is a programming error and panics.
//
//	reg := registry.New()
//	registry.Register[Click](reg)
//	reg.Seal()
//
//	cur := registry.CursorFor[Click](reg)
//	registry.Lookup[Click](reg).Send(Click{X: 1})
package registry
