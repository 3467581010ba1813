package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rzbill/pulse/internal/metrics"
	"github.com/rzbill/pulse/internal/registry"
	logpkg "github.com/rzbill/pulse/pkg/log"
)

// Options for building the Runtime.
type Options struct {
	// FrameInterval is the tick period of Run. Defaults to 16ms.
	FrameInterval time.Duration
	Logger        logpkg.Logger
	Metrics       *metrics.Metrics
}

// System is one unit of per-frame work. Systems run sequentially within a
// frame, in registration order; an error aborts the rest of the frame's
// systems but never the buffer rotation.
type System func(ctx context.Context) error

type namedSystem struct {
	name string
	fn   System
}

// QueueStatus reports one queue's counters for the status surface.
type QueueStatus struct {
	Name     string `json:"name"`
	Buffered int    `json:"buffered"`
	Sequence uint64 `json:"sequence"`
	Expired  uint64 `json:"expired"`
}

// Status is a point-in-time view of the runtime.
type Status struct {
	Frames uint64        `json:"frames"`
	Queues []QueueStatus `json:"queues"`
}

// Runtime drives the frame loop over a registry of event queues.
type Runtime struct {
	reg      *registry.Registry
	interval time.Duration
	logger   logpkg.Logger
	metrics  *metrics.Metrics

	// mu serializes Step against Snapshot; within a frame it is the
	// exclusion Send/Update rely on.
	mu      sync.Mutex
	systems []namedSystem
	frames  uint64
	expired map[string]uint64
	sent    map[string]uint64
}

// New builds a Runtime with an empty registry.
func New(opts Options) *Runtime {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = 16 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = logpkg.Nop()
	}
	return &Runtime{
		reg:      registry.New(),
		interval: opts.FrameInterval,
		logger:   opts.Logger.With(logpkg.Component("runtime")),
		metrics:  opts.Metrics,
		expired:  map[string]uint64{},
		sent:     map[string]uint64{},
	}
}

// Registry returns the runtime's event registry. Register event types on it
// during setup, before Run.
func (r *Runtime) Registry() *registry.Registry { return r.reg }

// AddSystem appends a system to the frame order. Call during setup, before
// Run.
func (r *Runtime) AddSystem(name string, fn System) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.systems = append(r.systems, namedSystem{name: name, fn: fn})
}

// Step runs one frame: every system in order, then one rotation of every
// queue. The rotation happens even when a system fails; skipping it would
// silently stretch the documented two-update retention window. Returns the
// first system error, if any.
func (r *Runtime) Step(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	start := time.Now()

	var firstErr error
	for _, s := range r.systems {
		if err := s.fn(ctx); err != nil {
			r.logger.Error("system failed", logpkg.Str("system", s.name), logpkg.Err(err))
			firstErr = fmt.Errorf("system %s: %w", s.name, err)
			break
		}
	}

	freed := r.reg.UpdateAll()
	for name, n := range freed {
		r.expired[name] += uint64(n)
	}
	r.frames++

	if r.metrics != nil {
		r.metrics.Frames.Inc()
		r.metrics.FrameDuration.Observe(time.Since(start).Seconds())
		for _, h := range r.reg.Handles() {
			st := h.Stats()
			if d := st.Sequence - r.sent[st.Name]; d > 0 {
				r.metrics.EventsSent.WithLabelValues(st.Name).Add(float64(d))
				r.sent[st.Name] = st.Sequence
			}
			if n := freed[st.Name]; n > 0 {
				r.metrics.EventsExpired.WithLabelValues(st.Name).Add(float64(n))
			}
			r.metrics.EventsBuffered.WithLabelValues(st.Name).Set(float64(st.Buffered))
		}
	}
	return firstErr
}

// Run seals the registry and drives Step on a ticker until ctx is done.
// System errors are logged and do not stop the loop.
func (r *Runtime) Run(ctx context.Context) error {
	r.reg.Seal()
	r.logger.Info("frame loop started", logpkg.Dur("interval", r.interval))
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("frame loop stopped", logpkg.Uint64("frames", r.Frames()))
			return nil
		case <-t.C:
			_ = r.Step(ctx)
		}
	}
}

// Frames returns the number of completed frames.
func (r *Runtime) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// CheckHealth performs a simple health check.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if r.reg == nil {
		return errors.New("registry not initialized")
	}
	return nil
}

// Snapshot returns the runtime's current counters. Safe to call while the
// frame loop runs.
func (r *Runtime) Snapshot() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := Status{Frames: r.frames}
	for _, h := range r.reg.Handles() {
		s := h.Stats()
		st.Queues = append(st.Queues, QueueStatus{
			Name:     s.Name,
			Buffered: s.Buffered,
			Sequence: s.Sequence,
			Expired:  r.expired[s.Name],
		})
	}
	return st
}
