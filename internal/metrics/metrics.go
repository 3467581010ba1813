// Package metrics defines Pulse's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the frame loop and queues.
type Metrics struct {
	registry *prometheus.Registry

	Frames        prometheus.Counter
	FrameDuration prometheus.Histogram

	EventsSent     *prometheus.CounterVec
	EventsExpired  *prometheus.CounterVec
	EventsBuffered *prometheus.GaugeVec
}

// New creates a registry and registers all metrics on it.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Frames: factory.NewCounter(prometheus.CounterOpts{
			Name: "pulse_frames_total",
			Help: "Total number of completed frames",
		}),
		FrameDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pulse_frame_duration_seconds",
			Help:    "Wall time spent per frame, systems plus rotation",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		}),
		EventsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pulse_events_sent_total",
			Help: "Total number of events sent, per event type",
		}, []string{"event"}),
		EventsExpired: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pulse_events_expired_total",
			Help: "Total number of events freed by buffer rotation, per event type",
		}, []string{"event"}),
		EventsBuffered: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pulse_events_buffered",
			Help: "Events currently held across both buffers, per event type",
		}, []string{"event"}),
	}
}

// Registry exposes the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
