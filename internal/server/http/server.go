// Package httpserver exposes Pulse's operational HTTP surface: health,
// status, and Prometheus metrics. It carries no event traffic; queues are
// in-process only.
package httpserver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rzbill/pulse/internal/metrics"
	"github.com/rzbill/pulse/internal/runtime"
	logpkg "github.com/rzbill/pulse/pkg/log"
)

type Server struct {
	rt     *runtime.Runtime
	logger logpkg.Logger
	srv    *http.Server

	mu  sync.Mutex
	lis net.Listener
}

// New builds the server. metrics may be nil, in which case /metrics is not
// registered.
func New(rt *runtime.Runtime, m *metrics.Metrics, logger logpkg.Logger) *Server {
	if logger == nil {
		logger = logpkg.Nop()
	}
	mux := http.NewServeMux()
	s := &Server{rt: rt, logger: logger.With(logpkg.Component("http")), srv: &http.Server{Handler: mux}}
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	if m != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))
	}
	return s
}

// Listen binds addr. Callers that need the bound address before serving
// (e.g. when listening on ":0") call Listen first, then ListenAndServe.
func (s *Server) Listen(addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.lis = l
	s.mu.Unlock()
	return nil
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
// It binds addr unless Listen was already called.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l := s.listener()
	if l == nil {
		if err := s.Listen(addr); err != nil {
			return err
		}
		l = s.listener()
	}
	s.logger.Info("http server listening", logpkg.Str("addr", l.Addr().String()))
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) listener() net.Listener {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lis
}

// Addr returns the bound address once Listen has run, or empty.
func (s *Server) Addr() string {
	if l := s.listener(); l != nil {
		return l.Addr().String()
	}
	return ""
}

// Close closes the listener.
func (s *Server) Close() {
	if l := s.listener(); l != nil {
		_ = l.Close()
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.rt.CheckHealth(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "not_serving"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.rt.Snapshot())
}
