// Package serverrun starts a Pulse instance: frame loop plus the HTTP
// operational surface, wired from configuration.
package serverrun

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	cfgpkg "github.com/rzbill/pulse/internal/config"
	"github.com/rzbill/pulse/internal/metrics"
	"github.com/rzbill/pulse/internal/runtime"
	httpserver "github.com/rzbill/pulse/internal/server/http"
	logpkg "github.com/rzbill/pulse/pkg/log"
)

// Setup registers event types and systems on the runtime before the frame
// loop starts.
type Setup func(rt *runtime.Runtime, logger logpkg.Logger) error

type Options struct {
	// HTTPAddr overrides the configured address when non-empty.
	HTTPAddr string
	Config   cfgpkg.Config
	Setup    Setup
}

// Run starts the runtime and HTTP server and blocks until ctx is cancelled
// or a signal arrives.
func Run(ctx context.Context, opts Options) error {
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := opts.Config.Validate(); err != nil {
		return err
	}

	level, err := logpkg.ParseLevel(opts.Config.LogLevel)
	if err != nil {
		level = logpkg.InfoLevel
	}
	format, err := logpkg.ParseFormat(opts.Config.LogFormat)
	if err != nil {
		format = logpkg.TextFormat
	}
	logger := logpkg.NewLogger(logpkg.WithLevel(level), logpkg.WithFormat(format))

	m := metrics.New()
	rt := runtime.New(runtime.Options{
		FrameInterval: opts.Config.FrameInterval(),
		Logger:        logger,
		Metrics:       m,
	})
	if opts.Setup != nil {
		if err := opts.Setup(rt, logger); err != nil {
			return err
		}
	}

	addr := opts.HTTPAddr
	if addr == "" {
		addr = opts.Config.HTTPAddr
	}

	logger.Info("starting pulse",
		logpkg.Str("http", addr),
		logpkg.Dur("frame", opts.Config.FrameInterval()),
		logpkg.Str("level", level.String()),
	)

	hsrv := httpserver.New(rt, m, logger)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := hsrv.ListenAndServe(sctx, addr); err != nil && sctx.Err() == nil {
			logger.Error("http server failed", logpkg.Err(err))
			stop()
		}
	}()

	runErr := rt.Run(sctx)
	wg.Wait()
	return runErr
}
