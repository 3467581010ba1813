// Package log provides Pulse's structured logging facade.
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context, backed by the standard library slog
// handlers. Construct a logger with options and pass it down explicitly;
// there is no global logger.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormat(log.TextFormat),
//	)
//	l = l.With(log.Component("runtime"))
//	l.Info("frame loop started", log.Dur("interval", 16*time.Millisecond))
package log
