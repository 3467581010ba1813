package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Level represents the severity of a log message.
type Level int

// Log levels
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", s)
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case DebugLevel:
		return slog.LevelDebug
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Format selects the output encoding.
type Format int

// Output formats
const (
	TextFormat Format = iota
	JSONFormat
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	}
	return TextFormat, fmt.Errorf("unknown log format %q", s)
}

// Field is a single structured key/value pair.
type Field = slog.Attr

// Str returns a string field.
func Str(key, value string) Field { return slog.String(key, value) }

// Int returns an int field.
func Int(key string, value int) Field { return slog.Int(key, value) }

// Uint64 returns a uint64 field.
func Uint64(key string, value uint64) Field { return slog.Uint64(key, value) }

// Dur returns a duration field.
func Dur(key string, value time.Duration) Field { return slog.Duration(key, value) }

// Err returns an error field under the key "error".
func Err(err error) Field { return slog.Any("error", err) }

// Component tags log lines with the emitting component's name.
func Component(name string) Field { return slog.String("component", name) }

// Logger is the leveled structured logging interface Pulse components
// accept. Pass loggers down explicitly; With derives a child logger with
// bound fields.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type baseLogger struct {
	sl *slog.Logger
}

func (b *baseLogger) log(level slog.Level, msg string, fields []Field) {
	b.sl.LogAttrs(context.Background(), level, msg, fields...)
}

func (b *baseLogger) Debug(msg string, fields ...Field) { b.log(slog.LevelDebug, msg, fields) }
func (b *baseLogger) Info(msg string, fields ...Field)  { b.log(slog.LevelInfo, msg, fields) }
func (b *baseLogger) Warn(msg string, fields ...Field)  { b.log(slog.LevelWarn, msg, fields) }
func (b *baseLogger) Error(msg string, fields ...Field) { b.log(slog.LevelError, msg, fields) }

func (b *baseLogger) With(fields ...Field) Logger {
	args := make([]any, len(fields))
	for i, f := range fields {
		args[i] = f
	}
	return &baseLogger{sl: b.sl.With(args...)}
}

type options struct {
	level  Level
	format Format
	writer io.Writer
}

// Option configures a logger built by NewLogger.
type Option func(*options)

// WithLevel sets the minimum log level.
func WithLevel(level Level) Option { return func(o *options) { o.level = level } }

// WithFormat sets the output encoding.
func WithFormat(format Format) Option { return func(o *options) { o.format = format } }

// WithWriter sets the output writer. Defaults to stderr.
func WithWriter(w io.Writer) Option { return func(o *options) { o.writer = w } }

// NewLogger builds a logger. Defaults: info level, text format, stderr.
func NewLogger(opts ...Option) Logger {
	o := options{level: InfoLevel, format: TextFormat, writer: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}
	hopts := &slog.HandlerOptions{Level: o.level.slogLevel()}
	var h slog.Handler
	switch o.format {
	case JSONFormat:
		h = slog.NewJSONHandler(o.writer, hopts)
	default:
		h = slog.NewTextHandler(o.writer, hopts)
	}
	return &baseLogger{sl: slog.New(h)}
}

// Nop returns a logger that discards everything. Useful in tests.
func Nop() Logger {
	return &baseLogger{sl: slog.New(slog.DiscardHandler)}
}
