package verve

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the package-level logger used by engines that were
// not given one via WithLogger. By default, verve produces no log output.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by verve:
//   - [slog.LevelDebug]: per-frame diagnostics (multiplier values, tick timing)
//   - [slog.LevelInfo]: lifecycle events (section transitions, context
//     restored, quality tier changes)
//   - [slog.LevelWarn]: recoverable trouble (context lost, restoration
//     retry, restore callback failure, unknown section or system ids)
//   - [slog.LevelError]: terminal context failure
//
// Example:
//
//	// Enable info-level logging to stderr:
//	verve.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	verve.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package-level logger. Sub-components fall
// back to it when no per-engine logger is configured, sharing one
// configuration without import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
