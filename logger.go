package ggmesh

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so SetLogger
// may race with logging from the frame loop.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by ggmesh.
// By default ggmesh produces no log output. Pass nil to restore silence.
//
// Log levels used by ggmesh:
//   - [slog.LevelDebug]: per-frame diagnostics (tick counts, mesh sizes)
//   - [slog.LevelInfo]: lifecycle events (images loaded, store teardown)
//   - [slog.LevelWarn]: non-fatal issues (presenter errors on shutdown)
//
// Example:
//
//	ggmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by ggmesh.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
