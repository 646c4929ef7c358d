// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glarea

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. SetLogger may run on any goroutine,
// even though surfaces themselves are bound to the context thread.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for glarea and its sub-packages.
// By default glarea produces no log output. Pass nil to restore silence.
//
// Log levels used by glarea:
//   - [slog.LevelDebug]: GPU object handles as they are created and released
//   - [slog.LevelInfo]: surface lifecycle transitions
//   - [slog.LevelWarn]: shader compile and program link diagnostics
//
// Example:
//
//	glarea.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by glarea.
// The webgpu and host packages call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
