package pag

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. It reports every level as disabled,
// so log calls return before building attributes.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var (
	silent = slog.New(discardHandler{})
	active atomic.Pointer[slog.Logger]
)

func init() { active.Store(silent) }

// SetLogger routes the diagnostics of pag, drawable, cache and gpu to l.
// Nothing is logged until it is called; nil turns logging off again.
// It may be called while other goroutines are logging.
//
// Records by level:
//   - Debug: surfaces allocated and freed, drawable resizes, cache invalidation
//   - Info: devices opened and destroyed
//   - Warn: verify failures, failed window or surface creation
//
// For example, to see everything on stderr:
//
//	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	pag.SetLogger(slog.New(h))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return active.Load()
}
