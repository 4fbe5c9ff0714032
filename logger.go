package ggseries

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silent drops every record. Enabled reports false, so draw loops pay one
// level check per log call and never build attributes.
type silent struct{}

func (silent) Enabled(context.Context, slog.Level) bool  { return false }
func (silent) Handle(context.Context, slog.Record) error { return nil }
func (s silent) WithAttrs([]slog.Attr) slog.Handler      { return s }
func (s silent) WithGroup(string) slog.Handler           { return s }

var (
	quiet  = slog.New(silent{})
	active atomic.Pointer[slog.Logger]
)

func init() {
	active.Store(quiet)
}

// SetLogger routes the diagnostics of ggseries, series, recording, host and
// scene to l. A nil logger silences them again, which is also the default.
//
// Renderers log at Debug only: why a draw was skipped (no data, hidden
// series, empty window) and how many bars and canvas calls a frame took.
// The host logs its autoscale result at Debug, backends log colors they
// could not parse at Warn, and scene loading and the CLI log at Info.
//
//	ggseries.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = quiet
	}
	active.Store(l)
}

// Logger returns the logger installed by SetLogger. Safe for concurrent use.
func Logger() *slog.Logger {
	return active.Load()
}
