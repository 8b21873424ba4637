package pantext

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so slog does not
// build the record at all.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr is swapped by SetLogger while the viewer goroutine may be
// logging a redraw.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes the log output of pantext, text, present and viewer to l.
// Nothing is logged until it is called; nil silences logging again.
//
// Records emitted:
//   - Debug: "redraw" and "end redraw" with the frame number, glyph cache
//     misses, decomposed glyphs
//   - Info: system font resolved, window opened, session ended
//   - Warn: glyph skipped or replaced by a placeholder, presentation failed
//     and the viewer stopped
//
// The command installs a text handler on a terminal and JSON otherwise:
//
//	pantext.SetLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
