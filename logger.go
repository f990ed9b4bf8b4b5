package memcanvas

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/memcanvas/pixop"
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
	loggerPtr.Store(newNopLogger())
}

// Messages logged by this package.
const (
	msgCreated    = "memcanvas: canvas created"
	msgResized    = "memcanvas: canvas resized"
	msgFormatSkip = "memcanvas: bitmap format mismatch, blit skipped"
	msgMonoSkip   = "memcanvas: mono stretch of a non-greyscale bitmap skipped"
)

// SetLogger configures the logger for memcanvas and its sub-packages.
// By default, memcanvas produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent
// default.
//
// Log levels used by memcanvas:
//   - [slog.LevelDebug]: canvas creation and resize, acceleration level,
//     text cache misses
//   - [slog.LevelWarn]: rejected requests, such as a bitmap whose pixel
//     format does not match the canvas
//
// Example:
//
//	memcanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by memcanvas.
// Sub-packages (textcache) call this to share the same configuration.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func logCreated(format Format, width, height int, accel pixop.Acceleration, wrapped bool) {
	Logger().LogAttrs(context.Background(), slog.LevelDebug, msgCreated,
		slog.String("format", format.String()),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.String("acceleration", accel.String()),
		slog.Bool("wrapped", wrapped))
}

func logResized(width, height int) {
	Logger().LogAttrs(context.Background(), slog.LevelDebug, msgResized,
		slog.Int("width", width),
		slog.Int("height", height))
}

// logSkipped reports a request dropped because src has the wrong format
// for it. want is the format the request needed.
func logSkipped(msg string, want, src Format) {
	Logger().LogAttrs(context.Background(), slog.LevelWarn, msg,
		slog.String("want", want.String()),
		slog.String("bitmap", src.String()))
}
