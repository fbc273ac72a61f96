package errors

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// SetLogger replaces the logger used by LogHandler. Nil restores the
// default stderr text logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	logger.Store(l)
}

// Logger returns the logger used by LogHandler.
func Logger() *slog.Logger {
	return logger.Load()
}

// LogHandler is an ErrorHandler that writes structured log records.
type LogHandler struct {
	// Verbose enables stack traces in the output.
	Verbose bool
}

// HandleError logs a WindowError.
func (h *LogHandler) HandleError(err *WindowError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
	}
	if err.Widget != 0 {
		attrs = append(attrs, slog.Uint64("widget", err.Widget))
	}
	attrs = append(attrs, slog.Any("err", err.Err))
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	level := slog.LevelError
	if err.Kind == KindMissingTarget {
		level = slog.LevelDebug
	}
	Logger().Log(context.Background(), level, "window error", attrs...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{slog.Any("value", err.Value)}
	if err.Op != "" {
		attrs = append(attrs, slog.String("op", err.Op))
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	Logger().Error("window panic", attrs...)
}
