package window

import (
	"log/slog"
	"sync/atomic"

	"github.com/go-drift/wincore/pkg/errors"
)

var windowLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used for runtime diagnostics. Nil restores
// the default, which derives from errors.Logger.
func SetLogger(l *slog.Logger) {
	windowLogger.Store(l)
}

func logger() *slog.Logger {
	if l := windowLogger.Load(); l != nil {
		return l
	}
	return errors.Logger().With(slog.String("component", "window"))
}
