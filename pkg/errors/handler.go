package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every error and panic the window runtime
	// reports. It starts as a non-verbose LogHandler.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler replaces the global handler. Nil restores a LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func currentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report stamps err and passes it to the global handler.
func Report(err *WindowError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	currentHandler().HandleError(err)
}

// ReportPanic stamps err and passes it to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	currentHandler().HandlePanic(err)
}

// Recovered reports a value returned by recover() during op and returns
// the reported error. It returns nil when value is nil.
//
//	defer func() {
//		if err := errors.Recovered("window.MouseInput", recover()); err != nil {
//			...
//		}
//	}()
func Recovered(op string, value any) *PanicError {
	if value == nil {
		return nil
	}
	err := &PanicError{
		Op:         op,
		Value:      value,
		StackTrace: CaptureStack(),
	}
	ReportPanic(err)
	return err
}

// Recover reports a panic in op and stops it. Use it directly with defer:
//
//	defer errors.Recover("demo.Run")
func Recover(op string) {
	Recovered(op, recover())
}

// ReportMissingTarget reports that a stored widget id no longer resolves.
func ReportMissingTarget(op string, widget uint64) {
	Report(&WindowError{
		Op:     op,
		Kind:   KindMissingTarget,
		Widget: widget,
		Err:    fmt.Errorf("widget %d is not in the tree", widget),
	})
}

// CaptureStack returns the caller's stack, one "function file:line" entry
// per frame. Go runtime frames and the recovery helpers are omitted.
func CaptureStack() string {
	var pcs [48]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if !skipFrame(frame.Function) {
			fmt.Fprintf(&sb, "%s %s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}

const packagePath = "github.com/go-drift/wincore/pkg/errors."

func skipFrame(function string) bool {
	switch function {
	case packagePath + "Recover", packagePath + "Recovered":
		return true
	}
	return strings.HasPrefix(function, "runtime.")
}
