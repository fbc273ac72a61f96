// Package errors provides structured error reporting for the window runtime.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMissingTarget indicates a stored widget id no longer resolves.
	KindMissingTarget
	// KindReentrancy indicates a widget was entered while already locked.
	KindReentrancy
	// KindLayout indicates a layout pass produced an unusable result.
	KindLayout
	// KindHost indicates the window host rejected a request.
	KindHost
	// KindConfig indicates a configuration file could not be used.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingTarget:
		return "missing-target"
	case KindReentrancy:
		return "reentrancy"
	case KindLayout:
		return "layout"
	case KindHost:
		return "host"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// WindowError is a structured error raised by the window runtime.
type WindowError struct {
	// Op is the operation that failed (e.g., "window.Prepare").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Widget is the id of the widget involved, or 0.
	Widget uint64
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WindowError) Error() string {
	if e.Widget != 0 {
		return fmt.Sprintf("%s [%s] widget=%d: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WindowError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "window.MouseInput").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ReentrancyError is the panic value raised when a widget is locked while
// a handler on it is still running.
type ReentrancyError struct {
	// Widget is the id of the re-entered widget.
	Widget uint64
	// Type is the Go type of the widget.
	Type string
}

func (e *ReentrancyError) Error() string {
	return fmt.Sprintf("widget %d (%s) re-entered while already locked", e.Widget, e.Type)
}

// ConfigError describes an invalid configuration value.
type ConfigError struct {
	// Path is the file the value came from, if known.
	Path string
	// Field is the dotted field name (e.g., "theme.dark.surface").
	Field string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Path != "" && e.Field != "":
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Field, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the window runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *WindowError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
