package window

import (
	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/input"
	"github.com/go-drift/wincore/pkg/value"
)

// Host is the OS window the runtime drives. Implementations translate
// platform events into Runtime callbacks and expose the window's state.
type Host interface {
	// InnerSize returns the content area in physical pixels.
	InnerSize() geometry.Size
	// Scale returns the physical pixels per logical pixel.
	Scale() float32
	Resizable() bool
	Focused() bool
	Occluded() bool
	Modifiers() input.Modifiers

	// SetTitle updates the window title.
	SetTitle(title string)
	// SetMinInnerSize sets the smallest size the user may resize to. Nil
	// removes the limit.
	SetMinInnerSize(size *geometry.Size)
	// SetMaxInnerSize sets the largest size the user may resize to. Nil
	// removes the limit.
	SetMaxInnerSize(size *geometry.Size)
	// RequestInnerSize asks the OS to resize the content area.
	RequestInnerSize(size geometry.Size) error
	// SetNeedsRedraw schedules another frame.
	SetNeedsRedraw()
}

// RunningWindow is the open window as seen by widgets and behaviors.
type RunningWindow struct {
	host     Host
	focused  *value.Dynamic[bool]
	occluded *value.Dynamic[bool]
}

// Host returns the underlying host window.
func (w *RunningWindow) Host() Host {
	return w.host
}

// Focused reports whether the window has input focus.
func (w *RunningWindow) Focused() bool {
	return w.focused.Get()
}

// Occluded reports whether the window is hidden from view.
func (w *RunningWindow) Occluded() bool {
	return w.occluded.Get()
}

// InnerSize returns the content area in physical pixels.
func (w *RunningWindow) InnerSize() geometry.Size {
	return w.host.InnerSize()
}

// SetNeedsRedraw schedules another frame.
func (w *RunningWindow) SetNeedsRedraw() {
	w.host.SetNeedsRedraw()
}

// Modifiers returns the keyboard modifiers currently held.
func (w *RunningWindow) Modifiers() input.Modifiers {
	return w.host.Modifiers()
}

// Scale returns the physical pixels per logical pixel.
func (w *RunningWindow) Scale() float32 {
	return w.host.Scale()
}
