// Package input defines the normalized input events a host delivers to the
// window runtime. Hosts translate platform events into these types before
// calling the runtime.
package input

import (
	"fmt"
	"runtime"
)

// DeviceID identifies an input device. Hosts must keep it stable for the
// lifetime of the device.
type DeviceID uint64

// ElementState is the state of a key or button.
type ElementState uint8

const (
	// Pressed indicates the key or button went down.
	Pressed ElementState = iota
	// Released indicates the key or button went up.
	Released
)

// IsPressed reports whether s is Pressed.
func (s ElementState) IsPressed() bool {
	return s == Pressed
}

func (s ElementState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack
	MouseButtonForward
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonBack:
		return "back"
	case MouseButtonForward:
		return "forward"
	default:
		return fmt.Sprintf("button(%d)", uint8(b))
	}
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Shift reports whether shift is held.
func (m Modifiers) Shift() bool { return m&ModShift != 0 }

// Control reports whether control is held.
func (m Modifiers) Control() bool { return m&ModControl != 0 }

// Alt reports whether alt/option is held.
func (m Modifiers) Alt() bool { return m&ModAlt != 0 }

// Super reports whether the super/command key is held.
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// Primary reports whether the platform's primary shortcut modifier is held:
// command on macOS, control elsewhere.
func (m Modifiers) Primary() bool {
	if runtime.GOOS == "darwin" {
		return m.Super()
	}
	return m.Control()
}

// PossibleShortcut reports whether any modifier that usually forms a
// shortcut chord is held. Shift alone is not a shortcut.
func (m Modifiers) PossibleShortcut() bool {
	return m&(ModControl|ModAlt|ModSuper) != 0
}

// ScrollDelta is a wheel movement, either in lines or pixels.
type ScrollDelta struct {
	Lines bool
	X     float32
	Y     float32
}

// TouchPhase is the phase of a wheel or touch gesture.
type TouchPhase uint8

const (
	TouchPhaseStarted TouchPhase = iota
	TouchPhaseMoved
	TouchPhaseEnded
	TouchPhaseCancelled
)

// ImeKind identifies the kind of IME event.
type ImeKind uint8

const (
	ImeEnabled ImeKind = iota
	ImePreedit
	ImeCommit
	ImeDisabled
)

// Ime is an input-method event.
type Ime struct {
	Kind ImeKind
	Text string
	// Cursor is the byte range of the preedit cursor; nil hides it.
	Cursor *[2]int
}
