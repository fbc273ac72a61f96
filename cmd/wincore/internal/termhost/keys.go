package termhost

import (
	"runtime"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/wincore/pkg/input"
)

const (
	mouseDevice    input.DeviceID = 1
	keyboardDevice input.DeviceID = 2
)

var namedKeys = map[tea.KeyType]input.NamedKey{
	tea.KeyTab:       input.KeyTab,
	tea.KeyShiftTab:  input.KeyTab,
	tea.KeyEnter:     input.KeyEnter,
	tea.KeyEsc:       input.KeyEscape,
	tea.KeySpace:     input.KeySpace,
	tea.KeyBackspace: input.KeyBackspace,
	tea.KeyDelete:    input.KeyDelete,
	tea.KeyUp:        input.KeyArrowUp,
	tea.KeyDown:      input.KeyArrowDown,
	tea.KeyLeft:      input.KeyArrowLeft,
	tea.KeyRight:     input.KeyArrowRight,
	tea.KeyHome:      input.KeyHome,
	tea.KeyEnd:       input.KeyEnd,
	tea.KeyPgUp:      input.KeyPageUp,
	tea.KeyPgDown:    input.KeyPageDown,
}

// primaryModifier is the modifier input.Modifiers.Primary looks for.
func primaryModifier() input.Modifiers {
	if runtime.GOOS == "darwin" {
		return input.ModSuper
	}
	return input.ModControl
}

// translateKey maps a terminal key to a logical key, the modifiers that
// were held and the text it produces. Terminals only report presses.
func translateKey(msg tea.KeyMsg) (input.KeyEvent, input.Modifiers, bool) {
	event := input.KeyEvent{State: input.Pressed}
	var modifiers input.Modifiers
	if msg.Alt {
		modifiers |= input.ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		text := string(msg.Runes)
		event.Logical = input.Character(text)
		event.Text = text
		return event, modifiers, true
	case tea.KeyCtrlW:
		event.Logical = input.Character("w")
		return event, modifiers | primaryModifier(), true
	case tea.KeyShiftTab:
		modifiers |= input.ModShift
	}

	named, ok := namedKeys[msg.Type]
	if !ok {
		return input.KeyEvent{}, 0, false
	}
	event.Logical = input.Named(named)
	if named == input.KeySpace {
		event.Text = " "
	}
	return event, modifiers, true
}

// translateButton maps a terminal mouse button.
func translateButton(b tea.MouseButton) (input.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return input.MouseButtonLeft, true
	case tea.MouseButtonRight:
		return input.MouseButtonRight, true
	case tea.MouseButtonMiddle:
		return input.MouseButtonMiddle, true
	case tea.MouseButtonBackward:
		return input.MouseButtonBack, true
	case tea.MouseButtonForward:
		return input.MouseButtonForward, true
	default:
		return 0, false
	}
}

// wheelDelta returns the line delta of a wheel button. Positive Y scrolls
// up.
func wheelDelta(b tea.MouseButton) input.ScrollDelta {
	switch b {
	case tea.MouseButtonWheelUp:
		return input.ScrollDelta{Lines: true, Y: 1}
	case tea.MouseButtonWheelDown:
		return input.ScrollDelta{Lines: true, Y: -1}
	case tea.MouseButtonWheelLeft:
		return input.ScrollDelta{Lines: true, X: 1}
	default:
		return input.ScrollDelta{Lines: true, X: -1}
	}
}

func mouseModifiers(msg tea.MouseMsg) input.Modifiers {
	var m input.Modifiers
	if msg.Shift {
		m |= input.ModShift
	}
	if msg.Alt {
		m |= input.ModAlt
	}
	if msg.Ctrl {
		m |= input.ModControl
	}
	return m
}
