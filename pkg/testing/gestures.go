package testing

import (
	"fmt"

	"github.com/go-drift/wincore/pkg/core"
	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/input"
)

// MoveTo moves the cursor to pos.
func (t *WindowTester) MoveTo(pos geometry.Point) {
	t.Runtime.CursorMoved(DefaultDevice, pos)
}

// Leave moves the cursor out of the window.
func (t *WindowTester) Leave() {
	t.Runtime.CursorLeft(DefaultDevice)
}

// Press presses button at the current cursor position.
func (t *WindowTester) Press(button input.MouseButton) {
	t.Runtime.MouseInput(DefaultDevice, input.Pressed, button)
}

// Release releases button.
func (t *WindowTester) Release(button input.MouseButton) {
	t.Runtime.MouseInput(DefaultDevice, input.Released, button)
}

// TapAt moves to pos and clicks the left button there.
func (t *WindowTester) TapAt(pos geometry.Point) {
	t.MoveTo(pos)
	t.Press(input.MouseButtonLeft)
	t.Release(input.MouseButtonLeft)
}

// Tap clicks the center of the first widget matched by finder.
func (t *WindowTester) Tap(finder Finder) error {
	center, err := t.centerOf(finder)
	if err != nil {
		return fmt.Errorf("Tap: %w", err)
	}
	t.TapAt(center)
	return nil
}

// DragFrom presses the left button at from, moves to to and releases.
func (t *WindowTester) DragFrom(from, to geometry.Point) {
	t.MoveTo(from)
	t.Press(input.MouseButtonLeft)
	t.MoveTo(to)
	t.Release(input.MouseButtonLeft)
}

// Scroll sends a line-based wheel event.
func (t *WindowTester) Scroll(dx, dy float32) {
	t.Runtime.MouseWheel(DefaultDevice, input.ScrollDelta{Lines: true, X: dx, Y: dy}, input.TouchPhaseMoved)
}

// KeyDown presses key.
func (t *WindowTester) KeyDown(key input.Key) {
	t.Runtime.KeyboardInput(DefaultDevice, input.KeyEvent{Logical: key, State: input.Pressed}, false)
}

// KeyUp releases key.
func (t *WindowTester) KeyUp(key input.Key) {
	t.Runtime.KeyboardInput(DefaultDevice, input.KeyEvent{Logical: key, State: input.Released}, false)
}

// TypeKey presses and releases key.
func (t *WindowTester) TypeKey(key input.Key) {
	t.KeyDown(key)
	t.KeyUp(key)
}

// Tab moves focus forward; with reverse it holds shift.
func (t *WindowTester) Tab(reverse bool) {
	if reverse {
		previous := t.Host.Modifiers()
		t.Host.SetModifiers(previous | input.ModShift)
		defer t.Host.SetModifiers(previous)
	}
	t.TypeKey(input.Named(input.KeyTab))
}

func (t *WindowTester) centerOf(finder Finder) (geometry.Point, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return geometry.Point{}, fmt.Errorf("finder matched no widgets: %s", finder.Description())
	}
	return Center(result.First())
}

// Center returns the center of w's last layout.
func Center(w *core.ManagedWidget) (geometry.Point, error) {
	layout, ok := w.LastLayout()
	if !ok {
		return geometry.Point{}, fmt.Errorf("widget %v has not been painted", w.ID())
	}
	return geometry.Pt(
		layout.Origin.X+layout.Size.Width.Signed()/2,
		layout.Origin.Y+layout.Size.Height.Signed()/2,
	), nil
}
