package testing

import (
	"testing"

	"github.com/go-drift/wincore/pkg/core"
	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/window"
)

const (
	// DefaultTestWidth is the default width of the test window.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test window.
	DefaultTestHeight = 600
	// DefaultDevice is the device id used for simulated pointer and key
	// input.
	DefaultDevice = 1
)

// WindowTester drives a window runtime against a FakeHost.
type WindowTester struct {
	Host    *FakeHost
	Runtime *window.Runtime
	// Canvas holds the operations of the most recent frame.
	Canvas *RecordingCanvas

	frames int
}

// NewWindowTester opens root in a resizable test window.
func NewWindowTester(root core.Widget) *WindowTester {
	return NewWindowTesterFor(window.ForWidget(root), NewFakeHost(geometry.Sz(DefaultTestWidth, DefaultTestHeight)))
}

// NewWindowTesterFor opens w on host.
func NewWindowTesterFor(w *window.Window, host *FakeHost) *WindowTester {
	return &WindowTester{
		Host:    host,
		Runtime: w.Open(host),
		Canvas:  &RecordingCanvas{},
	}
}

// NewWindowTesterWithT is like NewWindowTester and enables debug mode for
// the duration of the test.
func NewWindowTesterWithT(t *testing.T, root core.Widget) *WindowTester {
	t.Helper()
	previous := core.DebugMode
	core.SetDebugMode(true)
	t.Cleanup(func() { core.SetDebugMode(previous) })
	return NewWindowTester(root)
}

// Pump prepares and renders one frame. It reports false once the window
// wants to close.
func (t *WindowTester) Pump() bool {
	t.Canvas = &RecordingCanvas{}
	t.Runtime.Prepare(t.Canvas)
	t.frames++
	return t.Runtime.Render()
}

// Frames returns the number of frames pumped.
func (t *WindowTester) Frames() int {
	return t.frames
}

// Resize changes the host size and pumps a frame.
func (t *WindowTester) Resize(size geometry.Size) bool {
	t.Host.mu.Lock()
	t.Host.Size = size
	t.Host.mu.Unlock()
	return t.Pump()
}

// Tree returns the window's widget tree.
func (t *WindowTester) Tree() *core.Tree {
	return t.Runtime.Tree()
}

// Find evaluates finder against the tree.
func (t *WindowTester) Find(finder Finder) FinderResult {
	return FinderResult{widgets: finder.Evaluate(t.Tree()), finder: finder}
}

// Focused returns the focused widget, if any.
func (t *WindowTester) Focused() (*core.ManagedWidget, bool) {
	id, ok := t.Tree().FocusedWidget()
	if !ok {
		return nil, false
	}
	return t.Tree().Widget(id)
}

// Hovered returns the hovered widget, if any.
func (t *WindowTester) Hovered() (*core.ManagedWidget, bool) {
	id, ok := t.Tree().HoveredWidget()
	if !ok {
		return nil, false
	}
	return t.Tree().Widget(id)
}
