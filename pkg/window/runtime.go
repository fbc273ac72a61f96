package window

import (
	"github.com/go-drift/wincore/pkg/core"
	"github.com/go-drift/wincore/pkg/errors"
	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/input"
	"github.com/go-drift/wincore/pkg/theme"
	"github.com/go-drift/wincore/pkg/value"
)

// Command is a request delivered to the runtime from outside the event
// loop.
type Command int

const (
	// CommandRedraw asks for another frame.
	CommandRedraw Command = iota
)

// mouseState tracks the cursor and the widgets capturing pressed buttons.
type mouseState struct {
	location *geometry.Point
	widget   *core.ManagedWidget
	devices  map[input.DeviceID]map[input.MouseButton]*core.ManagedWidget
}

// Runtime is an open window. The host calls its methods from a single
// goroutine, once per OS event or frame.
type Runtime struct {
	host     Host
	behavior Behavior
	window   *RunningWindow
	tree     *core.Tree
	root     *core.ManagedWidget

	themeReader *value.Reader[theme.ThemePair]
	theme       theme.ThemeData

	mouse             mouseState
	keyboardActivated *core.ManagedWidget
	initialFrame      bool
	shouldClose       bool

	minInnerSize *geometry.Size
	maxInnerSize *geometry.Size

	trace *FrameTraceBuffer
}

type runtimeOptions struct {
	host      Host
	behavior  Behavior
	window    *RunningWindow
	theme     *value.Dynamic[theme.ThemePair]
	traceSize int
}

func newRuntime(opts runtimeOptions) *Runtime {
	reader := opts.theme.Reader()
	r := &Runtime{
		host:         opts.host,
		behavior:     opts.behavior,
		window:       opts.window,
		tree:         core.NewTree(),
		themeReader:  reader,
		theme:        reader.Get().Current(),
		initialFrame: true,
		mouse: mouseState{
			devices: make(map[input.DeviceID]map[input.MouseButton]*core.ManagedWidget),
		},
	}
	if opts.traceSize > 0 {
		r.trace = NewFrameTraceBuffer(opts.traceSize, 0)
	}
	r.root = r.tree.Push(opts.behavior.MakeRoot(), nil)
	return r
}

// Tree returns the widget tree.
func (r *Runtime) Tree() *core.Tree {
	return r.tree
}

// Root returns the root widget.
func (r *Runtime) Root() *core.ManagedWidget {
	return r.root
}

// Window returns the running window.
func (r *Runtime) Window() *RunningWindow {
	return r.window
}

// Theme returns the theme used for the current frame.
func (r *Runtime) Theme() theme.ThemeData {
	return r.theme
}

// ShouldClose reports whether the window accepted a close shortcut.
func (r *Runtime) ShouldClose() bool {
	return r.shouldClose
}

// MinInnerSize returns the minimum size last pushed to the host.
func (r *Runtime) MinInnerSize() (geometry.Size, bool) {
	if r.minInnerSize == nil {
		return geometry.Size{}, false
	}
	return *r.minInnerSize, true
}

// MaxInnerSize returns the maximum size computed for the window. It is only
// pushed to resizable hosts.
func (r *Runtime) MaxInnerSize() (geometry.Size, bool) {
	if r.maxInnerSize == nil {
		return geometry.Size{}, false
	}
	return *r.maxInnerSize, true
}

// Captured returns the widget capturing button on device.
func (r *Runtime) Captured(device input.DeviceID, button input.MouseButton) (core.WidgetID, bool) {
	w, ok := r.mouse.devices[device][button]
	if !ok {
		return 0, false
	}
	return w.ID(), true
}

// CapturingDevices returns the number of devices with a pressed button.
func (r *Runtime) CapturingDevices() int {
	return len(r.mouse.devices)
}

// CursorLocation returns the last known cursor position.
func (r *Runtime) CursorLocation() (geometry.Point, bool) {
	if r.mouse.location == nil {
		return geometry.Point{}, false
	}
	return *r.mouse.location, true
}

// FrameTrace returns the frame trace buffer, or nil when tracing is off.
func (r *Runtime) FrameTrace() *FrameTraceBuffer {
	return r.trace
}

// Render finishes a frame. It reports false once the window should close.
func (r *Runtime) Render() bool {
	return !r.shouldClose
}

// FocusChanged records the host's focus state.
func (r *Runtime) FocusChanged() {
	r.window.focused.Update(r.host.Focused())
}

// OcclusionChanged records the host's occlusion state.
func (r *Runtime) OcclusionChanged() {
	r.window.occluded.Update(r.host.Occluded())
}

// CloseRequested asks the behavior whether the window may close.
func (r *Runtime) CloseRequested() bool {
	return r.behavior.CloseRequested(r.window)
}

// HandleCommand applies a command sent to the window.
func (r *Runtime) HandleCommand(cmd Command) {
	switch cmd {
	case CommandRedraw:
		r.host.SetNeedsRedraw()
	}
}

func (r *Runtime) context(w *core.ManagedWidget) *core.EventContext {
	return core.NewEventContext(w, r.window, &r.theme)
}

// recoverCallback reports a panic raised inside a runtime callback. Outside
// debug mode the panic is raised again.
func (r *Runtime) recoverCallback(op string) {
	rec := recover()
	if errors.Recovered(op, rec) == nil {
		return
	}
	if !core.DebugMode {
		panic(rec)
	}
	r.host.SetNeedsRedraw()
}

func reportHostError(op string, err error) {
	errors.Report(&errors.WindowError{
		Op:   op,
		Kind: errors.KindHost,
		Err:  err,
	})
}
