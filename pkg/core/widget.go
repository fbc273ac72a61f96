package core

import (
	"strconv"

	"github.com/go-drift/wincore/pkg/focus"
	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/input"
)

// WidgetID identifies a node within one Tree. Zero is never allocated.
type WidgetID uint64

func (id WidgetID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// EventHandling is the result of an event handler.
type EventHandling bool

const (
	// Handled stops propagation; the widget consumed the event.
	Handled EventHandling = true
	// Ignored lets the event bubble to the parent.
	Ignored EventHandling = false
)

// Widget is the capability set the runtime requires from every widget.
// Locations passed to handlers are relative to the widget's own layout
// origin.
type Widget interface {
	// Redraw paints the widget into ctx.
	Redraw(ctx *GraphicsContext)
	// Layout returns the size the widget wants within available.
	Layout(available geometry.Constraints, ctx *LayoutContext) geometry.Size

	// HitTest reports whether location is over an interactive part of the
	// widget.
	HitTest(location geometry.Point, ctx *EventContext) bool
	// Hover is called when the cursor moves over the widget.
	Hover(location geometry.Point, ctx *EventContext)
	// Unhover is called when the widget stops being hovered.
	Unhover(ctx *EventContext)

	// AcceptFocus reports whether the widget can take keyboard focus.
	AcceptFocus(ctx *EventContext) bool
	Focus(ctx *EventContext)
	Blur(ctx *EventContext)

	// Activate and Deactivate bracket a keyboard activation, e.g. Enter on
	// the default widget.
	Activate(ctx *EventContext)
	Deactivate(ctx *EventContext)

	// Mounted is called once, on the first frame the window lays out. The
	// runtime calls it on every node in tree order, so containers must not
	// forward it to their children.
	Mounted(ctx *EventContext)

	MouseDown(location geometry.Point, device input.DeviceID, button input.MouseButton, ctx *EventContext) EventHandling
	MouseDrag(location geometry.Point, device input.DeviceID, button input.MouseButton, ctx *EventContext)
	// MouseUp receives a nil location when the widget has no layout or the
	// cursor position is unknown.
	MouseUp(location *geometry.Point, device input.DeviceID, button input.MouseButton, ctx *EventContext)
	MouseWheel(device input.DeviceID, delta input.ScrollDelta, phase input.TouchPhase, ctx *EventContext) EventHandling
	KeyboardInput(device input.DeviceID, event input.KeyEvent, synthetic bool, ctx *EventContext) EventHandling
	IME(ime input.Ime, ctx *EventContext) EventHandling
}

// WidgetBase provides default Widget behavior: not hit-testable, not
// focusable, and every event Ignored. Embedders supply Redraw and Layout.
type WidgetBase struct{}

func (WidgetBase) HitTest(geometry.Point, *EventContext) bool { return false }
func (WidgetBase) Hover(geometry.Point, *EventContext)        {}
func (WidgetBase) Unhover(*EventContext)                      {}
func (WidgetBase) AcceptFocus(*EventContext) bool             { return false }
func (WidgetBase) Focus(*EventContext)                        {}
func (WidgetBase) Blur(*EventContext)                         {}
func (WidgetBase) Activate(*EventContext)                     {}
func (WidgetBase) Deactivate(*EventContext)                   {}
func (WidgetBase) Mounted(*EventContext)                      {}

func (WidgetBase) MouseDown(geometry.Point, input.DeviceID, input.MouseButton, *EventContext) EventHandling {
	return Ignored
}

func (WidgetBase) MouseDrag(geometry.Point, input.DeviceID, input.MouseButton, *EventContext) {}

func (WidgetBase) MouseUp(*geometry.Point, input.DeviceID, input.MouseButton, *EventContext) {}

func (WidgetBase) MouseWheel(input.DeviceID, input.ScrollDelta, input.TouchPhase, *EventContext) EventHandling {
	return Ignored
}

func (WidgetBase) KeyboardInput(input.DeviceID, input.KeyEvent, bool, *EventContext) EventHandling {
	return Ignored
}

func (WidgetBase) IME(input.Ime, *EventContext) EventHandling { return Ignored }

// Wrapper is implemented by widgets that delegate layout to a single inner
// widget. The window runtime follows Wraps until it returns nil.
type Wrapper interface {
	Wraps() *WidgetRef
}

// ChildVisitor is implemented by widgets that have children.
type ChildVisitor interface {
	// VisitChildren calls the visitor function for each child.
	VisitChildren(visitor func(*WidgetRef))
}

// ResizeLimiter is implemented by widgets that constrain their size. The
// window runtime turns the limits found along the root's wrap chain into
// OS window size limits.
type ResizeLimiter interface {
	ResizeLimits() (width, height geometry.DimensionRange)
}

// Expander is implemented by widgets that fill all available space. When
// one is on the root's wrap chain, the root is laid out with Known
// constraints.
type Expander interface {
	Expands() bool
}

// VisualOrderer is implemented by widgets that override the focus
// traversal order for themselves and their descendants.
type VisualOrderer interface {
	VisualOrder() focus.VisualOrder
}

// WidgetRef holds a child widget and, once the tree mounts it, its node.
type WidgetRef struct {
	widget  Widget
	mounted *ManagedWidget
}

// NewWidgetRef wraps w for use as a child.
func NewWidgetRef(w Widget) *WidgetRef {
	return &WidgetRef{widget: w}
}

// Widget returns the wrapped widget description.
func (r *WidgetRef) Widget() Widget {
	return r.widget
}

// Mounted returns the mounted node, if the tree has mounted this ref.
func (r *WidgetRef) Mounted() (*ManagedWidget, bool) {
	return r.mounted, r.mounted != nil
}
