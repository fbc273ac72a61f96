package core

import (
	"image/color"

	"github.com/go-drift/wincore/pkg/focus"
	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/input"
	"github.com/go-drift/wincore/pkg/theme"
)

// Window is the part of the running window that widgets may use.
type Window interface {
	// SetNeedsRedraw schedules another frame.
	SetNeedsRedraw()
	// Modifiers returns the keyboard modifiers currently held.
	Modifiers() input.Modifiers
	// Scale returns the physical pixels per logical pixel.
	Scale() float32
}

// Canvas is the drawing surface a frame is painted into. Coordinates are
// window pixels.
type Canvas interface {
	FillRect(rect geometry.Rect, c color.Color)
	StrokeRect(rect geometry.Rect, c color.Color)
	DrawText(text string, origin geometry.Point, c color.Color)
	PushClip(rect geometry.Rect)
	PopClip()
}

type pendingFocusKind uint8

const (
	pendingNone pendingFocusKind = iota
	pendingFocus
	pendingClear
	pendingAdvance
)

// maxPendingRounds bounds how many times focus hooks may requeue focus
// changes while pending state is applied.
const maxPendingRounds = 8

// pendingState collects focus requests made while handlers run. The last
// request wins.
type pendingState struct {
	kind   pendingFocusKind
	target WidgetID
	order  focus.VisualOrder
}

func (p *pendingState) take() pendingState {
	taken := *p
	*p = pendingState{}
	return taken
}

// EventContext is passed to widget handlers. It identifies the current
// widget and gives access to the tree and the window.
type EventContext struct {
	current *ManagedWidget
	window  Window
	theme   *theme.ThemeData
	pending *pendingState
}

// NewEventContext returns a context targeting current.
func NewEventContext(current *ManagedWidget, window Window, th *theme.ThemeData) *EventContext {
	return &EventContext{
		current: current,
		window:  window,
		theme:   th,
		pending: &pendingState{},
	}
}

// ForOther returns a context for another widget that shares this context's
// window, theme and pending state.
func (c *EventContext) ForOther(w *ManagedWidget) *EventContext {
	return &EventContext{
		current: w,
		window:  c.window,
		theme:   c.theme,
		pending: c.pending,
	}
}

// Widget returns the current widget.
func (c *EventContext) Widget() *ManagedWidget {
	return c.current
}

// Tree returns the tree of the current widget.
func (c *EventContext) Tree() *Tree {
	return c.current.tree
}

// Parent returns a context for the current widget's parent.
func (c *EventContext) Parent() (*EventContext, bool) {
	parent, ok := c.current.Parent()
	if !ok {
		return nil, false
	}
	return c.ForOther(parent), true
}

// LastLayout returns the current widget's rectangle in window coordinates.
func (c *EventContext) LastLayout() (geometry.Rect, bool) {
	return c.current.LastLayout()
}

// Theme returns the resolved theme for this frame.
func (c *EventContext) Theme() *theme.ThemeData {
	return c.theme
}

// Window returns the running window.
func (c *EventContext) Window() Window {
	return c.window
}

// SetNeedsRedraw schedules another frame.
func (c *EventContext) SetNeedsRedraw() {
	if c.window != nil {
		c.window.SetNeedsRedraw()
	}
}

// Modifiers returns the keyboard modifiers currently held.
func (c *EventContext) Modifiers() input.Modifiers {
	if c.window == nil {
		return 0
	}
	return c.window.Modifiers()
}

// IsFocused reports whether the current widget has keyboard focus.
func (c *EventContext) IsFocused() bool {
	id, ok := c.current.tree.FocusedWidget()
	return ok && id == c.current.ID()
}

// IsHovered reports whether the current widget is on the hover chain.
func (c *EventContext) IsHovered() bool {
	id, ok := c.current.tree.HoveredWidget()
	return ok && c.current.tree.isDescendant(id, c.current.ID())
}

// IsDefault reports whether the current widget is the confirm-key target.
func (c *EventContext) IsDefault() bool {
	id, ok := c.current.tree.DefaultWidget()
	return ok && id == c.current.ID()
}

// IsEscape reports whether the current widget is the cancel-key target.
func (c *EventContext) IsEscape() bool {
	id, ok := c.current.tree.EscapeWidget()
	return ok && id == c.current.ID()
}

// MakeDefault makes the current widget the confirm-key target.
func (c *EventContext) MakeDefault() {
	c.current.tree.SetDefaultWidget(c.current.ID())
}

// MakeEscape makes the current widget the cancel-key target.
func (c *EventContext) MakeEscape() {
	c.current.tree.SetEscapeWidget(c.current.ID())
}

// Focus requests keyboard focus for the current widget. The change is
// applied once the current dispatch finishes.
func (c *EventContext) Focus() {
	c.pending.kind = pendingFocus
	c.pending.target = c.current.ID()
}

// ClearFocus requests that no widget has focus.
func (c *EventContext) ClearFocus() {
	c.pending.kind = pendingClear
	c.pending.target = 0
}

// AdvanceFocus requests that focus moves to the next focusable widget in
// order.
func (c *EventContext) AdvanceFocus(order focus.VisualOrder) {
	c.pending.kind = pendingAdvance
	c.pending.order = order
}

// QueryVisualOrder returns the focus order that applies to the current
// widget: the nearest VisualOrderer among it and its ancestors, or the
// default order.
func (c *EventContext) QueryVisualOrder() focus.VisualOrder {
	for w, ok := c.current, true; ok; w, ok = w.Parent() {
		if orderer, is := w.node.widget.(VisualOrderer); is {
			return orderer.VisualOrder()
		}
	}
	return focus.DefaultVisualOrder()
}

// Hover makes the current widget the hovered widget. location is relative
// to the current widget. Widgets leaving the hover chain are unhovered;
// widgets joining it, and the current widget, receive Hover.
func (c *EventContext) Hover(location geometry.Point) {
	origin := c.origin(c.current)
	absolute := origin.Add(location)
	changes := c.current.tree.setHovered(c.current.ID())
	for _, w := range changes.Unhovered {
		c.ForOther(w).callUnhover()
	}
	for _, w := range changes.Hovered {
		if w.Is(c.current) {
			continue
		}
		c.ForOther(w).callHover(absolute.Sub(c.origin(w)))
	}
	c.callHover(location)
}

// ClearHover unhovers every widget on the hover chain.
func (c *EventContext) ClearHover() {
	changes := c.current.tree.setHovered(0)
	for _, w := range changes.Unhovered {
		c.ForOther(w).callUnhover()
	}
}

func (c *EventContext) origin(w *ManagedWidget) geometry.Point {
	layout, _ := w.LastLayout()
	return layout.Origin
}

// HitTest locks the current widget and calls its HitTest.
func (c *EventContext) HitTest(location geometry.Point) bool {
	guard := c.current.Lock()
	defer guard.Unlock()
	return guard.Widget().HitTest(location, c)
}

// AcceptFocus locks the current widget and calls its AcceptFocus.
func (c *EventContext) AcceptFocus() bool {
	guard := c.current.Lock()
	defer guard.Unlock()
	return guard.Widget().AcceptFocus(c)
}

// Activate locks the current widget and calls its Activate.
func (c *EventContext) Activate() {
	guard := c.current.Lock()
	defer guard.Unlock()
	guard.Widget().Activate(c)
}

// Deactivate locks the current widget and calls its Deactivate.
func (c *EventContext) Deactivate() {
	guard := c.current.Lock()
	defer guard.Unlock()
	guard.Widget().Deactivate(c)
}

// Mounted locks the current widget and calls its Mounted hook.
func (c *EventContext) Mounted() {
	guard := c.current.Lock()
	defer guard.Unlock()
	guard.Widget().Mounted(c)
}

// MouseDown locks the current widget and calls its MouseDown.
func (c *EventContext) MouseDown(location geometry.Point, device input.DeviceID, button input.MouseButton) EventHandling {
	guard := c.current.Lock()
	defer guard.Unlock()
	return guard.Widget().MouseDown(location, device, button, c)
}

// MouseDrag locks the current widget and calls its MouseDrag.
func (c *EventContext) MouseDrag(location geometry.Point, device input.DeviceID, button input.MouseButton) {
	guard := c.current.Lock()
	defer guard.Unlock()
	guard.Widget().MouseDrag(location, device, button, c)
}

// MouseUp locks the current widget and calls its MouseUp.
func (c *EventContext) MouseUp(location *geometry.Point, device input.DeviceID, button input.MouseButton) {
	guard := c.current.Lock()
	defer guard.Unlock()
	guard.Widget().MouseUp(location, device, button, c)
}

// MouseWheel locks the current widget and calls its MouseWheel.
func (c *EventContext) MouseWheel(device input.DeviceID, delta input.ScrollDelta, phase input.TouchPhase) EventHandling {
	guard := c.current.Lock()
	defer guard.Unlock()
	return guard.Widget().MouseWheel(device, delta, phase, c)
}

// KeyboardInput locks the current widget and calls its KeyboardInput.
func (c *EventContext) KeyboardInput(device input.DeviceID, event input.KeyEvent, synthetic bool) EventHandling {
	guard := c.current.Lock()
	defer guard.Unlock()
	return guard.Widget().KeyboardInput(device, event, synthetic, c)
}

// IME locks the current widget and calls its IME.
func (c *EventContext) IME(ime input.Ime) EventHandling {
	guard := c.current.Lock()
	defer guard.Unlock()
	return guard.Widget().IME(ime, c)
}

func (c *EventContext) callHover(location geometry.Point) {
	guard := c.current.Lock()
	defer guard.Unlock()
	guard.Widget().Hover(location, c)
}

func (c *EventContext) callUnhover() {
	guard := c.current.Lock()
	defer guard.Unlock()
	guard.Widget().Unhover(c)
}

func (c *EventContext) callFocus() {
	guard := c.current.Lock()
	defer guard.Unlock()
	guard.Widget().Focus(c)
}

func (c *EventContext) callBlur() {
	guard := c.current.Lock()
	defer guard.Unlock()
	guard.Widget().Blur(c)
}

// ApplyPendingState applies the focus requests queued during dispatch.
// Focus and Blur hooks may queue further requests; those are applied too,
// up to a fixed number of rounds.
func (c *EventContext) ApplyPendingState() {
	tree := c.current.tree
	for range maxPendingRounds {
		request := c.pending.take()
		if request.kind == pendingNone {
			return
		}

		previous, hadPrevious := tree.FocusedWidget()
		next, hasNext := previous, hadPrevious
		switch request.kind {
		case pendingFocus:
			if target, ok := c.resolveFocusTarget(request.target); ok {
				next, hasNext = target, true
			}
		case pendingClear:
			next, hasNext = 0, false
		case pendingAdvance:
			if target, ok := focus.Next(c.focusCandidates(0), previous, hadPrevious, request.order); ok {
				next, hasNext = target, true
			}
		}

		if hasNext == hadPrevious && next == previous {
			continue
		}
		tree.setFocused(next)
		if hadPrevious {
			if w, ok := tree.Widget(previous); ok {
				c.ForOther(w).callBlur()
			}
		}
		if hasNext {
			if w, ok := tree.Widget(next); ok {
				c.ForOther(w).callFocus()
			}
		}
	}
}

// resolveFocusTarget returns id when it accepts focus, otherwise the first
// focusable widget beneath it.
func (c *EventContext) resolveFocusTarget(id WidgetID) (WidgetID, bool) {
	w, ok := c.current.tree.Widget(id)
	if !ok {
		return 0, false
	}
	other := c.ForOther(w)
	if other.AcceptFocus() {
		return id, true
	}
	return focus.First(c.focusCandidates(id), other.QueryVisualOrder())
}

// focusCandidates lists widgets that accept focus, positioned by their last
// layout. Widgets that were never painted sit at the origin. A non-zero
// within restricts the search to that subtree.
func (c *EventContext) focusCandidates(within WidgetID) []focus.Candidate[WidgetID] {
	tree := c.current.tree
	var candidates []focus.Candidate[WidgetID]
	tree.Walk(func(w *ManagedWidget) {
		if within != 0 && !tree.isDescendant(w.ID(), within) {
			return
		}
		if w.IsLocked() {
			return
		}
		layout, _ := w.LastLayout()
		if c.ForOther(w).AcceptFocus() {
			candidates = append(candidates, focus.Candidate[WidgetID]{Key: w.ID(), Rect: layout})
		}
	})
	return candidates
}

// LayoutContext is passed to Widget.Layout.
type LayoutContext struct {
	*EventContext
}

// NewLayoutContext returns a layout context for the widget targeted by ctx.
func NewLayoutContext(ctx *EventContext) *LayoutContext {
	return &LayoutContext{EventContext: ctx}
}

// ForOther returns a layout context for another widget.
func (c *LayoutContext) ForOther(w *ManagedWidget) *LayoutContext {
	return &LayoutContext{EventContext: c.EventContext.ForOther(w)}
}

// Layout locks the current widget and asks it for its size.
func (c *LayoutContext) Layout(available geometry.Constraints) geometry.Size {
	guard := c.current.Lock()
	defer guard.Unlock()
	return guard.Widget().Layout(available, c)
}

// SetChildLayout places child relative to the current widget's origin.
func (c *LayoutContext) SetChildLayout(child *ManagedWidget, rect geometry.Rect) {
	child.node.childLayout = rect
	child.node.hasChildLayout = true
}

// GraphicsContext is passed to Widget.Redraw. Drawing coordinates are
// relative to the current widget's region.
type GraphicsContext struct {
	*EventContext
	canvas Canvas
	region geometry.Rect
}

// NewGraphicsContext returns a graphics context painting the widget
// targeted by ctx into region of canvas.
func NewGraphicsContext(ctx *EventContext, canvas Canvas, region geometry.Rect) *GraphicsContext {
	return &GraphicsContext{EventContext: ctx, canvas: canvas, region: region}
}

// Region returns the area being painted, in window coordinates.
func (g *GraphicsContext) Region() geometry.Rect {
	return g.region
}

// Size returns the size of the area being painted.
func (g *GraphicsContext) Size() geometry.Size {
	return g.region.Size
}

// Redraw records the current widget in the render order, stores its
// layout and paints it.
func (g *GraphicsContext) Redraw() {
	g.current.tree.RecordVisit(g.current.ID())
	g.current.SetLayout(g.region)
	g.canvas.PushClip(g.region)
	defer g.canvas.PopClip()

	guard := g.current.Lock()
	defer guard.Unlock()
	guard.Widget().Redraw(g)
}

// RedrawChild paints child at the rectangle its parent assigned during
// layout. Children that were not laid out are skipped.
func (g *GraphicsContext) RedrawChild(child *ManagedWidget) {
	if !child.node.hasChildLayout {
		return
	}
	region := child.node.childLayout.Translate(g.region.Origin)
	g.ForOther(child, region).Redraw()
}

// ForOther returns a graphics context painting w into region.
func (g *GraphicsContext) ForOther(w *ManagedWidget, region geometry.Rect) *GraphicsContext {
	return &GraphicsContext{EventContext: g.EventContext.ForOther(w), canvas: g.canvas, region: region}
}

// ClippedTo returns a context for the current widget restricted to rect,
// relative to the current region.
func (g *GraphicsContext) ClippedTo(rect geometry.Rect) *GraphicsContext {
	clipped := rect.Translate(g.region.Origin).Intersect(g.region)
	return &GraphicsContext{EventContext: g.EventContext, canvas: g.canvas, region: clipped}
}

// Fill paints the whole region.
func (g *GraphicsContext) Fill(c color.Color) {
	g.canvas.FillRect(g.region, c)
}

// FillRect paints rect, relative to the region.
func (g *GraphicsContext) FillRect(rect geometry.Rect, c color.Color) {
	g.canvas.FillRect(rect.Translate(g.region.Origin), c)
}

// StrokeRect outlines rect, relative to the region.
func (g *GraphicsContext) StrokeRect(rect geometry.Rect, c color.Color) {
	g.canvas.StrokeRect(rect.Translate(g.region.Origin), c)
}

// DrawText draws text with its top-left corner at origin, relative to the
// region.
func (g *GraphicsContext) DrawText(text string, origin geometry.Point, c color.Color) {
	g.canvas.DrawText(text, origin.Add(g.region.Origin), c)
}
