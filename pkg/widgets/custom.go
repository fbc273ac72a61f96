package widgets

import (
	"github.com/go-drift/wincore/pkg/core"
	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/input"
)

// Custom is a widget assembled from callbacks. Unset callbacks fall back to
// the core.WidgetBase behavior, except layout and redraw, which delegate to
// Child when present and otherwise fill the available space.
type Custom struct {
	Child *core.WidgetRef

	OnRedraw        func(ctx *core.GraphicsContext)
	OnLayout        func(available geometry.Constraints, ctx *core.LayoutContext) geometry.Size
	OnHitTest       func(location geometry.Point, ctx *core.EventContext) bool
	OnHover         func(location geometry.Point, ctx *core.EventContext)
	OnUnhover       func(ctx *core.EventContext)
	OnAcceptFocus   func(ctx *core.EventContext) bool
	OnFocus         func(ctx *core.EventContext)
	OnBlur          func(ctx *core.EventContext)
	OnActivate      func(ctx *core.EventContext)
	OnDeactivate    func(ctx *core.EventContext)
	OnMounted       func(ctx *core.EventContext)
	OnMouseDown     func(location geometry.Point, device input.DeviceID, button input.MouseButton, ctx *core.EventContext) core.EventHandling
	OnMouseDrag     func(location geometry.Point, device input.DeviceID, button input.MouseButton, ctx *core.EventContext)
	OnMouseUp       func(location *geometry.Point, device input.DeviceID, button input.MouseButton, ctx *core.EventContext)
	OnMouseWheel    func(device input.DeviceID, delta input.ScrollDelta, phase input.TouchPhase, ctx *core.EventContext) core.EventHandling
	OnKeyboardInput func(device input.DeviceID, event input.KeyEvent, synthetic bool, ctx *core.EventContext) core.EventHandling
	OnIME           func(ime input.Ime, ctx *core.EventContext) core.EventHandling

	base core.WidgetBase
}

// Wrapping returns a Custom delegating layout and painting to child.
func Wrapping(child core.Widget) *Custom {
	return &Custom{Child: refOf(child)}
}

func (c *Custom) Wraps() *core.WidgetRef {
	return c.Child
}

func (c *Custom) Redraw(ctx *core.GraphicsContext) {
	if c.OnRedraw != nil {
		c.OnRedraw(ctx)
		return
	}
	redrawChild(c.Child, ctx)
}

func (c *Custom) Layout(available geometry.Constraints, ctx *core.LayoutContext) geometry.Size {
	if c.OnLayout != nil {
		return c.OnLayout(available, ctx)
	}
	if size, ok := layoutChild(c.Child, available, geometry.Point{}, ctx); ok {
		return size
	}
	return available.Max()
}

func (c *Custom) HitTest(location geometry.Point, ctx *core.EventContext) bool {
	if c.OnHitTest != nil {
		return c.OnHitTest(location, ctx)
	}
	return c.base.HitTest(location, ctx)
}

func (c *Custom) Hover(location geometry.Point, ctx *core.EventContext) {
	if c.OnHover != nil {
		c.OnHover(location, ctx)
	}
}

func (c *Custom) Unhover(ctx *core.EventContext) {
	if c.OnUnhover != nil {
		c.OnUnhover(ctx)
	}
}

func (c *Custom) AcceptFocus(ctx *core.EventContext) bool {
	if c.OnAcceptFocus != nil {
		return c.OnAcceptFocus(ctx)
	}
	return c.base.AcceptFocus(ctx)
}

func (c *Custom) Focus(ctx *core.EventContext) {
	if c.OnFocus != nil {
		c.OnFocus(ctx)
	}
}

func (c *Custom) Blur(ctx *core.EventContext) {
	if c.OnBlur != nil {
		c.OnBlur(ctx)
	}
}

func (c *Custom) Activate(ctx *core.EventContext) {
	if c.OnActivate != nil {
		c.OnActivate(ctx)
	}
}

func (c *Custom) Deactivate(ctx *core.EventContext) {
	if c.OnDeactivate != nil {
		c.OnDeactivate(ctx)
	}
}

func (c *Custom) Mounted(ctx *core.EventContext) {
	if c.OnMounted != nil {
		c.OnMounted(ctx)
	}
}

func (c *Custom) MouseDown(location geometry.Point, device input.DeviceID, button input.MouseButton, ctx *core.EventContext) core.EventHandling {
	if c.OnMouseDown != nil {
		return c.OnMouseDown(location, device, button, ctx)
	}
	return c.base.MouseDown(location, device, button, ctx)
}

func (c *Custom) MouseDrag(location geometry.Point, device input.DeviceID, button input.MouseButton, ctx *core.EventContext) {
	if c.OnMouseDrag != nil {
		c.OnMouseDrag(location, device, button, ctx)
	}
}

func (c *Custom) MouseUp(location *geometry.Point, device input.DeviceID, button input.MouseButton, ctx *core.EventContext) {
	if c.OnMouseUp != nil {
		c.OnMouseUp(location, device, button, ctx)
	}
}

func (c *Custom) MouseWheel(device input.DeviceID, delta input.ScrollDelta, phase input.TouchPhase, ctx *core.EventContext) core.EventHandling {
	if c.OnMouseWheel != nil {
		return c.OnMouseWheel(device, delta, phase, ctx)
	}
	return c.base.MouseWheel(device, delta, phase, ctx)
}

func (c *Custom) KeyboardInput(device input.DeviceID, event input.KeyEvent, synthetic bool, ctx *core.EventContext) core.EventHandling {
	if c.OnKeyboardInput != nil {
		return c.OnKeyboardInput(device, event, synthetic, ctx)
	}
	return c.base.KeyboardInput(device, event, synthetic, ctx)
}

func (c *Custom) IME(ime input.Ime, ctx *core.EventContext) core.EventHandling {
	if c.OnIME != nil {
		return c.OnIME(ime, ctx)
	}
	return c.base.IME(ime, ctx)
}
