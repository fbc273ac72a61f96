package window

import (
	"maps"
	"slices"

	"github.com/go-drift/wincore/pkg/core"
	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/input"
)

// CursorMoved records the cursor position. While device has pressed
// buttons, each capturing widget receives a drag and hover is left alone.
// Otherwise the topmost widget under the cursor that passes its hit test
// becomes hovered.
func (r *Runtime) CursorMoved(device input.DeviceID, position geometry.Point) {
	defer r.recoverCallback("window.CursorMoved")

	r.mouse.location = &position
	ctx := r.context(r.root)
	defer ctx.ApplyPendingState()

	if buttons, ok := r.mouse.devices[device]; ok {
		for _, button := range slices.Sorted(maps.Keys(buttons)) {
			handler := buttons[button]
			layout, ok := handler.LastLayout()
			if !ok {
				continue
			}
			ctx.ForOther(handler).MouseDrag(position.Sub(layout.Origin), device, button)
		}
		return
	}

	r.mouse.widget = nil
	for w := range r.tree.WidgetsAtPoint(position) {
		layout, _ := w.LastLayout()
		relative := position.Sub(layout.Origin)
		target := ctx.ForOther(w)
		if target.HitTest(relative) {
			r.mouse.widget = w
			target.Hover(relative)
			break
		}
	}
	if r.mouse.widget == nil {
		ctx.ClearHover()
	}
}

// CursorLeft clears hover when the cursor leaves the window.
func (r *Runtime) CursorLeft(device input.DeviceID) {
	defer r.recoverCallback("window.CursorLeft")

	if r.mouse.widget == nil {
		return
	}
	r.mouse.widget = nil
	ctx := r.context(r.root)
	ctx.ClearHover()
	ctx.ApplyPendingState()
}

// MouseInput handles a button press or release. A press clears focus and
// is offered to the hovered widget and its ancestors; the widget that
// handles it captures the button until release. A release always goes to
// the capturing widget, wherever the cursor is.
func (r *Runtime) MouseInput(device input.DeviceID, state input.ElementState, button input.MouseButton) {
	defer r.recoverCallback("window.MouseInput")

	ctx := r.context(r.root)
	defer ctx.ApplyPendingState()

	if state.IsPressed() {
		ctx.ClearFocus()
		ctx.ApplyPendingState()

		if r.mouse.location == nil || r.mouse.widget == nil {
			return
		}
		location := *r.mouse.location
		handler := handleEvent(ctx.ForOther(r.mouse.widget), func(c *core.EventContext) core.EventHandling {
			layout, ok := c.LastLayout()
			if !ok {
				return core.Ignored
			}
			return c.MouseDown(location.Sub(layout.Origin), device, button)
		})
		if handler == nil {
			return
		}
		buttons, ok := r.mouse.devices[device]
		if !ok {
			buttons = make(map[input.MouseButton]*core.ManagedWidget)
			r.mouse.devices[device] = buttons
		}
		buttons[button] = handler
		return
	}

	buttons, ok := r.mouse.devices[device]
	if !ok {
		return
	}
	handler, ok := buttons[button]
	if !ok {
		return
	}
	delete(buttons, button)
	if len(buttons) == 0 {
		delete(r.mouse.devices, device)
	}

	var relative *geometry.Point
	if layout, ok := handler.LastLayout(); ok && r.mouse.location != nil {
		offset := r.mouse.location.Sub(layout.Origin)
		relative = &offset
	}
	ctx.ForOther(handler).MouseUp(relative, device, button)
}

// MouseWheel delivers a scroll to the hovered widget, falling back to the
// root.
func (r *Runtime) MouseWheel(device input.DeviceID, delta input.ScrollDelta, phase input.TouchPhase) {
	defer r.recoverCallback("window.MouseWheel")

	target := r.root
	if r.mouse.widget != nil {
		target = r.mouse.widget
	}
	ctx := r.context(target)
	handleEvent(ctx, func(c *core.EventContext) core.EventHandling {
		return c.MouseWheel(device, delta, phase)
	})
	ctx.ApplyPendingState()
}
