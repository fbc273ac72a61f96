package window

import (
	"log/slog"

	"github.com/go-drift/wincore/pkg/core"
	"github.com/go-drift/wincore/pkg/errors"
	"github.com/go-drift/wincore/pkg/input"
)

// focusedOrRoot returns the focused widget, falling back to the root.
func (r *Runtime) focusedOrRoot() *core.ManagedWidget {
	if id, ok := r.tree.FocusedWidget(); ok {
		if w, ok := r.tree.Widget(id); ok {
			return w
		}
	}
	return r.root
}

// KeyboardInput routes a key event from the focused widget towards the
// root. Keys nobody handles drive the built-in shortcuts: primary+W
// closes, Tab and Shift+Tab move focus, Enter and Escape activate the
// default and escape widgets.
func (r *Runtime) KeyboardInput(device input.DeviceID, event input.KeyEvent, synthetic bool) {
	defer r.recoverCallback("window.KeyboardInput")

	ctx := r.context(r.focusedOrRoot())
	handled := handleEvent(ctx, func(c *core.EventContext) core.EventHandling {
		return c.KeyboardInput(device, event, synthetic)
	})
	ctx.ApplyPendingState()
	if handled != nil {
		return
	}

	modifiers := r.host.Modifiers()
	switch {
	case event.Logical.IsCharacter("w") && modifiers.Primary():
		if event.State.IsPressed() && r.behavior.CloseRequested(r.window) {
			r.shouldClose = true
			r.host.SetNeedsRedraw()
		}
	case event.Logical.Named == input.KeyTab && !modifiers.PossibleShortcut():
		if event.State.IsPressed() {
			target := r.context(r.focusedOrRoot())
			order := target.QueryVisualOrder()
			if modifiers.Shift() {
				order = order.Rev()
			}
			target.AdvanceFocus(order)
			target.ApplyPendingState()
		}
	case event.Logical.Named == input.KeyEnter:
		r.keyboardActivate(r.tree.DefaultWidget, event)
	case event.Logical.Named == input.KeyEscape:
		r.keyboardActivate(r.tree.EscapeWidget, event)
	default:
		logger().Debug("ignored keyboard input",
			slog.String("key", event.Logical.String()),
			slog.String("state", event.State.String()),
			slog.Uint64("device", uint64(device)),
		)
	}
}

// keyboardActivate activates the widget in slot on press and deactivates
// it on release. Only one widget is keyboard-activated at a time.
func (r *Runtime) keyboardActivate(slot func() (core.WidgetID, bool), event input.KeyEvent) {
	ctx := r.context(r.root)
	defer ctx.ApplyPendingState()

	if !event.State.IsPressed() {
		if previous := r.keyboardActivated; previous != nil {
			r.keyboardActivated = nil
			ctx.ForOther(previous).Deactivate()
		}
		return
	}

	id, ok := slot()
	if !ok {
		return
	}
	target, ok := r.tree.Widget(id)
	if !ok {
		errors.ReportMissingTarget("window.KeyboardInput", uint64(id))
		return
	}
	if event.Repeat && target.Is(r.keyboardActivated) {
		return
	}
	if previous := r.keyboardActivated; previous != nil {
		r.keyboardActivated = nil
		ctx.ForOther(previous).Deactivate()
	}
	ctx.ForOther(target).Activate()
	r.keyboardActivated = target
}

// IME delivers an input-method event to the focused widget, falling back
// to the root.
func (r *Runtime) IME(ime input.Ime) {
	defer r.recoverCallback("window.IME")

	ctx := r.context(r.focusedOrRoot())
	handleEvent(ctx, func(c *core.EventContext) core.EventHandling {
		return c.IME(ime)
	})
	ctx.ApplyPendingState()
}
