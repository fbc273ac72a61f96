package widgets

import (
	"image/color"
	"unicode/utf8"

	"github.com/go-drift/wincore/pkg/core"
	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/input"
	"github.com/go-drift/wincore/pkg/theme"
)

// Button is a focusable, clickable label.
//
// A click is a left press followed by a left release inside the button.
// Keyboard activation (Enter on the default button, Escape on the escape
// button, or Space while focused) also clicks on release.
//
//	ok := widgets.NewButton("OK", func() { save() }).AsDefault()
type Button struct {
	core.WidgetBase
	// Label is the text displayed on the button.
	Label string
	// OnClick is called when the button is clicked.
	OnClick func()
	// Disabled buttons ignore input and refuse focus.
	Disabled bool
	// Default makes the button the confirm-key target once mounted.
	Default bool
	// Escape makes the button the cancel-key target once mounted.
	Escape bool

	pressed   bool
	hovered   bool
	activated bool
}

// CharWidth and LineHeight are the logical pixel metrics buttons measure
// labels with.
const (
	CharWidth  = 8
	LineHeight = 16
)

// NewButton returns a button with the given label and click handler.
func NewButton(label string, onClick func()) *Button {
	return &Button{Label: label, OnClick: onClick}
}

// AsDefault marks the button as the confirm-key target.
func (b *Button) AsDefault() *Button {
	b.Default = true
	return b
}

// AsEscape marks the button as the cancel-key target.
func (b *Button) AsEscape() *Button {
	b.Escape = true
	return b
}

// Pressed reports whether the button is currently held down.
func (b *Button) Pressed() bool {
	return b.pressed || b.activated
}

func (b *Button) Mounted(ctx *core.EventContext) {
	if b.Default {
		ctx.MakeDefault()
	}
	if b.Escape {
		ctx.MakeEscape()
	}
}

func (b *Button) Layout(available geometry.Constraints, ctx *core.LayoutContext) geometry.Size {
	scale := scaleOf(ctx.EventContext)
	chars := utf8.RuneCountInString(b.Label)
	want := geometry.Sz(
		geometry.Lpx((chars+2)*CharWidth).IntoUPx(scale),
		geometry.Lpx(LineHeight).IntoUPx(scale),
	)
	return available.FitMeasured(want)
}

func (b *Button) Redraw(ctx *core.GraphicsContext) {
	scheme := theme.LightColorScheme()
	if th := ctx.Theme(); th != nil {
		scheme = th.ColorScheme
	}
	background, foreground := scheme.Surface, scheme.OnSurface
	switch {
	case b.Disabled:
		foreground = scheme.Outline
	case b.Pressed():
		background, foreground = scheme.Primary, scheme.Surface
	case b.hovered:
		background = blend(scheme.Surface, scheme.Primary)
	}
	ctx.Fill(background)
	outline := scheme.Outline
	if ctx.IsFocused() || (b.Default && !b.Disabled) {
		outline = scheme.Primary
	}
	ctx.StrokeRect(geometry.RectFromSize(ctx.Size()), outline)

	scale := scaleOf(ctx.EventContext)
	ctx.DrawText(b.Label, geometry.Pt(geometry.Lpx(CharWidth).IntoPx(scale), 0), foreground)
}

func (b *Button) HitTest(geometry.Point, *core.EventContext) bool {
	return !b.Disabled
}

func (b *Button) Hover(_ geometry.Point, ctx *core.EventContext) {
	if !b.hovered {
		b.hovered = true
		ctx.SetNeedsRedraw()
	}
}

func (b *Button) Unhover(ctx *core.EventContext) {
	b.hovered = false
	ctx.SetNeedsRedraw()
}

func (b *Button) AcceptFocus(*core.EventContext) bool {
	return !b.Disabled
}

func (b *Button) Focus(ctx *core.EventContext) { ctx.SetNeedsRedraw() }

func (b *Button) Blur(ctx *core.EventContext) { ctx.SetNeedsRedraw() }

func (b *Button) Activate(ctx *core.EventContext) {
	if b.Disabled {
		return
	}
	b.activated = true
	ctx.SetNeedsRedraw()
}

func (b *Button) Deactivate(ctx *core.EventContext) {
	if !b.activated {
		return
	}
	b.activated = false
	ctx.SetNeedsRedraw()
	b.click()
}

func (b *Button) MouseDown(_ geometry.Point, _ input.DeviceID, button input.MouseButton, ctx *core.EventContext) core.EventHandling {
	if b.Disabled || button != input.MouseButtonLeft {
		return core.Ignored
	}
	b.pressed = true
	ctx.Focus()
	ctx.SetNeedsRedraw()
	return core.Handled
}

func (b *Button) MouseUp(location *geometry.Point, _ input.DeviceID, button input.MouseButton, ctx *core.EventContext) {
	if button != input.MouseButtonLeft || !b.pressed {
		return
	}
	b.pressed = false
	ctx.SetNeedsRedraw()
	if location == nil {
		return
	}
	if layout, ok := ctx.LastLayout(); ok && geometry.RectFromSize(layout.Size).Contains(*location) {
		b.click()
	}
}

func (b *Button) KeyboardInput(_ input.DeviceID, event input.KeyEvent, _ bool, ctx *core.EventContext) core.EventHandling {
	if b.Disabled || !isSpace(event.Logical) {
		return core.Ignored
	}
	if event.State.IsPressed() {
		b.Activate(ctx)
	} else {
		b.Deactivate(ctx)
	}
	return core.Handled
}

func isSpace(k input.Key) bool {
	return k.Named == input.KeySpace || k.IsCharacter(" ")
}

func (b *Button) click() {
	if b.OnClick != nil {
		b.OnClick()
	}
}

func blend(a, b color.RGBA) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8((uint16(x)*3 + uint16(y)) / 4) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
