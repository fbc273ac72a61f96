package widgets

import (
	"image/color"

	"github.com/go-drift/wincore/pkg/core"
	"github.com/go-drift/wincore/pkg/geometry"
)

// Space is a solid rectangle. A zero Width or Height fills the available
// space on that axis. Focusable spaces take keyboard focus and draw an
// outline while focused.
type Space struct {
	core.WidgetBase
	Color     color.RGBA
	Width     geometry.Lp
	Height    geometry.Lp
	Focusable bool
}

// Sized returns a Space of the given logical size and color.
func Sized(width, height geometry.Lp, c color.RGBA) *Space {
	return &Space{Color: c, Width: width, Height: height}
}

// Filled returns a Space that fills its available area with c.
func Filled(c color.RGBA) *Space {
	return &Space{Color: c}
}

func (s *Space) Layout(available geometry.Constraints, ctx *core.LayoutContext) geometry.Size {
	scale := scaleOf(ctx.EventContext)
	want := available.Max()
	if s.Width > 0 {
		want.Width = s.Width.IntoUPx(scale)
	}
	if s.Height > 0 {
		want.Height = s.Height.IntoUPx(scale)
	}
	return available.FitMeasured(want)
}

func (s *Space) Redraw(ctx *core.GraphicsContext) {
	ctx.Fill(s.Color)
	if ctx.IsFocused() && ctx.Theme() != nil {
		ctx.StrokeRect(geometry.RectFromSize(ctx.Size()), ctx.Theme().ColorScheme.Primary)
	}
}

func (s *Space) HitTest(geometry.Point, *core.EventContext) bool { return true }

func (s *Space) AcceptFocus(*core.EventContext) bool { return s.Focusable }

func (s *Space) Focus(ctx *core.EventContext) { ctx.SetNeedsRedraw() }

func (s *Space) Blur(ctx *core.EventContext) { ctx.SetNeedsRedraw() }
