package widgets

import (
	"github.com/go-drift/wincore/pkg/core"
	"github.com/go-drift/wincore/pkg/geometry"
)

// Resize constrains its child to a range of sizes on each axis. When Resize
// is on the root's wrap chain, the window runtime turns its ranges into
// minimum and maximum window sizes.
type Resize struct {
	core.WidgetBase
	Width  geometry.DimensionRange
	Height geometry.DimensionRange
	Child  *core.WidgetRef
}

// ResizeTo returns a Resize forcing child to exactly width by height.
func ResizeTo(width, height geometry.Lp, child core.Widget) *Resize {
	return &Resize{Width: geometry.Exactly(width), Height: geometry.Exactly(height), Child: refOf(child)}
}

// ResizeWithin returns a Resize limiting child to the given ranges.
func ResizeWithin(width, height geometry.DimensionRange, child core.Widget) *Resize {
	return &Resize{Width: width, Height: height, Child: refOf(child)}
}

func (r *Resize) Wraps() *core.WidgetRef {
	return r.Child
}

func (r *Resize) ResizeLimits() (width, height geometry.DimensionRange) {
	return r.Width, r.Height
}

func (r *Resize) Layout(available geometry.Constraints, ctx *core.LayoutContext) geometry.Size {
	scale := scaleOf(ctx.EventContext)
	inner := geometry.Constraints{
		Width:  overrideLimit(available.Width, r.Width, scale),
		Height: overrideLimit(available.Height, r.Height, scale),
	}
	measured, ok := layoutChild(r.Child, inner, geometry.Point{}, ctx)
	if !ok {
		measured = geometry.Sz(r.Width.MinPx(scale), r.Height.MinPx(scale))
	}
	size := geometry.Sz(
		r.Width.Clamp(measured.Width, scale),
		r.Height.Clamp(measured.Height, scale),
	)
	if child, mounted := r.mounted(); mounted {
		ctx.SetChildLayout(child, geometry.RectFromSize(size))
	}
	return size
}

func (r *Resize) Redraw(ctx *core.GraphicsContext) {
	redrawChild(r.Child, ctx)
}

func (r *Resize) mounted() (*core.ManagedWidget, bool) {
	if r.Child == nil {
		return nil, false
	}
	return r.Child.Mounted()
}

// overrideLimit clamps the offered limit into rng. An exact range always
// produces a Known limit.
func overrideLimit(limit geometry.ConstraintLimit, rng geometry.DimensionRange, scale float32) geometry.ConstraintLimit {
	minimum, hasMin := rng.Minimum()
	maximum, hasMax := rng.Maximum()
	if hasMin && hasMax && minimum == maximum {
		return geometry.Known(minimum.IntoUPx(scale))
	}
	clamped := rng.Clamp(limit.Max(), scale)
	if limit.IsKnown() {
		return geometry.Known(clamped)
	}
	return geometry.ClippedAfter(clamped)
}
