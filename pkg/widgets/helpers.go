package widgets

import (
	"github.com/go-drift/wincore/pkg/core"
	"github.com/go-drift/wincore/pkg/geometry"
)

// scaleOf returns the window scale, or 1 when no window is attached.
func scaleOf(ctx *core.EventContext) float32 {
	if window := ctx.Window(); window != nil {
		if scale := window.Scale(); scale > 0 {
			return scale
		}
	}
	return 1
}

// refOf wraps w, passing nil through.
func refOf(w core.Widget) *core.WidgetRef {
	if w == nil {
		return nil
	}
	return core.NewWidgetRef(w)
}

// layoutChild lays out ref within available and places it at origin.
func layoutChild(ref *core.WidgetRef, available geometry.Constraints, origin geometry.Point, ctx *core.LayoutContext) (geometry.Size, bool) {
	if ref == nil {
		return geometry.Size{}, false
	}
	child, ok := ref.Mounted()
	if !ok {
		return geometry.Size{}, false
	}
	size := ctx.ForOther(child).Layout(available)
	ctx.SetChildLayout(child, geometry.Rect{Origin: origin, Size: size})
	return size, true
}

// redrawChild paints ref if the tree has mounted it.
func redrawChild(ref *core.WidgetRef, ctx *core.GraphicsContext) {
	if ref == nil {
		return
	}
	if child, ok := ref.Mounted(); ok {
		ctx.RedrawChild(child)
	}
}
