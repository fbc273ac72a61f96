package widgets

import (
	"github.com/go-drift/wincore/pkg/core"
	"github.com/go-drift/wincore/pkg/geometry"
)

// Expand fills all the space it is offered. On the root's wrap chain it makes
// the window runtime lay the root out at the full window size.
type Expand struct {
	core.WidgetBase
	Child *core.WidgetRef
}

// Expanded returns an Expand around child. child may be nil.
func Expanded(child core.Widget) *Expand {
	return &Expand{Child: refOf(child)}
}

func (e *Expand) Expands() bool { return true }

func (e *Expand) Wraps() *core.WidgetRef {
	return e.Child
}

func (e *Expand) Layout(available geometry.Constraints, ctx *core.LayoutContext) geometry.Size {
	size := available.Max()
	layoutChild(e.Child, geometry.KnownSize(size), geometry.Point{}, ctx)
	return size
}

func (e *Expand) Redraw(ctx *core.GraphicsContext) {
	redrawChild(e.Child, ctx)
}
