package widgets

import (
	"github.com/go-drift/wincore/pkg/core"
	"github.com/go-drift/wincore/pkg/geometry"
)

// Axis is the direction a Stack arranges its children in.
type Axis int

const (
	// AxisVertical stacks children top to bottom.
	AxisVertical Axis = iota
	// AxisHorizontal stacks children left to right.
	AxisHorizontal
)

// Stack lays its children out one after another along Axis, separated by
// Gap physical pixels. Each child is offered the full cross-axis extent and
// whatever main-axis space is left.
type Stack struct {
	core.WidgetBase
	Axis     Axis
	Gap      geometry.UPx
	Children []*core.WidgetRef
}

// Rows returns a vertical Stack of children.
func Rows(children ...core.Widget) *Stack {
	return &Stack{Axis: AxisVertical, Children: refsOf(children)}
}

// Columns returns a horizontal Stack of children.
func Columns(children ...core.Widget) *Stack {
	return &Stack{Axis: AxisHorizontal, Children: refsOf(children)}
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap geometry.UPx) *Stack {
	s.Gap = gap
	return s
}

func refsOf(children []core.Widget) []*core.WidgetRef {
	refs := make([]*core.WidgetRef, 0, len(children))
	for _, child := range children {
		if ref := refOf(child); ref != nil {
			refs = append(refs, ref)
		}
	}
	return refs
}

func (s *Stack) VisitChildren(visitor func(*core.WidgetRef)) {
	for _, child := range s.Children {
		visitor(child)
	}
}

func (s *Stack) Layout(available geometry.Constraints, ctx *core.LayoutContext) geometry.Size {
	main, cross := available.Height, available.Width
	if s.Axis == AxisHorizontal {
		main, cross = available.Width, available.Height
	}

	var offset, extent geometry.UPx
	for i, ref := range s.Children {
		if i > 0 {
			offset += s.Gap
		}
		remaining := geometry.ClippedAfter(main.Shrink(offset).Max())
		childCross := geometry.ClippedAfter(cross.Max())
		childAvailable := geometry.Constraints{Width: childCross, Height: remaining}
		origin := geometry.Pt(0, offset.Signed())
		if s.Axis == AxisHorizontal {
			childAvailable = geometry.Constraints{Width: remaining, Height: childCross}
			origin = geometry.Pt(offset.Signed(), 0)
		}

		size, ok := layoutChild(ref, childAvailable, origin, ctx)
		if !ok {
			continue
		}
		if s.Axis == AxisHorizontal {
			offset += size.Width
			extent = max(extent, size.Height)
		} else {
			offset += size.Height
			extent = max(extent, size.Width)
		}
	}

	if s.Axis == AxisHorizontal {
		return geometry.Sz(main.FitMeasured(offset), cross.FitMeasured(extent))
	}
	return geometry.Sz(cross.FitMeasured(extent), main.FitMeasured(offset))
}

func (s *Stack) Redraw(ctx *core.GraphicsContext) {
	for _, ref := range s.Children {
		redrawChild(ref, ctx)
	}
}
