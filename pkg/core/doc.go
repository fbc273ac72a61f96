// Package core provides the widget capability interface and the live widget
// tree of a single window.
//
// # Widgets
//
// Widget is the capability set every widget exposes: layout, painting, hit
// testing and one handler per input event kind. Embed WidgetBase to inherit
// the defaults, which ignore every event:
//
//	type swatch struct {
//	    core.WidgetBase
//	    color color.RGBA
//	}
//
//	func (s *swatch) Layout(available geometry.Constraints, ctx *core.LayoutContext) geometry.Size {
//	    return available.FitMeasured(geometry.Sz(32, 32))
//	}
//
//	func (s *swatch) Redraw(ctx *core.GraphicsContext) {
//	    ctx.Fill(s.color)
//	}
//
// Widgets with children hold them in WidgetRef values and expose them through
// ChildVisitor. A widget that transparently delegates its layout to one inner
// widget also implements Wrapper, which lets the window runtime follow the
// wrap chain when it looks for Resize and Expand nodes.
//
// # Tree
//
// Tree owns every mounted Node, the root, the focused/hovered/default/escape
// slots and the per-frame render order. The shape is fixed once the root
// is pushed; Push mounts the whole description recursively.
//
// Each node guards its widget with an exclusive lock. Locking a widget that
// is already locked panics with *errors.ReentrancyError instead of
// deadlocking.
//
// # Contexts
//
// EventContext, LayoutContext and GraphicsContext carry the current widget,
// the window handle and the resolved theme into widget callbacks. Focus
// changes requested from a callback are queued and applied by
// ApplyPendingState once dispatch has unwound.
package core
