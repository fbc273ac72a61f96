package window

import (
	"time"

	"github.com/go-drift/wincore/pkg/core"
	"github.com/go-drift/wincore/pkg/geometry"
)

// resizeLimits are the tightest limits found on the root's wrap chain, in
// physical pixels.
type resizeLimits struct {
	minWidth, minHeight geometry.UPx
	maxWidth, maxHeight geometry.UPx
	expands             bool
}

func (l resizeLimits) minSize() *geometry.Size {
	if l.minWidth == 0 && l.minHeight == 0 {
		return nil
	}
	return &geometry.Size{Width: l.minWidth, Height: l.minHeight}
}

func (l resizeLimits) maxSize() *geometry.Size {
	if l.maxWidth == geometry.UPxMax && l.maxHeight == geometry.UPxMax {
		return nil
	}
	return &geometry.Size{Width: l.maxWidth, Height: l.maxHeight}
}

// collectLimits walks the wrap chain starting at the root.
func (r *Runtime) collectLimits() resizeLimits {
	scale := r.host.Scale()
	limits := resizeLimits{maxWidth: geometry.UPxMax, maxHeight: geometry.UPxMax}
	for current := r.root; current != nil; {
		guard := current.Lock()
		widget := guard.Widget()
		if limiter, ok := widget.(core.ResizeLimiter); ok {
			width, height := limiter.ResizeLimits()
			limits.minWidth = max(limits.minWidth, width.MinPx(scale))
			limits.minHeight = max(limits.minHeight, height.MinPx(scale))
			limits.maxWidth = min(limits.maxWidth, width.MaxPx(scale))
			limits.maxHeight = min(limits.maxHeight, height.MaxPx(scale))
		}
		if expander, ok := widget.(core.Expander); ok && expander.Expands() {
			limits.expands = true
		}
		var next *core.WidgetRef
		if wrapper, ok := widget.(core.Wrapper); ok {
			next = wrapper.Wraps()
		}
		guard.Unlock()

		current = nil
		if next != nil {
			current, _ = next.Mounted()
		}
	}
	return limits
}

// constrainWindowResizing pushes changed size limits to the host and
// reports whether the root should fill the window.
func (r *Runtime) constrainWindowResizing() bool {
	limits := r.collectLimits()

	if minSize := limits.minSize(); !sameSize(minSize, r.minInnerSize) {
		r.minInnerSize = minSize
		r.host.SetMinInnerSize(minSize)
	}
	if maxSize := limits.maxSize(); !sameSize(maxSize, r.maxInnerSize) {
		if r.host.Resizable() {
			r.host.SetMaxInnerSize(maxSize)
		}
		r.maxInnerSize = maxSize
	}
	return limits.expands
}

func sameSize(a, b *geometry.Size) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// clampToLimits keeps size within the cached minimum and maximum.
func (r *Runtime) clampToLimits(size geometry.Size) geometry.Size {
	if r.maxInnerSize != nil {
		size = size.Min(*r.maxInnerSize)
	}
	if r.minInnerSize != nil {
		size = size.Max(*r.minInnerSize)
	}
	return size
}

// Prepare lays the tree out for the host's current size and paints it
// into canvas. On the first frame it also mounts every widget and gives
// initial focus.
func (r *Runtime) Prepare(canvas core.Canvas) {
	defer r.recoverCallback("window.Prepare")

	start := time.Now()
	sample := FrameSample{Timestamp: start.UnixMilli()}

	if r.themeReader.HasUpdated() {
		r.theme = r.themeReader.Get().Current()
	}
	r.tree.ResetRenderOrder()

	expands := r.constrainWindowResizing()
	windowSize := r.host.InnerSize()
	available := geometry.ClippedSize(windowSize)
	if expands {
		available = geometry.KnownSize(windowSize)
	}

	ctx := r.context(r.root)
	actual := core.NewLayoutContext(ctx).Layout(available)
	renderSize := actual.Min(windowSize)
	if actual != windowSize && !r.host.Resizable() {
		target := r.clampToLimits(actual)
		sample.Flags.ResizeRequested = true
		if err := r.host.RequestInnerSize(target); err != nil {
			reportHostError("window.Prepare", err)
		}
	}
	r.root.SetLayout(geometry.RectFromSize(renderSize))
	layoutDone := time.Now()

	initial := r.initialFrame
	if initial {
		r.initialFrame = false
		sample.Flags.Initial = true
		r.tree.Walk(func(w *core.ManagedWidget) {
			ctx.ForOther(w).Mounted()
		})
	}

	canvas.FillRect(geometry.RectFromSize(windowSize), r.theme.ColorScheme.Surface)
	region := geometry.RectFromSize(renderSize)
	if renderSize.Width < windowSize.Width || renderSize.Height < windowSize.Height {
		sample.Flags.Clipped = true
		canvas.PushClip(region)
		defer canvas.PopClip()
	}
	core.NewGraphicsContext(ctx, canvas, region).Redraw()
	// Initial focus is ordered by the rects recorded during the paint pass.
	if initial {
		ctx.Focus()
		ctx.SetNeedsRedraw()
	}
	ctx.ApplyPendingState()

	if r.trace != nil {
		end := time.Now()
		sample.Phases.LayoutMs = durationToMillis(layoutDone.Sub(start))
		sample.Phases.PaintMs = durationToMillis(end.Sub(layoutDone))
		sample.FrameMs = durationToMillis(end.Sub(start))
		sample.Counts.WidgetCount = r.tree.Len()
		sample.Counts.PaintedCount = len(r.tree.RenderOrder())
		r.trace.Add(sample, end.Sub(start))
	}
}
