package window_test

import (
	stderrors "errors"
	"slices"
	"testing"
	"time"

	"github.com/go-drift/wincore/pkg/core"
	"github.com/go-drift/wincore/pkg/errors"
	"github.com/go-drift/wincore/pkg/focus"
	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/input"
	wintest "github.com/go-drift/wincore/pkg/testing"
	"github.com/go-drift/wincore/pkg/theme"
	"github.com/go-drift/wincore/pkg/value"
	"github.com/go-drift/wincore/pkg/widgets"
	"github.com/go-drift/wincore/pkg/window"
)

// box is a Custom widget with a fixed size that hits everywhere.
func box(width, height geometry.UPx) *widgets.Custom {
	return &widgets.Custom{
		OnLayout: func(available geometry.Constraints, _ *core.LayoutContext) geometry.Size {
			return available.FitMeasured(geometry.Sz(width, height))
		},
		OnHitTest: func(geometry.Point, *core.EventContext) bool { return true },
	}
}

// layered paints every child at its own origin, later children on top.
type layered struct {
	core.WidgetBase
	children []*core.WidgetRef
}

func overlay(children ...core.Widget) *layered {
	l := &layered{}
	for _, child := range children {
		l.children = append(l.children, core.NewWidgetRef(child))
	}
	return l
}

func (l *layered) VisitChildren(visitor func(*core.WidgetRef)) {
	for _, child := range l.children {
		visitor(child)
	}
}

func (l *layered) Layout(available geometry.Constraints, ctx *core.LayoutContext) geometry.Size {
	for _, ref := range l.children {
		if child, ok := ref.Mounted(); ok {
			size := ctx.ForOther(child).Layout(available)
			ctx.SetChildLayout(child, geometry.RectFromSize(size))
		}
	}
	return available.Max()
}

func (l *layered) Redraw(ctx *core.GraphicsContext) {
	for _, ref := range l.children {
		if child, ok := ref.Mounted(); ok {
			ctx.RedrawChild(child)
		}
	}
}

type recorder struct {
	events []string
}

func (r *recorder) add(event string) {
	r.events = append(r.events, event)
}

func newTester(t *testing.T, root core.Widget) *wintest.WindowTester {
	t.Helper()
	return wintest.NewWindowTesterWithT(t, root)
}

func widgetID(t *testing.T, tester *wintest.WindowTester, w core.Widget) core.WidgetID {
	t.Helper()
	return tester.Find(wintest.ByWidget(w)).First().ID()
}

func TestPrepare_MinimumSizeScenario(t *testing.T) {
	host := wintest.NewFakeHost(geometry.Sz(200, 100))
	host.IsResizable = false
	inner := widgets.ResizeWithin(
		geometry.AtLeast(geometry.Lpx(300)),
		geometry.AtLeast(geometry.Lpx(150)),
		box(10, 10),
	)
	root := widgets.Wrapping(inner)
	tester := wintest.NewWindowTesterFor(window.ForWidget(root), host)
	tester.Pump()

	minSize, ok := host.LastMinSize()
	if !ok || minSize == nil || *minSize != geometry.Sz(300, 150) {
		t.Fatalf("min inner size = %v, want 300x150", minSize)
	}
	resize, ok := host.LastResize()
	if !ok {
		t.Fatal("expected a resize request")
	}
	if resize.Width < 300 || resize.Height < 150 {
		t.Errorf("resize = %+v, want at least 300x150", resize)
	}
	if len(host.MaxSizes) != 0 {
		t.Errorf("non-resizable window must not receive a max size, got %v", host.MaxSizes)
	}
	if _, ok := tester.Runtime.MinInnerSize(); !ok {
		t.Error("runtime should cache the min size")
	}

	clips := tester.Canvas.OpsOfKind(wintest.OpPushClip)
	if len(clips) == 0 || clips[0].Rect != geometry.RectXYWH(0, 0, 200, 100) {
		t.Errorf("render size should be clamped to the window, clips = %+v", clips)
	}
}

func TestPrepare_LimitsPushedOnlyOnChange(t *testing.T) {
	host := wintest.NewFakeHost(geometry.Sz(400, 400))
	root := widgets.ResizeWithin(
		geometry.Between(geometry.Lpx(100), geometry.Lpx(300)),
		geometry.AtMost(geometry.Lpx(200)),
		box(10, 10),
	)
	tester := wintest.NewWindowTesterFor(window.ForWidget(root), host)
	tester.Pump()
	tester.Pump()

	if len(host.MinSizes) != 1 || *host.MinSizes[0] != geometry.Sz(100, 0) {
		t.Errorf("min sizes = %v", host.MinSizes)
	}
	if len(host.MaxSizes) != 1 || *host.MaxSizes[0] != geometry.Sz(300, 200) {
		t.Errorf("max sizes = %v", host.MaxSizes)
	}
	if len(host.ResizeRequests) != 0 {
		t.Errorf("resizable window must not be resized, got %v", host.ResizeRequests)
	}
}

func TestPrepare_TightestLimitsAlongWrapChain(t *testing.T) {
	host := wintest.NewFakeHost(geometry.Sz(400, 400))
	inner := widgets.ResizeWithin(geometry.AtLeast(geometry.Lpx(50)), geometry.AtMost(geometry.Lpx(80)), box(10, 10))
	outer := widgets.ResizeWithin(geometry.AtLeast(geometry.Lpx(20)), geometry.AtMost(geometry.Lpx(300)), inner)
	tester := wintest.NewWindowTesterFor(window.ForWidget(outer), host)
	tester.Pump()

	minSize, _ := tester.Runtime.MinInnerSize()
	maxSize, _ := tester.Runtime.MaxInnerSize()
	if minSize != geometry.Sz(50, 0) {
		t.Errorf("min = %+v", minSize)
	}
	if maxSize != geometry.Sz(geometry.UPxMax, 80) {
		t.Errorf("max = %+v", maxSize)
	}
}

func TestPrepare_ScaleConvertsLimits(t *testing.T) {
	host := wintest.NewFakeHost(geometry.Sz(400, 400))
	host.ScaleFactor = 2
	root := widgets.ResizeWithin(geometry.AtLeast(geometry.Lpx(100)), geometry.AtLeast(geometry.Lpx(50)), nil)
	tester := wintest.NewWindowTesterFor(window.ForWidget(root), host)
	tester.Pump()

	if minSize, _ := tester.Runtime.MinInnerSize(); minSize != geometry.Sz(200, 100) {
		t.Errorf("min = %+v, want 200x100", minSize)
	}
}

func TestPrepare_ExpandUsesKnownConstraints(t *testing.T) {
	var offered geometry.Constraints
	probe := &widgets.Custom{OnLayout: func(available geometry.Constraints, _ *core.LayoutContext) geometry.Size {
		offered = available
		return geometry.Sz(1, 1)
	}}
	tester := newTester(t, widgets.Wrapping(widgets.Expanded(probe)))
	tester.Pump()

	if !offered.Width.IsKnown() || offered.Max() != geometry.Sz(wintest.DefaultTestWidth, wintest.DefaultTestHeight) {
		t.Errorf("offered = %+v", offered)
	}
	if len(tester.Canvas.OpsOfKind(wintest.OpPushClip)) != 3 {
		t.Errorf("full-size frame should not add a window clip")
	}
}

func TestPrepare_NonResizableShrinkWraps(t *testing.T) {
	host := wintest.NewFakeHost(geometry.Sz(200, 100))
	host.IsResizable = false
	tester := wintest.NewWindowTesterFor(window.ForWidget(box(50, 40)), host)
	tester.Pump()

	resize, ok := host.LastResize()
	if !ok || resize != geometry.Sz(50, 40) {
		t.Errorf("resize = %+v, want 50x40", resize)
	}
}

func TestPrepare_ResizeErrorIsReported(t *testing.T) {
	var reported []*errors.WindowError
	errors.SetHandler(handlerFunc(func(err *errors.WindowError) { reported = append(reported, err) }))
	t.Cleanup(func() { errors.SetHandler(nil) })

	host := wintest.NewFakeHost(geometry.Sz(200, 100))
	host.IsResizable = false
	host.ResizeError = stderrors.New("denied")
	tester := wintest.NewWindowTesterFor(window.ForWidget(box(50, 40)), host)
	if !tester.Pump() {
		t.Fatal("frame should continue after a rejected resize")
	}
	if len(reported) != 1 || reported[0].Kind != errors.KindHost {
		t.Fatalf("reported = %v", reported)
	}
}

func TestPrepare_MountedOnceInTreeOrder(t *testing.T) {
	rec := &recorder{}
	child := box(10, 10)
	child.OnMounted = func(*core.EventContext) { rec.add("child") }
	root := widgets.Wrapping(child)
	root.OnMounted = func(*core.EventContext) { rec.add("root") }

	tester := newTester(t, root)
	tester.Pump()
	tester.Pump()

	if !slices.Equal(rec.events, []string{"root", "child"}) {
		t.Errorf("mounted = %v", rec.events)
	}
}

func TestPrepare_ThemeRefresh(t *testing.T) {
	pair := value.NewDynamic(theme.DefaultThemePair())
	host := wintest.NewFakeHost(geometry.Sz(10, 10))
	tester := wintest.NewWindowTesterFor(window.ForWidget(box(10, 10)).WithDynamicTheme(pair), host)
	tester.Pump()
	light := tester.Canvas.OpsOfKind(wintest.OpFillRect)[0].Color

	pair.Set(pair.Get().WithActive(theme.BrightnessDark))
	tester.Pump()
	dark := tester.Canvas.OpsOfKind(wintest.OpFillRect)[0].Color
	if light == dark {
		t.Error("background should follow the active theme")
	}
	if tester.Runtime.Theme().Brightness != theme.BrightnessDark {
		t.Error("runtime theme should be dark")
	}
}

func TestHover_TopmostWins(t *testing.T) {
	a := box(100, 100)
	b := box(100, 100)
	tester := newTester(t, overlay(a, b))
	tester.Pump()

	tester.MoveTo(geometry.Pt(10, 10))
	hovered, ok := tester.Hovered()
	if !ok || hovered.ID() != widgetID(t, tester, b) {
		t.Fatalf("hovered = %v, want the later-rendered widget", hovered)
	}
}

func TestHover_SkipsFailedHitTest(t *testing.T) {
	a := box(100, 100)
	b := box(100, 100)
	b.OnHitTest = func(geometry.Point, *core.EventContext) bool { return false }
	tester := newTester(t, overlay(a, b))
	tester.Pump()

	tester.MoveTo(geometry.Pt(10, 10))
	hovered, ok := tester.Hovered()
	if !ok || hovered.ID() != widgetID(t, tester, a) {
		t.Fatal("hit test failure should fall through to the widget below")
	}

	tester.MoveTo(geometry.Pt(700, 500))
	if _, ok := tester.Hovered(); ok {
		t.Error("nothing should be hovered outside every widget")
	}
}

func TestHover_RelativeLocationAndLeave(t *testing.T) {
	var last geometry.Point
	unhovered := 0
	target := box(20, 20)
	target.OnHover = func(p geometry.Point, _ *core.EventContext) { last = p }
	target.OnUnhover = func(*core.EventContext) { unhovered++ }
	tester := newTester(t, widgets.Columns(box(30, 20), target))
	tester.Pump()

	tester.MoveTo(geometry.Pt(35, 5))
	if last != geometry.Pt(5, 5) {
		t.Errorf("hover location = %+v, want (5,5)", last)
	}
	tester.Leave()
	if unhovered != 1 {
		t.Errorf("unhovered = %d, want 1", unhovered)
	}
	if _, ok := tester.Hovered(); ok {
		t.Error("leaving the window should clear hover")
	}
}

func TestPress_CaptureScenario(t *testing.T) {
	var upAt *geometry.Point
	ups := 0
	w := box(50, 50)
	w.OnMouseDown = func(geometry.Point, input.DeviceID, input.MouseButton, *core.EventContext) core.EventHandling {
		return core.Handled
	}
	w.OnMouseUp = func(p *geometry.Point, _ input.DeviceID, _ input.MouseButton, _ *core.EventContext) {
		ups++
		upAt = p
	}
	other := box(800, 600)
	otherUps := 0
	other.OnMouseUp = func(*geometry.Point, input.DeviceID, input.MouseButton, *core.EventContext) { otherUps++ }
	tester := newTester(t, overlay(other, w))
	tester.Pump()

	tester.MoveTo(geometry.Pt(10, 10))
	tester.Press(input.MouseButtonLeft)
	id, ok := tester.Runtime.Captured(wintest.DefaultDevice, input.MouseButtonLeft)
	if !ok || id != widgetID(t, tester, w) {
		t.Fatalf("capture = %v, want W", id)
	}

	tester.MoveTo(geometry.Pt(500, 500))
	tester.Release(input.MouseButtonLeft)
	if ups != 1 || otherUps != 0 {
		t.Fatalf("ups = %d, other = %d", ups, otherUps)
	}
	if upAt == nil || *upAt != geometry.Pt(500, 500) {
		t.Errorf("mouse up at %v, want (500,500) relative to W", upAt)
	}
	if _, ok := tester.Runtime.Captured(wintest.DefaultDevice, input.MouseButtonLeft); ok {
		t.Error("capture must be removed on release")
	}
	if tester.Runtime.CapturingDevices() != 0 {
		t.Error("device entry must be removed once empty")
	}
}

func TestPress_CaptureLifecycle(t *testing.T) {
	w := box(50, 50)
	w.OnMouseDown = func(geometry.Point, input.DeviceID, input.MouseButton, *core.EventContext) core.EventHandling {
		return core.Handled
	}
	tester := newTester(t, w)
	tester.Pump()
	tester.MoveTo(geometry.Pt(1, 1))

	buttons := []input.MouseButton{input.MouseButtonLeft, input.MouseButtonRight, input.MouseButtonMiddle}
	for round := range 3 {
		for _, b := range buttons {
			tester.Press(b)
			if _, ok := tester.Runtime.Captured(wintest.DefaultDevice, b); !ok {
				t.Fatalf("round %d: %v not captured", round, b)
			}
		}
		for i, b := range buttons {
			tester.Release(b)
			if _, ok := tester.Runtime.Captured(wintest.DefaultDevice, b); ok {
				t.Fatalf("round %d: %v still captured", round, b)
			}
			wantDevices := 1
			if i == len(buttons)-1 {
				wantDevices = 0
			}
			if got := tester.Runtime.CapturingDevices(); got != wantDevices {
				t.Fatalf("round %d: devices = %d, want %d", round, got, wantDevices)
			}
		}
	}

	tester.Release(input.MouseButtonLeft)
	if tester.Runtime.CapturingDevices() != 0 {
		t.Error("stray release must not create entries")
	}
}

func TestPress_UnhandledIsNotCaptured(t *testing.T) {
	tester := newTester(t, box(50, 50))
	tester.Pump()
	tester.MoveTo(geometry.Pt(1, 1))
	tester.Press(input.MouseButtonLeft)
	if tester.Runtime.CapturingDevices() != 0 {
		t.Error("ignored press must not capture")
	}
}

func TestPress_ClearsFocusFirst(t *testing.T) {
	rec := &recorder{}
	focusable := box(50, 50)
	focusable.OnAcceptFocus = func(*core.EventContext) bool { return true }
	focusable.OnBlur = func(*core.EventContext) { rec.add("blur") }
	focusable.OnMouseDown = func(geometry.Point, input.DeviceID, input.MouseButton, *core.EventContext) core.EventHandling {
		rec.add("down")
		return core.Ignored
	}
	tester := newTester(t, focusable)
	tester.Pump()
	if _, ok := tester.Focused(); !ok {
		t.Fatal("initial focus expected")
	}

	tester.MoveTo(geometry.Pt(1, 1))
	tester.Press(input.MouseButtonLeft)
	if !slices.Equal(rec.events, []string{"blur", "down"}) {
		t.Errorf("events = %v", rec.events)
	}
	if _, ok := tester.Focused(); ok {
		t.Error("press should clear focus")
	}
}

func TestDrag_SuppressesHover(t *testing.T) {
	var drags []geometry.Point
	hovers := 0
	source := box(50, 50)
	source.OnMouseDown = func(geometry.Point, input.DeviceID, input.MouseButton, *core.EventContext) core.EventHandling {
		return core.Handled
	}
	source.OnMouseDrag = func(p geometry.Point, _ input.DeviceID, _ input.MouseButton, _ *core.EventContext) {
		drags = append(drags, p)
	}
	target := box(50, 50)
	target.OnHover = func(geometry.Point, *core.EventContext) { hovers++ }
	tester := newTester(t, widgets.Columns(source, target))
	tester.Pump()

	tester.MoveTo(geometry.Pt(10, 10))
	tester.Press(input.MouseButtonLeft)
	tester.MoveTo(geometry.Pt(60, 10))
	tester.MoveTo(geometry.Pt(70, 20))

	if hovers != 0 {
		t.Errorf("hover recomputed during drag (%d hovers)", hovers)
	}
	if !slices.Equal(drags, []geometry.Point{geometry.Pt(60, 10), geometry.Pt(70, 20)}) {
		t.Errorf("drags = %v", drags)
	}
	hovered, _ := tester.Hovered()
	if hovered == nil || hovered.ID() != widgetID(t, tester, source) {
		t.Error("hover should stay on the drag source")
	}

	tester.Release(input.MouseButtonLeft)
	tester.MoveTo(geometry.Pt(70, 20))
	if hovers != 1 {
		t.Errorf("hover should resume after release, hovers = %d", hovers)
	}
}

func TestDrag_OtherDeviceStillHovers(t *testing.T) {
	source := box(50, 50)
	source.OnMouseDown = func(geometry.Point, input.DeviceID, input.MouseButton, *core.EventContext) core.EventHandling {
		return core.Handled
	}
	target := box(50, 50)
	tester := newTester(t, widgets.Columns(source, target))
	tester.Pump()

	tester.MoveTo(geometry.Pt(10, 10))
	tester.Press(input.MouseButtonLeft)
	tester.Runtime.CursorMoved(2, geometry.Pt(60, 10))
	hovered, _ := tester.Hovered()
	if hovered == nil || hovered.ID() != widgetID(t, tester, target) {
		t.Error("a device without captures should recompute hover")
	}
}

func TestBubbling_MonotonicTowardRoot(t *testing.T) {
	rec := &recorder{}
	handler := func(name string, result core.EventHandling) func(input.DeviceID, input.KeyEvent, bool, *core.EventContext) core.EventHandling {
		return func(input.DeviceID, input.KeyEvent, bool, *core.EventContext) core.EventHandling {
			rec.add(name)
			return result
		}
	}

	leaf := box(10, 10)
	leaf.OnAcceptFocus = func(*core.EventContext) bool { return true }
	leaf.OnKeyboardInput = handler("leaf", core.Ignored)
	sibling := box(10, 10)
	sibling.OnKeyboardInput = handler("sibling", core.Handled)
	parent := widgets.Wrapping(widgets.Rows(leaf, sibling))
	parent.OnKeyboardInput = handler("parent", core.Ignored)
	root := widgets.Wrapping(parent)
	root.OnKeyboardInput = handler("root", core.Handled)

	tester := newTester(t, root)
	tester.Pump()
	tester.KeyDown(input.Character("x"))

	if !slices.Equal(rec.events, []string{"leaf", "parent", "root"}) {
		t.Errorf("delivery order = %v", rec.events)
	}
}

func TestBubbling_MouseDownRelativeToEachAncestor(t *testing.T) {
	var seen []geometry.Point
	leaf := box(10, 10)
	leaf.OnMouseDown = func(p geometry.Point, _ input.DeviceID, _ input.MouseButton, _ *core.EventContext) core.EventHandling {
		seen = append(seen, p)
		return core.Ignored
	}
	root := widgets.Wrapping(widgets.Columns(box(20, 10), leaf))
	root.OnMouseDown = func(p geometry.Point, _ input.DeviceID, _ input.MouseButton, _ *core.EventContext) core.EventHandling {
		seen = append(seen, p)
		return core.Handled
	}
	tester := newTester(t, root)
	tester.Pump()

	tester.MoveTo(geometry.Pt(25, 5))
	tester.Press(input.MouseButtonLeft)
	if !slices.Equal(seen, []geometry.Point{geometry.Pt(5, 5), geometry.Pt(25, 5)}) {
		t.Errorf("locations = %v", seen)
	}
	id, _ := tester.Runtime.Captured(wintest.DefaultDevice, input.MouseButtonLeft)
	if id != widgetID(t, tester, root) {
		t.Error("the handling ancestor should capture the button")
	}
}

func TestTab_RoundTrip(t *testing.T) {
	var focusables []core.Widget
	for range 4 {
		w := box(20, 20)
		w.OnAcceptFocus = func(*core.EventContext) bool { return true }
		focusables = append(focusables, w)
	}
	root := widgets.Rows(
		widgets.Columns(focusables[0], focusables[1]),
		widgets.Columns(focusables[2], focusables[3]),
	)
	tester := newTester(t, root)
	tester.Pump()

	for start := range focusables {
		for range start {
			tester.Tab(false)
		}
		before, _ := tester.Focused()
		tester.Tab(false)
		tester.Tab(true)
		after, _ := tester.Focused()
		if before == nil || after == nil || before.ID() != after.ID() {
			t.Fatalf("round trip from %d failed: %v -> %v", start, before, after)
		}
	}
}

func TestTab_VisualOrderAndWrap(t *testing.T) {
	var focusables []core.Widget
	for range 3 {
		w := box(20, 20)
		w.OnAcceptFocus = func(*core.EventContext) bool { return true }
		focusables = append(focusables, w)
	}
	tester := newTester(t, widgets.Columns(focusables...))
	tester.Pump()

	var order []core.WidgetID
	for range 4 {
		focused, _ := tester.Focused()
		order = append(order, focused.ID())
		tester.Tab(false)
	}
	want := []core.WidgetID{
		widgetID(t, tester, focusables[0]),
		widgetID(t, tester, focusables[1]),
		widgetID(t, tester, focusables[2]),
		widgetID(t, tester, focusables[0]),
	}
	if !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

// rightToLeft is a row of children whose focus order runs right to left.
type rightToLeft struct {
	*widgets.Stack
}

func (rightToLeft) VisualOrder() focus.VisualOrder {
	return focus.VisualOrder{Horizontal: focus.RightToLeft, Vertical: focus.TopToBottom}
}

func TestPrepare_InitialFocusFollowsVisualOrder(t *testing.T) {
	left := box(20, 20)
	left.OnAcceptFocus = func(*core.EventContext) bool { return true }
	right := box(20, 20)
	right.OnAcceptFocus = func(*core.EventContext) bool { return true }
	tester := newTester(t, rightToLeft{widgets.Columns(left, right)})
	tester.Pump()

	focused, ok := tester.Focused()
	if !ok {
		t.Fatal("initial focus expected")
	}
	if focused.ID() != widgetID(t, tester, right) {
		t.Errorf("focused = %d, want the rightmost widget %d", focused.ID(), widgetID(t, tester, right))
	}
	if rect, _ := focused.LastLayout(); rect.Origin.X == 0 {
		t.Errorf("focused widget laid out at %+v, want it right of the first column", rect)
	}
}

func TestTab_ShortcutModifierDoesNotMoveFocus(t *testing.T) {
	a := box(20, 20)
	a.OnAcceptFocus = func(*core.EventContext) bool { return true }
	b := box(20, 20)
	b.OnAcceptFocus = func(*core.EventContext) bool { return true }
	tester := newTester(t, widgets.Columns(a, b))
	tester.Pump()

	tester.Host.SetModifiers(input.ModControl)
	tester.TypeKey(input.Named(input.KeyTab))
	focused, _ := tester.Focused()
	if focused.ID() != widgetID(t, tester, a) {
		t.Error("ctrl+tab must not advance focus")
	}
}

func TestTab_HandledKeyDoesNotMoveFocus(t *testing.T) {
	a := box(20, 20)
	a.OnAcceptFocus = func(*core.EventContext) bool { return true }
	a.OnKeyboardInput = func(input.DeviceID, input.KeyEvent, bool, *core.EventContext) core.EventHandling {
		return core.Handled
	}
	b := box(20, 20)
	b.OnAcceptFocus = func(*core.EventContext) bool { return true }
	tester := newTester(t, widgets.Columns(a, b))
	tester.Pump()

	tester.Tab(false)
	focused, _ := tester.Focused()
	if focused.ID() != widgetID(t, tester, a) {
		t.Error("a handled Tab must not advance focus")
	}
}

func TestEnter_SymmetricActivation(t *testing.T) {
	rec := &recorder{}
	def := box(20, 20)
	def.OnMounted = func(ctx *core.EventContext) { ctx.MakeDefault() }
	def.OnActivate = func(*core.EventContext) { rec.add("activate") }
	def.OnDeactivate = func(*core.EventContext) { rec.add("deactivate") }
	tester := newTester(t, widgets.Columns(def, box(20, 20)))
	tester.Pump()

	tester.KeyDown(input.Named(input.KeyEnter))
	tester.KeyUp(input.Named(input.KeyEnter))
	if !slices.Equal(rec.events, []string{"activate", "deactivate"}) {
		t.Errorf("events = %v", rec.events)
	}

	tester.KeyUp(input.Named(input.KeyEnter))
	if len(rec.events) != 2 {
		t.Error("a stray release must not deactivate again")
	}
}

func TestEnter_NoDefaultWidget(t *testing.T) {
	rec := &recorder{}
	w := box(20, 20)
	w.OnActivate = func(*core.EventContext) { rec.add("activate") }
	tester := newTester(t, w)
	tester.Pump()

	tester.TypeKey(input.Named(input.KeyEnter))
	if len(rec.events) != 0 {
		t.Errorf("no activation expected without a default widget, got %v", rec.events)
	}
}

func TestEscape_DeactivatesPreviousFirst(t *testing.T) {
	rec := &recorder{}
	def := box(20, 20)
	def.OnMounted = func(ctx *core.EventContext) { ctx.MakeDefault() }
	def.OnActivate = func(*core.EventContext) { rec.add("default.activate") }
	def.OnDeactivate = func(*core.EventContext) { rec.add("default.deactivate") }
	esc := box(20, 20)
	esc.OnMounted = func(ctx *core.EventContext) { ctx.MakeEscape() }
	esc.OnActivate = func(*core.EventContext) { rec.add("escape.activate") }
	esc.OnDeactivate = func(*core.EventContext) { rec.add("escape.deactivate") }
	tester := newTester(t, widgets.Columns(def, esc))
	tester.Pump()

	tester.KeyDown(input.Named(input.KeyEnter))
	tester.KeyDown(input.Named(input.KeyEscape))
	tester.KeyUp(input.Named(input.KeyEscape))
	want := []string{"default.activate", "default.deactivate", "escape.activate", "escape.deactivate"}
	if !slices.Equal(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
}

func TestButton_DefaultClickedByEnter(t *testing.T) {
	clicks := 0
	ok := widgets.NewButton("OK", func() { clicks++ }).AsDefault()
	tester := newTester(t, widgets.Columns(widgets.NewButton("Other", nil), ok))
	tester.Pump()

	tester.TypeKey(input.Named(input.KeyEnter))
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

type closeBehavior struct {
	root  core.Widget
	allow bool
	asked int
}

func (b *closeBehavior) MakeRoot() core.Widget { return b.root }

func (b *closeBehavior) CloseRequested(*window.RunningWindow) bool {
	b.asked++
	return b.allow
}

func TestClose_PrimaryW(t *testing.T) {
	primary := input.ModControl
	if input.ModSuper.Primary() {
		primary = input.ModSuper
	}

	for _, allow := range []bool{false, true} {
		behavior := &closeBehavior{root: box(10, 10), allow: allow}
		host := wintest.NewFakeHost(geometry.Sz(100, 100))
		tester := wintest.NewWindowTesterFor(window.New(behavior), host)
		tester.Pump()

		host.SetModifiers(primary)
		tester.TypeKey(input.Character("w"))
		if behavior.asked != 1 {
			t.Fatalf("behavior asked %d times", behavior.asked)
		}
		if tester.Pump() == allow {
			t.Errorf("allow=%v: Render should report %v", allow, !allow)
		}
	}
}

func TestCloseRequested_DelegatesToBehavior(t *testing.T) {
	behavior := &closeBehavior{root: box(10, 10)}
	tester := wintest.NewWindowTesterFor(window.New(behavior), wintest.NewFakeHost(geometry.Sz(10, 10)))
	if tester.Runtime.CloseRequested() {
		t.Error("behavior refused close")
	}
	if !window.ForWidget(box(1, 1)).Open(wintest.NewFakeHost(geometry.Sz(1, 1))).CloseRequested() {
		t.Error("widget windows always allow close")
	}
}

func TestWheelAndIMETargets(t *testing.T) {
	rec := &recorder{}
	hoverable := box(20, 20)
	hoverable.OnMouseWheel = func(input.DeviceID, input.ScrollDelta, input.TouchPhase, *core.EventContext) core.EventHandling {
		rec.add("wheel.hovered")
		return core.Handled
	}
	focusable := box(20, 20)
	focusable.OnAcceptFocus = func(*core.EventContext) bool { return true }
	focusable.OnIME = func(input.Ime, *core.EventContext) core.EventHandling {
		rec.add("ime.focused")
		return core.Handled
	}
	root := widgets.Wrapping(widgets.Columns(focusable, hoverable))
	root.OnMouseWheel = func(input.DeviceID, input.ScrollDelta, input.TouchPhase, *core.EventContext) core.EventHandling {
		rec.add("wheel.root")
		return core.Handled
	}
	root.OnIME = func(input.Ime, *core.EventContext) core.EventHandling {
		rec.add("ime.root")
		return core.Handled
	}
	tester := newTester(t, root)
	tester.Pump()

	tester.Scroll(0, 1)
	tester.MoveTo(geometry.Pt(25, 5))
	tester.Scroll(0, 1)
	tester.Runtime.IME(input.Ime{Kind: input.ImeCommit, Text: "é"})
	tester.MoveTo(geometry.Pt(5, 5))
	tester.Press(input.MouseButtonLeft)
	tester.Runtime.IME(input.Ime{Kind: input.ImeCommit, Text: "é"})

	want := []string{"wheel.root", "wheel.hovered", "ime.focused", "ime.root"}
	if !slices.Equal(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
}

func TestReentrancy_PanicsLoudly(t *testing.T) {
	var panics []*errors.PanicError
	errors.SetHandler(panicHandler(func(err *errors.PanicError) { panics = append(panics, err) }))
	t.Cleanup(func() { errors.SetHandler(nil) })

	w := box(20, 20)
	w.OnMouseDown = func(p geometry.Point, device input.DeviceID, button input.MouseButton, ctx *core.EventContext) core.EventHandling {
		return ctx.MouseDown(p, device, button)
	}
	tester := newTester(t, w)
	tester.Pump()
	tester.MoveTo(geometry.Pt(1, 1))
	tester.Press(input.MouseButtonLeft)

	if len(panics) != 1 {
		t.Fatalf("expected one reported panic, got %d", len(panics))
	}
	var reentrancy *errors.ReentrancyError
	if !stderrors.As(panics[0], &reentrancy) {
		t.Fatalf("panic value = %v, want ReentrancyError", panics[0].Value)
	}
	if panics[0].Op != "window.MouseInput" {
		t.Errorf("op = %q", panics[0].Op)
	}
	if tester.Runtime.Root().IsLocked() {
		t.Error("the widget must be unlocked after the aborted call")
	}
	if tester.Runtime.CapturingDevices() != 0 {
		t.Error("an aborted press must not capture")
	}
}

func TestReentrancy_RepanicsOutsideDebugMode(t *testing.T) {
	errors.SetHandler(panicHandler(func(*errors.PanicError) {}))
	t.Cleanup(func() { errors.SetHandler(nil) })

	w := box(20, 20)
	w.OnMouseDown = func(p geometry.Point, device input.DeviceID, button input.MouseButton, ctx *core.EventContext) core.EventHandling {
		return ctx.MouseDown(p, device, button)
	}
	tester := newTester(t, w)
	tester.Pump()
	tester.MoveTo(geometry.Pt(1, 1))

	core.SetDebugMode(false)
	defer core.SetDebugMode(true)
	defer func() {
		if recover() == nil {
			t.Error("expected the panic to propagate")
		}
	}()
	tester.Press(input.MouseButtonLeft)
}

func TestWindow_BuilderAttributes(t *testing.T) {
	focused := value.NewDynamic(true)
	occluded := value.NewDynamic(true)
	w := window.ForWidget(box(1, 1)).
		WithTitle("Demo").
		WithInnerSize(geometry.Sz(320, 240)).
		WithResizable(false).
		WithFocused(focused).
		WithOccluded(occluded)
	if focused.Get() || occluded.Get() {
		t.Fatal("bound cells should reset to false")
	}

	host := wintest.NewFakeHost(geometry.Sz(10, 10))
	host.IsFocused = true
	runtime := w.Open(host)
	if host.Title != "Demo" {
		t.Errorf("title = %q", host.Title)
	}
	if resize, _ := host.LastResize(); resize != geometry.Sz(320, 240) {
		t.Errorf("initial size request = %+v", resize)
	}
	if !focused.Get() {
		t.Error("open should pick up the host focus state")
	}

	host.IsFocused = false
	host.IsOccluded = true
	runtime.FocusChanged()
	runtime.OcclusionChanged()
	if focused.Get() || !occluded.Get() {
		t.Error("lifecycle callbacks should update the cells")
	}
	if !runtime.Window().Occluded() {
		t.Error("running window should report occlusion")
	}
}

func TestHandleCommand_Redraw(t *testing.T) {
	host := wintest.NewFakeHost(geometry.Sz(10, 10))
	runtime := window.ForWidget(box(1, 1)).Open(host)
	before := host.Redraws
	runtime.HandleCommand(window.CommandRedraw)
	if host.Redraws != before+1 {
		t.Error("redraw command should schedule a frame")
	}
}

func TestFrameTrace(t *testing.T) {
	host := wintest.NewFakeHost(geometry.Sz(100, 100))
	tester := wintest.NewWindowTesterFor(window.ForWidget(widgets.Columns(box(10, 10), box(10, 10))).WithFrameTrace(4), host)
	for range 6 {
		tester.Pump()
	}
	timeline := tester.Runtime.FrameTrace().Snapshot()
	if len(timeline.Samples) != 4 {
		t.Fatalf("samples = %d, want 4", len(timeline.Samples))
	}
	last := timeline.Samples[len(timeline.Samples)-1]
	if last.Counts.WidgetCount != 3 || last.Counts.PaintedCount != 3 {
		t.Errorf("counts = %+v", last.Counts)
	}
	if last.Flags.Initial || !last.Flags.Clipped {
		t.Errorf("flags = %+v", last.Flags)
	}
	if window.ForWidget(box(1, 1)).Open(host).FrameTrace() != nil {
		t.Error("tracing should be off by default")
	}
}

type handlerFunc func(*errors.WindowError)

func (f handlerFunc) HandleError(err *errors.WindowError) { f(err) }

func (f handlerFunc) HandlePanic(*errors.PanicError) {}

type panicHandler func(*errors.PanicError)

func (f panicHandler) HandleError(*errors.WindowError) {}

func (f panicHandler) HandlePanic(err *errors.PanicError) { f(err) }

func TestFrameTraceBufferWrapsOldestFirst(t *testing.T) {
	buf := window.NewFrameTraceBuffer(3, time.Millisecond)
	if got := buf.Snapshot().Samples; len(got) != 0 {
		t.Fatalf("empty buffer returned %d samples", len(got))
	}
	for i := range 5 {
		buf.Add(window.FrameSample{Timestamp: int64(i), FrameMs: float64(i)}, time.Duration(i)*time.Millisecond)
	}

	timeline := buf.Snapshot()
	var stamps []int64
	for _, sample := range timeline.Samples {
		stamps = append(stamps, sample.Timestamp)
	}
	if !slices.Equal(stamps, []int64{2, 3, 4}) {
		t.Errorf("timestamps = %v, want [2 3 4]", stamps)
	}
	if timeline.SlowFrames != 3 {
		t.Errorf("slow frames = %d, want 3", timeline.SlowFrames)
	}
	if slowest, ok := timeline.Slowest(); !ok || slowest.Timestamp != 4 {
		t.Errorf("slowest = %+v", slowest)
	}
}
