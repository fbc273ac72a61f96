package window

import (
	"os"
	"path/filepath"

	"github.com/go-drift/wincore/pkg/config"
	"github.com/go-drift/wincore/pkg/core"
	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/theme"
	"github.com/go-drift/wincore/pkg/value"
)

// DefaultTitle is used when neither the attributes nor the executable name
// provide a title.
const DefaultTitle = "wincore app"

// Attributes are the initial properties of a window.
type Attributes struct {
	Title string
	// InnerSize is the requested content size in physical pixels. Nil lets
	// the host choose.
	InnerSize *geometry.Size
	Resizable bool
}

// Behavior supplies a window's content and reacts to its lifecycle.
type Behavior interface {
	// MakeRoot returns the root widget. It is called once, when the window
	// opens.
	MakeRoot() core.Widget
	// CloseRequested reports whether the window may close.
	CloseRequested(w *RunningWindow) bool
}

// widgetBehavior shows a single widget and always allows closing.
type widgetBehavior struct {
	root core.Widget
}

func (b widgetBehavior) MakeRoot() core.Widget              { return b.root }
func (b widgetBehavior) CloseRequested(*RunningWindow) bool { return true }

// Window describes a window before it is opened.
type Window struct {
	Attributes Attributes

	behavior  Behavior
	focused   *value.Dynamic[bool]
	occluded  *value.Dynamic[bool]
	theme     *value.Dynamic[theme.ThemePair]
	traceSize int
}

// New returns a window driven by behavior.
func New(behavior Behavior) *Window {
	return &Window{
		Attributes: Attributes{Title: defaultTitle(), Resizable: true},
		behavior:   behavior,
	}
}

// ForWidget returns a window showing root.
func ForWidget(root core.Widget) *Window {
	return New(widgetBehavior{root: root})
}

func defaultTitle() string {
	if exe, err := os.Executable(); err == nil {
		if name := filepath.Base(exe); name != "" && name != "." {
			return name
		}
	}
	return DefaultTitle
}

// WithTitle sets the window title.
func (w *Window) WithTitle(title string) *Window {
	w.Attributes.Title = title
	return w
}

// WithInnerSize sets the requested content size.
func (w *Window) WithInnerSize(size geometry.Size) *Window {
	w.Attributes.InnerSize = &size
	return w
}

// WithResizable sets whether the user may resize the window.
func (w *Window) WithResizable(resizable bool) *Window {
	w.Attributes.Resizable = resizable
	return w
}

// WithFocused binds focused to the window's focus state. The cell is reset
// to false until the window reports focus.
func (w *Window) WithFocused(focused *value.Dynamic[bool]) *Window {
	focused.Set(false)
	w.focused = focused
	return w
}

// WithOccluded binds occluded to the window's occlusion state. The cell is
// reset to false until the window reports occlusion.
func (w *Window) WithOccluded(occluded *value.Dynamic[bool]) *Window {
	occluded.Set(false)
	w.occluded = occluded
	return w
}

// WithTheme uses a fixed theme pair.
func (w *Window) WithTheme(pair theme.ThemePair) *Window {
	w.theme = value.NewDynamic(pair)
	return w
}

// WithDynamicTheme uses a theme pair that may change while the window is
// open. The runtime picks up changes at the start of the next frame.
func (w *Window) WithDynamicTheme(pair *value.Dynamic[theme.ThemePair]) *Window {
	w.theme = pair
	return w
}

// WithFrameTrace keeps the last capacity frame samples. Zero disables
// tracing.
func (w *Window) WithFrameTrace(capacity int) *Window {
	w.traceSize = capacity
	return w
}

// WithConfig applies a resolved configuration file.
func (w *Window) WithConfig(cfg *config.Resolved) *Window {
	if cfg == nil {
		return w
	}
	if cfg.Title != "" {
		w.Attributes.Title = cfg.Title
	}
	if cfg.InnerSize != nil {
		size := *cfg.InnerSize
		w.Attributes.InnerSize = &size
	}
	w.Attributes.Resizable = cfg.Resizable
	return w.WithTheme(cfg.Theme)
}

// Open builds the widget tree and returns the runtime that host should
// drive.
func (w *Window) Open(host Host) *Runtime {
	focused := w.focused
	if focused == nil {
		focused = value.NewDynamic(false)
	}
	occluded := w.occluded
	if occluded == nil {
		occluded = value.NewDynamic(false)
	}
	themePair := w.theme
	if themePair == nil {
		themePair = value.NewDynamic(theme.DefaultThemePair())
	}
	focused.Update(host.Focused())
	occluded.Update(host.Occluded())

	host.SetTitle(w.Attributes.Title)
	if w.Attributes.InnerSize != nil {
		if err := host.RequestInnerSize(*w.Attributes.InnerSize); err != nil {
			reportHostError("window.Open", err)
		}
	}

	return newRuntime(runtimeOptions{
		host:      host,
		behavior:  w.behavior,
		window:    &RunningWindow{host: host, focused: focused, occluded: occluded},
		theme:     themePair,
		traceSize: w.traceSize,
	})
}
