package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-drift/wincore/cmd/wincore/internal/termhost"
	"github.com/go-drift/wincore/pkg/config"
	"github.com/go-drift/wincore/pkg/core"
	werrors "github.com/go-drift/wincore/pkg/errors"
	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/theme"
	"github.com/go-drift/wincore/pkg/widgets"
	"github.com/go-drift/wincore/pkg/window"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Run the counter demo in the terminal",
		Long: `Run a small counter window in the terminal.

Click the buttons or use the keyboard: Tab and Shift+Tab move focus, Space
presses the focused button, Enter presses "+1" and Escape presses "Reset".
Ctrl+W closes the window.

The window configuration is resolved from the given directory (default:
the current one), as "wincore config" shows it. Logs are written to
wincore-demo.log in the temporary directory.`,
		Usage: "wincore demo [dir]",
		Run:   runDemo,
	})
}

// counterApp is the demo window behavior.
type counterApp struct {
	clicks int
}

func (a *counterApp) MakeRoot() core.Widget {
	label := &widgets.Custom{
		OnLayout: func(available geometry.Constraints, ctx *core.LayoutContext) geometry.Size {
			return available.FitMeasured(geometry.Sz(
				geometry.Lpx(24*widgets.CharWidth).IntoUPx(ctx.Window().Scale()),
				geometry.Lpx(widgets.LineHeight).IntoUPx(ctx.Window().Scale()),
			))
		},
		OnRedraw: func(ctx *core.GraphicsContext) {
			ctx.DrawText(fmt.Sprintf("Clicks: %d", a.clicks), geometry.Point{}, ctx.Theme().ColorScheme.OnSurface)
		},
	}
	increment := widgets.NewButton("+1", func() { a.clicks++ }).AsDefault()
	reset := widgets.NewButton("Reset", func() { a.clicks = 0 }).AsEscape()
	swatch := &widgets.Space{Color: theme.DarkColorScheme().Primary, Width: geometry.Lpx(4 * widgets.CharWidth), Height: geometry.Lpx(widgets.LineHeight), Focusable: true}

	return widgets.ResizeWithin(
		geometry.AtLeast(geometry.Lpx(24*widgets.CharWidth)),
		geometry.AtLeast(geometry.Lpx(3*widgets.LineHeight)),
		widgets.Rows(
			label,
			widgets.Columns(increment, reset, swatch).WithGap(widgets.CharWidth),
		).WithGap(widgets.LineHeight),
	)
}

func (a *counterApp) CloseRequested(*window.RunningWindow) bool {
	return true
}

func runDemo(args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	resolved, err := config.Resolve(dir)
	if err != nil {
		return err
	}

	logPath := filepath.Join(os.TempDir(), "wincore-demo.log")
	logFile, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("create log file: %w", err)
	}
	defer logFile.Close()
	werrors.SetLogger(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: logLevel})))
	defer werrors.SetLogger(nil)

	w := window.New(&counterApp{}).WithConfig(resolved)
	return termhost.Run(w)
}
