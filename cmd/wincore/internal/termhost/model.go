package termhost

import (
	"image/color"
	"log/slog"
	"maps"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	werrors "github.com/go-drift/wincore/pkg/errors"
	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/input"
	"github.com/go-drift/wincore/pkg/window"
)

const tooSmallHint = "terminal too small for this window"

var hintColor = color.RGBA{R: 0x6B, G: 0x72, B: 0x80, A: 0xFF}

// Model is a Bubble Tea model that hosts one window.
type Model struct {
	host    *Host
	runtime *window.Runtime
	log     *slog.Logger

	pressed map[input.MouseButton]bool
	grid    *Grid
	frame   string
}

// New opens w on a terminal host.
func New(w *window.Window) *Model {
	host := NewHost()
	return &Model{
		host:    host,
		runtime: w.Open(host),
		log:     werrors.Logger().With("component", "termhost"),
		pressed: make(map[input.MouseButton]bool),
	}
}

// Run opens w and blocks until the window closes.
func Run(w *window.Window) error {
	p := tea.NewProgram(New(w), tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	_, err := p.Run()
	return err
}

// Runtime returns the hosted window runtime.
func (m *Model) Runtime() *window.Runtime {
	return m.runtime
}

// Host returns the terminal host.
func (m *Model) Host() *Host {
	return m.host
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.host.Title())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	handled := true
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.host.resize(msg.Width, msg.Height)
	case tea.FocusMsg:
		m.host.setFocused(true)
		m.runtime.FocusChanged()
	case tea.BlurMsg:
		m.host.setFocused(false)
		m.runtime.FocusChanged()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m.key(msg)
	case tea.MouseMsg:
		m.mouse(msg)
	default:
		handled = false
	}

	if m.runtime.ShouldClose() {
		return m, tea.Quit
	}
	if m.host.takeDirty() || handled {
		m.render()
	}
	return m, nil
}

func (m *Model) View() string {
	return m.frame
}

// Frame returns the most recently rendered frame.
func (m *Model) Frame() string {
	return m.frame
}

func (m *Model) render() {
	cols, rows := m.host.Cells()
	if cols == 0 || rows == 0 {
		m.grid = nil
		m.frame = ""
		return
	}
	surface := m.runtime.Theme().ColorScheme.Surface
	grid := NewGrid(cols, rows, surface)
	m.runtime.Prepare(grid)
	m.runtime.Render()
	// The hint replaces the bottom row so the grid keeps the size the
	// runtime laid out against.
	if m.host.TooSmall() {
		bottom := geometry.Px((rows - 1) * CellHeight)
		grid.FillRect(geometry.RectXYWH(0, bottom, geometry.UPx(cols*CellWidth), CellHeight), surface)
		grid.DrawText(tooSmallHint, geometry.Pt(0, bottom), hintColor)
	}
	m.grid = grid
	m.frame = grid.String()
}

// key delivers a press followed by a release, since terminals do not
// report key releases.
func (m *Model) key(msg tea.KeyMsg) {
	event, modifiers, ok := translateKey(msg)
	if !ok {
		m.log.Debug("unmapped key", slog.String("key", msg.String()))
		return
	}
	m.host.setModifiers(modifiers)
	defer m.host.setModifiers(0)

	m.runtime.KeyboardInput(keyboardDevice, event, false)
	if m.runtime.ShouldClose() {
		return
	}
	event.State = input.Released
	m.runtime.KeyboardInput(keyboardDevice, event, false)
}

func (m *Model) mouse(msg tea.MouseMsg) {
	m.host.setModifiers(mouseModifiers(msg))
	defer m.host.setModifiers(0)

	position := geometry.Pt(
		geometry.Px(msg.X*CellWidth+CellWidth/2),
		geometry.Px(msg.Y*CellHeight+CellHeight/2),
	)
	m.runtime.CursorMoved(mouseDevice, position)

	if tea.MouseEvent(msg).IsWheel() {
		m.runtime.MouseWheel(mouseDevice, wheelDelta(msg.Button), input.TouchPhaseMoved)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		button, ok := translateButton(msg.Button)
		if !ok {
			return
		}
		m.pressed[button] = true
		m.runtime.MouseInput(mouseDevice, input.Pressed, button)
	case tea.MouseActionRelease:
		// Some terminals report releases without the button.
		buttons := slices.Sorted(maps.Keys(m.pressed))
		if button, ok := translateButton(msg.Button); ok {
			buttons = []input.MouseButton{button}
		}
		for _, button := range buttons {
			delete(m.pressed, button)
			m.runtime.MouseInput(mouseDevice, input.Released, button)
		}
	}
}
