// Package termhost runs a window runtime inside a terminal using Bubble Tea.
package termhost

import (
	"errors"
	"sync"

	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/input"
)

// ErrFixedSize is returned when the runtime asks the terminal to resize.
var ErrFixedSize = errors.New("termhost: the terminal size is controlled by the user")

// Host is the window host backed by a terminal. Its inner size is the
// terminal size in cells times the cell metrics.
type Host struct {
	mu sync.Mutex

	cols, rows int
	focused    bool
	modifiers  input.Modifiers
	title      string
	minSize    *geometry.Size
	maxSize    *geometry.Size
	dirty      bool
}

// NewHost returns a focused host with no size until the terminal reports
// one.
func NewHost() *Host {
	return &Host{focused: true, dirty: true}
}

func (h *Host) InnerSize() geometry.Size {
	h.mu.Lock()
	defer h.mu.Unlock()
	return geometry.Sz(geometry.UPx(h.cols*CellWidth), geometry.UPx(h.rows*CellHeight))
}

func (h *Host) Scale() float32 { return 1 }

// Resizable is always true: the user resizes the terminal.
func (h *Host) Resizable() bool { return true }

func (h *Host) Focused() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.focused
}

func (h *Host) Occluded() bool { return false }

func (h *Host) Modifiers() input.Modifiers {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.modifiers
}

func (h *Host) SetTitle(title string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.title = title
}

func (h *Host) SetMinInnerSize(size *geometry.Size) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.minSize = size
}

func (h *Host) SetMaxInnerSize(size *geometry.Size) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.maxSize = size
}

func (h *Host) RequestInnerSize(geometry.Size) error {
	return ErrFixedSize
}

func (h *Host) SetNeedsRedraw() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dirty = true
}

// Title returns the last title set by the runtime.
func (h *Host) Title() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.title
}

// Cells returns the terminal size in cells.
func (h *Host) Cells() (cols, rows int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cols, h.rows
}

// TooSmall reports whether the terminal is below the minimum size the
// runtime asked for.
func (h *Host) TooSmall() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.minSize == nil {
		return false
	}
	return geometry.UPx(h.cols*CellWidth) < h.minSize.Width || geometry.UPx(h.rows*CellHeight) < h.minSize.Height
}

func (h *Host) resize(cols, rows int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cols, h.rows = max(cols, 0), max(rows, 0)
	h.dirty = true
}

func (h *Host) setFocused(focused bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.focused = focused
}

func (h *Host) setModifiers(m input.Modifiers) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.modifiers = m
}

// takeDirty reports whether a redraw was requested since the last call.
func (h *Host) takeDirty() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	dirty := h.dirty
	h.dirty = false
	return dirty
}
