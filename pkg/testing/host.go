package testing

import (
	"sync"

	"github.com/go-drift/wincore/pkg/geometry"
	"github.com/go-drift/wincore/pkg/input"
)

// FakeHost is an in-memory window host. It records every request the
// runtime makes.
type FakeHost struct {
	mu sync.Mutex

	Size          geometry.Size
	ScaleFactor   float32
	IsResizable   bool
	IsFocused     bool
	IsOccluded    bool
	HeldModifiers input.Modifiers

	// ApplyResizes makes RequestInnerSize change Size.
	ApplyResizes bool
	// ResizeError is returned from RequestInnerSize when set.
	ResizeError error

	Title          string
	MinSizes       []*geometry.Size
	MaxSizes       []*geometry.Size
	ResizeRequests []geometry.Size
	Redraws        int
}

// NewFakeHost returns a resizable host of the given size at scale 1.
func NewFakeHost(size geometry.Size) *FakeHost {
	return &FakeHost{Size: size, ScaleFactor: 1, IsResizable: true}
}

func (h *FakeHost) InnerSize() geometry.Size {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Size
}

func (h *FakeHost) Scale() float32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ScaleFactor
}

func (h *FakeHost) Resizable() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.IsResizable
}

func (h *FakeHost) Focused() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.IsFocused
}

func (h *FakeHost) Occluded() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.IsOccluded
}

func (h *FakeHost) Modifiers() input.Modifiers {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.HeldModifiers
}

func (h *FakeHost) SetTitle(title string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Title = title
}

func (h *FakeHost) SetMinInnerSize(size *geometry.Size) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.MinSizes = append(h.MinSizes, copySize(size))
}

func (h *FakeHost) SetMaxInnerSize(size *geometry.Size) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.MaxSizes = append(h.MaxSizes, copySize(size))
}

func (h *FakeHost) RequestInnerSize(size geometry.Size) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ResizeRequests = append(h.ResizeRequests, size)
	if h.ResizeError != nil {
		return h.ResizeError
	}
	if h.ApplyResizes {
		h.Size = size
	}
	return nil
}

func (h *FakeHost) SetNeedsRedraw() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Redraws++
}

// SetModifiers changes the held modifiers.
func (h *FakeHost) SetModifiers(m input.Modifiers) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.HeldModifiers = m
}

// LastMinSize returns the most recent minimum size pushed by the runtime.
func (h *FakeHost) LastMinSize() (*geometry.Size, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.MinSizes) == 0 {
		return nil, false
	}
	return h.MinSizes[len(h.MinSizes)-1], true
}

// LastResize returns the most recent resize request.
func (h *FakeHost) LastResize() (geometry.Size, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.ResizeRequests) == 0 {
		return geometry.Size{}, false
	}
	return h.ResizeRequests[len(h.ResizeRequests)-1], true
}

func copySize(size *geometry.Size) *geometry.Size {
	if size == nil {
		return nil
	}
	c := *size
	return &c
}
