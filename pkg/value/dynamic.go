// Package value provides externally-updatable cells shared between a
// window host and the runtime, such as the focused and occluded flags and
// the active theme.
package value

import "sync"

// Dynamic is a value that can be updated from any goroutine. Readers created
// with Reader observe whether it changed since they last looked.
type Dynamic[T comparable] struct {
	mu         sync.Mutex
	value      T
	generation uint64
	onChange   []func(T)
}

// NewDynamic returns a cell holding initial.
func NewDynamic[T comparable](initial T) *Dynamic[T] {
	return &Dynamic[T]{value: initial}
}

// Get returns the current value.
func (d *Dynamic[T]) Get() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value
}

// Set stores v and notifies observers even if v equals the current value.
func (d *Dynamic[T]) Set(v T) {
	d.mu.Lock()
	d.value = v
	d.generation++
	callbacks := append([]func(T){}, d.onChange...)
	d.mu.Unlock()
	for _, fn := range callbacks {
		fn(v)
	}
}

// Update stores v only when it differs from the current value. It reports
// whether the value changed.
func (d *Dynamic[T]) Update(v T) bool {
	d.mu.Lock()
	if d.value == v {
		d.mu.Unlock()
		return false
	}
	d.mu.Unlock()
	d.Set(v)
	return true
}

// OnChange registers fn to run after every Set. Callbacks run on the
// goroutine that performed the update.
func (d *Dynamic[T]) OnChange(fn func(T)) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	d.onChange = append(d.onChange, fn)
	d.mu.Unlock()
}

// Reader returns a change-tracking view of d. A fresh reader reports no
// update until the next Set.
func (d *Dynamic[T]) Reader() *Reader[T] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return &Reader[T]{source: d, seen: d.generation}
}

// Reader tracks which generation of a Dynamic it last read.
type Reader[T comparable] struct {
	source *Dynamic[T]
	seen   uint64
}

// HasUpdated reports whether the source changed since the last Get.
func (r *Reader[T]) HasUpdated() bool {
	r.source.mu.Lock()
	defer r.source.mu.Unlock()
	return r.source.generation != r.seen
}

// Get returns the current value and marks it as seen.
func (r *Reader[T]) Get() T {
	r.source.mu.Lock()
	defer r.source.mu.Unlock()
	r.seen = r.source.generation
	return r.source.value
}
