// Package focus computes keyboard focus traversal order.
package focus

import (
	"cmp"
	"slices"

	"github.com/go-drift/wincore/pkg/geometry"
)

// HorizontalOrder is the direction focus travels within a row.
type HorizontalOrder int

const (
	// LeftToRight visits smaller x first.
	LeftToRight HorizontalOrder = iota
	// RightToLeft visits larger x first.
	RightToLeft
)

// Rev returns the opposite horizontal order.
func (o HorizontalOrder) Rev() HorizontalOrder {
	if o == LeftToRight {
		return RightToLeft
	}
	return LeftToRight
}

// VerticalOrder is the direction focus travels between rows.
type VerticalOrder int

const (
	// TopToBottom visits smaller y first.
	TopToBottom VerticalOrder = iota
	// BottomToTop visits larger y first.
	BottomToTop
)

// Rev returns the opposite vertical order.
func (o VerticalOrder) Rev() VerticalOrder {
	if o == TopToBottom {
		return BottomToTop
	}
	return TopToBottom
}

// VisualOrder is the order Tab moves focus in.
type VisualOrder struct {
	Horizontal HorizontalOrder
	Vertical   VerticalOrder
	// reversed flips the id tie-break so that a reversed order visits
	// candidates in exactly the opposite sequence.
	reversed bool
}

// DefaultVisualOrder returns left-to-right, top-to-bottom.
func DefaultVisualOrder() VisualOrder {
	return VisualOrder{Horizontal: LeftToRight, Vertical: TopToBottom}
}

// Rev returns the exact reverse of o.
func (o VisualOrder) Rev() VisualOrder {
	return VisualOrder{
		Horizontal: o.Horizontal.Rev(),
		Vertical:   o.Vertical.Rev(),
		reversed:   !o.reversed,
	}
}

// Candidate is a focusable widget and its last layout rectangle.
type Candidate[K cmp.Ordered] struct {
	Key  K
	Rect geometry.Rect
}

// Sort orders candidates by row, then column, then key. Keys must be unique
// so the order is total.
func Sort[K cmp.Ordered](candidates []Candidate[K], order VisualOrder) {
	slices.SortFunc(candidates, func(a, b Candidate[K]) int {
		c := cmp.Compare(a.Rect.Origin.Y, b.Rect.Origin.Y)
		if order.Vertical == BottomToTop {
			c = -c
		}
		if c != 0 {
			return c
		}
		c = cmp.Compare(a.Rect.Origin.X, b.Rect.Origin.X)
		if order.Horizontal == RightToLeft {
			c = -c
		}
		if c != 0 {
			return c
		}
		c = cmp.Compare(a.Key, b.Key)
		if order.reversed {
			c = -c
		}
		return c
	})
}

// Next returns the candidate after current in order, wrapping at the end.
// When hasCurrent is false, or current is not a candidate, the first
// candidate is returned. It reports false when there are no candidates.
func Next[K cmp.Ordered](candidates []Candidate[K], current K, hasCurrent bool, order VisualOrder) (K, bool) {
	var zero K
	if len(candidates) == 0 {
		return zero, false
	}
	sorted := slices.Clone(candidates)
	Sort(sorted, order)

	currentIndex := -1
	if hasCurrent {
		currentIndex = slices.IndexFunc(sorted, func(c Candidate[K]) bool { return c.Key == current })
	}
	return sorted[wrapIndex(currentIndex+1, len(sorted))].Key, true
}

// First returns the first candidate in order.
func First[K cmp.Ordered](candidates []Candidate[K], order VisualOrder) (K, bool) {
	var zero K
	return Next(candidates, zero, false, order)
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
