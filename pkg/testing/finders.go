package testing

import (
	"fmt"
	"reflect"

	"github.com/go-drift/wincore/pkg/core"
)

// Finder locates widgets in a tree.
type Finder interface {
	// Evaluate returns all matching widgets in depth-first pre-order.
	Evaluate(tree *core.Tree) []*core.ManagedWidget
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	widgets []*core.ManagedWidget
	finder  Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *core.ManagedWidget {
	if len(r.widgets) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no widgets: %s", desc))
	}
	return r.widgets[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *core.ManagedWidget {
	if index < 0 || index >= len(r.widgets) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d)", index, len(r.widgets)))
	}
	return r.widgets[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*core.ManagedWidget {
	return r.widgets
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.widgets)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.widgets) > 0
}

type predicateFinder struct {
	match       func(core.Widget) bool
	description string
}

func (f predicateFinder) Evaluate(tree *core.Tree) []*core.ManagedWidget {
	var found []*core.ManagedWidget
	tree.Walk(func(w *core.ManagedWidget) {
		guard := w.Lock()
		matched := f.match(guard.Widget())
		guard.Unlock()
		if matched {
			found = append(found, w)
		}
	})
	return found
}

func (f predicateFinder) Description() string {
	return f.description
}

// ByType finds widgets whose concrete type is T.
func ByType[T core.Widget]() Finder {
	typ := reflect.TypeFor[T]()
	return predicateFinder{
		match: func(w core.Widget) bool {
			_, ok := w.(T)
			return ok
		},
		description: "type " + typ.String(),
	}
}

// ByWidget finds the node holding target.
func ByWidget(target core.Widget) Finder {
	return predicateFinder{
		match:       func(w core.Widget) bool { return w == target },
		description: fmt.Sprintf("widget %T(%p)", target, target),
	}
}

// ByPredicate finds widgets for which match returns true.
func ByPredicate(description string, match func(core.Widget) bool) Finder {
	return predicateFinder{match: match, description: description}
}
