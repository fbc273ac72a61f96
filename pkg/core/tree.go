package core

import (
	"fmt"
	"iter"
	"slices"
	"sync/atomic"

	"github.com/go-drift/wincore/pkg/errors"
	"github.com/go-drift/wincore/pkg/geometry"
)

// Node is one mounted widget plus its tree linkage.
type Node struct {
	id       WidgetID
	widget   Widget
	held     atomic.Bool
	parent   WidgetID // zero for the root
	children []WidgetID

	layout    geometry.Rect // window coordinates, written when painted
	hasLayout bool

	childLayout    geometry.Rect // relative to the parent, written during layout
	hasChildLayout bool
}

// Tree owns the mounted widgets of one window.
type Tree struct {
	nodes  map[WidgetID]*Node
	nextID WidgetID
	root   *Node

	focused       WidgetID
	hovered       WidgetID
	defaultWidget WidgetID
	escapeWidget  WidgetID

	renderOrder []WidgetID
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{nodes: make(map[WidgetID]*Node)}
}

// Push mounts w under parent and returns its handle. A nil parent makes w
// the root; the root can only be set once. Children exposed through
// Wrapper and ChildVisitor are mounted recursively.
func (t *Tree) Push(w Widget, parent *ManagedWidget) *ManagedWidget {
	return t.push(&WidgetRef{widget: w}, parent)
}

// PushRef is like Push but records the mounted node in ref.
func (t *Tree) PushRef(ref *WidgetRef, parent *ManagedWidget) *ManagedWidget {
	if ref.mounted != nil {
		return ref.mounted
	}
	return t.push(ref, parent)
}

func (t *Tree) push(ref *WidgetRef, parent *ManagedWidget) *ManagedWidget {
	if ref.widget == nil {
		panic("core: cannot push a nil widget")
	}
	if parent == nil && t.root != nil {
		panic("core: tree root is already set")
	}
	if parent != nil && parent.tree != t {
		panic("core: parent belongs to a different tree")
	}

	t.nextID++
	node := &Node{id: t.nextID, widget: ref.widget}
	if parent != nil {
		node.parent = parent.node.id
		parent.node.children = append(parent.node.children, node.id)
	} else {
		t.root = node
	}
	t.nodes[node.id] = node

	managed := &ManagedWidget{node: node, tree: t}
	ref.mounted = managed
	t.mountChildren(managed)
	return managed
}

func (t *Tree) mountChildren(m *ManagedWidget) {
	visit := func(ref *WidgetRef) {
		if ref == nil || ref.mounted != nil {
			return
		}
		t.push(ref, m)
	}
	if wrapper, ok := m.node.widget.(Wrapper); ok {
		visit(wrapper.Wraps())
	}
	if parent, ok := m.node.widget.(ChildVisitor); ok {
		parent.VisitChildren(visit)
	}
}

// Widget returns the node for id. It reports false when id is unknown; the
// caller should treat the target as vanished.
func (t *Tree) Widget(id WidgetID) (*ManagedWidget, bool) {
	node, ok := t.nodes[id]
	if !ok {
		return nil, false
	}
	return &ManagedWidget{node: node, tree: t}, true
}

// Root returns the root widget, or nil before the root is pushed.
func (t *Tree) Root() *ManagedWidget {
	if t.root == nil {
		return nil
	}
	return &ManagedWidget{node: t.root, tree: t}
}

// Len returns the number of mounted nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Walk visits every node in depth-first pre-order starting at the root.
func (t *Tree) Walk(fn func(*ManagedWidget)) {
	if t.root == nil {
		return
	}
	stack := []WidgetID{t.root.id}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node, ok := t.nodes[id]
		if !ok {
			continue
		}
		fn(&ManagedWidget{node: node, tree: t})
		for i := len(node.children) - 1; i >= 0; i-- {
			stack = append(stack, node.children[i])
		}
	}
}

// FocusedWidget returns the widget with keyboard focus.
func (t *Tree) FocusedWidget() (WidgetID, bool) {
	return t.live(t.focused)
}

// HoveredWidget returns the deepest hovered widget.
func (t *Tree) HoveredWidget() (WidgetID, bool) {
	return t.live(t.hovered)
}

// DefaultWidget returns the widget activated by the confirm key.
func (t *Tree) DefaultWidget() (WidgetID, bool) {
	return t.live(t.defaultWidget)
}

// EscapeWidget returns the widget activated by the cancel key.
func (t *Tree) EscapeWidget() (WidgetID, bool) {
	return t.live(t.escapeWidget)
}

// SetDefaultWidget makes id the confirm-key target. It reports false and
// leaves the slot unchanged when id is not mounted.
func (t *Tree) SetDefaultWidget(id WidgetID) bool {
	if _, ok := t.nodes[id]; !ok {
		return false
	}
	t.defaultWidget = id
	return true
}

// ClearDefaultWidget empties the confirm-key slot.
func (t *Tree) ClearDefaultWidget() {
	t.defaultWidget = 0
}

// SetEscapeWidget makes id the cancel-key target. It reports false and
// leaves the slot unchanged when id is not mounted.
func (t *Tree) SetEscapeWidget(id WidgetID) bool {
	if _, ok := t.nodes[id]; !ok {
		return false
	}
	t.escapeWidget = id
	return true
}

// ClearEscapeWidget empties the cancel-key slot.
func (t *Tree) ClearEscapeWidget() {
	t.escapeWidget = 0
}

func (t *Tree) live(id WidgetID) (WidgetID, bool) {
	if id == 0 {
		return 0, false
	}
	if _, ok := t.nodes[id]; !ok {
		return 0, false
	}
	return id, true
}

// ResetRenderOrder clears the render order. Call once per frame before
// painting.
func (t *Tree) ResetRenderOrder() {
	t.renderOrder = t.renderOrder[:0]
}

// RecordVisit appends id to this frame's render order.
func (t *Tree) RecordVisit(id WidgetID) {
	t.renderOrder = append(t.renderOrder, id)
}

// RenderOrder returns a copy of this frame's render order.
func (t *Tree) RenderOrder() []WidgetID {
	return slices.Clone(t.renderOrder)
}

// WidgetsAtPoint yields the widgets whose last layout contains p, topmost
// (most recently painted) first. The render order is captured when
// WidgetsAtPoint is called.
func (t *Tree) WidgetsAtPoint(p geometry.Point) iter.Seq[*ManagedWidget] {
	order := slices.Clone(t.renderOrder)
	return func(yield func(*ManagedWidget) bool) {
		seen := make(map[WidgetID]struct{}, len(order))
		for i := len(order) - 1; i >= 0; i-- {
			id := order[i]
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			node, ok := t.nodes[id]
			if !ok || !node.hasLayout || !node.layout.Contains(p) {
				continue
			}
			if !yield(&ManagedWidget{node: node, tree: t}) {
				return
			}
		}
	}
}

// HoverChanges lists the widgets whose hover state changed.
type HoverChanges struct {
	// Unhovered are widgets that left the hover chain, deepest first.
	Unhovered []*ManagedWidget
	// Hovered are widgets that joined the hover chain, deepest first.
	Hovered []*ManagedWidget
}

// setHovered makes id (and its ancestors) hovered. Zero clears hover.
func (t *Tree) setHovered(id WidgetID) HoverChanges {
	oldChain := t.ancestry(t.hovered)
	newChain := t.ancestry(id)
	if _, ok := t.nodes[id]; ok {
		t.hovered = id
	} else {
		t.hovered = 0
	}

	var changes HoverChanges
	for _, old := range oldChain {
		if !slices.Contains(newChain, old) {
			if m, ok := t.Widget(old); ok {
				changes.Unhovered = append(changes.Unhovered, m)
			}
		}
	}
	for _, added := range newChain {
		if !slices.Contains(oldChain, added) {
			if m, ok := t.Widget(added); ok {
				changes.Hovered = append(changes.Hovered, m)
			}
		}
	}
	return changes
}

// setFocused stores id in the focus slot and returns the previous value.
func (t *Tree) setFocused(id WidgetID) WidgetID {
	previous := t.focused
	t.focused = id
	return previous
}

// ancestry returns id followed by its ancestors up to the root.
func (t *Tree) ancestry(id WidgetID) []WidgetID {
	var chain []WidgetID
	for id != 0 {
		node, ok := t.nodes[id]
		if !ok {
			break
		}
		chain = append(chain, id)
		id = node.parent
	}
	return chain
}

// isDescendant reports whether id is ancestor or lies beneath it.
func (t *Tree) isDescendant(id, ancestor WidgetID) bool {
	return slices.Contains(t.ancestry(id), ancestor)
}

// ManagedWidget is a handle to a mounted node.
type ManagedWidget struct {
	node *Node
	tree *Tree
}

// ID returns the node's id.
func (m *ManagedWidget) ID() WidgetID {
	return m.node.id
}

// Tree returns the owning tree.
func (m *ManagedWidget) Tree() *Tree {
	return m.tree
}

// Is reports whether m and other refer to the same node.
func (m *ManagedWidget) Is(other *ManagedWidget) bool {
	return other != nil && m.node == other.node
}

// TypeName returns the Go type of the widget, for diagnostics.
func (m *ManagedWidget) TypeName() string {
	return fmt.Sprintf("%T", m.node.widget)
}

// Lock acquires exclusive access to the widget. It panics with
// *errors.ReentrancyError if the widget is already locked.
func (m *ManagedWidget) Lock() *WidgetGuard {
	if !m.node.held.CompareAndSwap(false, true) {
		panic(&errors.ReentrancyError{Widget: uint64(m.node.id), Type: m.TypeName()})
	}
	return &WidgetGuard{node: m.node}
}

// IsLocked reports whether a handler on this widget is currently running.
func (m *ManagedWidget) IsLocked() bool {
	return m.node.held.Load()
}

// LastLayout returns the rectangle the widget was last painted at, in
// window coordinates.
func (m *ManagedWidget) LastLayout() (geometry.Rect, bool) {
	return m.node.layout, m.node.hasLayout
}

// SetLayout records the widget's rectangle in window coordinates.
func (m *ManagedWidget) SetLayout(rect geometry.Rect) {
	m.node.layout = rect
	m.node.hasLayout = true
}

// Parent returns the parent widget. It reports false for the root, or when
// the parent has vanished.
func (m *ManagedWidget) Parent() (*ManagedWidget, bool) {
	if m.node.parent == 0 {
		return nil, false
	}
	return m.tree.Widget(m.node.parent)
}

// Children returns the mounted children in mount order.
func (m *ManagedWidget) Children() []*ManagedWidget {
	children := make([]*ManagedWidget, 0, len(m.node.children))
	for _, id := range m.node.children {
		if child, ok := m.tree.Widget(id); ok {
			children = append(children, child)
		}
	}
	return children
}

// WidgetGuard is exclusive access to a widget, released by Unlock.
type WidgetGuard struct {
	node *Node
}

// Widget returns the guarded widget.
func (g *WidgetGuard) Widget() Widget {
	return g.node.widget
}

// Unlock releases the guard. Unlocking twice is a no-op.
func (g *WidgetGuard) Unlock() {
	if g.node == nil {
		return
	}
	g.node.held.Store(false)
	g.node = nil
}
