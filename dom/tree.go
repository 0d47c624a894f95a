package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import "fmt"

// Tree is an arena-backed widget tree. The first node inserted without a
// parent becomes the root. A Tree is not safe for concurrent use.
type Tree struct {
	slots     []slot
	free      []uint32
	root      NodeID
	count     int
	listeners []MutationListener
}

type slot struct {
	gen      uint32
	occupied bool
	data     nodeData
	parent   NodeID
	children []NodeID
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// Listen attaches a mutation listener. Listeners are notified in
// attachment order on every subsequent mutation.
func (t *Tree) Listen(l MutationListener) {
	t.listeners = append(t.listeners, l)
}

func (t *Tree) notifyNode(id NodeID) {
	for _, l := range t.listeners {
		l.NodeChanged(id)
	}
}

func (t *Tree) notifySubtree(id NodeID) {
	for _, l := range t.listeners {
		l.SubtreeChanged(id)
	}
}

// Insert adds a parentless node. The first one becomes the tree's root.
func (t *Tree) Insert(n Node) NodeID {
	id := t.alloc(n)
	if t.root.IsNull() {
		t.root = id
	}
	tracer().Debugf("inserted %s %q", id, n.typeName)
	t.notifySubtree(id)
	return id
}

// InsertChild adds a node as the last child of parent.
func (t *Tree) InsertChild(parent NodeID, n Node) (NodeID, error) {
	ps := t.slot(parent)
	if ps == nil {
		return NodeID{}, fmt.Errorf("insert child: no such node %s", parent)
	}
	id := t.alloc(n)
	t.slots[id.index].parent = parent
	ps.children = append(ps.children, id)
	t.notifySubtree(id)
	return id, nil
}

// Remove deletes a node and its whole subtree. Handles into the subtree
// go stale. Removing the root leaves an empty tree.
func (t *Tree) Remove(id NodeID) error {
	s := t.slot(id)
	if s == nil {
		return fmt.Errorf("remove: no such node %s", id)
	}
	if !s.parent.IsNull() {
		t.detach(s.parent, id)
	}
	if t.root == id {
		t.root = NodeID{}
	}
	t.removeSubtree(id)
	t.notifySubtree(id)
	return nil
}

func (t *Tree) removeSubtree(id NodeID) {
	s := &t.slots[id.index]
	for _, child := range s.children {
		t.removeSubtree(child)
	}
	s.occupied = false
	s.data = nodeData{}
	s.parent = NodeID{}
	s.children = nil
	t.free = append(t.free, id.index)
	t.count--
}

// Reparent moves a node (keeping its subtree) below a new parent. Moving
// a node below itself or one of its descendants is an error.
func (t *Tree) Reparent(id, newParent NodeID) error {
	s := t.slot(id)
	if s == nil {
		return fmt.Errorf("reparent: no such node %s", id)
	}
	if t.slot(newParent) == nil {
		return fmt.Errorf("reparent: no such node %s", newParent)
	}
	for p := newParent; !p.IsNull(); p, _ = t.Parent(p) {
		if p == id {
			return fmt.Errorf("reparent: %s is an ancestor of %s", id, newParent)
		}
	}
	if !s.parent.IsNull() {
		t.detach(s.parent, id)
	}
	if t.root == id {
		t.root = NodeID{}
	}
	s.parent = newParent
	t.slots[newParent.index].children = append(t.slots[newParent.index].children, id)
	t.notifySubtree(id)
	return nil
}

// Parent returns a node's parent, ok=false for the root or stale handles.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	s := t.slot(id)
	if s == nil || s.parent.IsNull() {
		return NodeID{}, false
	}
	return s.parent, true
}

// Children returns a node's children in insertion order.
func (t *Tree) Children(id NodeID) []NodeID {
	s := t.slot(id)
	if s == nil || len(s.children) == 0 {
		return nil
	}
	children := make([]NodeID, len(s.children))
	copy(children, s.children)
	return children
}

// Ancestors returns the chain of ancestors, nearest first.
func (t *Tree) Ancestors(id NodeID) []NodeID {
	var chain []NodeID
	for p, ok := t.Parent(id); ok; p, ok = t.Parent(p) {
		chain = append(chain, p)
	}
	return chain
}

// Root returns the tree's root node, ok=false for an empty tree.
func (t *Tree) Root() (NodeID, bool) {
	return t.root, !t.root.IsNull()
}

// Contains denotes whether a handle is live.
func (t *Tree) Contains(id NodeID) bool {
	return t.slot(id) != nil
}

// Len counts the live nodes.
func (t *Tree) Len() int {
	return t.count
}

// WalkDepthFirst returns the subtree below start in preorder, start
// included.
func (t *Tree) WalkDepthFirst(start NodeID) []NodeID {
	s := t.slot(start)
	if s == nil {
		return nil
	}
	order := []NodeID{start}
	for _, child := range s.children {
		order = append(order, t.WalkDepthFirst(child)...)
	}
	return order
}

// WalkBreadthFirst returns the subtree below start level by level, start
// included.
func (t *Tree) WalkBreadthFirst(start NodeID) []NodeID {
	if t.slot(start) == nil {
		return nil
	}
	var order []NodeID
	queue := []NodeID{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		queue = append(queue, t.slots[id.index].children...)
	}
	return order
}

// TypeName returns a node's widget type name, "" for stale handles.
func (t *Tree) TypeName(id NodeID) string {
	if s := t.slot(id); s != nil {
		return s.data.typeName
	}
	return ""
}

// ID returns a node's id attribute, "" when unset.
func (t *Tree) ID(id NodeID) string {
	if s := t.slot(id); s != nil {
		return s.data.id
	}
	return ""
}

// SetID changes a node's id attribute.
func (t *Tree) SetID(id NodeID, nodeID string) {
	if s := t.slot(id); s != nil && s.data.id != nodeID {
		s.data.id = nodeID
		t.notifyNode(id)
	}
}

// Classes returns a node's classes.
func (t *Tree) Classes(id NodeID) []string {
	s := t.slot(id)
	if s == nil || len(s.data.classes) == 0 {
		return nil
	}
	classes := make([]string, len(s.data.classes))
	copy(classes, s.data.classes)
	return classes
}

// HasClass denotes whether a node carries a class.
func (t *Tree) HasClass(id NodeID, class string) bool {
	s := t.slot(id)
	return s != nil && s.data.hasClass(class)
}

// AddClass adds a class to a node; adding a present class is a no-op.
func (t *Tree) AddClass(id NodeID, class string) {
	s := t.slot(id)
	if s == nil || s.data.hasClass(class) {
		return
	}
	s.data.classes = append(s.data.classes, class)
	t.notifyNode(id)
}

// RemoveClass removes a class from a node; removing an absent class is a
// no-op.
func (t *Tree) RemoveClass(id NodeID, class string) {
	s := t.slot(id)
	if s == nil {
		return
	}
	for i, c := range s.data.classes {
		if c == class {
			s.data.classes = append(s.data.classes[:i], s.data.classes[i+1:]...)
			t.notifyNode(id)
			return
		}
	}
}

// ToggleClass adds an absent class or removes a present one.
func (t *Tree) ToggleClass(id NodeID, class string) {
	if t.HasClass(id, class) {
		t.RemoveClass(id, class)
	} else {
		t.AddClass(id, class)
	}
}

// Pseudos returns a node's active pseudo-states.
func (t *Tree) Pseudos(id NodeID) []string {
	s := t.slot(id)
	if s == nil || len(s.data.pseudos) == 0 {
		return nil
	}
	pseudos := make([]string, len(s.data.pseudos))
	copy(pseudos, s.data.pseudos)
	return pseudos
}

// HasPseudo denotes whether a pseudo-state is active on a node.
func (t *Tree) HasPseudo(id NodeID, state string) bool {
	s := t.slot(id)
	return s != nil && s.data.hasPseudo(state)
}

// SetPseudo activates a pseudo-state on a node, e.g. "hover".
func (t *Tree) SetPseudo(id NodeID, state string) {
	s := t.slot(id)
	if s == nil || s.data.hasPseudo(state) {
		return
	}
	s.data.pseudos = append(s.data.pseudos, state)
	t.notifyNode(id)
}

// ClearPseudo deactivates a pseudo-state on a node.
func (t *Tree) ClearPseudo(id NodeID, state string) {
	s := t.slot(id)
	if s == nil {
		return
	}
	for i, p := range s.data.pseudos {
		if p == state {
			s.data.pseudos = append(s.data.pseudos[:i], s.data.pseudos[i+1:]...)
			t.notifyNode(id)
			return
		}
	}
}

// alloc places node data in a fresh or recycled slot.
func (t *Tree) alloc(n Node) NodeID {
	data := nodeData{typeName: n.typeName, id: n.id, classes: n.classes}
	t.count++
	if len(t.free) > 0 {
		index := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		s := &t.slots[index]
		s.gen++
		s.occupied = true
		s.data = data
		return NodeID{index: index, gen: s.gen}
	}
	t.slots = append(t.slots, slot{gen: 1, occupied: true, data: data})
	return NodeID{index: uint32(len(t.slots) - 1), gen: 1}
}

// slot resolves a handle, nil for null, stale or foreign handles.
func (t *Tree) slot(id NodeID) *slot {
	if id.IsNull() || int(id.index) >= len(t.slots) {
		return nil
	}
	s := &t.slots[id.index]
	if !s.occupied || s.gen != id.gen {
		return nil
	}
	return s
}

// detach removes child from parent's children list.
func (t *Tree) detach(parent, child NodeID) {
	s := &t.slots[parent.index]
	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}
