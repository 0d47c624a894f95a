package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import "fmt"

// NodeID is a handle to a node in a tree's arena. Handles are cheap to
// copy and generation-checked: after the node is removed, the handle goes
// stale and all lookups through it fail. The zero value is null.
type NodeID struct {
	index uint32
	gen   uint32
}

// IsNull denotes the zero handle.
func (id NodeID) IsNull() bool {
	return id.gen == 0
}

func (id NodeID) String() string {
	if id.IsNull() {
		return "node(null)"
	}
	return fmt.Sprintf("node(%d.%d)", id.index, id.gen)
}

// Node describes a node to be inserted: widget type name plus optional
// selector identity. Build one with NewNode and the With* methods.
type Node struct {
	typeName string
	id       string
	classes  []string
}

// NewNode describes a node of the given widget type, e.g. "Button".
func NewNode(typeName string) Node {
	return Node{typeName: typeName}
}

// WithID sets the node's unique id.
func (n Node) WithID(id string) Node {
	n.id = id
	return n
}

// WithClasses adds classes to the node.
func (n Node) WithClasses(classes ...string) Node {
	n.classes = append(n.classes[:len(n.classes):len(n.classes)], classes...)
	return n
}

// nodeData is the per-node state held in the arena.
type nodeData struct {
	typeName string
	id       string
	classes  []string
	pseudos  []string
}

func (d *nodeData) hasClass(class string) bool {
	for _, c := range d.classes {
		if c == class {
			return true
		}
	}
	return false
}

func (d *nodeData) hasPseudo(state string) bool {
	for _, p := range d.pseudos {
		if p == state {
			return true
		}
	}
	return false
}

// MutationListener observes tree mutations. NodeChanged reports a change
// of a single node's selector identity (id, classes, pseudo-states);
// SubtreeChanged reports a structural change affecting the node and
// everything below it (insert, move, remove).
type MutationListener interface {
	NodeChanged(NodeID)
	SubtreeChanged(NodeID)
}
