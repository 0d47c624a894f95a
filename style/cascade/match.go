package cascade

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import "github.com/khalidelborai/gilt-tui/css/parser"

// Node is the selector identity the cascade matches against. The styled
// tree adapts its node handles to this interface.
type Node interface {
	Type() string
	ID() string
	HasClass(name string) bool
	HasPseudo(state string) bool
	Parent() (Node, bool)
}

// Matches denotes whether a selector matches a node, walking the node's
// ancestry for combinators.
func Matches(sel parser.Selector, node Node) bool {
	if len(sel.Compounds) == 0 {
		return false
	}
	return matchFrom(sel, len(sel.Compounds)-1, node)
}

// matchFrom matches sel.Compounds[0..k] with compound k anchored at node.
func matchFrom(sel parser.Selector, k int, node Node) bool {
	if !matchCompound(sel.Compounds[k], node) {
		return false
	}
	if k == 0 {
		return true
	}
	switch sel.Combinators[k-1] {
	case parser.Child:
		p, ok := node.Parent()
		return ok && matchFrom(sel, k-1, p)
	default: // descendant: some ancestor must match the remaining chain
		for p, ok := node.Parent(); ok; p, ok = p.Parent() {
			if matchFrom(sel, k-1, p) {
				return true
			}
		}
		return false
	}
}

// matchCompound checks all constraints of one compound against one node.
func matchCompound(comp parser.Compound, node Node) bool {
	if comp.Type != "" && comp.Type != node.Type() {
		return false
	}
	if comp.ID != "" && comp.ID != node.ID() {
		return false
	}
	for _, class := range comp.Classes {
		if !node.HasClass(class) {
			return false
		}
	}
	for _, state := range comp.Pseudos {
		if !node.HasPseudo(state) {
			return false
		}
	}
	return true
}
