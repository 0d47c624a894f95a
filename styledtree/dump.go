package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"
	"strings"

	"github.com/khalidelborai/gilt-tui/dom"
	tp "github.com/xlab/treeprint"
)

// Dump renders the styled tree for debugging: one line per node with its
// selector identity and resolved style.
func (s *Styler) Dump() string {
	root, ok := s.tree.Root()
	if !ok {
		return "(empty tree)"
	}
	printer := tp.New()
	printer.SetValue(s.nodeLabel(root))
	s.dumpChildren(printer, root)
	return printer.String()
}

func (s *Styler) dumpChildren(branch tp.Tree, id dom.NodeID) {
	for _, child := range s.tree.Children(id) {
		b := branch.AddBranch(s.nodeLabel(child))
		s.dumpChildren(b, child)
	}
}

func (s *Styler) nodeLabel(id dom.NodeID) string {
	var b strings.Builder
	b.WriteString(s.tree.TypeName(id))
	if nid := s.tree.ID(id); nid != "" {
		b.WriteString("#")
		b.WriteString(nid)
	}
	for _, class := range s.tree.Classes(id) {
		b.WriteString(".")
		b.WriteString(class)
	}
	for _, state := range s.tree.Pseudos(id) {
		b.WriteString(":")
		b.WriteString(state)
	}
	if c, ok := s.cache[id]; ok {
		fmt.Fprintf(&b, "  %s", c)
	}
	return b.String()
}
