package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"
	"sort"

	"github.com/khalidelborai/gilt-tui/css/parser"
	"github.com/khalidelborai/gilt-tui/dom"
	"github.com/khalidelborai/gilt-tui/style"
	"github.com/khalidelborai/gilt-tui/style/cascade"
)

// StyleListener is notified once per flush for every node whose resolved
// style changed. The layout engine subscribes here.
type StyleListener interface {
	StyleChanged(dom.NodeID)
}

// Styler maintains computed styles for a tree. Create one with New; it
// attaches itself to the tree as a mutation listener. Not safe for
// concurrent use, like the tree it wraps.
type Styler struct {
	tree   *dom.Tree
	casc   *cascade.Cascade
	inline map[dom.NodeID]style.Set
	cache  map[dom.NodeID]style.Computed

	// dirty sets keep insertion order for deterministic flushes
	dirtyNodes    []dom.NodeID
	dirtySubtrees []dom.NodeID
	dirty         map[dom.NodeID]bool

	listeners []StyleListener
}

// New creates a styler for a tree and attaches it as mutation listener.
func New(tree *dom.Tree, casc *cascade.Cascade) *Styler {
	s := &Styler{
		tree:   tree,
		casc:   casc,
		inline: make(map[dom.NodeID]style.Set),
		cache:  make(map[dom.NodeID]style.Computed),
		dirty:  make(map[dom.NodeID]bool),
	}
	tree.Listen(s)
	return s
}

// Listen attaches a style listener.
func (s *Styler) Listen(l StyleListener) {
	s.listeners = append(s.listeners, l)
}

// NodeChanged implements dom.MutationListener: an attribute change marks
// the node dirty.
func (s *Styler) NodeChanged(id dom.NodeID) {
	if !s.dirty[id] {
		s.dirty[id] = true
		s.dirtyNodes = append(s.dirtyNodes, id)
	}
}

// SubtreeChanged implements dom.MutationListener: a structural change
// marks the node and everything below it dirty.
func (s *Styler) SubtreeChanged(id dom.NodeID) {
	s.dirtySubtrees = append(s.dirtySubtrees, id)
	s.dirty[id] = true
}

// SetInline attaches inline styles to a node and marks it dirty. An
// empty set clears them.
func (s *Styler) SetInline(id dom.NodeID, set style.Set) error {
	if !s.tree.Contains(id) {
		return fmt.Errorf("set inline style: no such node %s", id)
	}
	if set.IsEmpty() {
		delete(s.inline, id)
	} else {
		s.inline[id] = set
	}
	s.NodeChanged(id)
	return nil
}

// SetSheet swaps a whole cascade layer and marks the entire tree dirty:
// any node's resolution may have changed.
func (s *Styler) SetSheet(sheet *parser.Sheet) error {
	if err := s.casc.SetSheet(sheet); err != nil {
		return err
	}
	if root, ok := s.tree.Root(); ok {
		s.SubtreeChanged(root)
	}
	return nil
}

// ComputedFor returns a node's computed style, resolving and caching it
// on demand if absent. Between a mutation and the next Flush the cached
// value may be stale; Flush is what brings the cache up to date.
func (s *Styler) ComputedFor(id dom.NodeID) (style.Computed, bool) {
	if !s.tree.Contains(id) {
		return style.Computed{}, false
	}
	return s.ensure(id), true
}

// Flush drains the dirty set: every dirty node is re-resolved, ancestors
// before descendants, and listeners are notified for each node whose
// style actually changed. Returns the number of changed nodes.
func (s *Styler) Flush() int {
	if len(s.dirtyNodes) == 0 && len(s.dirtySubtrees) == 0 {
		return 0
	}
	work, seen := s.collectDirty()
	tracer().Debugf("flushing %d dirty nodes", len(work))

	// ancestors first, so every resolution sees a fresh parent style
	depths := make(map[dom.NodeID]int, len(work))
	for _, id := range work {
		depths[id] = len(s.tree.Ancestors(id))
	}
	sort.SliceStable(work, func(i, j int) bool {
		return depths[work[i]] < depths[work[j]]
	})

	changed := 0
	for i := 0; i < len(work); i++ {
		id := work[i]
		fresh := s.resolve(id)
		old, had := s.cache[id]
		s.cache[id] = fresh
		if had && old.Equal(fresh) {
			continue
		}
		changed++
		for _, l := range s.listeners {
			l.StyleChanged(id)
		}
		// inherited values flow downward; a child is appended after its
		// parent, so depth ordering holds, and the equality check above
		// is what stops the propagation
		for _, child := range s.tree.Children(id) {
			if !seen[child] {
				seen[child] = true
				work = append(work, child)
			}
		}
	}

	s.dirtyNodes = s.dirtyNodes[:0]
	s.dirtySubtrees = s.dirtySubtrees[:0]
	s.dirty = make(map[dom.NodeID]bool)
	return changed
}

// collectDirty expands subtree marks, drops stale handles and purges
// cache entries of removed nodes. The seen map is returned so the flush
// loop can extend the work list without duplicates.
func (s *Styler) collectDirty() ([]dom.NodeID, map[dom.NodeID]bool) {
	var work []dom.NodeID
	seen := make(map[dom.NodeID]bool)
	add := func(id dom.NodeID) {
		if !seen[id] && s.tree.Contains(id) {
			seen[id] = true
			work = append(work, id)
		}
	}
	stale := false
	for _, id := range s.dirtyNodes {
		if !s.tree.Contains(id) {
			stale = true
			continue
		}
		add(id)
	}
	for _, id := range s.dirtySubtrees {
		if !s.tree.Contains(id) {
			stale = true
			continue
		}
		for _, n := range s.tree.WalkDepthFirst(id) {
			add(n)
		}
	}
	if stale {
		// a removal happened; sweep dead entries
		for id := range s.cache {
			if !s.tree.Contains(id) {
				delete(s.cache, id)
				delete(s.inline, id)
			}
		}
	}
	return work, seen
}

// ensure returns the cached style or resolves and caches it silently.
func (s *Styler) ensure(id dom.NodeID) style.Computed {
	if c, ok := s.cache[id]; ok {
		return c
	}
	c := s.resolve(id)
	s.cache[id] = c
	return c
}

// resolve recomputes one node against its parent's current style.
func (s *Styler) resolve(id dom.NodeID) style.Computed {
	var parent *style.Computed
	if p, ok := s.tree.Parent(id); ok {
		pc := s.ensure(p)
		parent = &pc
	}
	return s.casc.Resolve(styledNode{tree: s.tree, id: id}, s.inline[id], parent)
}

// styledNode adapts a tree handle to the cascade's matching interface.
type styledNode struct {
	tree *dom.Tree
	id   dom.NodeID
}

func (n styledNode) Type() string { return n.tree.TypeName(n.id) }
func (n styledNode) ID() string   { return n.tree.ID(n.id) }

func (n styledNode) HasClass(name string) bool {
	return n.tree.HasClass(n.id, name)
}

func (n styledNode) HasPseudo(state string) bool {
	return n.tree.HasPseudo(n.id, state)
}

func (n styledNode) Parent() (cascade.Node, bool) {
	p, ok := n.tree.Parent(n.id)
	if !ok {
		return nil, false
	}
	return styledNode{tree: n.tree, id: p}, true
}
