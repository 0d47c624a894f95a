package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

// QueryByID finds the node carrying an id attribute. Ids are expected to
// be unique; with duplicates, the node in the oldest arena slot wins.
func (t *Tree) QueryByID(nodeID string) (NodeID, bool) {
	for i := range t.slots {
		s := &t.slots[i]
		if s.occupied && s.data.id == nodeID {
			return NodeID{index: uint32(i), gen: s.gen}, true
		}
	}
	return NodeID{}, false
}

// QueryByClass finds all nodes carrying a class, in arena order.
func (t *Tree) QueryByClass(class string) []NodeID {
	return t.QueryAll(func(id NodeID) bool {
		return t.HasClass(id, class)
	})
}

// QueryByType finds all nodes of a widget type, in arena order.
func (t *Tree) QueryByType(typeName string) []NodeID {
	return t.QueryAll(func(id NodeID) bool {
		return t.TypeName(id) == typeName
	})
}

// QueryAll finds all nodes satisfying a predicate, in arena order.
func (t *Tree) QueryAll(predicate func(NodeID) bool) []NodeID {
	var found []NodeID
	for i := range t.slots {
		s := &t.slots[i]
		if !s.occupied {
			continue
		}
		id := NodeID{index: uint32(i), gen: s.gen}
		if predicate(id) {
			found = append(found, id)
		}
	}
	return found
}
