package model

// Move relocates a non-empty leaf to the end of dest's children. dest must
// be an internal node or a zero-size container; a positive-size leaf, the
// empty node, or a root leaf is rejected and Move returns false with the
// tree untouched. To move into a fresh location, create a named zero-size
// leaf with NewLeaf and use it as dest; the empty node never takes children.
//
// Sizes are re-propagated from the roots on both sides of the move, and any
// subtree left with zero size is collapsed.
func (t *Tree) Move(id, dest NodeID) bool {
	n := t.at(id)
	d := t.at(dest)
	if n.empty || len(n.children) > 0 || n.size <= 0 {
		return false
	}
	if d.empty || (len(d.children) == 0 && d.size > 0) {
		return false
	}
	if n.parent == NoNode {
		return false
	}

	parent := n.parent
	p := t.at(parent)
	p.children = remove(p.children, id)
	if len(p.children) == 0 {
		// An emptied container loses its size ahead of propagation.
		p.size = 0
	}
	d.children = append(d.children, id)
	n.parent = dest

	oldRoot, newRoot := t.Root(parent), t.Root(dest)
	t.UpdateDataSizes(oldRoot)
	t.collapseEmpty(oldRoot)
	if newRoot != oldRoot {
		t.UpdateDataSizes(newRoot)
		t.collapseEmpty(newRoot)
	}
	return true
}

// collapseEmpty folds every zero-size subtree under id
func (t *Tree) collapseEmpty(id NodeID) {
	n := t.at(id)
	if n.size == 0 {
		t.foldSubtree(id)
		return
	}
	for _, c := range n.children {
		t.collapseEmpty(c)
	}
}

func remove(ids []NodeID, id NodeID) []NodeID {
	for i, c := range ids {
		if c == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
