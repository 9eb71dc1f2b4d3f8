package model

// Expand marks an internal node as expanded, along with its ancestors so
// that the expansion is visible. Leaves and the empty node are unaffected.
func (t *Tree) Expand(id NodeID) {
	if t.Kind(id) != KindInternal {
		return
	}
	for cur := id; cur != NoNode; cur = t.nodes[cur].parent {
		t.nodes[cur].expanded = true
	}
}

// Collapse folds the subtree of id's parent closed. On a root it folds the
// root's own subtree. Collapsing a child therefore closes its siblings too.
func (t *Tree) Collapse(id NodeID) {
	n := t.at(id)
	if n.parent == NoNode {
		t.foldSubtree(id)
		return
	}
	t.foldSubtree(n.parent)
}

// ExpandAll expands id and every internal node below it
func (t *Tree) ExpandAll(id NodeID) {
	if t.Kind(id) != KindInternal {
		return
	}
	t.Expand(id)
	for _, c := range t.nodes[id].children {
		t.ExpandAll(c)
	}
}

// CollapseAll collapses each ancestor of id in turn, leaving the whole tree
// folded back to its root.
func (t *Tree) CollapseAll(id NodeID) {
	parent := t.at(id).parent
	if parent == NoNode {
		t.Collapse(id)
		return
	}
	for cur := parent; cur != NoNode; cur = t.nodes[cur].parent {
		t.Collapse(cur)
	}
}

func (t *Tree) foldSubtree(id NodeID) {
	t.Walk(id, func(c NodeID) bool {
		t.nodes[c].expanded = false
		return true
	})
}
