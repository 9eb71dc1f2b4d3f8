package model

// TreeAt returns the displayed leaf under (x, y) in the subtree rooted at id.
//
// Rectangles are closed, so a point on an edge shared by siblings matches
// all of them. Ties go to the candidate whose far corner equals the point
// on both axes, then to one matching on either axis. When several
// candidates qualify at the same step, or none does, the first in child
// order wins.
func (t *Tree) TreeAt(id NodeID, x, y int) (NodeID, bool) {
	n := t.at(id)
	if n.empty {
		return NoNode, false
	}
	if len(n.children) == 0 || !n.expanded {
		if n.rect.Contains(x, y) {
			return id, true
		}
		return NoNode, false
	}

	var hits []NodeID
	for _, c := range n.children {
		if hit, ok := t.TreeAt(c, x, y); ok {
			hits = append(hits, hit)
		}
	}

	switch len(hits) {
	case 0:
		return NoNode, false
	case 1:
		return hits[0], true
	}
	return t.breakTie(hits, x, y), true
}

// breakTie chooses among leaves that all contain (x, y)
func (t *Tree) breakTie(hits []NodeID, x, y int) NodeID {
	for _, h := range hits {
		fx, fy := t.nodes[h].rect.FarCorner()
		if fx == x && fy == y {
			return h
		}
	}
	for _, h := range hits {
		fx, fy := t.nodes[h].rect.FarCorner()
		if fx == x || fy == y {
			return h
		}
	}
	return hits[0]
}
