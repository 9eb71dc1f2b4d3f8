package model

import "math"

// UpdateDataSizes recomputes sizes bottom-up from the leaves of id's
// subtree and returns id's new size. Leaf sizes are left as they are.
func (t *Tree) UpdateDataSizes(id NodeID) int64 {
	n := t.at(id)
	if n.empty {
		n.size = 0
		return 0
	}
	if len(n.children) == 0 {
		return n.size
	}

	var total int64
	for _, c := range n.children {
		total += t.UpdateDataSizes(c)
	}
	n.size = total
	return total
}

// ChangeSize scales a non-empty leaf by factor, always changing it by at
// least one unit when factor is non-zero and never going below 1. Growth
// saturates so the root total stays within int64. Returns false, leaving
// the tree untouched, when id is not a non-empty leaf or factor is NaN.
func (t *Tree) ChangeSize(id NodeID, factor float64) bool {
	n := t.at(id)
	if n.empty || len(n.children) > 0 || n.size <= 0 || math.IsNaN(factor) {
		return false
	}

	root := t.Root(id)
	d := math.Ceil(math.Abs(float64(n.size) * factor))
	size := n.size
	switch {
	case factor > 0:
		headroom := math.MaxInt64 - t.nodes[root].size
		delta := headroom
		if d < float64(headroom) {
			delta = min(int64(d), headroom)
		}
		size += delta
	case factor < 0:
		if d >= float64(n.size) {
			size = 1
		} else {
			size = max(n.size-int64(d), 1)
		}
	}
	n.size = size

	t.UpdateDataSizes(root)
	return true
}
