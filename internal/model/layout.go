package model

import "math/bits"

// Block is one entry of the displayed-leaf list
type Block struct {
	Node  NodeID
	Rect  Rect
	Color Color
}

// UpdateRectangles lays out id and its descendants into rect using
// slice-and-dice. Children are sliced along the longer side (vertical
// slices when W > H) in stored order; the last child takes whatever extent
// rounding left over so the children tile rect exactly.
func (t *Tree) UpdateRectangles(id NodeID, rect Rect) {
	n := t.at(id)
	n.rect = rect
	if n.size == 0 || len(n.children) == 0 {
		return
	}

	vertical := rect.W > rect.H
	extent := rect.H
	if vertical {
		extent = rect.W
	}

	offset := 0
	last := len(n.children) - 1
	for i, c := range n.children {
		share := extent - offset
		if i < last {
			share = proportion(t.nodes[c].size, n.size, extent)
		}

		sub := Rect{X: rect.X, Y: rect.Y + offset, W: rect.W, H: share}
		if vertical {
			sub = Rect{X: rect.X + offset, Y: rect.Y, W: share, H: rect.H}
		}
		t.UpdateRectangles(c, sub)
		offset += share
	}
}

// proportion returns floor(part/total*extent) without overflow or float
// rounding. Requires 0 <= part <= total, total > 0 and extent >= 0.
func proportion(part, total int64, extent int) int {
	if part <= 0 || extent <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(part), uint64(extent))
	q, _ := bits.Div64(hi, lo, uint64(total))
	return int(q)
}

// Rectangles returns the displayed-leaf list rooted at id: collapsed nodes
// and leaves contribute themselves, expanded nodes their children.
func (t *Tree) Rectangles(id NodeID) []Block {
	var blocks []Block
	t.collectBlocks(id, &blocks)
	return blocks
}

func (t *Tree) collectBlocks(id NodeID, out *[]Block) {
	n := t.at(id)
	if n.empty {
		return
	}
	if len(n.children) == 0 || !n.expanded {
		*out = append(*out, Block{Node: id, Rect: n.rect, Color: n.color})
		return
	}
	for _, c := range n.children {
		t.collectBlocks(c, out)
	}
}
