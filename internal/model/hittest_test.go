package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func twoLeafTree() (*Tree, NodeID, NodeID, NodeID) {
	tree := newTestTree()
	a := tree.NewLeaf("A", 40)
	b := tree.NewLeaf("B", 60)
	root := tree.NewInternal("root", []NodeID{a, b})
	tree.UpdateRectangles(root, Rect{0, 0, 100, 10})
	return tree, root, a, b
}

func TestTreeAtCollapsedRoot(t *testing.T) {
	tree, root, _, _ := twoLeafTree()

	got, ok := tree.TreeAt(root, 70, 5)
	assert.True(t, ok)
	assert.Equal(t, root, got)

	_, ok = tree.TreeAt(root, 101, 5)
	assert.False(t, ok)
	_, ok = tree.TreeAt(root, 50, -1)
	assert.False(t, ok)
}

func TestTreeAtClosedEdges(t *testing.T) {
	tree, root, a, b := twoLeafTree()
	tree.Expand(root)

	tests := []struct {
		name string
		x, y int
		want NodeID
		ok   bool
	}{
		{"inside A", 10, 5, a, true},
		{"inside B", 70, 5, b, true},
		{"origin corner", 0, 0, a, true},
		{"shared edge goes to A", 40, 5, a, true},
		{"shared edge bottom goes to A", 40, 10, a, true},
		{"far corner of B", 100, 10, b, true},
		{"outside right", 101, 5, NoNode, false},
		{"outside below", 50, 11, NoNode, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tree.TreeAt(root, tt.x, tt.y)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTreeAtEmpty(t *testing.T) {
	tree := newTestTree()
	e := tree.NewEmpty()
	_, ok := tree.TreeAt(e, 0, 0)
	assert.False(t, ok)
}

func TestTreeAtFourWayCorner(t *testing.T) {
	tree := newTestTree()
	l1 := tree.NewLeaf("l1", 5)
	l2 := tree.NewLeaf("l2", 5)
	r1 := tree.NewLeaf("r1", 5)
	r2 := tree.NewLeaf("r2", 5)
	l := tree.NewInternal("l", []NodeID{l1, l2})
	r := tree.NewInternal("r", []NodeID{r1, r2})
	root := tree.NewInternal("root", []NodeID{l, r})
	tree.UpdateRectangles(root, Rect{0, 0, 20, 10})
	tree.ExpandAll(root)

	assert.Equal(t, Rect{0, 0, 10, 5}, tree.Rect(l1))
	assert.Equal(t, Rect{10, 5, 10, 5}, tree.Rect(r2))

	got, ok := tree.TreeAt(root, 10, 5)
	assert.True(t, ok)
	assert.Equal(t, l1, got, "four leaves meet; the top-left one wins")

	got, _ = tree.TreeAt(root, 10, 8)
	assert.Equal(t, l2, got)
	got, _ = tree.TreeAt(root, 15, 5)
	assert.Equal(t, r1, got)
}

func TestTreeAtUnresolvedTieFallsBackToChildOrder(t *testing.T) {
	tree := newTestTree()
	a := tree.NewLeaf("a", 1)
	b := tree.NewLeaf("b", 1)
	root := tree.NewInternal("root", []NodeID{a, b})
	tree.Expand(root)

	// Overlapping rectangles only arise from stale or hand-set layouts.
	tree.UpdateRectangles(a, Rect{0, 0, 10, 10})
	tree.UpdateRectangles(b, Rect{0, 0, 10, 10})

	got, ok := tree.TreeAt(root, 5, 5)
	assert.True(t, ok)
	assert.Equal(t, a, got)

	got, _ = tree.TreeAt(root, 10, 10)
	assert.Equal(t, a, got, "several exact corner matches keep child order")
}
