package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateRectanglesTwoLeaves(t *testing.T) {
	tree := newTestTree()
	a := tree.NewLeaf("A", 40)
	b := tree.NewLeaf("B", 60)
	root := tree.NewInternal("root", []NodeID{a, b})

	tree.UpdateRectangles(root, Rect{0, 0, 100, 10})

	assert.Equal(t, Rect{0, 0, 100, 10}, tree.Rect(root))
	assert.Equal(t, Rect{0, 0, 40, 10}, tree.Rect(a))
	assert.Equal(t, Rect{40, 0, 60, 10}, tree.Rect(b))
}

func TestUpdateRectanglesHorizontalSlices(t *testing.T) {
	tree := newTestTree()
	a := tree.NewLeaf("A", 1)
	b := tree.NewLeaf("B", 1)
	c := tree.NewLeaf("C", 1)
	root := tree.NewInternal("root", []NodeID{a, b, c})

	// Square rectangles slice horizontally; the last child absorbs rounding.
	tree.UpdateRectangles(root, Rect{5, 5, 10, 10})

	assert.Equal(t, Rect{5, 5, 10, 3}, tree.Rect(a))
	assert.Equal(t, Rect{5, 8, 10, 3}, tree.Rect(b))
	assert.Equal(t, Rect{5, 11, 10, 4}, tree.Rect(c))
}

func TestUpdateRectanglesZeroSizeShortCircuit(t *testing.T) {
	tree := newTestTree()
	z1 := tree.NewLeaf("z1", 0)
	z2 := tree.NewLeaf("z2", 0)
	child := tree.NewInternal("child", []NodeID{z1, z2})
	root := tree.NewInternal("root", []NodeID{child})

	tree.UpdateRectangles(child, Rect{0, 0, 50, 20})
	assert.Equal(t, Rect{0, 0, 50, 20}, tree.Rect(child))
	assert.Equal(t, Rect{}, tree.Rect(z1))
	assert.Equal(t, Rect{}, tree.Rect(z2))

	tree.UpdateRectangles(root, Rect{0, 0, 80, 30})
	assert.Equal(t, Rect{0, 0, 80, 30}, tree.Rect(root))
	assert.Equal(t, Rect{0, 0, 50, 20}, tree.Rect(child))
}

func TestUpdateRectanglesLargeSizes(t *testing.T) {
	tree := newTestTree()
	a := tree.NewLeaf("A", 1<<60)
	b := tree.NewLeaf("B", 1<<60)
	root := tree.NewInternal("root", []NodeID{a, b})

	tree.UpdateRectangles(root, Rect{0, 0, 4000, 10})
	assert.Equal(t, Rect{0, 0, 2000, 10}, tree.Rect(a))
	assert.Equal(t, Rect{2000, 0, 2000, 10}, tree.Rect(b))
}

// assertTiles checks that the children of every positive-size internal
// node partition its rectangle along one axis
func assertTiles(t *testing.T, tree *Tree, id NodeID) {
	t.Helper()
	children := tree.Children(id)
	if len(children) == 0 || tree.Size(id) == 0 {
		return
	}

	r := tree.Rect(id)
	vertical := r.W > r.H
	offset := 0
	for _, c := range children {
		cr := tree.Rect(c)
		if vertical {
			require.Equal(t, r.X+offset, cr.X, "child %d x", c)
			require.Equal(t, r.Y, cr.Y)
			require.Equal(t, r.H, cr.H)
			require.GreaterOrEqual(t, cr.W, 0)
			offset += cr.W
		} else {
			require.Equal(t, r.Y+offset, cr.Y, "child %d y", c)
			require.Equal(t, r.X, cr.X)
			require.Equal(t, r.W, cr.W)
			require.GreaterOrEqual(t, cr.H, 0)
			offset += cr.H
		}
		assertTiles(t, tree, c)
	}
	if vertical {
		require.Equal(t, r.W, offset)
	} else {
		require.Equal(t, r.H, offset)
	}
}

func TestUpdateRectanglesTilesExactly(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		tree := newTestTree()
		root := randomTree(tree, rng, 4)
		rect := Rect{X: rng.Intn(50), Y: rng.Intn(50), W: rng.Intn(300), H: rng.Intn(300)}

		tree.UpdateRectangles(root, rect)
		require.Equal(t, rect, tree.Rect(root))
		assertTiles(t, tree, root)
	}
}

func TestRectanglesDisplayedLeaves(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tree := newTestTree()
	root := randomTree(tree, rng, 4)
	for tree.IsLeaf(root) {
		root = randomTree(tree, rng, 4)
	}
	tree.UpdateRectangles(root, Rect{0, 0, 200, 100})

	collapsed := tree.Rectangles(root)
	require.Len(t, collapsed, 1)
	assert.Equal(t, Block{Node: root, Rect: tree.Rect(root), Color: grey}, collapsed[0])

	tree.ExpandAll(root)
	expanded := tree.Rectangles(root)
	want := leaves(tree, root)
	require.Len(t, expanded, len(want))
	seen := make(map[NodeID]bool)
	for i, b := range expanded {
		assert.Equal(t, want[i], b.Node)
		assert.Equal(t, tree.Rect(b.Node), b.Rect)
		assert.False(t, seen[b.Node])
		seen[b.Node] = true
	}
}

func TestRectanglesPartialExpansion(t *testing.T) {
	tree := newTestTree()
	a1 := tree.NewLeaf("a1", 1)
	a2 := tree.NewLeaf("a2", 1)
	a := tree.NewInternal("a", []NodeID{a1, a2})
	b := tree.NewLeaf("b", 2)
	root := tree.NewInternal("root", []NodeID{a, b})

	tree.Expand(root)
	var got []NodeID
	for _, blk := range tree.Rectangles(root) {
		got = append(got, blk.Node)
	}
	assert.Equal(t, []NodeID{a, b}, got)
}
