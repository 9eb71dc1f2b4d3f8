package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeLevels returns root -> mid -> {x, y} plus a sibling leaf z of mid
func threeLevels() (tree *Tree, root, mid, x, y, z NodeID) {
	tree = newTestTree()
	x = tree.NewLeaf("x", 1)
	y = tree.NewLeaf("y", 2)
	mid = tree.NewInternal("mid", []NodeID{x, y})
	z = tree.NewLeaf("z", 3)
	root = tree.NewInternal("root", []NodeID{mid, z})
	return
}

func TestExpandLeafIsNoop(t *testing.T) {
	tree, _, _, x, _, _ := threeLevels()
	tree.Expand(x)
	assert.False(t, tree.Expanded(x))

	e := tree.NewEmpty()
	tree.Expand(e)
	assert.False(t, tree.Expanded(e))
}

func TestExpandMarksAncestors(t *testing.T) {
	tree, root, mid, _, _, _ := threeLevels()
	tree.Expand(mid)
	assert.True(t, tree.Expanded(mid))
	assert.True(t, tree.Expanded(root))
	assert.NoError(t, tree.Check())
}

func TestCollapseFoldsParentSubtree(t *testing.T) {
	tree, root, mid, x, _, z := threeLevels()
	tree.ExpandAll(root)
	require.True(t, tree.Expanded(mid))

	tree.Collapse(x)
	assert.False(t, tree.Expanded(mid))
	assert.True(t, tree.Expanded(root))

	tree.ExpandAll(root)
	tree.Collapse(z)
	assert.False(t, tree.Expanded(root))
	assert.False(t, tree.Expanded(mid), "collapse is infectious downward")
	assert.NoError(t, tree.Check())
}

func TestCollapseRoot(t *testing.T) {
	tree, root, mid, _, _, _ := threeLevels()
	tree.ExpandAll(root)

	tree.Collapse(root)
	assert.False(t, tree.Expanded(root))
	assert.False(t, tree.Expanded(mid))
}

func TestCollapseAll(t *testing.T) {
	tree, root, mid, x, _, _ := threeLevels()
	tree.UpdateRectangles(root, Rect{0, 0, 60, 10})
	tree.ExpandAll(root)
	require.Len(t, tree.Rectangles(root), 3)

	tree.CollapseAll(x)
	assert.False(t, tree.Expanded(root))
	assert.False(t, tree.Expanded(mid))
	require.Len(t, tree.Rectangles(root), 1)
	assert.NoError(t, tree.Check())

	tree.ExpandAll(root)
	tree.CollapseAll(root)
	assert.False(t, tree.Expanded(root))
	assert.NoError(t, tree.Check())
}

func TestExpandAllSubtree(t *testing.T) {
	tree, root, mid, _, _, _ := threeLevels()
	tree.ExpandAll(mid)
	assert.True(t, tree.Expanded(mid))
	assert.True(t, tree.Expanded(root))
	assert.NoError(t, tree.Check())
}
