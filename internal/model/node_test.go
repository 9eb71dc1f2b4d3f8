package model

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slashVariant struct{}

func (slashVariant) Separator() string { return "/" }

func (slashVariant) Suffix(leaf bool) string {
	if leaf {
		return " (file)"
	}
	return " (folder)"
}

var grey = Color{R: 128, G: 128, B: 128}

func newTestTree() *Tree {
	return New(WithVariant(slashVariant{}), WithColors(Fixed(grey)))
}

// randomTree builds a tree with positive leaf sizes and returns its root
func randomTree(t *Tree, rng *rand.Rand, depth int) NodeID {
	if depth == 0 || rng.Intn(4) == 0 {
		return t.NewLeaf("leaf", int64(1+rng.Intn(1000)))
	}
	n := 1 + rng.Intn(5)
	children := make([]NodeID, 0, n)
	for i := 0; i < n; i++ {
		children = append(children, randomTree(t, rng, depth-1))
	}
	return t.NewInternal("dir", children)
}

func leaves(t *Tree, root NodeID) []NodeID {
	var out []NodeID
	t.Walk(root, func(id NodeID) bool {
		if t.IsLeaf(id) {
			out = append(out, id)
		}
		return true
	})
	return out
}

func TestNewInternalComputesSize(t *testing.T) {
	tree := newTestTree()
	a := tree.NewLeaf("a", 100)
	b := tree.NewLeaf("b", 200)
	root := tree.NewInternal("folder", []NodeID{a, b})

	assert.Equal(t, int64(300), tree.Size(root))
	assert.Equal(t, []NodeID{a, b}, tree.Children(root))
	p, ok := tree.Parent(a)
	require.True(t, ok)
	assert.Equal(t, root, p)
	_, ok = tree.Parent(root)
	assert.False(t, ok)
	assert.Equal(t, KindInternal, tree.Kind(root))
	assert.Equal(t, KindLeaf, tree.Kind(a))
	assert.Equal(t, grey, tree.Color(a))
	assert.False(t, tree.Expanded(root))
	assert.NoError(t, tree.Check())
}

func TestNewLeafClampsNegativeSize(t *testing.T) {
	tree := newTestTree()
	leaf := tree.NewLeaf("neg", -5)
	assert.Equal(t, int64(0), tree.Size(leaf))
}

func TestNewInternalWithoutChildrenIsLeaf(t *testing.T) {
	tree := newTestTree()
	dir := tree.NewInternal("empty-dir", nil)
	assert.Equal(t, KindLeaf, tree.Kind(dir))
	assert.Equal(t, int64(0), tree.Size(dir))
}

func TestEmptyNode(t *testing.T) {
	tree := newTestTree()
	e := tree.NewEmpty()

	assert.True(t, tree.IsEmpty(e))
	assert.False(t, tree.IsLeaf(e))
	assert.Equal(t, KindEmpty, tree.Kind(e))
	assert.Equal(t, "", tree.Name(e))
	assert.Equal(t, int64(0), tree.UpdateDataSizes(e))
	assert.Empty(t, tree.Rectangles(e))
	assert.NoError(t, tree.Check())
}

func TestNewInternalRejectsBadChildren(t *testing.T) {
	tree := newTestTree()
	a := tree.NewLeaf("a", 1)
	tree.NewInternal("first", []NodeID{a})

	assert.Panics(t, func() { tree.NewInternal("second", []NodeID{a}) })
	assert.Panics(t, func() { tree.NewInternal("empty", []NodeID{tree.NewEmpty()}) })
	assert.Panics(t, func() { tree.NewInternal("foreign", []NodeID{NodeID(99)}) })
}

func TestRoot(t *testing.T) {
	tree := newTestTree()
	leaf := tree.NewLeaf("x", 1)
	mid := tree.NewInternal("mid", []NodeID{leaf})
	top := tree.NewInternal("top", []NodeID{mid})

	assert.Equal(t, top, tree.Root(leaf))
	assert.Equal(t, top, tree.Root(top))
}

func TestUpdateDataSizes(t *testing.T) {
	tree := newTestTree()
	a := tree.NewLeaf("a", 10)
	b := tree.NewLeaf("b", 20)
	dir := tree.NewInternal("dir", []NodeID{a, b})
	root := tree.NewInternal("root", []NodeID{dir})

	// Bypass ChangeSize to leave ancestors stale.
	tree.nodes[a].size = 15
	require.Error(t, tree.Check())

	assert.Equal(t, int64(35), tree.UpdateDataSizes(root))
	assert.Equal(t, int64(35), tree.Size(dir))
	assert.Equal(t, int64(15), tree.UpdateDataSizes(a))
	assert.NoError(t, tree.Check())
}

func TestChangeSize(t *testing.T) {
	tests := []struct {
		name   string
		size   int64
		factor float64
		want   int64
	}{
		{"grow one percent rounds up", 10, 0.01, 11},
		{"shrink one percent rounds up", 10, -0.01, 9},
		{"quarter", 100, 0.25, 125},
		{"shrink clamps to one", 3, -2, 1},
		{"half of one clamps", 1, -0.5, 1},
		{"zero factor", 10, 0, 10},
		{"large growth", 7, 1.5, 18},
		{"huge factor saturates", 10, 1e19, math.MaxInt64 - 5},
		{"infinite growth saturates", 10, math.Inf(1), math.MaxInt64 - 5},
		{"near max saturates", math.MaxInt64 - 10, 0.5, math.MaxInt64 - 5},
		{"huge shrink clamps to one", 10, -1e19, 1},
		{"infinite shrink clamps to one", 10, math.Inf(-1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := newTestTree()
			leaf := tree.NewLeaf("f", tt.size)
			other := tree.NewLeaf("g", 5)
			root := tree.NewInternal("root", []NodeID{leaf, other})

			require.True(t, tree.ChangeSize(leaf, tt.factor))
			assert.Equal(t, tt.want, tree.Size(leaf))
			assert.Equal(t, tt.want+5, tree.Size(root))
			assert.NoError(t, tree.Check())
		})
	}
}

func TestChangeSizeRejects(t *testing.T) {
	tree := newTestTree()
	leaf := tree.NewLeaf("f", 10)
	zero := tree.NewLeaf("z", 0)
	root := tree.NewInternal("root", []NodeID{leaf, zero})
	empty := tree.NewEmpty()

	assert.False(t, tree.ChangeSize(root, 0.5))
	assert.False(t, tree.ChangeSize(zero, 0.5))
	assert.False(t, tree.ChangeSize(leaf, math.NaN()))
	assert.Equal(t, int64(10), tree.Size(leaf))
	assert.False(t, tree.ChangeSize(empty, 0.5))
	assert.Equal(t, int64(10), tree.Size(root))
	assert.Equal(t, int64(0), tree.Size(zero))
}

func TestRandomColorsDeterministic(t *testing.T) {
	a, b := RandomColors(42), RandomColors(42)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Color(), b.Color())
	}
	assert.Equal(t, "#808080", grey.Hex())
}
