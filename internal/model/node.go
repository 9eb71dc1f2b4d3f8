package model

import "fmt"

// NodeID addresses a node inside its Tree
type NodeID int

// NoNode is the nil NodeID
const NoNode NodeID = -1

// Kind is the tagged variant of a node
type Kind int

const (
	KindEmpty Kind = iota
	KindLeaf
	KindInternal
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindLeaf:
		return "leaf"
	case KindInternal:
		return "internal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Rect is a layout rectangle in integer cells
type Rect struct {
	X, Y, W, H int
}

// FarCorner returns the (x+w, y+h) point of r
func (r Rect) FarCorner() (int, int) {
	return r.X + r.W, r.Y + r.H
}

// Contains reports whether (x, y) lies inside r, edges included
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x <= r.X+r.W && r.Y <= y && y <= r.Y+r.H
}

// node is one arena slot
type node struct {
	name     string
	empty    bool
	size     int64 // authoritative for leaves, sum of children otherwise
	children []NodeID
	parent   NodeID
	expanded bool
	rect     Rect
	color    Color
}

// Tree is an arena of nodes. A single arena may hold several roots.
// Tree is not safe for concurrent use.
type Tree struct {
	nodes   []node
	variant Variant
	colors  ColorProvider
}

// Option configures a Tree
type Option func(*Tree)

// WithVariant sets the path separator/suffix hooks
func WithVariant(v Variant) Option {
	return func(t *Tree) {
		t.variant = v
	}
}

// WithColors sets the colour provider used at construction
func WithColors(c ColorProvider) Option {
	return func(t *Tree) {
		t.colors = c
	}
}

// New creates an empty arena
func New(opts ...Option) *Tree {
	t := &Tree{}
	for _, opt := range opts {
		opt(t)
	}
	if t.colors == nil {
		t.colors = RandomColors(0)
	}
	return t
}

// Variant returns the tree's variant hooks, or nil
func (t *Tree) Variant() Variant {
	return t.variant
}

func (t *Tree) add(n node) NodeID {
	n.parent = NoNode
	n.color = t.colors.Color()
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// NewEmpty creates the distinguished empty node
func (t *Tree) NewEmpty() NodeID {
	return t.add(node{empty: true})
}

// NewLeaf creates a leaf with the given size. Negative sizes are stored as 0.
func (t *Tree) NewLeaf(name string, size int64) NodeID {
	if size < 0 {
		size = 0
	}
	return t.add(node{name: name, size: size})
}

// NewInternal creates a node owning children, in order. Its size is the sum
// of the children's sizes. Children must be parentless, non-empty nodes of t.
func (t *Tree) NewInternal(name string, children []NodeID) NodeID {
	var total int64
	for _, c := range children {
		n := t.at(c)
		if n.empty {
			panic(fmt.Sprintf("model: empty node %d cannot be a child", c))
		}
		if n.parent != NoNode {
			panic(fmt.Sprintf("model: node %d already has parent %d", c, n.parent))
		}
		total += n.size
	}

	id := t.add(node{name: name, size: total, children: append([]NodeID(nil), children...)})
	for _, c := range children {
		t.nodes[c].parent = id
	}
	return id
}

// at returns the slot for id, panicking on foreign IDs
func (t *Tree) at(id NodeID) *node {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("model: node %d not in tree", id))
	}
	return &t.nodes[id]
}

// Len returns the number of nodes ever created in t
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Name returns the node's name ("" for the empty node)
func (t *Tree) Name(id NodeID) string {
	return t.at(id).name
}

// Size returns the node's data size
func (t *Tree) Size(id NodeID) int64 {
	return t.at(id).size
}

// Children returns a copy of the node's ordered children
func (t *Tree) Children(id NodeID) []NodeID {
	return append([]NodeID(nil), t.at(id).children...)
}

// Parent returns the containing node, if any
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	p := t.at(id).parent
	return p, p != NoNode
}

// Root walks parent links up to the root of id's tree
func (t *Tree) Root(id NodeID) NodeID {
	for {
		p := t.at(id).parent
		if p == NoNode {
			return id
		}
		id = p
	}
}

// Expanded reports the node's display state
func (t *Tree) Expanded(id NodeID) bool {
	return t.at(id).expanded
}

// Rect returns the last computed layout rectangle
func (t *Tree) Rect(id NodeID) Rect {
	return t.at(id).rect
}

// Color returns the node's display colour
func (t *Tree) Color(id NodeID) Color {
	return t.at(id).color
}

// Kind returns the node's variant
func (t *Tree) Kind(id NodeID) Kind {
	n := t.at(id)
	switch {
	case n.empty:
		return KindEmpty
	case len(n.children) == 0:
		return KindLeaf
	default:
		return KindInternal
	}
}

// IsEmpty reports whether id is the empty node
func (t *Tree) IsEmpty(id NodeID) bool {
	return t.at(id).empty
}

// IsLeaf reports whether id is a non-empty node without children
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.Kind(id) == KindLeaf
}

// Walk visits id and its descendants depth-first in child order.
// Returning false from fn skips the node's children.
func (t *Tree) Walk(id NodeID, fn func(NodeID) bool) {
	if !fn(id) {
		return
	}
	for _, c := range t.at(id).children {
		t.Walk(c, fn)
	}
}
