package model

import "strings"

// Variant supplies the per-source strings used to render paths
type Variant interface {
	// Separator goes between consecutive names
	Separator() string
	// Suffix is appended to the final name; leaf tells whether that node
	// has no children
	Suffix(leaf bool) string
}

// Names returns the names from the root down to id
func (t *Tree) Names(id NodeID) []string {
	var names []string
	for cur := id; cur != NoNode; cur = t.nodes[cur].parent {
		names = append(names, t.at(cur).name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

// PathString joins the names from the root to id with the variant's
// separator. The suffix is appended if final is set or id is a leaf.
// Panics if the tree was built without a Variant.
func (t *Tree) PathString(id NodeID, final bool) string {
	if t.variant == nil {
		panic("model: PathString on a tree without a Variant")
	}

	var b strings.Builder
	b.WriteString(strings.Join(t.Names(id), t.variant.Separator()))

	leaf := len(t.at(id).children) == 0
	if final || (leaf && t.at(id).parent != NoNode) {
		b.WriteString(t.variant.Suffix(leaf))
	}
	return b.String()
}
