package model

import "fmt"

// Check verifies the structural invariants of every node in t and returns
// the first violation found.
func (t *Tree) Check() error {
	for i := range t.nodes {
		id := NodeID(i)
		n := &t.nodes[i]

		if n.size < 0 {
			return fmt.Errorf("node %d: negative size %d", id, n.size)
		}
		if n.empty {
			if n.name != "" || len(n.children) > 0 || n.parent != NoNode || n.size != 0 {
				return fmt.Errorf("node %d: malformed empty node", id)
			}
		}
		if len(n.children) > 0 {
			var total int64
			for _, c := range n.children {
				total += t.at(c).size
			}
			if total != n.size {
				return fmt.Errorf("node %d: size %d, children sum to %d", id, n.size, total)
			}
		} else if n.expanded {
			return fmt.Errorf("node %d: expanded without children", id)
		}
		for _, c := range n.children {
			if t.nodes[c].parent != id {
				return fmt.Errorf("node %d: child %d points at parent %d", id, c, t.nodes[c].parent)
			}
		}

		if n.parent != NoNode {
			p := t.at(n.parent)
			count := 0
			for _, c := range p.children {
				if c == id {
					count++
				}
			}
			if count != 1 {
				return fmt.Errorf("node %d: appears %d times under parent %d", id, count, n.parent)
			}
			if n.expanded && !p.expanded {
				return fmt.Errorf("node %d: expanded under collapsed parent %d", id, n.parent)
			}
		}
	}
	return nil
}
