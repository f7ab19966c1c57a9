package scene

import (
	"fmt"
	"strings"
)

// Root returns the root of n's tree.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Path returns the slash separated path of n from the root. The root's path
// is "/".
func (n *Node) Path() string {
	if n.parent == nil {
		return "/"
	}
	var segments []string
	for c := n; c.parent != nil; c = c.parent {
		segments = append(segments, c.name)
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return "/" + strings.Join(segments, "/")
}

// Lookup resolves an absolute ("/a/b") or relative ("b/c", "../x") path
// against n. Each segment selects the first child with that name.
func (n *Node) Lookup(path string) (*Node, bool) {
	cur := n
	if strings.HasPrefix(path, "/") {
		cur = n.Root()
	}
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
			continue
		case "..":
			if cur.parent == nil {
				return nil, false
			}
			cur = cur.parent
		default:
			next := cur.child(seg)
			if next == nil {
				return nil, false
			}
			cur = next
		}
	}
	return cur, true
}

// freeName returns base, or base with the first "_<k>" suffix no child of n
// uses yet.
func (n *Node) freeName(base string) string {
	name := base
	for k := 1; n.child(name) != nil; k++ {
		name = fmt.Sprintf("%s_%d", base, k)
	}
	return name
}

func (n *Node) child(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}
