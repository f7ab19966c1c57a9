package scene

import "fmt"

// LintIssue reports a node or component whose values do not match the type
// hints of its kind.
type LintIssue struct {
	Path  string
	Kind  string
	Index int   // Component position on the node, -1 for the node itself
	Err   error // *schema.AggregateError
}

func (i *LintIssue) Error() string {
	if i.Index < 0 {
		return fmt.Sprintf("node %s (%s): %v", i.Path, i.Kind, i.Err)
	}
	return fmt.Sprintf("node %s: object %d (%s): %v", i.Path, i.Index, i.Kind, i.Err)
}

func (i *LintIssue) Unwrap() error { return i.Err }

// Lint checks every descriptor in n's subtree against the type hints of its
// kind, in traversal order. It never changes the tree, and a tree with issues
// still assembles.
func (n *Node) Lint() []*LintIssue {
	var issues []*LintIssue
	_ = n.Walk(func(c *Node) error {
		if s, err := c.tree.reg.Lookup(c.desc.Kind); err == nil {
			if err := s.Check(c.desc.Params); err != nil {
				issues = append(issues, &LintIssue{Path: c.Path(), Kind: c.desc.Kind, Index: -1, Err: err})
			}
		}
		for i, h := range c.components {
			if err := h.schema.Check(h.desc.Params); err != nil {
				issues = append(issues, &LintIssue{Path: c.Path(), Kind: h.desc.Kind, Index: i, Err: err})
			}
		}
		return nil
	})
	return issues
}
