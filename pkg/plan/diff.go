package plan

import (
	"fmt"
	"strings"

	"github.com/aretw0/sofakit/pkg/assembler"
)

// ChangeType classifies one entry of a Diff.
type ChangeType string

const (
	Added   ChangeType = "added"
	Removed ChangeType = "removed"
	Changed ChangeType = "changed"
)

// Change is one differing position between two plans.
type Change struct {
	Type  ChangeType           `json:"type"`
	Index int                  `json:"index"`
	Old   *assembler.Operation `json:"old,omitempty"`
	New   *assembler.Operation `json:"new,omitempty"`
}

// PlanDiff lists the positions at which two plans differ.
type PlanDiff struct {
	Changes []Change `json:"changes"`
}

// Diff compares the operations of oldPlan and newPlan position by position.
// A nil plan counts as empty.
func Diff(oldPlan, newPlan *Plan) *PlanDiff {
	var a, b []assembler.Operation
	if oldPlan != nil {
		a = oldPlan.Operations
	}
	if newPlan != nil {
		b = newPlan.Operations
	}

	d := &PlanDiff{}
	for i := 0; i < len(a) || i < len(b); i++ {
		switch {
		case i >= len(a):
			d.Changes = append(d.Changes, Change{Type: Added, Index: i, New: &b[i]})
		case i >= len(b):
			d.Changes = append(d.Changes, Change{Type: Removed, Index: i, Old: &a[i]})
		case !a[i].Equal(b[i]):
			d.Changes = append(d.Changes, Change{Type: Changed, Index: i, Old: &a[i], New: &b[i]})
		}
	}
	return d
}

// IsEmpty reports whether both plans were identical.
func (d *PlanDiff) IsEmpty() bool {
	return len(d.Changes) == 0
}

// String renders the diff one change per line, prefixed with +, - or ~.
func (d *PlanDiff) String() string {
	var sb strings.Builder
	for _, c := range d.Changes {
		switch c.Type {
		case Added:
			fmt.Fprintf(&sb, "+ [%d] %s\n", c.Index, c.New)
		case Removed:
			fmt.Fprintf(&sb, "- [%d] %s\n", c.Index, c.Old)
		case Changed:
			fmt.Fprintf(&sb, "~ [%d] %s\n      => %s\n", c.Index, c.Old, c.New)
		}
	}
	return sb.String()
}
