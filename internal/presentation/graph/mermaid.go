package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/sofakit/pkg/scene"
)

// Overlay carries extra state to paint on top of the tree.
type Overlay struct {
	// Highlight lists node paths to emphasize, e.g. the node an assembly
	// failed on.
	Highlight []string
}

// GenerateMermaid produces a Mermaid flowchart of the scene tree under root.
// It applies shape conventions:
// - Root node: ((Circle))
// - Child node: [Rectangle]
// - Component: ([Stadium]), linked with a dotted edge
// Nodes that are no longer building are styled by state.
func GenerateMermaid(root *scene.Node, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	ids := make(map[*scene.Node]string)
	byPath := make(map[string]string)
	states := make(map[scene.State][]string)
	_ = root.Walk(func(n *scene.Node) error {
		id := fmt.Sprintf("n%d", len(ids))
		ids[n] = id
		if _, ok := byPath[n.Path()]; !ok {
			byPath[n.Path()] = id
		}

		opener, closer := "[", "]"
		if n.Parent() == nil {
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", id, opener, label(n.Name(), n.Kind()), closer)
		if p := n.Parent(); p != nil {
			fmt.Fprintf(&sb, "    %s --> %s\n", ids[p], id)
		}
		for i, c := range n.Components() {
			cid := fmt.Sprintf("%s_c%d", id, i)
			fmt.Fprintf(&sb, "    %s([\"%s\"])\n", cid, escape(c.Kind()))
			fmt.Fprintf(&sb, "    %s -.- %s\n", id, cid)
		}
		if n.State() != scene.Building {
			states[n.State()] = append(states[n.State()], id)
		}
		return nil
	})

	if len(states) > 0 {
		sb.WriteString("\n    %% State Styles\n")
		sb.WriteString("    classDef sealed fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef destroyed fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:4,color:#000;\n")
		for _, st := range []scene.State{scene.Sealed, scene.Destroyed} {
			if len(states[st]) > 0 {
				fmt.Fprintf(&sb, "    class %s %s;\n", strings.Join(states[st], ","), st)
			}
		}
	}

	if overlay != nil && len(overlay.Highlight) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef highlight fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		seen := make(map[string]bool)
		for _, p := range overlay.Highlight {
			id, ok := byPath[p]
			if !ok || seen[id] {
				continue
			}
			seen[id] = true
			fmt.Fprintf(&sb, "    class %s highlight;\n", id)
		}
	}

	return sb.String()
}

func label(name, kind string) string {
	if name == "" {
		return escape(kind)
	}
	return fmt.Sprintf("%s <br/> %s", escape(name), escape(kind))
}

// escape replaces double quotes, which would end a Mermaid label early.
func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
