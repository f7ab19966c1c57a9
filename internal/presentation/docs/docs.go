// Package docs renders registry entries as markdown help pages.
package docs

import (
	"fmt"
	"strings"

	"github.com/aretw0/sofakit/pkg/registry"
)

// Kind produces a markdown page describing one registered kind: its class,
// the catalog it came from and every parameter in declaration order.
func Kind(e registry.Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", e.Kind())

	if d := e.Schema.Description(); d != "" {
		sb.WriteString(d)
		sb.WriteString("\n\n")
	}

	class := "component"
	if e.Container {
		class = "container"
	}
	fmt.Fprintf(&sb, "- **Class:** %s\n", class)
	if e.Source != "" {
		fmt.Fprintf(&sb, "- **Catalog:** %s\n", e.Source)
	}
	sb.WriteString("\n")

	if e.Schema.Len() == 0 {
		sb.WriteString("_No declared parameters._\n")
		return sb.String()
	}

	sb.WriteString("## Parameters\n\n")
	sb.WriteString("| Name | Type | Description |\n")
	sb.WriteString("|---|---|---|\n")
	for _, p := range e.Schema.Params() {
		fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", p.Name, p.Type.Name(), cell(p.Description))
	}
	return sb.String()
}

// Catalog produces a markdown index of entries, one row per kind.
func Catalog(entries []registry.Entry) string {
	var sb strings.Builder
	sb.WriteString("| Kind | Class | Params | Catalog |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, e := range entries {
		class := "component"
		if e.Container {
			class = "container"
		}
		fmt.Fprintf(&sb, "| %s | %s | %d | %s |\n", e.Kind(), class, e.Schema.Len(), e.Source)
	}
	return sb.String()
}

// cell keeps a description inside a single table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
