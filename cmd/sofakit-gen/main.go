// Command sofakit-gen writes the typed builder records of pkg/kinds from a
// catalog.
//
//	sofakit-gen -catalog core -o kinds_gen.go
//	sofakit-gen -catalog ./plugins/beam.hcl -package beam -o beam_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"

	"github.com/aretw0/sofakit/pkg/catalog"
)

func main() {
	source := flag.String("catalog", catalog.Core, "builtin catalog name or path to a catalog file")
	out := flag.String("o", "kinds_gen.go", "output file ('-' for stdout)")
	pkg := flag.String("package", "kinds", "package name of the generated file")
	flag.Parse()

	if err := run(*source, *out, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "sofakit-gen: %v\n", err)
		os.Exit(1)
	}
}

func run(source, out, pkg string) error {
	f, err := openCatalog(source)
	if err != nil {
		return err
	}

	src, err := generate(f, pkg)
	if err != nil {
		return err
	}

	if out == "-" {
		_, err = os.Stdout.Write(src)
		return err
	}
	return os.WriteFile(out, src, 0644)
}

func openCatalog(source string) (*catalog.File, error) {
	if _, err := os.Stat(source); err != nil {
		return catalog.Open(source)
	}
	format, err := catalog.FormatOf(source)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return catalog.Parse(fh, format, source)
}

type fieldData struct {
	Name   string
	GoName string
	GoType string
	Doc    string
}

type kindData struct {
	Kind        string
	GoName      string
	Description string
	Fields      []fieldData
}

type fileData struct {
	Catalog string
	Package string
	Kinds   []kindData
}

var fileTemplate = template.Must(template.New("kinds").Parse(`// Code generated by sofakit-gen from the {{.Catalog}} catalog. DO NOT EDIT.

package {{.Package}}

import "github.com/aretw0/sofakit/pkg/descriptor"

// All returns the zero record of every kind, in catalog order.
func All() []Component {
	return []Component{
{{- range .Kinds}}
		{{.GoName}}{},
{{- end}}
	}
}
{{range .Kinds}}
// {{.GoName}} builds "{{.Kind}}" descriptors.
{{- if .Description}}
//
// {{.Description}}
{{- end}}
type {{.GoName}} struct {
{{- range .Fields}}
	// {{.Doc}}
	{{.GoName}} Opt[{{.GoType}}]
{{- end}}
	// Extra carries parameters this catalog does not declare.
	Extra []descriptor.Arg
}

// Kind returns "{{.Kind}}".
func ({{.GoName}}) Kind() string { return "{{.Kind}}" }

// Args returns the declared parameters in catalog order followed by Extra.
func (c {{.GoName}}) Args() []descriptor.Arg {
	return append([]descriptor.Arg{
{{- range .Fields}}
		c.{{.GoName}}.Arg("{{.Name}}"),
{{- end}}
	}, c.Extra...)
}
{{end}}`))

func generate(f *catalog.File, pkg string) ([]byte, error) {
	data := fileData{Catalog: f.Catalog, Package: pkg}

	for _, k := range f.Kinds {
		kd := kindData{
			Kind:        k.Kind,
			GoName:      exportedName(k.Kind),
			Description: k.Description,
		}
		seen := make(map[string]string)
		for _, p := range k.Params {
			goType, err := goType(p.Type)
			if err != nil {
				return nil, fmt.Errorf("kind %q, parameter %q: %w", k.Kind, p.Name, err)
			}
			name := exportedName(p.Name)
			if reserved[name] {
				name += "_"
			}
			if prev, dup := seen[name]; dup {
				return nil, fmt.Errorf("kind %q: parameters %q and %q both map to field %s", k.Kind, prev, p.Name, name)
			}
			seen[name] = p.Name

			doc := p.Description
			if doc == "" {
				doc = fmt.Sprintf("%s sets %q.", name, p.Name)
			}
			kd.Fields = append(kd.Fields, fieldData{
				Name:   p.Name,
				GoName: name,
				GoType: goType,
				Doc:    doc,
			})
		}
		data.Kinds = append(data.Kinds, kd)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w", err)
	}
	return src, nil
}

// reserved holds identifiers already used by every generated record.
var reserved = map[string]bool{"Extra": true, "Kind": true, "Args": true}

// exportedName turns snake_case or camelCase into an exported identifier.
func exportedName(s string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' || r == '.' }) {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// goType maps a catalog type hint onto a Go type.
func goType(hint string) (string, error) {
	hint = strings.TrimSpace(hint)
	if len(hint) > 2 && hint[0] == '[' && hint[len(hint)-1] == ']' {
		elem, err := goType(hint[1 : len(hint)-1])
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	}
	switch hint {
	case "string", "int", "bool":
		return hint, nil
	case "float":
		return "float64", nil
	case "", "any":
		return "any", nil
	default:
		return "", fmt.Errorf("unsupported type %q", hint)
	}
}
