package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aretw0/sofakit/pkg/schema"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// Format identifies the syntax of a catalog file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// ErrUnsupportedFormat is returned for files whose extension is not recognised.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// File is a parsed catalog: an ordered list of kind declarations.
type File struct {
	Catalog string     `yaml:"catalog" hcl:"catalog,optional"`
	Kinds   []KindDecl `yaml:"kinds" hcl:"kind,block"`
}

// KindDecl declares one kind.
type KindDecl struct {
	Kind        string      `yaml:"kind" hcl:"kind,label"`
	Description string      `yaml:"description,omitempty" hcl:"description,optional"`
	Container   bool        `yaml:"container,omitempty" hcl:"container,optional"`
	Params      []ParamDecl `yaml:"params" hcl:"param,block"`
}

// ParamDecl declares one optional parameter.
type ParamDecl struct {
	Name        string `yaml:"name" hcl:"name,label"`
	Type        string `yaml:"type,omitempty" hcl:"type,optional"`
	Description string `yaml:"description,omitempty" hcl:"description,optional"`
}

// Declaration converts the declaration into its schema form.
func (k KindDecl) Declaration() (schema.Declaration, error) {
	d := schema.Declaration{
		Kind:        k.Kind,
		Description: k.Description,
		Params:      make([]schema.Parameter, 0, len(k.Params)),
	}
	for _, p := range k.Params {
		typ, err := schema.ParseType(p.Type)
		if err != nil {
			return schema.Declaration{}, fmt.Errorf("kind %q, parameter %q: %w", k.Kind, p.Name, err)
		}
		d.Params = append(d.Params, schema.Parameter{
			Name:        p.Name,
			Description: p.Description,
			Type:        typ,
		})
	}
	return d, nil
}

// Parse reads a catalog in the given format. filename is only used in
// diagnostics.
func Parse(r io.Reader, format Format, filename string) (*File, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", filename, err)
	}

	var f File
	switch format {
	case FormatYAML, FormatJSON:
		// JSON is a subset of YAML, one decoder serves both
		dec := yaml.NewDecoder(bytes.NewReader(src))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", filename, err)
		}
	case FormatHCL:
		hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", filename, diags)
		}
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode catalog %s: %w", filename, diags)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if f.Catalog == "" {
		f.Catalog = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return &f, nil
}
