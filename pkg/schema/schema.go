package schema

import "strings"

// Parameter is one declared, optional parameter of a kind.
type Parameter struct {
	Name        string
	Description string
	Type        Type
}

// Declaration is the raw form of a kind as written in a catalog.
type Declaration struct {
	Kind        string
	Description string
	Params      []Parameter
}

// Schema is the immutable, ordered parameter list of one kind.
// Every parameter is optional.
type Schema struct {
	kind        string
	description string
	params      []Parameter
	index       map[string]int
}

// New extracts a schema for kind from its ordered parameters.
func New(kind string, params ...Parameter) (*Schema, error) {
	return Extract(Declaration{Kind: kind, Params: params})
}

// Extract builds a Schema from a declaration, preserving declaration order.
// It fails with *SchemaError if the kind or a parameter name is empty, or if
// two parameters share a name.
func Extract(d Declaration) (*Schema, error) {
	kind := strings.TrimSpace(d.Kind)
	if kind == "" || kind != d.Kind {
		return nil, &SchemaError{Kind: d.Kind, Err: ErrInvalidName}
	}

	s := &Schema{
		kind:        kind,
		description: d.Description,
		params:      make([]Parameter, 0, len(d.Params)),
		index:       make(map[string]int, len(d.Params)),
	}

	for _, p := range d.Params {
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Name) != p.Name {
			return nil, &SchemaError{Kind: kind, Param: p.Name, Err: ErrInvalidName}
		}
		if _, dup := s.index[p.Name]; dup {
			return nil, &SchemaError{Kind: kind, Param: p.Name, Err: ErrDuplicateParameter}
		}
		if p.Type == nil {
			p.Type = Any()
		}
		s.index[p.Name] = len(s.params)
		s.params = append(s.params, p)
	}

	return s, nil
}

// MustExtract is like Extract but panics on error.
// It is meant for package-level catalog tables.
func MustExtract(d Declaration) *Schema {
	s, err := Extract(d)
	if err != nil {
		panic(err)
	}
	return s
}

// Kind returns the kind this schema describes.
func (s *Schema) Kind() string { return s.kind }

// Description returns the free-text documentation of the kind.
func (s *Schema) Description() string { return s.description }

// Len returns the number of declared parameters.
func (s *Schema) Len() int { return len(s.params) }

// Params returns a copy of the parameters in declaration order.
func (s *Schema) Params() []Parameter {
	out := make([]Parameter, len(s.params))
	copy(out, s.params)
	return out
}

// Names returns the parameter names in declaration order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.params))
	for i, p := range s.params {
		out[i] = p.Name
	}
	return out
}

// Has reports whether name is a declared parameter.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Index returns the declaration position of name, or -1.
func (s *Schema) Index(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

// Param returns the declared parameter called name.
func (s *Schema) Param(name string) (Parameter, bool) {
	i, ok := s.index[name]
	if !ok {
		return Parameter{}, false
	}
	return s.params[i], true
}

// Equal reports whether two schemas declare the same kind with the same
// parameters, descriptions and type hints in the same order.
func (s *Schema) Equal(other *Schema) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.kind != other.kind || s.description != other.description || len(s.params) != len(other.params) {
		return false
	}
	for i, p := range s.params {
		q := other.params[i]
		if p.Name != q.Name || p.Description != q.Description || p.Type.Name() != q.Type.Name() {
			return false
		}
	}
	return true
}
