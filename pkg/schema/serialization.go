package schema

import "encoding/json"

// parameterDoc is the wire form of a Parameter.
type parameterDoc struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// schemaDoc is the wire form of a Schema. Parameters stay a list so that
// documentation tools see them in declaration order.
type schemaDoc struct {
	Kind        string         `json:"kind" yaml:"kind"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Params      []parameterDoc `json:"params" yaml:"params"`
}

func (s *Schema) doc() schemaDoc {
	d := schemaDoc{
		Kind:        s.kind,
		Description: s.description,
		Params:      make([]parameterDoc, 0, len(s.params)),
	}
	for _, p := range s.params {
		d.Params = append(d.Params, parameterDoc{
			Name:        p.Name,
			Type:        p.Type.Name(),
			Description: p.Description,
		})
	}
	return d
}

// MarshalJSON serializes the schema as an ordered parameter list.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.doc())
}

// MarshalYAML implements yaml.Marshaler.
func (s *Schema) MarshalYAML() (any, error) {
	return s.doc(), nil
}
