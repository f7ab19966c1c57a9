package descriptor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Params is an insertion-ordered parameter map.
// Encoding to JSON or YAML always emits keys in insertion order, so equal
// Params encode to identical bytes.
// The zero value is ready to use; a nil *Params reads as empty.
type Params struct {
	om *orderedmap.OrderedMap[string, any]
}

// NewParams returns an empty parameter map.
func NewParams() *Params {
	return &Params{om: orderedmap.New[string, any]()}
}

// ParamsOf builds Params from alternating name/value pairs.
// Unset values are skipped. It panics on malformed pairs and is meant for
// tests and literals.
func ParamsOf(kv ...any) *Params {
	args, err := Pairs(kv...)
	if err != nil {
		panic(err)
	}
	p := NewParams()
	for _, a := range args {
		p.Set(a.Name, a.Value)
	}
	return p
}

// Set stores value under name, keeping the original position of an existing
// key. Setting Unset (or nil) removes the key.
func (p *Params) Set(name string, value any) {
	if IsUnset(value) {
		p.Delete(name)
		return
	}
	if p.om == nil {
		p.om = orderedmap.New[string, any]()
	}
	p.om.Set(name, value)
}

// Get returns the value stored under name.
func (p *Params) Get(name string) (any, bool) {
	if p == nil || p.om == nil {
		return nil, false
	}
	return p.om.Get(name)
}

// Delete removes name and reports whether it was present.
func (p *Params) Delete(name string) bool {
	if p == nil || p.om == nil {
		return false
	}
	_, ok := p.om.Delete(name)
	return ok
}

// Len returns the number of stored parameters.
func (p *Params) Len() int {
	if p == nil || p.om == nil {
		return 0
	}
	return p.om.Len()
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	keys := make([]string, 0, p.Len())
	p.Each(func(name string, _ any) {
		keys = append(keys, name)
	})
	return keys
}

// Each calls fn for every parameter in insertion order.
func (p *Params) Each(fn func(name string, value any)) {
	if p == nil || p.om == nil {
		return
	}
	for pair := p.om.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Map returns an unordered copy.
func (p *Params) Map() map[string]any {
	out := make(map[string]any, p.Len())
	p.Each(func(name string, value any) {
		out[name] = value
	})
	return out
}

// Clone returns a copy with the same order. Values are shared.
func (p *Params) Clone() *Params {
	out := NewParams()
	p.Each(func(name string, value any) {
		out.om.Set(name, value)
	})
	return out
}

// Equal reports whether both maps hold the same values in the same order.
// Values are compared by their JSON encoding, so 25 and 25.0, or []int and
// []any holding the same numbers, are equal. This keeps params decoded from
// JSON, YAML and typed records comparable.
func (p *Params) Equal(other *Params) bool {
	if p.Len() != other.Len() {
		return false
	}
	a, b := p.Keys(), other.Keys()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
		va, _ := p.Get(a[i])
		vb, _ := other.Get(b[i])
		if !valuesEqual(va, vb) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	ja, err := json.Marshal(a)
	if err != nil {
		return false
	}
	jb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ja, jb)
}

// MarshalJSON encodes the parameters as an object in insertion order.
func (p *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	var err error
	p.Each(func(name string, value any) {
		if err != nil {
			return
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		var k, v []byte
		if k, err = json.Marshal(name); err != nil {
			return
		}
		if v, err = json.Marshal(value); err != nil {
			err = fmt.Errorf("param %q: %w", name, err)
			return
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object, keeping the key order of the document.
func (p *Params) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = Params{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("params: expected object, got %v", tok)
	}

	out := NewParams()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("params: expected string key, got %v", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("param %q: %w", key, err)
		}
		out.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = *out
	return nil
}

// MarshalYAML implements yaml.Marshaler with a mapping node in insertion order.
func (p *Params) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	var err error
	p.Each(func(name string, value any) {
		if err != nil {
			return
		}
		var v yaml.Node
		if err = v.Encode(value); err != nil {
			err = fmt.Errorf("param %q: %w", name, err)
			return
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&v,
		)
	})
	if err != nil {
		return nil, err
	}
	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, keeping document order.
func (p *Params) UnmarshalYAML(value *yaml.Node) error {
	args, err := ArgsFromYAML(value)
	if err != nil {
		return err
	}
	out := NewParams()
	for _, a := range args {
		out.Set(a.Name, a.Value)
	}
	*p = *out
	return nil
}

// ArgsFromYAML converts a YAML mapping node into arguments in document order.
// A null node yields no arguments.
func ArgsFromYAML(value *yaml.Node) ([]Arg, error) {
	if value == nil || value.Kind == 0 || value.Tag == "!!null" {
		return nil, nil
	}
	if value.Kind == yaml.AliasNode {
		value = value.Alias
	}
	if value.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: params must be a mapping", value.Line)
	}

	args := make([]Arg, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]
		var v any
		if err := valNode.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: param %q: %w", valNode.Line, keyNode.Value, err)
		}
		args = append(args, Set(keyNode.Value, v))
	}
	return args, nil
}
