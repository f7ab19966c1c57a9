package descriptor

import (
	"fmt"

	"github.com/aretw0/sofakit/pkg/schema"
)

// Descriptor is the (kind, params) pair a builder call produces.
// Params never holds Unset values.
type Descriptor struct {
	Kind   string  `json:"kind" yaml:"kind"`
	Params *Params `json:"params" yaml:"params"`
}

// Clone returns a descriptor with its own parameter map.
func (d Descriptor) Clone() Descriptor {
	return Descriptor{Kind: d.Kind, Params: d.Params.Clone()}
}

// Equal reports whether both descriptors have the same kind and params.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.Kind == other.Kind && d.Params.Equal(other.Params)
}

func (d Descriptor) String() string {
	data, err := d.Params.MarshalJSON()
	if err != nil {
		return d.Kind
	}
	return fmt.Sprintf("%s%s", d.Kind, data)
}

// ParameterConflictWarning reports a parameter given twice with different
// values. It is not fatal: the extra (or later) value is kept.
type ParameterConflictWarning struct {
	Kind     string
	Param    string
	Replaced any // Value that lost
	Kept     any // Value that ended up in the descriptor
}

func (w *ParameterConflictWarning) String() string {
	return fmt.Sprintf("%s: parameter %q given twice (%v overridden by %v)", w.Kind, w.Param, w.Replaced, w.Kept)
}

// Build produces the descriptor of one builder call.
//
// Unset and nil arguments are dropped; zero values and empty collections are
// kept. Arguments naming a declared parameter fill its slot, everything else
// passes through unfiltered. When a parameter is given more than once with
// different values, extras win over declared arguments and later arguments
// win over earlier ones, and a warning is returned for each collision.
//
// Declared parameters come first in declaration order, followed by the
// remaining extras in the order they first appeared. Build is pure.
func Build(s *schema.Schema, args ...Arg) (Descriptor, []*ParameterConflictWarning) {
	declared := make(map[string]any, len(args))
	extras := make(map[string]any)
	var extraOrder []string
	var warnings []*ParameterConflictWarning

	conflict := func(name string, old, kept any) {
		if valuesEqual(old, kept) {
			return
		}
		warnings = append(warnings, &ParameterConflictWarning{
			Kind:     s.Kind(),
			Param:    name,
			Replaced: old,
			Kept:     kept,
		})
	}

	for _, a := range args {
		if IsUnset(a.Value) {
			continue
		}
		if !a.Extra && s.Has(a.Name) {
			if old, ok := extras[a.Name]; ok {
				// The extra already holds this slot and keeps it
				conflict(a.Name, a.Value, old)
				continue
			}
			if old, ok := declared[a.Name]; ok {
				conflict(a.Name, old, a.Value)
			}
			declared[a.Name] = a.Value
			continue
		}

		if old, ok := extras[a.Name]; ok {
			conflict(a.Name, old, a.Value)
		} else {
			extraOrder = append(extraOrder, a.Name)
			if old, ok := declared[a.Name]; ok {
				conflict(a.Name, old, a.Value)
			}
		}
		extras[a.Name] = a.Value
	}

	params := NewParams()
	for _, name := range s.Names() {
		if v, ok := extras[name]; ok {
			params.Set(name, v)
		} else if v, ok := declared[name]; ok {
			params.Set(name, v)
		}
	}
	for _, name := range extraOrder {
		if s.Has(name) {
			continue
		}
		params.Set(name, extras[name])
	}

	return Descriptor{Kind: s.Kind(), Params: params}, warnings
}
