package descriptor

import (
	"errors"
	"fmt"
)

// ErrPositionalArgument is returned when arguments cannot be read as
// name/value pairs. Builders accept keyword arguments only.
var ErrPositionalArgument = errors.New("positional arguments are not accepted")

type unset struct{}

func (unset) String() string { return "<unset>" }

// Unset is the default of every declared parameter. Arguments holding Unset
// (or a plain nil) are dropped from descriptors.
var Unset any = unset{}

// IsUnset reports whether v means "not given".
func IsUnset(v any) bool {
	if v == nil {
		return true
	}
	_, ok := v.(unset)
	return ok
}

// Arg is one keyword argument of a builder call.
type Arg struct {
	Name  string
	Value any
	// Extra marks a forward-compatible keyword: it passes through unfiltered
	// and overrides a declared value of the same name.
	Extra bool
}

// Set returns a keyword argument.
func Set(name string, value any) Arg {
	return Arg{Name: name, Value: value}
}

// Extra returns a forward-compatible keyword argument.
func Extra(name string, value any) Arg {
	return Arg{Name: name, Value: value, Extra: true}
}

// Pairs reads alternating name/value pairs as keyword arguments.
func Pairs(kv ...any) ([]Arg, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of values (%d)", ErrPositionalArgument, len(kv))
	}
	args := make([]Arg, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: argument %d is %T, want a parameter name", ErrPositionalArgument, i, kv[i])
		}
		args = append(args, Set(name, kv[i+1]))
	}
	return args, nil
}

// FromParams turns stored parameters back into keyword arguments.
func FromParams(p *Params) []Arg {
	args := make([]Arg, 0, p.Len())
	p.Each(func(name string, value any) {
		args = append(args, Set(name, value))
	})
	return args
}
