// Package kinds provides one typed builder record per core catalog kind.
//
// Records are plain structs whose fields are optional values:
//
//	root.Add(kinds.EulerImplicitSolver{RayleighStiffness: kinds.Some(0.1)})
//
// Fields left at their zero Opt are unset and never reach the descriptor.
// Parameters newer than the catalog go into Extra.
//
// Everything but this file is generated by cmd/sofakit-gen.
package kinds

//go:generate go run ../../cmd/sofakit-gen -catalog core -o kinds_gen.go

import "github.com/aretw0/sofakit/pkg/descriptor"

// Component is implemented by every generated record.
type Component interface {
	Kind() string
	Args() []descriptor.Arg
}

// Opt is an optional parameter value. The zero Opt is unset.
type Opt[T any] struct {
	value T
	set   bool
}

// Some returns a set Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// Any returns a set Opt[any] holding v, for parameters typed any such as
// MechanicalObject.Position, which take flat or nested lists.
func Any(v any) Opt[any] {
	return Opt[any]{value: v, set: true}
}

// Get returns the value and whether it was set.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value was given.
func (o Opt[T]) IsSet() bool {
	return o.set
}

// Arg converts the option into a keyword argument named name.
// An unset option yields descriptor.Unset.
func (o Opt[T]) Arg(name string) descriptor.Arg {
	if !o.set {
		return descriptor.Set(name, descriptor.Unset)
	}
	return descriptor.Set(name, o.value)
}
