package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aretw0/sofakit/pkg/descriptor"
	"github.com/aretw0/sofakit/pkg/schema"
)

// ErrFrozen is returned by Register once the registry has been frozen.
var ErrFrozen = errors.New("registry is frozen")

// ErrUnknownKind is matched by every *LookupError.
var ErrUnknownKind = errors.New("unknown kind")

// LookupError reports a reference to a kind that was never registered.
type LookupError struct {
	Kind string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown kind %q", e.Kind)
}

func (e *LookupError) Is(target error) bool { return target == ErrUnknownKind }

// Entry is everything the registry knows about a kind.
type Entry struct {
	Schema *schema.Schema
	// Container kinds create child nodes instead of components.
	Container bool
	// Source names the catalog that declared the kind.
	Source string
}

// Kind returns the registered kind name.
func (e Entry) Kind() string { return e.Schema.Kind() }

func (e Entry) same(other Entry) bool {
	return e.Container == other.Container && e.Schema.Equal(other.Schema)
}

// EntryOption configures a registration.
type EntryOption func(*Entry)

// AsContainer marks the kind as a container: attaching it creates a child node.
func AsContainer() EntryOption {
	return func(e *Entry) {
		e.Container = true
	}
}

// FromSource records which catalog declared the kind.
func FromSource(source string) EntryOption {
	return func(e *Entry) {
		e.Source = source
	}
}

// Registry maps kind names to their schemas.
//
// It is filled once while catalogs load and then frozen. A frozen registry
// never changes, so any number of goroutines may read it without locking.
// Registration itself is not safe for concurrent use.
type Registry struct {
	entries map[string]Entry
	frozen  bool
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
	}
}

// Register adds a kind.
// Registering the same schema again is a no-op. Registering a different
// schema (or container flag) under an existing name fails with a
// *schema.SchemaError wrapping schema.ErrConflictingKind, so that extension
// catalogs cannot shadow each other.
func (r *Registry) Register(kind string, s *schema.Schema, opts ...EntryOption) error {
	if r.frozen {
		return fmt.Errorf("register %q: %w", kind, ErrFrozen)
	}
	if s == nil {
		return &schema.SchemaError{Kind: kind, Err: fmt.Errorf("%w: nil schema", schema.ErrInvalidName)}
	}
	if kind == "" || kind != s.Kind() {
		return &schema.SchemaError{Kind: kind, Err: fmt.Errorf("%w: schema describes %q", schema.ErrInvalidName, s.Kind())}
	}

	entry := Entry{Schema: s}
	for _, opt := range opts {
		opt(&entry)
	}

	if existing, ok := r.entries[kind]; ok {
		if existing.same(entry) {
			return nil
		}
		source := entry.Source
		if existing.Source != "" {
			source = fmt.Sprintf("%s, already declared by %s", entry.Source, existing.Source)
		}
		return &schema.SchemaError{Kind: kind, Source: source, Err: schema.ErrConflictingKind}
	}

	r.entries[kind] = entry
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(kind string, s *schema.Schema, opts ...EntryOption) {
	if err := r.Register(kind, s, opts...); err != nil {
		panic(err)
	}
}

// Freeze ends the load phase. Later registrations fail with ErrFrozen.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze was called.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Lookup returns the schema of kind or a *LookupError.
func (r *Registry) Lookup(kind string) (*schema.Schema, error) {
	e, err := r.Entry(kind)
	if err != nil {
		return nil, err
	}
	return e.Schema, nil
}

// Entry returns the full registration of kind or a *LookupError.
func (r *Registry) Entry(kind string) (Entry, error) {
	e, ok := r.entries[kind]
	if !ok {
		return Entry{}, &LookupError{Kind: kind}
	}
	return e, nil
}

// IsContainer reports whether kind is a registered container kind.
func (r *Registry) IsContainer(kind string) bool {
	e, ok := r.entries[kind]
	return ok && e.Container
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Kinds returns all registered kind names, sorted.
func (r *Registry) Kinds() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns all registrations sorted by kind.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, name := range r.Kinds() {
		out = append(out, r.entries[name])
	}
	return out
}

// Build looks kind up and builds its descriptor from args.
func (r *Registry) Build(kind string, args ...descriptor.Arg) (descriptor.Descriptor, []*descriptor.ParameterConflictWarning, error) {
	s, err := r.Lookup(kind)
	if err != nil {
		return descriptor.Descriptor{}, nil, err
	}
	d, warnings := descriptor.Build(s, args...)
	return d, warnings, nil
}
