package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/aretw0/sofakit/pkg/registry"
	"github.com/aretw0/sofakit/pkg/schema"
)

// Core is the name of the catalog every registry starts from.
const Core = "core"

// ErrUnknownCatalog is returned when a builtin catalog name does not exist.
var ErrUnknownCatalog = errors.New("unknown catalog")

//go:embed data
var builtin embed.FS

// Builtin returns the names of the embedded catalogs, sorted.
func Builtin() []string {
	entries, err := builtin.ReadDir("data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Open parses the embedded catalog called name.
func Open(name string) (*File, error) {
	entries, err := builtin.ReadDir("data")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if strings.TrimSuffix(e.Name(), path.Ext(e.Name())) != name {
			continue
		}
		p := path.Join("data", e.Name())
		format, err := FormatOf(p)
		if err != nil {
			return nil, err
		}
		fh, err := builtin.Open(p)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		return Parse(fh, format, e.Name())
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCatalog, name)
}

// Register walks every kind of f in order and registers it.
// Loading stops at the first failure; a *schema.SchemaError means the
// catalog is broken and the registry must not be used.
func Register(reg *registry.Registry, f *File) error {
	for _, k := range f.Kinds {
		d, err := k.Declaration()
		if err != nil {
			return fmt.Errorf("catalog %s: %w", f.Catalog, err)
		}
		s, err := schema.Extract(d)
		if err != nil {
			var se *schema.SchemaError
			if errors.As(err, &se) {
				se.Source = f.Catalog
			}
			return err
		}

		opts := []registry.EntryOption{registry.FromSource(f.Catalog)}
		if k.Container {
			opts = append(opts, registry.AsContainer())
		}
		if err := reg.Register(k.Kind, s, opts...); err != nil {
			return err
		}
	}
	return nil
}

// Load parses a catalog from r and registers its kinds.
func Load(reg *registry.Registry, r io.Reader, format Format, filename string) error {
	f, err := Parse(r, format, filename)
	if err != nil {
		return err
	}
	return Register(reg, f)
}

// LoadFile loads a catalog file, inferring the format from its extension.
func LoadFile(reg *registry.Registry, filename string) error {
	format, err := FormatOf(filename)
	if err != nil {
		return err
	}
	fh, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer fh.Close()
	return Load(reg, fh, format, filename)
}

// LoadBuiltin registers the core catalog followed by the named extensions.
func LoadBuiltin(reg *registry.Registry, extensions ...string) error {
	names := append([]string{Core}, extensions...)
	for _, name := range names {
		f, err := Open(name)
		if err != nil {
			return err
		}
		if err := Register(reg, f); err != nil {
			return err
		}
	}
	return nil
}

// Default returns a frozen registry holding the core catalog and the named
// extensions.
func Default(extensions ...string) (*registry.Registry, error) {
	reg := registry.New()
	if err := LoadBuiltin(reg, extensions...); err != nil {
		return nil, err
	}
	reg.Freeze()
	return reg, nil
}
