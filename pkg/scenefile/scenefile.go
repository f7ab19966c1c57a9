// Package scenefile reads declarative scene documents and replays them
// through the attachment protocol.
//
// A document is YAML (or JSON, which YAML accepts):
//
//	name: root
//	params: {gravity: [0, -9.81, 0], dt: 0.01}
//	objects:
//	  - kind: DefaultAnimationLoop
//	  - kind: EulerImplicitSolver
//	    params: {rayleighStiffness: 0.1}
//	    extra: {newton_iterations: 5}
//	children:
//	  - name: liver
//	    objects:
//	      - kind: MechanicalObject
//
// Parameter order is kept exactly as written.
package scenefile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/sofakit/pkg/descriptor"
	"github.com/aretw0/sofakit/pkg/registry"
	"github.com/aretw0/sofakit/pkg/scene"
	"gopkg.in/yaml.v3"
)

// Document is one node of a scene document.
type Document struct {
	Name     string     `yaml:"name"`
	Params   yaml.Node  `yaml:"params"`
	Objects  []Object   `yaml:"objects"`
	Children []Document `yaml:"children"`
}

// Object is one component entry.
type Object struct {
	Kind   string    `yaml:"kind"`
	Params yaml.Node `yaml:"params"`
	// Extra holds forward-compatible parameters passed through unfiltered.
	Extra yaml.Node `yaml:"extra"`
}

// Args returns the object's declared then extra arguments in document order.
func (o Object) Args() ([]descriptor.Arg, error) {
	args, err := descriptor.ArgsFromYAML(&o.Params)
	if err != nil {
		return nil, err
	}
	extras, err := descriptor.ArgsFromYAML(&o.Extra)
	if err != nil {
		return nil, err
	}
	for _, a := range extras {
		args = append(args, descriptor.Extra(a.Name, a.Value))
	}
	return args, nil
}

// Decode reads one document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("decode scene: empty document")
		}
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &doc, nil
}

// ReadFile decodes the document stored at path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Build creates a scene tree from doc. The first failing attachment stops
// the build; its error names the node path and the object's position and kind.
func Build(reg *registry.Registry, doc *Document, opts ...scene.Option) (*scene.Node, error) {
	args, err := descriptor.ArgsFromYAML(&doc.Params)
	if err != nil {
		return nil, fmt.Errorf("node /: params: %w", err)
	}

	root, err := scene.NewRoot(reg, doc.Name, append(opts[:len(opts):len(opts)], scene.WithParams(args...))...)
	if err != nil {
		return nil, err
	}
	if err := populate(root, doc); err != nil {
		return nil, err
	}
	return root, nil
}

func populate(n *scene.Node, doc *Document) error {
	for i, obj := range doc.Objects {
		if obj.Kind == "" {
			return fmt.Errorf("node %s: object %d: missing kind", n.Path(), i)
		}
		args, err := obj.Args()
		if err != nil {
			return fmt.Errorf("node %s: object %d (%s): %w", n.Path(), i, obj.Kind, err)
		}
		if _, err := n.Attach(obj.Kind, args...); err != nil {
			return fmt.Errorf("object %d (%s): %w", i, obj.Kind, err)
		}
	}

	for i := range doc.Children {
		child := &doc.Children[i]
		args, err := descriptor.ArgsFromYAML(&child.Params)
		if err != nil {
			return fmt.Errorf("node %s: child %d: params: %w", n.Path(), i, err)
		}
		c, err := n.Child(child.Name, args...)
		if err != nil {
			return fmt.Errorf("child %d (%s): %w", i, child.Name, err)
		}
		if err := populate(c, child); err != nil {
			return err
		}
	}
	return nil
}

// Load decodes a document and builds its tree.
func Load(reg *registry.Registry, r io.Reader, opts ...scene.Option) (*scene.Node, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return Build(reg, doc, opts...)
}
