package assembler

import (
	"context"
	"fmt"
	"path"

	"github.com/aretw0/sofakit/pkg/descriptor"
)

// Operation is one engine call as seen by a Recorder.
type Operation struct {
	Op     Op                 `json:"op" yaml:"op"`
	Path   string             `json:"path" yaml:"path"`
	Name   string             `json:"name,omitempty" yaml:"name,omitempty"`
	Kind   string             `json:"kind,omitempty" yaml:"kind,omitempty"`
	Params *descriptor.Params `json:"params,omitempty" yaml:"params,omitempty"`
}

// Equal reports whether both operations are identical.
func (o Operation) Equal(other Operation) bool {
	if o.Op != other.Op || o.Path != other.Path || o.Name != other.Name || o.Kind != other.Kind {
		return false
	}
	if o.Params == nil || other.Params == nil {
		return o.Params == nil && other.Params == nil
	}
	return o.Params.Equal(other.Params)
}

func (o Operation) String() string {
	switch o.Op {
	case OpCreateObject:
		return fmt.Sprintf("%s %s %s%s", o.Op, o.Path, o.Kind, paramsString(o.Params))
	case OpConfigureNode:
		return fmt.Sprintf("%s %s%s", o.Op, o.Path, paramsString(o.Params))
	default:
		return fmt.Sprintf("%s %s", o.Op, o.Path)
	}
}

func paramsString(p *descriptor.Params) string {
	if p == nil {
		return ""
	}
	data, err := p.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(data)
}

// Recorder is an Engine that records every call it receives.
// Node references are node paths. It is not safe for concurrent use.
type Recorder struct {
	ops []Operation
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Operations returns the recorded operations in call order.
func (r *Recorder) Operations() []Operation {
	return append([]Operation(nil), r.ops...)
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.ops = nil
}

// CreateNode records a create_node operation.
func (r *Recorder) CreateNode(_ context.Context, parent NodeRef, name string) (NodeRef, error) {
	p := "/"
	if parent != nil {
		parentPath, ok := parent.(string)
		if !ok {
			return nil, fmt.Errorf("recorder: unexpected parent reference %T", parent)
		}
		p = path.Join(parentPath, name)
	}
	r.ops = append(r.ops, Operation{Op: OpCreateNode, Path: p, Name: name})
	return p, nil
}

// ConfigureNode records a configure_node operation.
func (r *Recorder) ConfigureNode(_ context.Context, node NodeRef, d descriptor.Descriptor) error {
	p, err := nodePath(node)
	if err != nil {
		return err
	}
	r.ops = append(r.ops, Operation{Op: OpConfigureNode, Path: p, Kind: d.Kind, Params: d.Params.Clone()})
	return nil
}

// CreateObject records a create_object operation and returns its index.
func (r *Recorder) CreateObject(_ context.Context, node NodeRef, kind string, params *descriptor.Params) (ObjectRef, error) {
	p, err := nodePath(node)
	if err != nil {
		return nil, err
	}
	r.ops = append(r.ops, Operation{Op: OpCreateObject, Path: p, Kind: kind, Params: params.Clone()})
	return len(r.ops) - 1, nil
}

// NodeSealed records a seal operation.
func (r *Recorder) NodeSealed(_ context.Context, node NodeRef) error {
	p, err := nodePath(node)
	if err != nil {
		return err
	}
	r.ops = append(r.ops, Operation{Op: OpSeal, Path: p})
	return nil
}

func nodePath(node NodeRef) (string, error) {
	p, ok := node.(string)
	if !ok {
		return "", fmt.Errorf("recorder: unexpected node reference %T", node)
	}
	return p, nil
}
