package plan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/sofakit/pkg/assembler"
	"github.com/aretw0/sofakit/pkg/scene"
	"gopkg.in/yaml.v3"
)

// Format is a plan encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for unknown encodings.
var ErrUnsupportedFormat = errors.New("unsupported plan format")

// Plan is the recorded hand-off of one scene.
type Plan struct {
	Scene      string                `json:"scene" yaml:"scene"`
	Operations []assembler.Operation `json:"operations" yaml:"operations"`
}

// FromRecorder wraps what rec recorded.
func FromRecorder(sceneName string, rec *assembler.Recorder) *Plan {
	return &Plan{Scene: sceneName, Operations: rec.Operations()}
}

// Build assembles root into a Recorder and returns the resulting plan.
// root is sealed afterwards, like after any assembly.
func Build(ctx context.Context, root *scene.Node, opts ...assembler.Option) (*Plan, error) {
	rec := assembler.NewRecorder()
	if err := assembler.Assemble(ctx, root, rec, opts...); err != nil {
		return nil, err
	}
	return FromRecorder(root.Name(), rec), nil
}

// Count returns how many operations of kind op the plan holds.
func (p *Plan) Count(op assembler.Op) int {
	n := 0
	for _, o := range p.Operations {
		if o.Op == op {
			n++
		}
	}
	return n
}

// Encode writes the plan to w.
func (p *Plan) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Marshal returns the encoded plan.
func (p *Plan) Marshal(format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Encode(&buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a plan from r.
func Decode(r io.Reader, format Format) (*Plan, error) {
	var p Plan
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&p); err != nil {
			return nil, fmt.Errorf("decode plan: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode plan: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &p, nil
}

// Unmarshal decodes an encoded plan.
func Unmarshal(data []byte, format Format) (*Plan, error) {
	return Decode(bytes.NewReader(data), format)
}
