package assembler

import (
	"context"
	"time"
)

// Op names an operation sent to the engine.
type Op string

const (
	OpCreateNode    Op = "create_node"
	OpConfigureNode Op = "configure_node"
	OpCreateObject  Op = "create_object"
	OpSeal          Op = "seal"
)

// Event describes one completed engine operation.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Op        Op        `json:"op"`
	Path      string    `json:"path"`
	Kind      string    `json:"kind"`
}

// Summary describes a finished assembly, successful or not.
type Summary struct {
	Root     string
	Nodes    int
	Objects  int
	Duration time.Duration
	Err      error
}

// Hooks are optional callbacks for observing an assembly.
type Hooks struct {
	OnNodeCreated   func(context.Context, *Event)
	OnObjectCreated func(context.Context, *Event)
	OnNodeSealed    func(context.Context, *Event)
	OnAssembled     func(context.Context, *Summary)
}

func (h Hooks) emit(ctx context.Context, fn func(context.Context, *Event), op Op, path, kind string) {
	if fn == nil {
		return
	}
	fn(ctx, &Event{Timestamp: time.Now(), Op: op, Path: path, Kind: kind})
}

// Merge returns hooks that call h and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnNodeCreated:   chain(h.OnNodeCreated, other.OnNodeCreated),
		OnObjectCreated: chain(h.OnObjectCreated, other.OnObjectCreated),
		OnNodeSealed:    chain(h.OnNodeSealed, other.OnNodeSealed),
		OnAssembled:     chain(h.OnAssembled, other.OnAssembled),
	}
}

func chain[T any](a, b func(context.Context, T)) func(context.Context, T) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, v T) {
		a(ctx, v)
		b(ctx, v)
	}
}
