package assembler

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/sofakit/pkg/scene"
)

// Option configures an assembly.
type Option func(*assembly)

// WithHooks registers observability hooks.
func WithHooks(h Hooks) Option {
	return func(a *assembly) {
		a.hooks = a.hooks.Merge(h)
	}
}

// WithLogger sets a structured logger for the assembly.
func WithLogger(logger *slog.Logger) Option {
	return func(a *assembly) {
		a.logger = logger
	}
}

type assembly struct {
	engine Engine
	hooks  Hooks
	logger *slog.Logger

	nodes   int
	objects int
}

// Assemble hands the tree rooted at root to engine.
//
// Every node of the tree must still be Building; otherwise Assemble returns
// a *scene.SealedNodeError before calling the engine. The first failing
// engine call stops the traversal and is returned as an *AssemblyError.
// Nodes completed before the failure stay sealed.
func Assemble(ctx context.Context, root *scene.Node, engine Engine, opts ...Option) error {
	a := &assembly{
		engine: engine,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}

	err := root.Walk(func(n *scene.Node) error {
		if n.State() != scene.Building {
			return &scene.SealedNodeError{Path: n.Path(), State: n.State()}
		}
		return nil
	})
	if err != nil {
		return err
	}

	start := time.Now()
	a.logger.Debug("assembly started", "root", root.Path())

	err = a.visit(ctx, nil, root)

	summary := &Summary{
		Root:     root.Path(),
		Nodes:    a.nodes,
		Objects:  a.objects,
		Duration: time.Since(start),
		Err:      err,
	}
	if err != nil {
		a.logger.Error("assembly failed", "root", root.Path(), "error", err)
	} else {
		a.logger.Info("assembly finished",
			"root", root.Path(),
			"nodes", summary.Nodes,
			"objects", summary.Objects,
			"duration", summary.Duration,
		)
	}
	if a.hooks.OnAssembled != nil {
		a.hooks.OnAssembled(ctx, summary)
	}
	return err
}

func (a *assembly) visit(ctx context.Context, parent NodeRef, n *scene.Node) error {
	path := n.Path()
	fail := func(op Op, kind string, err error) error {
		return &AssemblyError{Path: path, Op: op, Kind: kind, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return fail(OpCreateNode, n.Kind(), err)
	}

	ref, err := a.engine.CreateNode(ctx, parent, n.Name())
	if err != nil {
		return fail(OpCreateNode, n.Kind(), err)
	}
	a.nodes++
	a.hooks.emit(ctx, a.hooks.OnNodeCreated, OpCreateNode, path, n.Kind())

	if c, ok := a.engine.(NodeConfigurer); ok {
		if err := c.ConfigureNode(ctx, ref, n.Descriptor()); err != nil {
			return fail(OpConfigureNode, n.Kind(), err)
		}
	}

	for _, h := range n.Components() {
		d := h.Descriptor()
		if _, err := a.engine.CreateObject(ctx, ref, d.Kind, d.Params); err != nil {
			return fail(OpCreateObject, d.Kind, err)
		}
		a.objects++
		a.hooks.emit(ctx, a.hooks.OnObjectCreated, OpCreateObject, path, d.Kind)
	}

	for _, child := range n.Children() {
		if err := a.visit(ctx, ref, child); err != nil {
			return err
		}
	}

	if err := n.Seal(); err != nil {
		return fail(OpSeal, n.Kind(), err)
	}
	if o, ok := a.engine.(SealObserver); ok {
		if err := o.NodeSealed(ctx, ref); err != nil {
			return fail(OpSeal, n.Kind(), err)
		}
	}
	a.hooks.emit(ctx, a.hooks.OnNodeSealed, OpSeal, path, n.Kind())
	a.logger.Debug("node sealed", "path", path)
	return nil
}
