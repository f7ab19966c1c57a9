package assembler

import (
	"context"

	"github.com/aretw0/sofakit/pkg/descriptor"
)

// NodeRef is the engine's handle on a created node.
type NodeRef any

// ObjectRef is the engine's handle on a created object.
type ObjectRef any

// Engine is the simulation engine the tree is handed to.
type Engine interface {
	// CreateNode creates a node under parent. parent is nil for the root.
	CreateNode(ctx context.Context, parent NodeRef, name string) (NodeRef, error)
	// CreateObject creates one component on node.
	CreateObject(ctx context.Context, node NodeRef, kind string, params *descriptor.Params) (ObjectRef, error)
}

// NodeConfigurer is implemented by engines that accept a node's own
// parameters (gravity, dt, ...). ConfigureNode is called right after
// CreateNode.
type NodeConfigurer interface {
	ConfigureNode(ctx context.Context, node NodeRef, d descriptor.Descriptor) error
}

// SealObserver is implemented by engines that want to know when a node has
// been handed off completely.
type SealObserver interface {
	NodeSealed(ctx context.Context, node NodeRef) error
}
