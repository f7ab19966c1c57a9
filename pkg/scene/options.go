package scene

import (
	"log/slog"

	"github.com/aretw0/sofakit/pkg/descriptor"
	"github.com/aretw0/sofakit/pkg/registry"
)

// DefaultNodeKind is the container kind used by NewRoot and Child.
const DefaultNodeKind = "Node"

// WarningHandler receives every parameter conflict raised while building
// the tree, together with the node the attachment went to.
type WarningHandler func(n *Node, w *descriptor.ParameterConflictWarning)

// Option configures a tree.
type Option func(*tree)

// WithLogger sets the logger used by the default warning handler.
func WithLogger(logger *slog.Logger) Option {
	return func(t *tree) {
		t.logger = logger
	}
}

// WithWarningHandler replaces the default handler, which logs each warning
// at WARN level.
func WithWarningHandler(h WarningHandler) Option {
	return func(t *tree) {
		t.onWarning = h
	}
}

// WithNodeKind sets the container kind used for the root and for Child
// (default: "Node").
func WithNodeKind(kind string) Option {
	return func(t *tree) {
		t.nodeKind = kind
	}
}

// WithParams sets the root node's own parameters.
func WithParams(args ...descriptor.Arg) Option {
	return func(t *tree) {
		t.rootArgs = append(t.rootArgs, args...)
	}
}

// tree is the state shared by every node of one scene.
type tree struct {
	reg       *registry.Registry
	logger    *slog.Logger
	onWarning WarningHandler
	nodeKind  string
	rootArgs  []descriptor.Arg
}

func (t *tree) report(n *Node, warnings []*descriptor.ParameterConflictWarning) {
	for _, w := range warnings {
		t.onWarning(n, w)
	}
}

func (t *tree) logWarning(n *Node, w *descriptor.ParameterConflictWarning) {
	t.logger.Warn("parameter given twice",
		"path", n.Path(),
		"kind", w.Kind,
		"param", w.Param,
		"replaced", w.Replaced,
		"kept", w.Kept,
	)
}
