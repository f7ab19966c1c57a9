package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/sofakit/pkg/descriptor"
	"github.com/aretw0/sofakit/pkg/registry"
	"github.com/google/uuid"
)

// State is the lifecycle state of a node.
type State string

const (
	Building  State = "building"  // Accepts attachments
	Sealed    State = "sealed"    // Handed off to the engine
	Destroyed State = "destroyed" // Discarded by its owner
)

// Component is a typed builder record, such as those in pkg/kinds.
type Component interface {
	Kind() string
	Args() []descriptor.Arg
}

// Attachment is the result of one attachment call: a child *Node or a
// component *Handle.
type Attachment interface {
	Kind() string
	Descriptor() descriptor.Descriptor
	Warnings() []*descriptor.ParameterConflictWarning
	attachment()
}

// Node is a container in the scene tree.
type Node struct {
	id       uuid.UUID
	name     string
	parent   *Node // back-reference for path lookups only
	tree     *tree
	desc     descriptor.Descriptor
	warnings []*descriptor.ParameterConflictWarning

	children   []*Node
	components []*Handle
	state      State
}

// NewRoot creates the Building root of a new tree.
// The root is built from the node kind's schema with name as its "name"
// parameter.
func NewRoot(reg *registry.Registry, name string, opts ...Option) (*Node, error) {
	if reg == nil {
		return nil, errors.New("scene: nil registry")
	}
	t := &tree{
		reg:      reg,
		logger:   slog.Default(),
		nodeKind: DefaultNodeKind,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.onWarning == nil {
		t.onWarning = t.logWarning
	}

	entry, err := reg.Entry(t.nodeKind)
	if err != nil {
		return nil, fmt.Errorf("root node: %w", err)
	}
	if !entry.Container {
		return nil, fmt.Errorf("root node %q: %w", t.nodeKind, ErrLeafKind)
	}

	args := t.rootArgs
	if name != "" {
		args = append(args[:len(args):len(args)], descriptor.Set("name", name))
	}
	d, warnings := descriptor.Build(entry.Schema, args...)
	if err := checkName("", d); err != nil {
		return nil, err
	}

	root := newNode(t, nil, d, warnings, 0)
	t.report(root, warnings)
	return root, nil
}

// checkName rejects names that would not survive a round trip through
// Path and Lookup.
func checkName(parent string, d descriptor.Descriptor) error {
	name, _ := d.Params.Get("name")
	s, _ := name.(string)
	if s == "." || s == ".." || strings.Contains(s, "/") {
		return &InvalidNameError{Parent: parent, Name: s}
	}
	return nil
}

func newNode(t *tree, parent *Node, d descriptor.Descriptor, warnings []*descriptor.ParameterConflictWarning, index int) *Node {
	name, _ := d.Params.Get("name")
	s, ok := name.(string)
	if !ok || s == "" {
		s = fmt.Sprintf("node%d", index)
		if parent != nil {
			s = parent.freeName(s)
		}
	}
	return &Node{
		id:       uuid.New(),
		name:     s,
		parent:   parent,
		tree:     t,
		desc:     d,
		warnings: warnings,
		state:    Building,
	}
}

func (*Node) attachment() {}

// ID returns the node's identity, unique within the process.
func (n *Node) ID() uuid.UUID { return n.id }

// Name returns the "name" parameter, or "node<i>" for unnamed children
// where i is the position among its siblings. A generated name taken by an
// earlier sibling gets a "_<k>" suffix. Explicit names are not made unique;
// Lookup resolves duplicates to the first sibling.
func (n *Node) Name() string { return n.name }

// Kind returns the node's container kind.
func (n *Node) Kind() string { return n.desc.Kind }

// Parent returns the parent node, nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// State returns the lifecycle state.
func (n *Node) State() State { return n.state }

// Descriptor returns a copy of the node's own descriptor.
func (n *Node) Descriptor() descriptor.Descriptor { return n.desc.Clone() }

// Warnings returns the conflicts raised while building the node's own descriptor.
func (n *Node) Warnings() []*descriptor.ParameterConflictWarning { return n.warnings }

// Children returns the child nodes in attachment order.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// Components returns the component handles in attachment order.
func (n *Node) Components() []*Handle {
	return append([]*Handle(nil), n.components...)
}

// Attach builds a descriptor for kind and records it on n.
//
// Container kinds create and return a new child *Node, every other kind a
// *Handle. Each call adds exactly one attachment; attaching the same kind
// twice creates two independent entries.
func (n *Node) Attach(kind string, args ...descriptor.Arg) (Attachment, error) {
	if n.state != Building {
		return nil, &SealedNodeError{Path: n.Path(), Kind: kind, State: n.state}
	}
	entry, err := n.tree.reg.Entry(kind)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", n.Path(), err)
	}

	d, warnings := descriptor.Build(entry.Schema, args...)

	if entry.Container {
		if err := checkName(n.Path(), d); err != nil {
			return nil, err
		}
		child := newNode(n.tree, n, d, warnings, len(n.children))
		n.children = append(n.children, child)
		n.tree.report(child, warnings)
		return child, nil
	}

	h := &Handle{
		node:     n,
		schema:   entry.Schema,
		desc:     d,
		warnings: warnings,
	}
	n.components = append(n.components, h)
	n.tree.report(n, warnings)
	return h, nil
}

// Add attaches a typed builder record.
func (n *Node) Add(c Component) (Attachment, error) {
	return n.Attach(c.Kind(), c.Args()...)
}

// Object attaches a component of a non-container kind.
func (n *Node) Object(kind string, args ...descriptor.Arg) (*Handle, error) {
	if n.tree.reg.IsContainer(kind) {
		return nil, fmt.Errorf("node %s, kind %q: %w", n.Path(), kind, ErrContainerKind)
	}
	a, err := n.Attach(kind, args...)
	if err != nil {
		return nil, err
	}
	return a.(*Handle), nil
}

// Child attaches a new child node of the tree's node kind.
// name overrides any "name" given in args.
func (n *Node) Child(name string, args ...descriptor.Arg) (*Node, error) {
	if name != "" {
		args = append(args[:len(args):len(args)], descriptor.Set("name", name))
	}
	a, err := n.Attach(n.tree.nodeKind, args...)
	if err != nil {
		return nil, err
	}
	return a.(*Node), nil
}

// Walk visits n and its subtree depth-first in attachment order.
// It stops at the first error fn returns.
func (n *Node) Walk(fn func(*Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := c.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Seal moves n from Building to Sealed. It fails on any other state, so a
// node is sealed at most once. Children are not affected.
func (n *Node) Seal() error {
	if n.state != Building {
		return &SealedNodeError{Path: n.Path(), State: n.state}
	}
	n.state = Sealed
	return nil
}

// Discard moves a fully sealed subtree to Destroyed. It fails without
// changing anything if some node in the subtree is not Sealed.
func (n *Node) Discard() error {
	err := n.Walk(func(c *Node) error {
		if c.state != Sealed {
			return fmt.Errorf("discard %s: node %s is %s: %w", n.Path(), c.Path(), c.state, ErrNotSealed)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return n.Walk(func(c *Node) error {
		c.state = Destroyed
		return nil
	})
}
