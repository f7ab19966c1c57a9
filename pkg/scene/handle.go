package scene

import (
	"github.com/aretw0/sofakit/pkg/descriptor"
	"github.com/aretw0/sofakit/pkg/schema"
)

// Handle references one component attached to a node. Until the node is
// sealed it can be used to re-read or overwrite single parameters.
type Handle struct {
	node     *Node
	schema   *schema.Schema
	desc     descriptor.Descriptor
	warnings []*descriptor.ParameterConflictWarning
}

func (*Handle) attachment() {}

// Kind returns the component kind.
func (h *Handle) Kind() string { return h.desc.Kind }

// Node returns the node the component is attached to.
func (h *Handle) Node() *Node { return h.node }

// Descriptor returns a copy of the current descriptor.
func (h *Handle) Descriptor() descriptor.Descriptor { return h.desc.Clone() }

// Warnings returns the conflicts raised when the component was attached.
func (h *Handle) Warnings() []*descriptor.ParameterConflictWarning { return h.warnings }

// Get returns the current value of a parameter.
func (h *Handle) Get(name string) (any, bool) {
	return h.desc.Params.Get(name)
}

// Set overwrites a single parameter. Declared parameters keep their schema
// position and new extras go last. Setting Unset or nil removes the parameter.
func (h *Handle) Set(name string, value any) error {
	if err := h.mutable(); err != nil {
		return err
	}
	if descriptor.IsUnset(value) {
		h.desc.Params.Delete(name)
		return nil
	}
	args := append(descriptor.FromParams(h.desc.Params), descriptor.Set(name, value))
	// The overwrite is explicit, so its conflict warning is not reported.
	h.desc, _ = descriptor.Build(h.schema, args...)
	return nil
}

// Unset removes a parameter from the descriptor.
func (h *Handle) Unset(name string) error {
	return h.Set(name, descriptor.Unset)
}

func (h *Handle) mutable() error {
	if h.node.state != Building {
		return &SealedNodeError{Path: h.node.Path(), Kind: h.desc.Kind, State: h.node.state}
	}
	return nil
}
