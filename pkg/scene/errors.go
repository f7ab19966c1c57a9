package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrSealed is matched by every *SealedNodeError.
	ErrSealed = errors.New("node is not building")

	// ErrNotSealed is returned by Discard on a subtree that was never handed off.
	ErrNotSealed = errors.New("node is not sealed")

	// ErrContainerKind is returned by Object for container kinds.
	ErrContainerKind = errors.New("kind is a container")

	// ErrLeafKind is returned when a child node is requested with a non-container kind.
	ErrLeafKind = errors.New("kind is not a container")

	// ErrInvalidNodeName is matched by every *InvalidNameError.
	ErrInvalidNodeName = errors.New("invalid node name")
)

// InvalidNameError reports a node name that cannot be a path segment:
// one containing "/", or "." or "..".
type InvalidNameError struct {
	Parent string // Path of the parent, empty for a root
	Name   string
}

func (e *InvalidNameError) Error() string {
	if e.Parent == "" {
		return fmt.Sprintf("root node: invalid name %q", e.Name)
	}
	return fmt.Sprintf("child of %s: invalid name %q", e.Parent, e.Name)
}

func (e *InvalidNameError) Unwrap() error { return ErrInvalidNodeName }

// SealedNodeError reports a mutation attempted on a node that left the
// Building state.
type SealedNodeError struct {
	Path  string
	Kind  string // Kind being attached, empty for other mutations
	State State
}

func (e *SealedNodeError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("node %s is %s", e.Path, e.State)
	}
	return fmt.Sprintf("attach %q to node %s: node is %s", e.Kind, e.Path, e.State)
}

func (e *SealedNodeError) Unwrap() error { return ErrSealed }
