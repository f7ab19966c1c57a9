package scene_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/sofakit/pkg/catalog"
	"github.com/aretw0/sofakit/pkg/descriptor"
	"github.com/aretw0/sofakit/pkg/kinds"
	"github.com/aretw0/sofakit/pkg/registry"
	"github.com/aretw0/sofakit/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := catalog.Default()
	require.NoError(t, err)
	return reg
}

func newRoot(t *testing.T, opts ...scene.Option) *scene.Node {
	t.Helper()
	root, err := scene.NewRoot(newRegistry(t), "root", opts...)
	require.NoError(t, err)
	return root
}

func kindsOf(handles []*scene.Handle) []string {
	var out []string
	for _, h := range handles {
		out = append(out, h.Kind())
	}
	return out
}

func TestNewRoot(t *testing.T) {
	root := newRoot(t, scene.WithParams(descriptor.Set("dt", 0.01)))

	assert.Equal(t, "root", root.Name())
	assert.Equal(t, "Node", root.Kind())
	assert.Equal(t, scene.Building, root.State())
	assert.Equal(t, "/", root.Path())
	assert.Nil(t, root.Parent())
	assert.Equal(t, []string{"name", "dt"}, root.Descriptor().Params.Keys())
}

func TestNewRoot_Errors(t *testing.T) {
	reg := newRegistry(t)

	_, err := scene.NewRoot(nil, "root")
	assert.Error(t, err)

	_, err = scene.NewRoot(reg, "root", scene.WithNodeKind("Nope"))
	assert.ErrorIs(t, err, registry.ErrUnknownKind)

	_, err = scene.NewRoot(reg, "root", scene.WithNodeKind("StaticSolver"))
	assert.ErrorIs(t, err, scene.ErrLeafKind)
}

func TestAttach_PreservesCallOrder(t *testing.T) {
	order := []string{"UniformMass", "EulerImplicitSolver", "MechanicalObject", "UniformMass", "CGLinearSolver"}

	forward := newRoot(t)
	for _, k := range order {
		_, err := forward.Attach(k)
		require.NoError(t, err)
	}
	assert.Equal(t, order, kindsOf(forward.Components()))

	reversed := newRoot(t)
	for i := len(order) - 1; i >= 0; i-- {
		_, err := reversed.Attach(order[i])
		require.NoError(t, err)
	}
	got := kindsOf(reversed.Components())
	for i, j := 0, len(got)-1; i < j; i, j = i+1, j-1 {
		got[i], got[j] = got[j], got[i]
	}
	assert.Equal(t, order, got)
}

func TestAttach_DuplicatesAreIndependent(t *testing.T) {
	root := newRoot(t)

	a, err := root.Object("MechanicalObject", descriptor.Set("name", "a"))
	require.NoError(t, err)
	b, err := root.Object("MechanicalObject", descriptor.Set("name", "b"))
	require.NoError(t, err)

	require.Len(t, root.Components(), 2)
	require.NoError(t, a.Set("showObject", true))

	_, ok := b.Get("showObject")
	assert.False(t, ok)
	v, _ := b.Get("name")
	assert.Equal(t, "b", v)
}

func TestAttach_ContainerKindCreatesChild(t *testing.T) {
	root := newRoot(t)

	a, err := root.Attach("Node", descriptor.Set("name", "liver"), descriptor.Set("gravity", []float64{0, -9.81, 0}))
	require.NoError(t, err)

	child, ok := a.(*scene.Node)
	require.True(t, ok)
	assert.Equal(t, "liver", child.Name())
	assert.Equal(t, root, child.Parent())
	assert.Equal(t, "/liver", child.Path())
	assert.Empty(t, root.Components())
	assert.Equal(t, []*scene.Node{child}, root.Children())
	assert.NotEqual(t, root.ID(), child.ID())
}

func TestAttach_UnknownKind(t *testing.T) {
	root := newRoot(t)

	_, err := root.Attach("NoSuchSolver")
	require.Error(t, err)

	var lookupErr *registry.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "NoSuchSolver", lookupErr.Kind)
	assert.Empty(t, root.Components())
}

func TestAdd_TypedRecord(t *testing.T) {
	root := newRoot(t)

	a, err := root.Add(kinds.MechanicalObject{
		Position:   kinds.Any([]float64{0, 0, 0}),
		ShowObject: kinds.Some(true),
	})
	require.NoError(t, err)

	d := a.Descriptor()
	assert.Equal(t, "MechanicalObject", d.Kind)
	assert.Equal(t, []string{"position", "showObject"}, d.Params.Keys())

	a, err = root.Add(kinds.Node{Name: kinds.Some("collision")})
	require.NoError(t, err)
	assert.IsType(t, &scene.Node{}, a)
}

func TestObjectAndChild(t *testing.T) {
	root := newRoot(t)

	_, err := root.Object("Node")
	assert.ErrorIs(t, err, scene.ErrContainerKind)
	assert.Empty(t, root.Children())

	child, err := root.Child("visual", descriptor.Set("name", "ignored"))
	require.NoError(t, err)
	assert.Equal(t, "visual", child.Name())

	unnamed, err := root.Child("")
	require.NoError(t, err)
	assert.Equal(t, "node1", unnamed.Name())
}

func TestHandle_GetSetUnset(t *testing.T) {
	root := newRoot(t)

	h, err := root.Object("EulerImplicitSolver",
		descriptor.Set("rayleighMass", 0.1),
		descriptor.Extra("newton_iterations", 3),
	)
	require.NoError(t, err)

	require.NoError(t, h.Set("rayleighStiffness", 0.2))
	assert.Equal(t, []string{"rayleighStiffness", "rayleighMass", "newton_iterations"}, h.Descriptor().Params.Keys())

	require.NoError(t, h.Set("rayleighMass", 0.3))
	v, ok := h.Get("rayleighMass")
	require.True(t, ok)
	assert.Equal(t, 0.3, v)

	require.NoError(t, h.Unset("rayleighMass"))
	_, ok = h.Get("rayleighMass")
	assert.False(t, ok)

	require.NoError(t, h.Set("vdamping", nil))
	assert.Equal(t, []string{"rayleighStiffness", "newton_iterations"}, h.Descriptor().Params.Keys())
}

func TestDescriptorCopiesAreDetached(t *testing.T) {
	root := newRoot(t)
	h, err := root.Object("StaticSolver")
	require.NoError(t, err)

	d := h.Descriptor()
	d.Params.Set("printLog", true)

	assert.Equal(t, 0, h.Descriptor().Params.Len())
}

func TestSeal(t *testing.T) {
	root := newRoot(t)
	h, err := root.Object("UniformMass", descriptor.Set("totalMass", 1.0))
	require.NoError(t, err)

	require.NoError(t, root.Seal())
	assert.Equal(t, scene.Sealed, root.State())

	_, err = root.Attach("EulerImplicitSolver")
	var sealedErr *scene.SealedNodeError
	require.ErrorAs(t, err, &sealedErr)
	assert.Equal(t, "EulerImplicitSolver", sealedErr.Kind)
	assert.Equal(t, "/", sealedErr.Path)
	assert.ErrorIs(t, err, scene.ErrSealed)

	_, err = root.Child("late")
	assert.ErrorIs(t, err, scene.ErrSealed)
	assert.ErrorIs(t, h.Set("totalMass", 2.0), scene.ErrSealed)
	assert.ErrorIs(t, root.Seal(), scene.ErrSealed)
	assert.Len(t, root.Components(), 1)
}

func TestDiscard(t *testing.T) {
	root := newRoot(t)
	child, err := root.Child("a")
	require.NoError(t, err)

	require.NoError(t, root.Seal())
	err = root.Discard()
	require.ErrorIs(t, err, scene.ErrNotSealed)
	assert.Equal(t, scene.Sealed, root.State())
	assert.Equal(t, scene.Building, child.State())

	require.NoError(t, child.Seal())
	require.NoError(t, root.Discard())
	assert.Equal(t, scene.Destroyed, root.State())
	assert.Equal(t, scene.Destroyed, child.State())

	assert.ErrorIs(t, root.Seal(), scene.ErrSealed)
	assert.ErrorIs(t, root.Discard(), scene.ErrNotSealed)
}

func TestLookupAndWalk(t *testing.T) {
	root := newRoot(t)
	liver, err := root.Child("liver")
	require.NoError(t, err)
	visual, err := liver.Child("visual")
	require.NoError(t, err)
	heart, err := root.Child("heart")
	require.NoError(t, err)

	tests := []struct {
		from *scene.Node
		path string
		want *scene.Node
	}{
		{root, "/liver/visual", visual},
		{heart, "/liver", liver},
		{liver, "visual", visual},
		{visual, "../../heart", heart},
		{visual, "..", liver},
		{heart, ".", heart},
		{visual, "/", root},
	}
	for _, tt := range tests {
		got, ok := tt.from.Lookup(tt.path)
		require.True(t, ok, tt.path)
		assert.Equal(t, tt.want.Path(), got.Path(), tt.path)
	}

	_, ok := root.Lookup("/liver/missing")
	assert.False(t, ok)
	_, ok = root.Lookup("..")
	assert.False(t, ok)

	assert.Equal(t, root, visual.Root())

	var visited []string
	require.NoError(t, root.Walk(func(n *scene.Node) error {
		visited = append(visited, n.Path())
		return nil
	}))
	assert.Equal(t, []string{"/", "/liver", "/liver/visual", "/heart"}, visited)

	stop := errors.New("stop")
	visited = nil
	err = root.Walk(func(n *scene.Node) error {
		visited = append(visited, n.Path())
		if n == liver {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"/", "/liver"}, visited)
}

func TestWarnings(t *testing.T) {
	var got []string
	root := newRoot(t, scene.WithWarningHandler(func(n *scene.Node, w *descriptor.ParameterConflictWarning) {
		got = append(got, n.Path()+" "+w.Kind+"."+w.Param)
	}))

	h, err := root.Object("UniformMass",
		descriptor.Set("totalMass", 1.0),
		descriptor.Extra("totalMass", 2.0),
	)
	require.NoError(t, err)

	v, _ := h.Get("totalMass")
	assert.Equal(t, 2.0, v)
	require.Len(t, h.Warnings(), 1)
	assert.Equal(t, []string{"/ UniformMass.totalMass"}, got)

	child, err := root.Child("c", descriptor.Set("name", "other"))
	require.NoError(t, err)
	assert.Len(t, child.Warnings(), 1)
	assert.Equal(t, "/c Node.name", got[1])
}

func TestWarnings_DefaultHandlerLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	root := newRoot(t, scene.WithLogger(logger))

	_, err := root.Object("UniformMass",
		descriptor.Set("totalMass", 1.0),
		descriptor.Set("totalMass", 2.0),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "param=totalMass")
	assert.Contains(t, out, "kind=UniformMass")
}

func TestSealedNodeError_Message(t *testing.T) {
	err := &scene.SealedNodeError{Path: "/a", Kind: "UniformMass", State: scene.Sealed}
	assert.Equal(t, `attach "UniformMass" to node /a: node is sealed`, err.Error())

	err = &scene.SealedNodeError{Path: "/a", State: scene.Destroyed}
	assert.Equal(t, "node /a is destroyed", err.Error())
	assert.True(t, errors.Is(err, scene.ErrSealed))
}

func TestNodeNames_RejectPathSyntax(t *testing.T) {
	reg := newRegistry(t)
	root := newRoot(t)

	for _, name := range []string{"..", ".", "a/b", "/"} {
		_, err := root.Child(name)
		var nameErr *scene.InvalidNameError
		require.ErrorAs(t, err, &nameErr, name)
		assert.Equal(t, "/", nameErr.Parent)
		assert.Equal(t, name, nameErr.Name)

		_, err = root.Attach("Node", descriptor.Set("name", name))
		assert.ErrorIs(t, err, scene.ErrInvalidNodeName, name)

		_, err = scene.NewRoot(reg, name)
		assert.ErrorIs(t, err, scene.ErrInvalidNodeName, name)
	}
	assert.Empty(t, root.Children())

	dotted, err := root.Child("a.b")
	require.NoError(t, err)
	got, ok := root.Lookup(dotted.Path())
	require.True(t, ok)
	assert.Same(t, dotted, got)
}

func TestNodeNames_GeneratedDoNotShadowSiblings(t *testing.T) {
	root := newRoot(t)

	named, err := root.Child("node1")
	require.NoError(t, err)
	first, err := root.Child("")
	require.NoError(t, err)
	second, err := root.Child("")
	require.NoError(t, err)

	assert.Equal(t, "node1_1", first.Name())
	assert.Equal(t, "node2", second.Name())

	for _, n := range []*scene.Node{named, first, second} {
		got, ok := root.Lookup(n.Path())
		require.True(t, ok, n.Path())
		assert.Same(t, n, got)
	}
}

func TestLint(t *testing.T) {
	root := newRoot(t, scene.WithParams(descriptor.Set("dt", "fast")))
	_, err := root.Object("CGLinearSolver", descriptor.Set("iterations", 25), descriptor.Set("tolerance", 1e-9))
	require.NoError(t, err)
	body, err := root.Child("body")
	require.NoError(t, err)
	_, err = body.Object("MechanicalObject", descriptor.Set("template", "Vec3d"))
	require.NoError(t, err)
	_, err = body.Object("FixedConstraint", descriptor.Set("indices", []any{1, 2.5}), descriptor.Extra("undeclared", struct{}{}))
	require.NoError(t, err)

	issues := root.Lint()
	require.Len(t, issues, 2)

	assert.Equal(t, "/", issues[0].Path)
	assert.Equal(t, "Node", issues[0].Kind)
	assert.Equal(t, -1, issues[0].Index)
	assert.Contains(t, issues[0].Error(), `field "dt": expected float, got string`)

	assert.Equal(t, "/body", issues[1].Path)
	assert.Equal(t, "FixedConstraint", issues[1].Kind)
	assert.Equal(t, 1, issues[1].Index)
	assert.Contains(t, issues[1].Error(), "node /body: object 1 (FixedConstraint)")
	assert.Contains(t, issues[1].Error(), "element 1")

	assert.Len(t, body.Lint(), 1)
	assert.Equal(t, scene.Building, root.State())
}
