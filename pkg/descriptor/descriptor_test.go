package descriptor_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/sofakit/pkg/descriptor"
	"github.com/aretw0/sofakit/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mechanicalObject(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.New("MechanicalObject",
		schema.Parameter{Name: "template"},
		schema.Parameter{Name: "position"},
		schema.Parameter{Name: "velocity"},
		schema.Parameter{Name: "showObject"},
		schema.Parameter{Name: "showObjectScale"},
	)
	require.NoError(t, err)
	return s
}

func TestBuild_NoArguments(t *testing.T) {
	s, err := schema.New("StaticSolver", schema.Parameter{Name: "newton_iterations"})
	require.NoError(t, err)

	d, warnings := descriptor.Build(s)

	assert.Equal(t, "StaticSolver", d.Kind)
	assert.Equal(t, 0, d.Params.Len())
	assert.Empty(t, warnings)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"StaticSolver","params":{}}`, string(data))
}

func TestBuild_Scenarios(t *testing.T) {
	euler, err := schema.New("EulerImplicitSolver",
		schema.Parameter{Name: "rayleighStiffness"},
		schema.Parameter{Name: "rayleighMass"},
		schema.Parameter{Name: "vdamping"},
	)
	require.NoError(t, err)

	d, _ := descriptor.Build(euler, descriptor.Set("rayleighStiffness", 0.1))
	assert.Equal(t, "EulerImplicitSolver", d.Kind)
	assert.Equal(t, map[string]any{"rayleighStiffness": 0.1}, d.Params.Map())

	d, _ = descriptor.Build(mechanicalObject(t),
		descriptor.Set("position", []int{0, 0, 0}),
		descriptor.Set("showObject", true),
	)
	assert.Equal(t, map[string]any{"position": []int{0, 0, 0}, "showObject": true}, d.Params.Map())
}

func TestBuild_KeySetIndependentOfCallOrder(t *testing.T) {
	s := mechanicalObject(t)

	a, _ := descriptor.Build(s,
		descriptor.Set("showObject", true),
		descriptor.Set("template", "Vec3d"),
		descriptor.Set("velocity", []float64{1, 0, 0}),
	)
	b, _ := descriptor.Build(s,
		descriptor.Set("velocity", []float64{1, 0, 0}),
		descriptor.Set("showObject", true),
		descriptor.Set("template", "Vec3d"),
	)

	assert.ElementsMatch(t, []string{"showObject", "template", "velocity"}, a.Params.Keys())
	// Canonical order is declaration order
	assert.Equal(t, []string{"template", "velocity", "showObject"}, a.Params.Keys())
	assert.True(t, a.Equal(b))
}

func TestBuild_UnsetFiltering(t *testing.T) {
	s := mechanicalObject(t)

	d, _ := descriptor.Build(s,
		descriptor.Set("template", nil),
		descriptor.Set("position", descriptor.Unset),
		descriptor.Set("velocity", []float64{}),
		descriptor.Set("showObject", false),
		descriptor.Set("showObjectScale", 0),
	)

	assert.Equal(t, []string{"velocity", "showObject", "showObjectScale"}, d.Params.Keys())
	v, ok := d.Params.Get("showObjectScale")
	require.True(t, ok)
	assert.Equal(t, 0, v)

	// Filtering is idempotent: rebuilding from the output changes nothing
	again, _ := descriptor.Build(s, descriptor.FromParams(d.Params)...)
	assert.True(t, d.Equal(again))
}

func TestBuild_ExtrasPassThrough(t *testing.T) {
	s := mechanicalObject(t)

	d, warnings := descriptor.Build(s,
		descriptor.Set("futureParam", map[string]any{"a": 1}),
		descriptor.Set("showObject", true),
		descriptor.Extra("listening", true),
	)

	assert.Empty(t, warnings)
	assert.Equal(t, []string{"showObject", "futureParam", "listening"}, d.Params.Keys())
	v, _ := d.Params.Get("futureParam")
	assert.Equal(t, map[string]any{"a": 1}, v)
}

func TestBuild_ExtraWinsOnConflict(t *testing.T) {
	s := mechanicalObject(t)

	for _, args := range [][]descriptor.Arg{
		{descriptor.Set("showObject", false), descriptor.Extra("showObject", true)},
		{descriptor.Extra("showObject", true), descriptor.Set("showObject", false)},
	} {
		d, warnings := descriptor.Build(s, args...)

		v, _ := d.Params.Get("showObject")
		assert.Equal(t, true, v)
		require.Len(t, warnings, 1)
		assert.Equal(t, "showObject", warnings[0].Param)
		assert.Equal(t, false, warnings[0].Replaced)
		assert.Equal(t, true, warnings[0].Kept)
		assert.Contains(t, warnings[0].String(), "MechanicalObject")
	}
}

func TestBuild_SameValueTwiceIsNotAConflict(t *testing.T) {
	s := mechanicalObject(t)

	_, warnings := descriptor.Build(s,
		descriptor.Set("position", []float64{1, 2, 3}),
		descriptor.Extra("position", []float64{1, 2, 3}),
	)
	assert.Empty(t, warnings)
}

func TestBuild_DoesNotShareState(t *testing.T) {
	s := mechanicalObject(t)
	args := []descriptor.Arg{descriptor.Set("template", "Rigid3d")}

	a, _ := descriptor.Build(s, args...)
	a.Params.Set("template", "Vec3d")
	b, _ := descriptor.Build(s, args...)

	v, _ := b.Params.Get("template")
	assert.Equal(t, "Rigid3d", v)
	assert.Equal(t, "Rigid3d", args[0].Value)
}

func TestPairs(t *testing.T) {
	args, err := descriptor.Pairs("totalMass", 1.0, "showAxisSizeFactor", 2)
	require.NoError(t, err)
	assert.Equal(t, []descriptor.Arg{descriptor.Set("totalMass", 1.0), descriptor.Set("showAxisSizeFactor", 2)}, args)

	_, err = descriptor.Pairs(1.0)
	assert.ErrorIs(t, err, descriptor.ErrPositionalArgument)

	_, err = descriptor.Pairs(1.0, "totalMass")
	assert.ErrorIs(t, err, descriptor.ErrPositionalArgument)
}

func TestParams_Encoding(t *testing.T) {
	p := descriptor.ParamsOf("zeta", 1, "alpha", []any{1.5, 2.5}, "mid", "x")

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":[1.5,2.5],"mid":"x"}`, string(data))

	var decoded descriptor.Params
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, decoded.Keys())

	out, err := yaml.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, "zeta: 1\nalpha:\n    - 1.5\n    - 2.5\nmid: x\n", string(out))

	var fromYAML descriptor.Params
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, fromYAML.Keys())
}

func TestParams_SetKeepsPositionAndUnsetDeletes(t *testing.T) {
	p := descriptor.ParamsOf("a", 1, "b", 2, "c", 3)

	p.Set("a", 10)
	assert.Equal(t, []string{"a", "b", "c"}, p.Keys())

	p.Set("b", descriptor.Unset)
	assert.Equal(t, []string{"a", "c"}, p.Keys())

	var nilParams *descriptor.Params
	assert.Equal(t, 0, nilParams.Len())
	_, ok := nilParams.Get("a")
	assert.False(t, ok)
}

func TestParams_EqualAcrossDecoders(t *testing.T) {
	built := descriptor.ParamsOf("iterations", 25, "gravity", []float64{0, -9.81, 0})

	data, err := json.Marshal(built)
	require.NoError(t, err)
	var fromJSON descriptor.Params
	require.NoError(t, json.Unmarshal(data, &fromJSON))

	out, err := yaml.Marshal(built)
	require.NoError(t, err)
	var fromYAML descriptor.Params
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))

	assert.True(t, built.Equal(&fromJSON))
	assert.True(t, built.Equal(&fromYAML))
	assert.True(t, fromJSON.Equal(&fromYAML))

	assert.False(t, built.Equal(descriptor.ParamsOf("iterations", 26, "gravity", []float64{0, -9.81, 0})))
	assert.False(t, built.Equal(descriptor.ParamsOf("gravity", []float64{0, -9.81, 0}, "iterations", 25)))
}
