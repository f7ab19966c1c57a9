package schema_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/sofakit/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExtract_PreservesOrder(t *testing.T) {
	s, err := schema.Extract(schema.Declaration{
		Kind:        "MechanicalObject",
		Description: "State vectors of a mechanical model",
		Params: []schema.Parameter{
			{Name: "position", Type: schema.Slice(schema.Float()), Description: "position coordinates"},
			{Name: "velocity", Description: "velocity coordinates"},
			{Name: "showObject", Type: schema.Bool()},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "MechanicalObject", s.Kind())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"position", "velocity", "showObject"}, s.Names())
	assert.Equal(t, 1, s.Index("velocity"))
	assert.Equal(t, -1, s.Index("rest_position"))
	assert.True(t, s.Has("showObject"))

	p, ok := s.Param("position")
	require.True(t, ok)
	assert.Equal(t, "position coordinates", p.Description)

	// Missing hints default to any
	p, _ = s.Param("velocity")
	assert.Equal(t, "any", p.Type.Name())
}

func TestExtract_DuplicateParameter(t *testing.T) {
	_, err := schema.New("UniformMass",
		schema.Parameter{Name: "totalMass"},
		schema.Parameter{Name: "vertexMass"},
		schema.Parameter{Name: "totalMass"},
	)
	require.Error(t, err)

	var se *schema.SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "UniformMass", se.Kind)
	assert.Equal(t, "totalMass", se.Param)
	assert.ErrorIs(t, err, schema.ErrDuplicateParameter)
}

func TestExtract_InvalidNames(t *testing.T) {
	_, err := schema.New("")
	assert.ErrorIs(t, err, schema.ErrInvalidName)

	_, err = schema.New(" Padded")
	assert.ErrorIs(t, err, schema.ErrInvalidName)

	_, err = schema.New("StaticSolver", schema.Parameter{Name: ""})
	assert.ErrorIs(t, err, schema.ErrInvalidName)
}

func TestSchema_ParamsIsACopy(t *testing.T) {
	s, err := schema.New("StaticSolver", schema.Parameter{Name: "newton_iterations", Type: schema.Int()})
	require.NoError(t, err)

	params := s.Params()
	params[0].Name = "mutated"

	assert.Equal(t, []string{"newton_iterations"}, s.Names())
}

func TestSchema_Equal(t *testing.T) {
	a := schema.MustExtract(schema.Declaration{Kind: "K", Params: []schema.Parameter{{Name: "a"}, {Name: "b", Type: schema.Float()}}})
	b := schema.MustExtract(schema.Declaration{Kind: "K", Params: []schema.Parameter{{Name: "a"}, {Name: "b", Type: schema.Float()}}})
	reordered := schema.MustExtract(schema.Declaration{Kind: "K", Params: []schema.Parameter{{Name: "b", Type: schema.Float()}, {Name: "a"}}})
	retyped := schema.MustExtract(schema.Declaration{Kind: "K", Params: []schema.Parameter{{Name: "a"}, {Name: "b", Type: schema.Int()}}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(reordered))
	assert.False(t, a.Equal(retyped))
	assert.False(t, a.Equal(nil))
}

func TestSchema_Check(t *testing.T) {
	s := schema.MustExtract(schema.Declaration{
		Kind: "EulerImplicitSolver",
		Params: []schema.Parameter{
			{Name: "rayleighStiffness", Type: schema.Float()},
			{Name: "vdamping", Type: schema.Float()},
			{Name: "printLog", Type: schema.Bool()},
		},
	})

	assert.NoError(t, s.Check(schema.Map{"rayleighStiffness": 0.1}))
	assert.NoError(t, s.Check(schema.Map{}), "absent parameters are fine")
	assert.NoError(t, s.Check(schema.Map{"unknownExtra": "x"}), "extras are not linted")

	err := s.Check(schema.Map{"rayleighStiffness": "0.1", "printLog": 1})
	require.Error(t, err)
	errs := schema.ValidationErrors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "rayleighStiffness")
	assert.Contains(t, errs[1].Error(), "printLog")
}

func TestSchema_Marshal(t *testing.T) {
	s := schema.MustExtract(schema.Declaration{
		Kind: "UniformMass",
		Params: []schema.Parameter{
			{Name: "vertexMass", Type: schema.Float(), Description: "mass of each vertex"},
			{Name: "totalMass", Type: schema.Float()},
		},
	})

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "UniformMass",
		"params": [
			{"name": "vertexMass", "type": "float", "description": "mass of each vertex"},
			{"name": "totalMass", "type": "float"}
		]
	}`, string(data))

	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.Less(t, strings.Index(string(out), "vertexMass"), strings.Index(string(out), "totalMass"))
}
