package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/sofakit/internal/presentation/graph"
	"github.com/aretw0/sofakit/pkg/catalog"
	"github.com/aretw0/sofakit/pkg/descriptor"
	"github.com/aretw0/sofakit/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T) *scene.Node {
	t.Helper()
	reg, err := catalog.Default()
	require.NoError(t, err)

	root, err := scene.NewRoot(reg, "root")
	require.NoError(t, err)
	_, err = root.Object("EulerImplicitSolver")
	require.NoError(t, err)
	liver, err := root.Child("liver")
	require.NoError(t, err)
	_, err = liver.Object("MechanicalObject", descriptor.Set("name", `say "hi"`))
	require.NoError(t, err)
	_, err = root.Child("heart")
	require.NoError(t, err)
	return root
}

func TestGenerateMermaid(t *testing.T) {
	root := buildTree(t)
	got := graph.GenerateMermaid(root, nil)

	tests := []struct {
		name     string
		contains []string
	}{
		{
			name:     "Root Shape",
			contains: []string{`n0(("root <br/> Node"))`},
		},
		{
			name: "Child Nodes",
			contains: []string{
				`n1["liver <br/> Node"]`,
				`n0 --> n1`,
				`n2["heart <br/> Node"]`,
				`n0 --> n2`,
			},
		},
		{
			name: "Components",
			contains: []string{
				`n0_c0(["EulerImplicitSolver"])`,
				`n0 -.- n0_c0`,
				`n1_c0(["MechanicalObject"])`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
	assert.True(t, strings.HasPrefix(got, "graph TD\n"))
	assert.NotContains(t, got, "classDef")
}

func TestGenerateMermaid_States(t *testing.T) {
	root := buildTree(t)
	heart, ok := root.Lookup("heart")
	require.True(t, ok)
	require.NoError(t, heart.Seal())

	got := graph.GenerateMermaid(root, nil)
	assert.Contains(t, got, "classDef sealed")
	assert.Contains(t, got, "class n2 sealed;")
	assert.NotContains(t, got, "class n0 sealed;")
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	root := buildTree(t)
	got := graph.GenerateMermaid(root, &graph.Overlay{
		Highlight: []string{"/liver", "/liver", "/missing"},
	})

	assert.Equal(t, 1, strings.Count(got, "class n1 highlight;"))
	assert.NotContains(t, got, "missing")
}
