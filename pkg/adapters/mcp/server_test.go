package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/sofakit/pkg/catalog"
	"github.com/aretw0/sofakit/pkg/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	reg, err := catalog.Default()
	require.NoError(t, err)
	return NewServer(reg)
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestListKinds(t *testing.T) {
	s := newTestServer(t)

	all, err := s.handleListKinds(context.Background(), callRequest("list_kinds", nil), ListKindsArgs{})
	require.NoError(t, err)
	assert.Len(t, all.Kinds, s.registry.Len())

	solvers, err := s.handleListKinds(context.Background(), callRequest("list_kinds", nil), ListKindsArgs{Filter: "SOLVER"})
	require.NoError(t, err)
	require.NotEmpty(t, solvers.Kinds)
	for _, k := range solvers.Kinds {
		assert.Contains(t, k.Kind, "Solver")
		assert.Equal(t, catalog.Core, k.Source)
	}

	none, err := s.handleListKinds(context.Background(), callRequest("list_kinds", nil), ListKindsArgs{Filter: "nothing-matches"})
	require.NoError(t, err)
	assert.NotNil(t, none.Kinds)
	assert.Empty(t, none.Kinds)
}

func TestDescribeKind(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleDescribeKind(context.Background(), callRequest("describe_kind", map[string]any{"kind": "EulerImplicitSolver"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	text := resultText(t, res)
	assert.Contains(t, text, "# EulerImplicitSolver")
	assert.Contains(t, text, "`rayleighStiffness`")

	res, err = s.handleDescribeKind(context.Background(), callRequest("describe_kind", map[string]any{"kind": "Nope"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), `unknown kind "Nope"`)

	res, err = s.handleDescribeKind(context.Background(), callRequest("describe_kind", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestBuildDescriptor(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleBuildDescriptor(context.Background(), callRequest("build_descriptor", nil), BuildDescriptorArgs{
		Kind:   "EulerImplicitSolver",
		Params: `{"rayleighMass": 0.1, "name": "odesolver"}`,
		Extra:  `{"newton_iterations": 5, "name": "solver"}`,
	})
	require.NoError(t, err)

	data, err := json.Marshal(res.Descriptor)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"EulerImplicitSolver","params":{"name":"solver","rayleighMass":0.1,"newton_iterations":5}}`, string(data))
	assert.Equal(t, []string{"name", "rayleighMass", "newton_iterations"}, res.Descriptor.Params.Keys())
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], `parameter "name" given twice`)
}

func TestBuildDescriptor_Errors(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	req := callRequest("build_descriptor", nil)

	_, err := s.handleBuildDescriptor(ctx, req, BuildDescriptorArgs{})
	assert.Error(t, err)

	_, err = s.handleBuildDescriptor(ctx, req, BuildDescriptorArgs{Kind: "Nope"})
	assert.ErrorIs(t, err, registry.ErrUnknownKind)

	_, err = s.handleBuildDescriptor(ctx, req, BuildDescriptorArgs{Kind: "Node", Params: `[1, 2]`})
	assert.ErrorContains(t, err, "params: expected a JSON object")
}

func TestReadCatalog(t *testing.T) {
	s := newTestServer(t)

	contents, err := s.readCatalog(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, CatalogURI, text.URI)

	var entries []struct {
		Schema struct {
			Kind   string `json:"kind"`
			Params []struct {
				Name string `json:"name"`
			} `json:"params"`
		} `json:"schema"`
		Container bool `json:"container"`
	}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &entries))
	assert.Len(t, entries, s.registry.Len())

	for _, e := range entries {
		if e.Schema.Kind == "Node" {
			assert.True(t, e.Container)
			return
		}
	}
	t.Fatal("Node missing from catalog resource")
}
