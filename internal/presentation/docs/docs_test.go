package docs_test

import (
	"strings"
	"testing"

	"github.com/aretw0/sofakit/internal/presentation/docs"
	"github.com/aretw0/sofakit/pkg/registry"
	"github.com/aretw0/sofakit/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	require.NoError(t, r.Register("Node", schema.MustExtract(schema.Declaration{
		Kind:   "Node",
		Params: []schema.Parameter{{Name: "name", Type: schema.String()}},
	}), registry.AsContainer(), registry.FromSource("core")))
	require.NoError(t, r.Register("UniformMass", schema.MustExtract(schema.Declaration{
		Kind:        "UniformMass",
		Description: "Same mass for every degree of freedom.",
		Params: []schema.Parameter{
			{Name: "totalMass", Type: schema.Float(), Description: "Mass of the whole object | kg"},
			{Name: "indices", Type: schema.Slice(schema.Int())},
		},
	}), registry.FromSource("core")))
	require.NoError(t, r.Register("Marker", schema.MustExtract(schema.Declaration{Kind: "Marker"})))
	r.Freeze()
	return r
}

func TestKind(t *testing.T) {
	r := testRegistry(t)

	e, err := r.Entry("UniformMass")
	require.NoError(t, err)
	page := docs.Kind(e)

	assert.Contains(t, page, "# UniformMass\n")
	assert.Contains(t, page, "Same mass for every degree of freedom.")
	assert.Contains(t, page, "- **Class:** component")
	assert.Contains(t, page, "- **Catalog:** core")
	assert.Contains(t, page, "| `totalMass` | float | Mass of the whole object \\| kg |")
	assert.Contains(t, page, "| `indices` | [int] |  |")
	assert.Less(t, strings.Index(page, "totalMass"), strings.Index(page, "indices"))

	e, err = r.Entry("Node")
	require.NoError(t, err)
	assert.Contains(t, docs.Kind(e), "- **Class:** container")
}

func TestKind_NoParams(t *testing.T) {
	r := testRegistry(t)
	e, err := r.Entry("Marker")
	require.NoError(t, err)

	page := docs.Kind(e)
	assert.Contains(t, page, "_No declared parameters._")
	assert.NotContains(t, page, "Catalog")
}

func TestCatalog(t *testing.T) {
	r := testRegistry(t)
	table := docs.Catalog(r.Entries())

	assert.Contains(t, table, "| Marker | component | 0 |  |")
	assert.Contains(t, table, "| Node | container | 1 | core |")
	assert.Contains(t, table, "| UniformMass | component | 2 | core |")
}

