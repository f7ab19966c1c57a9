package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/sofakit/pkg/adapters/file"
	"github.com/aretw0/sofakit/pkg/assembler"
	"github.com/aretw0/sofakit/pkg/plan"
	"github.com/aretw0/sofakit/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunPlanStoreContract(t, store)
}

func TestFileStore_Layout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "plans")
	store := file.New(dir)
	ctx := context.Background()

	p := &plan.Plan{Scene: "demo", Operations: []assembler.Operation{{Op: assembler.OpCreateNode, Path: "/", Name: "demo"}}}
	require.NoError(t, store.Save(ctx, "demo", p))

	data, err := os.ReadFile(filepath.Join(dir, "demo.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"scene\": \"demo\"")

	// Leftover temp files from an interrupted save are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmp-demo-123.json"), []byte("{"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"demo"}, names)
}

func TestFileStore_Corrupt(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644))

	_, err := store.Load(context.Background(), "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrPlanNotFound)
}

func TestFileStore_MissingDirectory(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "absent"))

	names, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestNew_DefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join(".sofakit", "plans"), file.New("").BasePath)
}
