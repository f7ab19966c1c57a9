package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/sofakit/pkg/catalog"
	"github.com/aretw0/sofakit/pkg/plan"
	"github.com/aretw0/sofakit/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallScene = `
name: root
objects:
  - kind: DefaultAnimationLoop
children:
  - name: body
    objects:
      - kind: MechanicalObject
        params: {name: dofs, template: Vec3d}
      - kind: UniformMass
        params: {totalMass: 1.5}
`

// run executes the CLI in a fresh working directory and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithStderr(t, stdin, args...)
	return out, err
}

func runWithStderr(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func liverScene(t *testing.T) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", "..", "pkg", "scenefile", "testdata", "liver.yaml"))
	require.NoError(t, err)
	return path
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "sofakit version "))
}

func TestKinds(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, "", "kinds", "--filter", "solver")
	require.NoError(t, err)
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "EulerImplicitSolver")
	assert.NotContains(t, out, "MechanicalObject")

	out, err = run(t, "", "kinds", "--containers")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Node")
	assert.Contains(t, lines[1], "container")

	out, err = run(t, "", "--ext", "gpu", "kinds", "-f", "cuda")
	require.NoError(t, err)
	assert.Contains(t, out, "CudaMechanicalObject")
	assert.Contains(t, out, "gpu")
}

func TestKinds_UnknownExtension(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := run(t, "", "--ext", "quantum", "kinds")
	assert.ErrorIs(t, err, catalog.ErrUnknownCatalog)
}

func TestDescribe(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, "", "describe", "UniformMass")
	require.NoError(t, err)
	assert.Contains(t, out, "# UniformMass")
	assert.Contains(t, out, "## Parameters")

	out, err = run(t, "", "describe", "--json", "UniformMass")
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "UniformMass"`)

	_, err = run(t, "", "describe", "Nope")
	assert.ErrorIs(t, err, registry.ErrUnknownKind)
}

func TestPlan_Formats(t *testing.T) {
	scenePath := liverScene(t)
	t.Chdir(t.TempDir())

	out, err := run(t, "", "plan", scenePath)
	require.NoError(t, err)
	p, err := plan.Decode(strings.NewReader(out), plan.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "root", p.Scene)
	assert.Equal(t, 3, p.Count("create_node"))

	out, err = run(t, "", "plan", "-o", "yaml", scenePath)
	require.NoError(t, err)
	p, err = plan.Decode(strings.NewReader(out), plan.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Count("seal"))

	out, err = run(t, "", "plan", "-o", "mermaid", scenePath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, "class n0,n1,n2 sealed;")

	_, err = run(t, "", "plan", "-o", "xml", scenePath)
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestPlan_Lint(t *testing.T) {
	scenePath := liverScene(t)
	t.Chdir(t.TempDir())

	out, err := run(t, "", "plan", "--lint", scenePath)
	require.NoError(t, err)
	assert.Contains(t, out, `"scene": "root"`)

	bad := `
objects:
  - kind: CGLinearSolver
    params: {iterations: many}
children:
  - name: body
    params: {dt: 0.01}
`
	out, stderr, err := runWithStderr(t, bad, "plan", "--lint", "-")
	assert.ErrorContains(t, err, "scene failed lint with 1 issue(s)")
	assert.Empty(t, out)
	assert.Contains(t, stderr, `lint: node /: object 0 (CGLinearSolver): field "iterations": expected int, got string`)

	out, err = run(t, bad, "plan", "-")
	require.NoError(t, err, "lint is opt-in")
	assert.Contains(t, out, `"iterations": "many"`)
}

func TestPlan_Stdin(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, smallScene, "plan", "-")
	require.NoError(t, err)
	p, err := plan.Decode(strings.NewReader(out), plan.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Count("create_object"))

	_, err = run(t, "objects:\n  - kind: Warp\n", "plan", "-")
	assert.ErrorIs(t, err, registry.ErrUnknownKind)
}

func TestPlan_SaveAndDiff(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	store := []string{"--store", "file", "--store-path", filepath.Join(dir, "plans")}

	_, err := run(t, smallScene, append(store, "plan", "-", "--save", "v1")...)
	require.NoError(t, err)

	changed := strings.Replace(smallScene, "totalMass: 1.5", "totalMass: 2.5", 1)
	_, err = run(t, changed, append(store, "plan", "-", "--save", "v2")...)
	require.NoError(t, err)

	out, err := run(t, "", append(store, "diff", "v1", "v1")...)
	require.NoError(t, err)
	assert.Equal(t, "No changes.\n", out)

	out, err = run(t, "", append(store, "diff", "v1", "v2")...)
	require.NoError(t, err)
	assert.Contains(t, out, `~ [6] create_object /body UniformMass{"totalMass":1.5}`)
	assert.Contains(t, out, `=> create_object /body UniformMass{"totalMass":2.5}`)

	_, err = run(t, "", append(store, "diff", "v1", "missing")...)
	assert.Error(t, err)
}

func TestDiff_Files(t *testing.T) {
	liver := liverScene(t)
	dir := t.TempDir()
	t.Chdir(dir)

	tests := []struct {
		name  string
		stdin string
		scene string
	}{
		{"small", smallScene, "-"},
		{"liver", "", liver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonPlan, err := run(t, tt.stdin, "plan", tt.scene)
			require.NoError(t, err)
			yamlPlan, err := run(t, tt.stdin, "plan", "-o", "yaml", tt.scene)
			require.NoError(t, err)

			a := writeFile(t, dir, tt.name+".json", jsonPlan)
			b := writeFile(t, dir, tt.name+".yaml", yamlPlan)

			out, err := run(t, "", "diff", a, b)
			require.NoError(t, err)
			assert.Equal(t, "No changes.\n", out)
		})
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "sofakit.yaml", "catalog:\n  extensions: [haptics]\n")

	out, err := run(t, "", "kinds", "--filter", "geomagic")
	require.NoError(t, err)
	assert.Contains(t, out, "haptics")

	_, err = run(t, "", "--config", filepath.Join(dir, "missing.yaml"), "kinds")
	assert.Error(t, err)
}
