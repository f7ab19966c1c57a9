package tui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/aretw0/sofakit/internal/presentation/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer_Plain(t *testing.T) {
	render := tui.NewRenderer(false)
	out, err := render("# Title\n")
	require.NoError(t, err)
	assert.Equal(t, "# Title\n", out)
}

func TestNewRenderer_Styled(t *testing.T) {
	render := tui.NewRenderer(true)
	out, err := render("# UniformMass\n\nSome text.\n")
	require.NoError(t, err)
	assert.Contains(t, out, "UniformMass")
	assert.Contains(t, out, "Some text.")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|___/")
}

func TestIsTerminal_File(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, tui.IsTerminal(f))
}
