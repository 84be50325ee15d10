package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/knobs/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func infos(t *testing.T) []registry.Info {
	t.Helper()
	reg := registry.New()
	require.NoError(t, reg.DefineNumeric("threshold", 0.5, 0, 1, 0.1))
	require.NoError(t, reg.DefineString("mode", "fast", []string{"fast", "accurate"}))
	require.NoError(t, reg.DefineBool("verbose", true))
	return reg.Infos()
}

func TestMarkdownTable(t *testing.T) {
	table := MarkdownTable(infos(t))

	assert.Contains(t, table, "| Name | Kind | Value | Constraint |")
	assert.Contains(t, table, "| `mode` | string | `fast` | fast, accurate |")
	assert.Contains(t, table, "| `threshold` | numeric | `0.5` | [0, 1] step 0.1 |")
	assert.Contains(t, table, "| `verbose` | bool | `true` | true, false |")
}

func TestRenderer(t *testing.T) {
	out, err := NewRenderer()(MarkdownTable(infos(t)))
	require.NoError(t, err)
	assert.Contains(t, out, "threshold")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3\n")
	assert.Contains(t, buf.String(), "v1.2.3")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
