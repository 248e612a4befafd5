package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTMLSanitized("# Leak\n\nWater under the **sink**")
	require.NoError(t, err)
	assert.Contains(t, out, `<h1 id="leak">Leak</h1>`)
	assert.Contains(t, out, "<strong>sink</strong>")
}

func TestToHTMLSanitized_GFM(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTMLSanitized("~~old~~ see https://example.com\n\n| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)
	assert.Contains(t, out, "<del>old</del>")
	assert.Contains(t, out, `href="https://example.com"`)
	assert.Contains(t, out, "<table>")
}

func TestToHTMLSanitized_StripsScripts(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTMLSanitized("hello <script>alert(1)</script> [x](javascript:alert(1)) <img src=x onerror=alert(1)>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "javascript:")
	assert.NotContains(t, out, "onerror")
}
