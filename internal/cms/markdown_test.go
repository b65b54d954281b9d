package cms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	r := NewRenderer()
	out, err := r.Render("### O espaço\n\nAté **6 pessoas**.\n\n- Piscina\n- Playground\n")
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "<h3")
	assert.Contains(t, s, "<strong>6 pessoas</strong>")
	assert.Contains(t, s, "<li>Piscina</li>")
}

func TestRenderSanitises(t *testing.T) {
	r := NewRenderer()
	out, err := r.Render("hello <script>alert(1)</script> [x](javascript:alert(1))")
	require.NoError(t, err)
	s := string(out)
	assert.NotContains(t, s, "<script")
	assert.NotContains(t, s, "javascript:")
}

func TestRenderExternalLinksOpenNewContext(t *testing.T) {
	r := NewRenderer()
	out, err := r.Render("[Airbnb](https://airbnb.com.br/h/mapp-flat801b)")
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, `target="_blank"`)
	assert.True(t, strings.Contains(s, "noreferrer"), s)
}

func TestRenderCachesAndEmpty(t *testing.T) {
	r := NewRenderer()
	out, err := r.Render("   ")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, r.Cached())

	a := r.MustRender("texto")
	b := r.MustRender("texto")
	assert.Equal(t, a, b)
	assert.Equal(t, 1, r.Cached())
}
