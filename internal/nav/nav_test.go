package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFull(t *testing.T) {
	items := Build(Options{HasVideo: true, HasGuide: true, SocialURL: "https://www.instagram.com/flat.801b/", Active: SectionPhotos})
	require.Len(t, items, len(Main)+1)
	assert.Equal(t, "#sobre", items[0].Href)
	assert.Equal(t, "#fotos", items[2].Href)
	assert.True(t, items[2].Active)
	assert.False(t, items[0].Active)

	last := items[len(items)-1]
	assert.True(t, last.External)
	assert.Equal(t, "nav.social", last.LabelKey)
}

func TestBuildSkipsMissingSections(t *testing.T) {
	items := Build(Options{})
	require.Len(t, items, len(Main)-2)
	for _, it := range items {
		assert.NotEqual(t, "#video", it.Href)
		assert.NotEqual(t, "#guias", it.Href)
		assert.False(t, it.External)
		assert.False(t, it.Active)
	}
}
