package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	a := NewAllowlist(DefaultPatterns, "/images/placeholder.jpg", nil)

	assert.True(t, a.Allowed("/images/01.jpg"))
	assert.True(t, a.Allowed("https://a0.muscache.com/im/pictures/x.jpg"))
	assert.True(t, a.Allowed("HTTPS://AIRBNB.COM.BR/photo.jpg"))
	assert.False(t, a.Allowed("http://a0.muscache.com/im/pictures/x.jpg"))
	assert.False(t, a.Allowed("https://evil.example.com/x.jpg"))
	assert.False(t, a.Allowed("//evil.example.com/x.jpg"))
}

func TestAllowedSchemeRelative(t *testing.T) {
	a := NewAllowlist(DefaultPatterns, "/images/placeholder.jpg", nil)
	assert.True(t, a.Allowed("//a0.muscache.com/im/x.jpg"))
	assert.Equal(t, "//a0.muscache.com/im/x.jpg", a.Src("//a0.muscache.com/im/x.jpg"))

	httpOnly := NewAllowlist([]Pattern{{Protocol: "http", Hostname: "a0.muscache.com"}}, "/p.jpg", nil)
	assert.False(t, httpOnly.Allowed("//a0.muscache.com/im/x.jpg"))
}

func TestSrcSubstitutesAndReportsOnce(t *testing.T) {
	var reported []string
	a := NewAllowlist(DefaultPatterns, "/images/placeholder.jpg", func(src string) {
		reported = append(reported, src)
	})

	assert.Equal(t, "/images/02.jpg", a.Src("/images/02.jpg"))
	assert.Equal(t, "/images/placeholder.jpg", a.Src("https://cdn.example.com/a.jpg"))
	assert.Equal(t, "/images/placeholder.jpg", a.Src("https://cdn.example.com/a.jpg"))
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, reported)
}

func TestParsePatterns(t *testing.T) {
	got := ParsePatterns([]string{"https://a0.muscache.com", "images.example.com", " ", "http://plain.example.org/path", "://bad"})
	assert.Equal(t, []Pattern{
		{Protocol: "https", Hostname: "a0.muscache.com"},
		{Protocol: "https", Hostname: "images.example.com"},
		{Protocol: "http", Hostname: "plain.example.org"},
	}, got)
}
