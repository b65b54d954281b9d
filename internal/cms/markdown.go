package cms

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	gocache "github.com/patrickmn/go-cache"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer turns listing markdown into sanitised HTML. Listing content is
// immutable for the life of the process, so rendered fragments are cached
// without expiry.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	cache  *gocache.Cache
}

// NewRenderer builds a renderer with GitHub-flavoured extensions and a UGC
// sanitising policy. Links are forced to open in a new browsing context.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	policy := bluemonday.UGCPolicy()
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	policy.RequireNoReferrerOnLinks(true)
	return &Renderer{
		md:     md,
		policy: policy,
		cache:  gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

// Render converts src to HTML safe for direct inclusion in templates.
func (r *Renderer) Render(src string) (template.HTML, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", nil
	}
	key := cacheKey(src)
	if v, ok := r.cache.Get(key); ok {
		return v.(template.HTML), nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("cms: render markdown: %w", err)
	}
	out := template.HTML(r.policy.SanitizeBytes(buf.Bytes()))
	r.cache.Set(key, out, gocache.NoExpiration)
	return out, nil
}

// MustRender is Render for template helpers; failures render nothing.
func (r *Renderer) MustRender(src string) template.HTML {
	out, err := r.Render(src)
	if err != nil {
		return ""
	}
	return out
}

// Cached returns the number of cached fragments.
func (r *Renderer) Cached() int { return r.cache.ItemCount() }

func cacheKey(src string) string {
	sum := sha256.Sum256([]byte(src))
	return hex.EncodeToString(sum[:])
}
