// Package i18n serves the UI chrome labels (navigation, buttons, section
// headings) in the visitor's language. Listing content is not translated.
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLang is used when nothing better can be resolved.
const DefaultLang = "pt"

type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported map[string]struct{}
	// order lists the loaded languages, fallback first; matcher indices
	// point into it.
	order   []string
	matcher language.Matcher
}

// Load reads <dir>/<lang>.json for every supported language. Only the
// fallback language file is mandatory.
func Load(dir string, fallback string, supported []string) (*Bundle, error) {
	fallback = Normalize(fallback)
	if fallback == "" {
		fallback = DefaultLang
	}
	b := &Bundle{
		dict:      map[string]map[string]string{},
		fallback:  fallback,
		supported: map[string]struct{}{},
	}
	if len(supported) == 0 {
		supported = []string{"pt", "en"}
	}
	for _, l := range supported {
		l = Normalize(l)
		b.supported[l] = struct{}{}
		raw, err := os.ReadFile(filepath.Join(dir, l+".json"))
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	b.order = []string{fallback}
	for _, l := range supported {
		if l = Normalize(l); l != fallback && !slices.Contains(b.order, l) {
			b.order = append(b.order, l)
		}
	}
	tags := make([]language.Tag, 0, len(b.order))
	for _, l := range b.order {
		t, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", l, err)
		}
		tags = append(tags, t)
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// Normalize reduces a language tag to its lower-case base ("pt-BR" -> "pt").
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i != -1 {
		lang = lang[:i]
	}
	return lang
}

func (b *Bundle) Supported() []string {
	out := make([]string, 0, len(b.supported))
	for k := range b.supported {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// IsSupported reports whether lang (any tag form) has a dictionary.
func (b *Bundle) IsSupported(lang string) bool {
	_, ok := b.supported[Normalize(lang)]
	return ok
}

// T returns translation for key in lang, falling back to default and finally key.
func (b *Bundle) T(lang, key string) string {
	if lang != "" {
		if m, ok := b.dict[Normalize(lang)]; ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// TF translates key and substitutes fmt verbs with args.
func (b *Bundle) TF(lang, key string, args ...any) string {
	return fmt.Sprintf(b.T(lang, key), args...)
}

// Resolve picks the supported language that best matches an
// Accept-Language header. Weights of zero exclude a language; anything that
// does not parse or match yields the fallback.
func (b *Bundle) Resolve(acceptLang string) string {
	if strings.TrimSpace(acceptLang) == "" {
		return b.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(b.order) {
		return b.fallback
	}
	return b.order[idx]
}
