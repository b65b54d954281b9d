// Package images decides which photo sources may be rendered.
package images

import (
	"net/url"
	"strings"
	"sync"
)

// Pattern allows remote images from one scheme and host.
type Pattern struct {
	Protocol string
	Hostname string
}

// DefaultPatterns are the hosts listing photos may be copied from.
var DefaultPatterns = []Pattern{
	{Protocol: "https", Hostname: "a0.muscache.com"},
	{Protocol: "https", Hostname: "airbnb.com"},
	{Protocol: "https", Hostname: "airbnb.com.br"},
}

// Allowlist resolves photo sources for rendering. Local paths always pass;
// remote URLs pass only when they match a pattern.
type Allowlist struct {
	patterns    []Pattern
	placeholder string
	onBlocked   func(src string)

	mu      sync.Mutex
	blocked map[string]struct{}
}

// NewAllowlist builds an allow-list. onBlocked, when set, is invoked once per
// distinct rejected source.
func NewAllowlist(patterns []Pattern, placeholder string, onBlocked func(src string)) *Allowlist {
	ps := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		ps = append(ps, Pattern{
			Protocol: strings.ToLower(strings.TrimSuffix(strings.TrimSpace(p.Protocol), ":")),
			Hostname: strings.ToLower(strings.TrimSpace(p.Hostname)),
		})
	}
	return &Allowlist{
		patterns:    ps,
		placeholder: placeholder,
		onBlocked:   onBlocked,
		blocked:     map[string]struct{}{},
	}
}

// ParsePatterns reads "https://host" style entries; a bare host means https.
func ParsePatterns(values []string) []Pattern {
	var out []Pattern
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if !strings.Contains(v, "://") {
			out = append(out, Pattern{Protocol: "https", Hostname: v})
			continue
		}
		u, err := url.Parse(v)
		if err != nil || u.Host == "" {
			continue
		}
		out = append(out, Pattern{Protocol: u.Scheme, Hostname: u.Hostname()})
	}
	return out
}

// IsRemote reports whether src points at another origin.
func IsRemote(src string) bool {
	s := strings.ToLower(strings.TrimSpace(src))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "//")
}

// Allowed reports whether src may be rendered as is.
func (a *Allowlist) Allowed(src string) bool {
	if !IsRemote(src) {
		return true
	}
	u, err := url.Parse(strings.TrimSpace(src))
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme == "" {
		// scheme-relative; the site is served over https
		scheme = "https"
	}
	host := strings.ToLower(u.Hostname())
	for _, p := range a.patterns {
		if p.Hostname == host && (p.Protocol == "" || p.Protocol == scheme) {
			return true
		}
	}
	return false
}

// Src returns src when allowed and the placeholder otherwise.
func (a *Allowlist) Src(src string) string {
	if a.Allowed(src) {
		return src
	}
	a.mu.Lock()
	_, seen := a.blocked[src]
	if !seen {
		a.blocked[src] = struct{}{}
	}
	a.mu.Unlock()
	if !seen && a.onBlocked != nil {
		a.onBlocked(src)
	}
	return a.placeholder
}
