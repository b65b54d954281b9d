package middleware

import (
	"net/http"
	"time"

	"mapprio.com/flat-web/internal/i18n"
)

const langCookieName = "hl"

// Locale resolves the UI language from ?hl=, the hl cookie or
// Accept-Language, in that order, and stores it in the request context.
// An explicit ?hl= choice is remembered in the cookie.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if q := i18n.Normalize(r.URL.Query().Get("hl")); q != "" && bundle.IsSupported(q) {
				lang = q
				http.SetCookie(w, &http.Cookie{
					Name:     langCookieName,
					Value:    q,
					Path:     "/",
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(365 * 24 * time.Hour),
				})
			} else if c, err := r.Cookie(langCookieName); err == nil && bundle.IsSupported(c.Value) {
				lang = i18n.Normalize(c.Value)
			} else {
				lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
		})
	}
}

// Lang returns the current language, or i18n.DefaultLang outside Locale.
func Lang(r *http.Request) string {
	if l, ok := LangFromContext(r.Context()); ok {
		return l
	}
	return i18n.DefaultLang
}

// VaryLocale marks responses whose language came from Locale, so shared
// caches keep the pt and en renderings of a URL apart.
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Language")
		w.Header().Add("Vary", "Cookie")
		next.ServeHTTP(w, r)
	})
}
