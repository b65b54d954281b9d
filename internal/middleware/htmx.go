package middleware

import (
	"net/http"
)

// HTMX marks requests coming from htmx so handlers can answer with
// fragments instead of full pages. A history-restore request (the browser
// went back to a pushed URL such as /?foto=2 and htmx had no snapshot)
// needs the full page and is therefore not treated as a fragment request.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "HX-Request")
		is := r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-History-Restore-Request") != "true"
		next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), is)))
	})
}
