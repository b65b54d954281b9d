package middleware

import (
	"net/http"
)

// WriteError answers with a plain-text error. For htmx requests it also
// sets HX-Reswap: none, so a failed fragment (an unknown photo, say) leaves
// whatever is on screen untouched.
func WriteError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if IsHTMX(r.Context()) {
		w.Header().Set("HX-Reswap", "none")
	}
	http.Error(w, msg, code)
}
