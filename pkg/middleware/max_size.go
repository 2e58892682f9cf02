package middleware

import (
	"net/http"
	"strings"
)

// MaxRequestSize caps request bodies at limit bytes. overrides maps a path
// prefix to a larger (or smaller) cap, e.g. the upload routes.
func MaxRequestSize(limit int64, overrides map[string]int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			maxBytes := limit
			for prefix, override := range overrides {
				if strings.HasPrefix(r.URL.Path, prefix) {
					maxBytes = override
					break
				}
			}

			if r.ContentLength > maxBytes {
				writeJSONError(w, http.StatusRequestEntityTooLarge, "Request body too large")
				return
			}

			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
