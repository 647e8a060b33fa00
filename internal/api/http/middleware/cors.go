package middleware

import (
	"net/http"
)

// CORS allows the configured browser origins to call the API with
// credentials. Cookies require an exact origin echo, not a wildcard.
type CORS struct {
	allowedOrigins map[string]struct{}
}

// NewCORS creates a new CORS middleware for the given origins.
func NewCORS(origins []string) *CORS {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	return &CORS{allowedOrigins: allowed}
}

// Handle sets CORS headers for allowed origins and answers preflight
// requests.
func (c *CORS) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := c.allowedOrigins[origin]; ok {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type")
			h.Set("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
