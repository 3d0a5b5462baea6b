package clientip

import "net/http"

// Middleware resolves the client IP once per request and stores it in the
// request context. headers are the proxy headers to trust; none means
// RemoteAddr only.
func Middleware(headers ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), FromRequest(r, headers...))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
