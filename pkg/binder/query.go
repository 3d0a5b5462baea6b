package binder

import "net/http"

// Query creates a binder for URL query parameters. It applies to every
// request, so it usually pre-fills a struct that a body binder completes.
//
// Supported struct tags:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"`    - skips the field
//
// Slices bind from repeated keys (?skill=CSS&skill=Python) or
// comma-separated values (?skill=CSS,Python).
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
