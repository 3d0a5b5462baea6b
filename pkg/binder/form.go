package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Repeated keys and comma-separated values bind to slices:
//
//	type ApplyRequest struct {
//		FullName string   `form:"fullName"`
//		Skills   []string `form:"additionalSkills"`
//	}
//
//	r.Post("/applications", handler.Wrap(apply,
//		handler.WithBinders[handler.Context, ApplyRequest](binder.JSON(), binder.Form()),
//	))
//
// Form is meant to be the last binder in a chain: it rejects other media
// types with ErrUnsupportedMediaType.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		mediaType, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: malformed content type %q", ErrUnsupportedMediaType, contentType)
		}

		var values map[string][]string

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.PostForm

		case "multipart/form-data":
			if params["boundary"] == "" {
				return fmt.Errorf("%w: missing boundary in content type", ErrInvalidForm)
			}
			// Request size limits are left to server middleware
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.MultipartForm.Value

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
		}

		return bindToStruct(v, "form", values, ErrInvalidForm)
	}
}
