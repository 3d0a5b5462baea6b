// Package binder decodes HTTP request bodies into tagged Go structs.
//
// Three binders are provided:
//
//   - JSON(): application/json bodies, strict about unknown fields
//   - Form(): application/x-www-form-urlencoded and multipart/form-data bodies
//   - Query(): URL query parameters
//
// Both have the signature func(*http.Request, any) error and plug into
// handler.WithBinders. JSON steps aside for other media types by returning
// an error wrapping ErrBinderNotApplicable, so a chain of JSON() then Form()
// accepts either encoding of the same request struct:
//
//	type ApplyRequest struct {
//		FullName string   `json:"fullName" form:"fullName"`
//		Skills   []string `json:"additionalSkills" form:"additionalSkills"`
//	}
//
// Form binds named string types through their underlying kind, and slices
// from repeated keys or comma-separated values.
//
// # Errors
//
//   - ErrUnsupportedMediaType: content type is not handled
//   - ErrMissingContentType: Content-Type header is absent
//   - ErrInvalidJSON: JSON body could not be decoded
//   - ErrInvalidForm: form body could not be parsed or bound
//   - ErrInvalidQuery: query parameters could not be bound
//   - ErrBinderNotApplicable: the next binder should be tried
package binder
