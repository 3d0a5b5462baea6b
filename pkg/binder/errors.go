package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidQuery         = errors.New("invalid query parameters")

	// ErrBinderNotApplicable tells a binder chain to try the next binder.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")
)
