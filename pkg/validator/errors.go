package validator

import "errors"

// ErrValidationFailed matches any ValidationErrors value via errors.Is.
var ErrValidationFailed = errors.New("validation failed")
