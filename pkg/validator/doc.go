// Package validator provides small, composable validation rules for raw form
// input: presence checks, textual number checks, email and URL shapes, and
// collection presence.
//
// Each exported helper builds a Rule value that pairs a boolean Check
// function with translation-friendly error metadata. Rules are evaluated with
// Apply, which runs every rule (no short-circuit) and aggregates failures into
// a ValidationErrors slice satisfying the error interface.
//
// # Architecture
//
// Rules are grouped by family (`string_rules.go`, `numeric_rules.go`,
// `format_rules.go`, `collection_rules.go`). Constructors capture their input
// by value and keep no global mutable state, so the package is stateless and
// goroutine-safe. Patterns are compiled once at package init.
//
// Format rules (ValidEmail, ValidURL) treat an empty value as valid. Pair them
// with Required so a missing field reports "required" and a malformed one
// reports the format error, never both.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("email", email).WithMessage("Email is required"),
//	    validator.ValidEmail("email", email).WithMessage("Email is not valid"),
//	    validator.PositiveNumber("experience", experience),
//	    validator.RequiredSlice("skills", skills),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msg := verrs.First("email")
//	}
//
// # Error Handling
//
// ValidationErrors implements Error and Is; errors.Is(err, ErrValidationFailed)
// matches any rule failure and errors.As recovers the full collection. Field
// errors can be inspected with Has, Get, First and Fields.
package validator
