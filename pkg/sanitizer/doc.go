// Package sanitizer holds the small, stateless cleanup helpers applied to raw
// form input before it is validated.
//
//   - Strings: Trim, RemoveExtraWhitespace, RemoveControlChars.
//   - Collections: Deduplicate, FilterSlice, TransformSlice (generic).
//   - Pipelines: Apply and Compose chain any func(T) T transforms.
//
// Example:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.RemoveExtraWhitespace,
//	)
//	name := clean(" Jane \t  Doe\x00 ") // "Jane Doe"
//
// Every helper returns a new value and never mutates its input, so the
// package is safe for concurrent use.
package sanitizer
