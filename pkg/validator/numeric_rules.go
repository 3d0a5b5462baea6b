package validator

import (
	"math"
	"strconv"
	"strings"
)

// PositiveNumber validates that a textual value parses as a finite number
// strictly greater than zero. Empty and non-numeric input fail the check
// rather than erroring, which suits raw form input.
func PositiveNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
				return false
			}
			return n > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a number greater than 0",
			TranslationKey: "validation.positive",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
