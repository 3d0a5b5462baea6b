package validator

import (
	"regexp"
	"strings"
)

var (
	// local@domain.tld shape: no whitespace, one @, at least one dot after it.
	// \s is ASCII-only in RE2, so Unicode separators, VT and BOM are listed too.
	emailRegex = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

	// scheme:// followed by anything but spaces and double quotes
	urlRegex = regexp.MustCompile(`^(ftp|http|https)://[^ "]+$`)
)

// ValidEmail validates the local@domain.tld shape of an address.
// Empty values pass so the rule can sit next to Required without
// reporting twice for the same missing field.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			return emailRegex.MatchString(strings.ToLower(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidURL validates an ftp, http or https URL. Empty values pass.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			return urlRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
