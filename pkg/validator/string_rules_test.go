package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/jobform/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Parallel()

	t.Run("passes for non-empty string", func(t *testing.T) {
		rule := validator.RequiredString("fullName", "Jane Doe")
		assert.True(t, rule.Check())
		assert.Equal(t, "fullName", rule.Error.Field)
		assert.Equal(t, "field is required", rule.Error.Message)
		assert.Equal(t, "validation.required", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "fullName"}, rule.Error.TranslationValues)
	})

	t.Run("passes for content surrounded by whitespace", func(t *testing.T) {
		assert.True(t, validator.RequiredString("fullName", "  Jane  ").Check())
	})

	tests := []struct {
		name  string
		value string
	}{
		{"empty string", ""},
		{"spaces only", "   "},
		{"tabs and newlines", "\t\n"},
	}
	for _, tt := range tests {
		t.Run("fails for "+tt.name, func(t *testing.T) {
			assert.False(t, validator.RequiredString("fullName", tt.value).Check())
		})
	}
}

func TestNotEmpty(t *testing.T) {
	t.Parallel()

	rule := validator.NotEmpty("phone", "")
	assert.False(t, rule.Check())
	assert.Equal(t, "phone", rule.Error.Field)
	assert.Equal(t, "field is required", rule.Error.Message)
	assert.Equal(t, "validation.required", rule.Error.TranslationKey)

	for _, v := range []string{"5551234", " ", "\t\n"} {
		assert.True(t, validator.NotEmpty("phone", v).Check(), "value %q", v)
	}
}

func TestRequired_IsAlias(t *testing.T) {
	t.Parallel()

	a := validator.Required("phone", "")
	b := validator.RequiredString("phone", "")
	assert.Equal(t, a.Error, b.Error)
	assert.Equal(t, a.Check(), b.Check())
}
