package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/jobform/pkg/validator"
)

func TestPositiveNumber(t *testing.T) {
	t.Parallel()

	t.Run("error metadata", func(t *testing.T) {
		rule := validator.PositiveNumber("experience", "")
		assert.Equal(t, "experience", rule.Error.Field)
		assert.Equal(t, "must be a number greater than 0", rule.Error.Message)
		assert.Equal(t, "validation.positive", rule.Error.TranslationKey)
	})

	tests := []struct {
		value string
		want  bool
	}{
		{"3", true},
		{"0.5", true},
		{" 7 ", true},
		{"1e2", true},
		{"0", false},
		{"0.0", false},
		{"-2", false},
		{"", false},
		{"   ", false},
		{"abc", false},
		{"3 years", false},
		{"NaN", false},
		{"Inf", false},
		{"+Inf", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.PositiveNumber("experience", tt.value).Check())
		})
	}
}
