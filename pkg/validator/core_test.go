package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jobform/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field messages in insertion order", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "fullName", Message: "Full Name is required"})
		errs.Add(validator.ValidationError{Field: "phone", Message: "Phone Number is required"})

		assert.Equal(t,
			"validation failed: fullName: Full Name is required; phone: Phone Number is required",
			errs.Error(),
		)
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "email", Message: "Email is required"})
	errs.Add(validator.ValidationError{Field: "email", Message: "Email is not valid"})
	errs.Add(validator.ValidationError{Field: "position", Message: "Position is required"})

	t.Run("Has", func(t *testing.T) {
		assert.True(t, errs.Has("email"))
		assert.True(t, errs.Has("position"))
		assert.False(t, errs.Has("phone"))
	})

	t.Run("Get returns every message for the field", func(t *testing.T) {
		assert.Equal(t, []string{"Email is required", "Email is not valid"}, errs.Get("email"))
		assert.Empty(t, errs.Get("phone"))
	})

	t.Run("First returns the earliest message", func(t *testing.T) {
		assert.Equal(t, "Email is required", errs.First("email"))
		assert.Equal(t, "", errs.First("phone"))
	})

	t.Run("Fields are unique and ordered", func(t *testing.T) {
		assert.Equal(t, []string{"email", "position"}, errs.Fields())
	})

	t.Run("IsEmpty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validator.ValidationErrors{}.IsEmpty())
	})
}

func TestValidationErrors_Is(t *testing.T) {
	t.Parallel()

	err := validator.Apply(validator.Required("fullName", ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, validator.ErrValidationFailed)

	wrapped := fmt.Errorf("submit: %w", err)
	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)

	assert.NotErrorIs(t, errors.New("boom"), validator.ErrValidationFailed)
}

func TestApply(t *testing.T) {
	t.Parallel()

	pass := validator.Rule{
		Check: func() bool { return true },
		Error: validator.ValidationError{Field: "phone", Message: "unused"},
	}
	fail := func(field, msg string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: field, Message: msg},
		}
	}

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("evaluates every rule without short-circuit", func(t *testing.T) {
		calls := 0
		counting := validator.Rule{
			Check: func() bool { calls++; return false },
			Error: validator.ValidationError{Field: "experience", Message: "bad"},
		}

		err := validator.Apply(fail("fullName", "missing"), counting, pass, counting)
		require.Error(t, err)
		assert.Equal(t, 2, calls)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"fullName", "experience"}, verrs.Fields())
	})
}

func TestRule_WithMessage(t *testing.T) {
	t.Parallel()

	base := validator.Required("fullName", "")
	custom := base.WithMessage("Full Name is required")

	assert.Equal(t, "field is required", base.Error.Message, "original rule must not change")
	assert.Equal(t, "Full Name is required", custom.Error.Message)
	assert.Equal(t, base.Error.TranslationKey, custom.Error.TranslationKey)
	assert.Equal(t, "fullName", custom.Error.Field)

	verrs := validator.ExtractValidationErrors(validator.Apply(custom))
	require.NotNil(t, verrs)
	assert.Equal(t, "Full Name is required", verrs.First("fullName"))
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("extracts from wrapped error", func(t *testing.T) {
		var original validator.ValidationErrors
		original.Add(validator.ValidationError{Field: "email", Message: "Email is required"})

		extracted := validator.ExtractValidationErrors(fmt.Errorf("wrap: %w", original))
		require.NotNil(t, extracted)
		assert.True(t, extracted.Has("email"))
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("regular error")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})
}
