package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jobform/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	t.Parallel()

	t.Run("valid emails", func(t *testing.T) {
		validEmails := []string{
			"jane@x.com",
			"user.name@domain.co.uk",
			"user+tag@example.org",
			"UPPER@EXAMPLE.COM",
			"email@123.123.123.123",
			"a@b.c",
		}

		for _, email := range validEmails {
			err := validator.Apply(validator.ValidEmail("email", email))
			assert.NoError(t, err, "Email should be valid: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		invalidEmails := []string{
			"plainaddress",
			"@missingdomain.com",
			"missing@.com",
			"missing@domain",
			"spaces @domain.com",
			"email@domain .com",
			"two@@domain.com",
			"a@b@c.com",
			"   ",
			"ja\u00a0ne@x.com",
			"jane@x.com\u2003",
			"ja\vne@x.com",
			"jane@x\u3000y.com",
			"\ufeffjane@x.com",
			"jane@x.c\u2028om",
		}

		for _, email := range invalidEmails {
			err := validator.Apply(validator.ValidEmail("email", email))
			assert.Error(t, err, "Email should be invalid: %q", email)

			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs)
			assert.Equal(t, "validation.email", verrs[0].TranslationKey)
		}
	})

	t.Run("empty value is left to Required", func(t *testing.T) {
		assert.True(t, validator.ValidEmail("email", "").Check())
	})
}

func TestValidURL(t *testing.T) {
	t.Parallel()

	t.Run("valid URLs", func(t *testing.T) {
		validURLs := []string{
			"ftp://x.com/a",
			"http://example.com",
			"https://www.example.com/path?query=value#frag",
			"https://localhost:8080",
			"http://x",
		}

		for _, u := range validURLs {
			assert.True(t, validator.ValidURL("portfolioURL", u).Check(), "URL should be valid: %s", u)
		}
	})

	t.Run("invalid URLs", func(t *testing.T) {
		invalidURLs := []string{
			"not-a-url",
			"www.example.com",
			"mailto:jane@x.com",
			"gopher://example.com",
			"HTTP://example.com",
			"https://",
			"https://exa mple.com",
			`https://example.com/"quoted"`,
		}

		for _, u := range invalidURLs {
			rule := validator.ValidURL("portfolioURL", u)
			assert.False(t, rule.Check(), "URL should be invalid: %s", u)
			assert.Equal(t, "validation.url", rule.Error.TranslationKey)
		}
	})

	t.Run("empty value is left to Required", func(t *testing.T) {
		assert.True(t, validator.ValidURL("portfolioURL", "").Check())
	})
}
