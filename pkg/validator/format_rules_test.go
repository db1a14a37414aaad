package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inputfilter/pkg/validator"
)

func TestEmailAddress(t *testing.T) {
	v := validator.NewEmailAddress()

	valid := []string{"user@example.com", "first.last+tag@mail.example.org"}
	for _, email := range valid {
		assert.True(t, v.IsValid(email, nil), email)
	}

	invalid := []string{"", "user", "user@", "@example.com", "user@example", "user@.example.com", "user@example..com", "John <user@example.com>"}
	for _, email := range invalid {
		assert.False(t, v.IsValid(email, nil), email)
		assert.True(t, v.Messages().Has(validator.EmailAddressInvalidFormat), email)
	}

	assert.False(t, v.IsValid(1, nil))
	assert.True(t, v.Messages().Has(validator.EmailAddressInvalid))
}

func TestURI(t *testing.T) {
	t.Run("any scheme", func(t *testing.T) {
		v := validator.NewURI()
		assert.True(t, v.IsValid("https://example.com/path?q=1", nil))
		assert.True(t, v.IsValid("ftp://files.example.com", nil))
		assert.False(t, v.IsValid("example.com", nil))
		assert.True(t, v.Messages().Has(validator.URINotURI))
		assert.False(t, v.IsValid(nil, nil))
		assert.True(t, v.Messages().Has(validator.URIInvalid))
	})

	t.Run("restricted schemes", func(t *testing.T) {
		v := validator.NewURI("https")
		assert.True(t, v.IsValid("HTTPS://example.com", nil))
		assert.False(t, v.IsValid("http://example.com", nil))
	})
}
