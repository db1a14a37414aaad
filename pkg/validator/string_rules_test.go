package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputfilter/pkg/validator"
)

func TestNotEmpty(t *testing.T) {
	v := validator.NewNotEmpty()
	assert.True(t, v.RejectsEmpty())

	t.Run("rejects empty values", func(t *testing.T) {
		for _, value := range []any{nil, "", []any{}} {
			assert.False(t, v.IsValid(value, nil))
			assert.Equal(t, "Value is required and can't be empty", v.Messages().Get(validator.NotEmptyIsEmpty))
		}
	})

	t.Run("accepts zero and false", func(t *testing.T) {
		for _, value := range []any{0, false, " ", "0"} {
			assert.True(t, v.IsValid(value, nil))
			assert.True(t, v.Messages().IsEmpty())
		}
	})
}

func TestDigits(t *testing.T) {
	v := validator.NewDigits()

	t.Run("accepts digit strings and integers", func(t *testing.T) {
		assert.True(t, v.IsValid("12345", nil))
		assert.True(t, v.IsValid(42, nil))
		assert.True(t, v.IsValid(uint8(7), nil))
	})

	t.Run("rejects non digits", func(t *testing.T) {
		assert.False(t, v.IsValid("12a", nil))
		assert.True(t, v.Messages().Has(validator.DigitsNotDigits))

		assert.False(t, v.IsValid(-5, nil))
		assert.False(t, v.IsValid(1.5, nil))
	})

	t.Run("rejects empty string", func(t *testing.T) {
		assert.False(t, v.IsValid("", nil))
		assert.True(t, v.Messages().Has(validator.DigitsStringEmpty))
	})

	t.Run("rejects unsupported types", func(t *testing.T) {
		assert.False(t, v.IsValid([]int{1}, nil))
		assert.True(t, v.Messages().Has(validator.DigitsInvalid))
	})
}

func TestAlpha(t *testing.T) {
	t.Run("letters only", func(t *testing.T) {
		v := validator.NewAlpha(false)
		assert.True(t, v.IsValid("bazbat", nil))
		assert.True(t, v.IsValid("Zoë", nil))
		assert.False(t, v.IsValid("baz bat", nil))
		assert.True(t, v.Messages().Has(validator.AlphaNotAlpha))
		assert.False(t, v.IsValid("", nil))
		assert.True(t, v.Messages().Has(validator.AlphaStringEmpty))
		assert.False(t, v.IsValid(1, nil))
		assert.True(t, v.Messages().Has(validator.AlphaInvalid))
	})

	t.Run("whitespace allowed", func(t *testing.T) {
		v := validator.NewAlpha(true)
		assert.True(t, v.IsValid("baz bat", nil))
	})
}

func TestAlnum(t *testing.T) {
	v := validator.NewAlnum(false)
	assert.True(t, v.IsValid("abc123", nil))
	assert.True(t, v.IsValid(123, nil))
	assert.False(t, v.IsValid("abc-123", nil))
	assert.True(t, v.Messages().Has(validator.AlnumNotAlnum))
	assert.True(t, validator.NewAlnum(true).IsValid("abc 123", nil))
}

func TestStringLength(t *testing.T) {
	v, err := validator.NewStringLength(3, 6)
	require.NoError(t, err)

	t.Run("within bounds", func(t *testing.T) {
		assert.True(t, v.IsValid("bazbat", nil))
		assert.True(t, v.IsValid("baz", nil))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		assert.True(t, v.IsValid("ñññ", nil))
	})

	t.Run("too short", func(t *testing.T) {
		assert.False(t, v.IsValid("ba", nil))
		msgs := v.Messages()
		assert.Equal(t, "The input is less than 3 characters long", msgs.Get(validator.StringLengthTooShort))
		assert.Equal(t, 3, msgs[0].TranslationValues["min"])
	})

	t.Run("too long", func(t *testing.T) {
		assert.False(t, v.IsValid("toolongvalue", nil))
		assert.True(t, v.Messages().Has(validator.StringLengthTooLong))
	})

	t.Run("non string", func(t *testing.T) {
		assert.False(t, v.IsValid(123, nil))
		assert.True(t, v.Messages().Has(validator.StringLengthInvalid))
	})

	t.Run("unbounded max", func(t *testing.T) {
		v, err := validator.NewStringLength(1, 0)
		require.NoError(t, err)
		assert.True(t, v.IsValid("a very long string indeed", nil))
	})

	t.Run("invalid configuration", func(t *testing.T) {
		_, err := validator.NewStringLength(5, 2)
		assert.ErrorIs(t, err, validator.ErrInvalidConfig)
		_, err = validator.NewStringLength(-1, 0)
		assert.ErrorIs(t, err, validator.ErrInvalidConfig)
	})
}
