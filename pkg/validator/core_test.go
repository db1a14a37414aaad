package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputfilter/pkg/validator"
)

func TestMessages(t *testing.T) {
	t.Run("set replaces text in place", func(t *testing.T) {
		var msgs validator.Messages
		msgs.Set(validator.Message{Code: "a", Text: "first"})
		msgs.Set(validator.Message{Code: "b", Text: "second"})
		msgs.Set(validator.Message{Code: "a", Text: "replaced"})

		assert.Equal(t, []string{"a", "b"}, msgs.Codes())
		assert.Equal(t, "replaced", msgs.Get("a"))
		assert.Equal(t, map[string]string{"a": "replaced", "b": "second"}, msgs.Map())
	})

	t.Run("merge keeps order of first appearance", func(t *testing.T) {
		msgs := validator.Messages{{Code: "x", Text: "1"}}
		msgs.Merge(validator.Messages{{Code: "y", Text: "2"}, {Code: "x", Text: "3"}})

		assert.Equal(t, []string{"x", "y"}, msgs.Codes())
		assert.Equal(t, "3", msgs.Get("x"))
	})

	t.Run("lookups on empty set", func(t *testing.T) {
		var msgs validator.Messages
		assert.True(t, msgs.IsEmpty())
		assert.False(t, msgs.Has("x"))
		assert.Empty(t, msgs.Get("x"))
		assert.Nil(t, msgs.Clone())
	})

	t.Run("clone is independent", func(t *testing.T) {
		msgs := validator.Messages{{Code: "x", Text: "1"}}
		cp := msgs.Clone()
		cp[0].Text = "2"
		assert.Equal(t, "1", msgs.Get("x"))
	})
}

func TestIsEmpty(t *testing.T) {
	var nilPtr *int
	one := 1

	empty := []any{nil, "", []any{}, []string(nil), map[string]any{}, nilPtr}
	for _, v := range empty {
		assert.True(t, validator.IsEmpty(v), "%#v should be empty", v)
	}

	notEmpty := []any{" ", 0, 0.0, false, []any{nil}, map[string]any{"a": nil}, &one}
	for _, v := range notEmpty {
		assert.False(t, validator.IsEmpty(v), "%#v should not be empty", v)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})

		errorMsg := errs.Error()
		assert.Contains(t, errorMsg, "validation failed:")
		assert.Contains(t, errorMsg, "email: is required")
		assert.Contains(t, errorMsg, "password: too short")
	})
}

func TestValidationErrors_AddMessages(t *testing.T) {
	var errs validator.ValidationErrors
	errs.AddMessages("items.0.name", validator.Messages{
		{Code: validator.StringLengthTooShort, Text: "too short", TranslationKey: "validation.min_length"},
		{Code: validator.AlphaNotAlpha, Text: "not alpha"},
	})

	require.Len(t, errs, 2)
	assert.True(t, errs.Has("items.0.name"))
	assert.Equal(t, []string{"too short", "not alpha"}, errs.Get("items.0.name"))
	assert.Equal(t, validator.StringLengthTooShort, errs.GetErrors("items.0.name")[0].Code)
	assert.Equal(t, "validation.min_length", errs.GetErrors("items.0.name")[0].TranslationKey)
	assert.Equal(t, []string{"items.0.name"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "foo", Message: "bad"}}
		wrapped := fmt.Errorf("signup: %w", errs)

		assert.True(t, validator.IsValidationError(wrapped))
		assert.Equal(t, errs, validator.ExtractValidationErrors(wrapped))
	})

	t.Run("other error", func(t *testing.T) {
		err := errors.New("boom")
		assert.False(t, validator.IsValidationError(err))
		assert.Nil(t, validator.ExtractValidationErrors(err))
	})
}
