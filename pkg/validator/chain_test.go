package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputfilter/pkg/options"
	"github.com/dmitrymomot/inputfilter/pkg/validator"
)

// countingValidator records how often it ran.
type countingValidator struct {
	validator.Base
	valid bool
	code  string
	calls int
}

func (v *countingValidator) IsValid(_ any, _ map[string]any) bool {
	v.Reset()
	v.calls++
	if !v.valid {
		return v.Fail(v.code, v.code+" failed", "", nil)
	}
	return true
}

func TestChain_IsValid(t *testing.T) {
	t.Run("empty chain is valid", func(t *testing.T) {
		chain := validator.NewChain()
		assert.True(t, chain.IsValid("x", nil))
		assert.True(t, chain.Messages().IsEmpty())
	})

	t.Run("collects messages from every failing validator", func(t *testing.T) {
		a := &countingValidator{code: "a"}
		b := &countingValidator{code: "b"}
		chain := validator.NewChain().Attach(a, false).Attach(b, false)

		assert.False(t, chain.IsValid("x", nil))
		assert.Equal(t, []string{"a", "b"}, chain.Messages().Codes())
		assert.Equal(t, 1, b.calls)
	})

	t.Run("break on failure stops the chain", func(t *testing.T) {
		a := &countingValidator{code: "a"}
		b := &countingValidator{code: "b"}
		chain := validator.NewChain().Attach(a, true).Attach(b, false)

		assert.False(t, chain.IsValid("x", nil))
		assert.Equal(t, []string{"a"}, chain.Messages().Codes())
		assert.Equal(t, 0, b.calls)
	})

	t.Run("passing break entry does not stop the chain", func(t *testing.T) {
		a := &countingValidator{valid: true}
		b := &countingValidator{code: "b"}
		chain := validator.NewChain().Attach(a, true).Attach(b, false)

		assert.False(t, chain.IsValid("x", nil))
		assert.Equal(t, 1, b.calls)
	})

	t.Run("messages reset between calls", func(t *testing.T) {
		v := &countingValidator{code: "a"}
		chain := validator.NewChain().Attach(v, false)

		assert.False(t, chain.IsValid("x", nil))
		v.valid = true
		assert.True(t, chain.IsValid("x", nil))
		assert.True(t, chain.Messages().IsEmpty())
	})

	t.Run("context reaches validators", func(t *testing.T) {
		chain := validator.NewChain().Attach(validator.NewIdentical("password", true), false)
		assert.True(t, chain.IsValid("secret", map[string]any{"password": "secret"}))
		assert.False(t, chain.IsValid("other", map[string]any{"password": "secret"}))
	})
}

func TestChain_Prepend(t *testing.T) {
	a := &countingValidator{code: "a"}
	b := &countingValidator{code: "b"}
	chain := validator.NewChain().Attach(a, false).Prepend(b, true)

	entries := chain.Entries()
	require.Len(t, entries, 2)
	assert.Same(t, b, entries[0].Validator)
	assert.True(t, entries[0].BreakOnFailure)

	assert.False(t, chain.IsValid("x", nil))
	assert.Equal(t, 0, a.calls)
}

func TestChain_ByName(t *testing.T) {
	t.Run("resolves through registry", func(t *testing.T) {
		chain := validator.NewChain(validator.WithResolver(validator.NewRegistry()))
		require.NoError(t, chain.AttachByName("StringLength", options.Options{"min": 3, "max": 6}, false))
		require.NoError(t, chain.PrependByName("not_empty", nil, true))

		require.Equal(t, 2, chain.Len())
		_, ok := chain.Entries()[0].Validator.(*validator.NotEmpty)
		assert.True(t, ok)

		assert.False(t, chain.IsValid("ab", nil))
		assert.True(t, chain.Messages().Has(validator.StringLengthTooShort))
	})

	t.Run("without resolver", func(t *testing.T) {
		err := validator.NewChain().AttachByName("digits", nil, false)
		assert.ErrorIs(t, err, validator.ErrNoResolver)
	})

	t.Run("unknown name", func(t *testing.T) {
		chain := validator.NewChain(validator.WithResolver(validator.NewRegistry()))
		err := chain.AttachByName("nope", nil, false)
		assert.ErrorIs(t, err, validator.ErrUnknownValidator)
		assert.Equal(t, 0, chain.Len())
	})
}

func TestChain_Merge(t *testing.T) {
	registry := validator.NewRegistry()
	a := validator.NewChain().Attach(validator.NewDigits(), false)
	b := validator.NewChain(validator.WithResolver(registry)).Attach(validator.NewNotEmpty(), true)

	a.Merge(b).Merge(nil)

	require.Equal(t, 2, a.Len())
	assert.True(t, a.Entries()[1].BreakOnFailure)
	assert.Same(t, registry, a.Resolver())
}
