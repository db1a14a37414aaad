package i18n_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputfilter/pkg/i18n"
	"github.com/dmitrymomot/inputfilter/pkg/logger"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{
		Data: map[string]map[string]any{
			"en": {
				"hello":   "Hello",
				"welcome": "Welcome, %{name}!",
				"nested": map[string]any{
					"greeting": "Nested greeting",
				},
			},
			"de": {
				"hello":   "Hallo",
				"welcome": "Willkommen, %{name}!",
			},
		},
	}

	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Run("nil adapter", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
		assert.Nil(t, tr)
	})

	t.Run("empty language code", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"": {"hello": "Hello"}}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("empty adapter", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
		require.NoError(t, err)
		assert.Empty(t, tr.SupportedLanguages())
	})

	t.Run("default language", func(t *testing.T) {
		assert.Equal(t, i18n.DefaultLanguage, newTestTranslator(t).DefaultLanguage())
		assert.Equal(t, "de", newTestTranslator(t, i18n.WithDefaultLanguage("de")).DefaultLanguage())
	})
}

func TestTranslatorSupportedLanguages(t *testing.T) {
	assert.Equal(t, []string{"de", "en"}, newTestTranslator(t).SupportedLanguages())
}

func TestTranslatorHasTranslation(t *testing.T) {
	tr := newTestTranslator(t)

	assert.True(t, tr.HasTranslation("en", "hello"))
	assert.True(t, tr.HasTranslation("en", "nested.greeting"))
	assert.False(t, tr.HasTranslation("en", "nested"))
	assert.False(t, tr.HasTranslation("de", "nested.greeting"))
	assert.False(t, tr.HasTranslation("fr", "hello"))
}

func TestTranslatorT(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []string
		want string
	}{
		{name: "simple", lang: "en", key: "hello", want: "Hello"},
		{name: "other language", lang: "de", key: "hello", want: "Hallo"},
		{name: "placeholder", lang: "de", key: "welcome", args: []string{"name", "Anna"}, want: "Willkommen, Anna!"},
		{name: "missing placeholder is kept", lang: "en", key: "welcome", want: "Welcome, %{name}!"},
		{name: "odd args", lang: "en", key: "welcome", args: []string{"name"}, want: "Welcome, %{name}!"},
		{name: "nested key", lang: "en", key: "nested.greeting", want: "Nested greeting"},
		{name: "default language fallback", lang: "de", key: "nested.greeting", want: "Nested greeting"},
		{name: "unsupported language", lang: "fr", key: "hello", want: "Hello"},
		{name: "missing key", lang: "en", key: "missing.key", want: "missing.key"},
		{name: "map value", lang: "en", key: "nested", want: "nested"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key, tt.args...))
		})
	}

	t.Run("without fallback to key", func(t *testing.T) {
		tr := newTestTranslator(t, i18n.WithFallbackToKey(false))
		assert.Empty(t, tr.T("en", "missing.key"))
	})
}

func TestTranslatorTd(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "Hallo", tr.Td("de", "hello", "Hi"))
	assert.Equal(t, "Hi, Bob", tr.Td("de", "missing", "Hi, %{name}", "name", "Bob"))
}

func TestTranslatorMissingLogging(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatJSON))

	tr := newTestTranslator(t, i18n.WithLogger(log), i18n.WithMissingTranslationsLogging(true))
	tr.T("de", "missing.key")

	assert.Contains(t, buf.String(), "translation not found")
	assert.Contains(t, buf.String(), `"key":"missing.key"`)

	buf.Reset()
	tr = newTestTranslator(t, i18n.WithLogger(log))
	tr.T("de", "missing.key")
	assert.NotContains(t, buf.String(), "translation not found")
}
