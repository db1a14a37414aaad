package i18n

import (
	"context"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/inputfilter/pkg/logger"
)

// DefaultLanguage is used when no default language option is given.
const DefaultLanguage = "en"

// Translator looks up messages by language and dotted key. Keys address
// nested maps: "validation.min_length" reads translations["validation"]["min_length"].
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator loads translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, trans := range translations {
		if lang == "" || trans == nil {
			return nil, ErrInvalidStructure
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded",
		logger.Component("i18n"),
		slog.Any("languages", t.SupportedLanguages()),
	)
	return t, nil
}

func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// SupportedLanguages returns the loaded languages, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.translations))
}

// HasTranslation reports whether lang itself holds key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.get(lang, key)
	return ok
}

// T translates key into lang, falling back to the default language.
// Arguments are key/value pairs substituted into "%{name}" placeholders.
// A missing translation yields the key, or "" when fallback to key is off.
func (t *Translator) T(lang, key string, args ...string) string {
	if s, ok := t.lookup(lang, key); ok {
		return sprintf(s, pairs(args))
	}
	if t.fallbackToKey {
		return sprintf(key, pairs(args))
	}
	return ""
}

// Td is T with an explicit fallback instead of the key.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if s, ok := t.lookup(lang, key); ok {
		return sprintf(s, pairs(args))
	}
	return sprintf(defaultValue, pairs(args))
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if s, ok := t.get(lang, key); ok {
		return s, true
	}
	if lang != t.defaultLang {
		if s, ok := t.get(t.defaultLang, key); ok {
			return s, true
		}
	}
	if t.missingLogMode {
		t.logger.Warn("translation not found",
			logger.Component("i18n"),
			slog.String("lang", lang),
			slog.String("key", key),
		)
	}
	return "", false
}

func (t *Translator) get(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok || key == "" {
		return "", false
	}
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	s, ok := current[parts[len(parts)-1]].(string)
	return s, ok
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf replaces "%{name}" with params[name]. Unknown placeholders are kept.
func sprintf(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// pairs builds a map from key, value, key, value. An odd last element is ignored.
func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}
