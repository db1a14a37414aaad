package i18n

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/inputfilter/pkg/validator"
)

// Messages returns a copy of msgs with every text translated into lang by
// its TranslationKey. TranslationValues fill the placeholders. Messages
// without a key or without a translation keep their text.
func (t *Translator) Messages(lang string, msgs validator.Messages) validator.Messages {
	out := msgs.Clone()
	for i, msg := range out {
		out[i].Text = t.message(lang, msg.TranslationKey, msg.Text, msg.TranslationValues)
	}
	return out
}

// Errors is Messages for flattened validation errors.
func (t *Translator) Errors(lang string, errs validator.ValidationErrors) validator.ValidationErrors {
	if errs == nil {
		return nil
	}
	out := make(validator.ValidationErrors, len(errs))
	for i, e := range errs {
		e.Message = t.message(lang, e.TranslationKey, e.Message, e.TranslationValues)
		out[i] = e
	}
	return out
}

func (t *Translator) message(lang, key, text string, values map[string]any) string {
	if key == "" {
		return text
	}
	s, ok := t.lookup(lang, key)
	if !ok {
		return text
	}
	params := make(map[string]string, len(values))
	for k, v := range values {
		params[k] = formatValue(v)
	}
	return sprintf(s, params)
}

// formatValue renders lists as comma separated items.
func formatValue(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Sprint(v)
	}
	items := make([]string, rv.Len())
	for i := range items {
		items[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return strings.Join(items, ", ")
}
