package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Validator checks a single value. Messages holds the failures of the last
// IsValid call and is reset at the start of every call.
type Validator interface {
	IsValid(value any, context map[string]any) bool
	Messages() Messages
}

// NotEmptyMarker identifies validators that reject empty values.
// Inputs look for it before injecting their own NotEmpty validator.
type NotEmptyMarker interface {
	RejectsEmpty() bool
}

// Message is a single failure reported by a validator, keyed by Code.
type Message struct {
	Code              string
	Text              string
	TranslationKey    string
	TranslationValues map[string]any
}

// Messages is an ordered set of messages with unique codes.
type Messages []Message

// Set appends msg or replaces the text of an existing message with the same code in place.
func (m *Messages) Set(msg Message) {
	for i := range *m {
		if (*m)[i].Code == msg.Code {
			(*m)[i] = msg
			return
		}
	}
	*m = append(*m, msg)
}

// Merge sets every message of other, in order.
func (m *Messages) Merge(other Messages) {
	for _, msg := range other {
		m.Set(msg)
	}
}

func (m Messages) Has(code string) bool {
	for _, msg := range m {
		if msg.Code == code {
			return true
		}
	}
	return false
}

// Get returns the text for code, or an empty string.
func (m Messages) Get(code string) string {
	for _, msg := range m {
		if msg.Code == code {
			return msg.Text
		}
	}
	return ""
}

func (m Messages) Codes() []string {
	codes := make([]string, 0, len(m))
	for _, msg := range m {
		codes = append(codes, msg.Code)
	}
	return codes
}

// Map returns code to text. Order is lost.
func (m Messages) Map() map[string]string {
	out := make(map[string]string, len(m))
	for _, msg := range m {
		out[msg.Code] = msg.Text
	}
	return out
}

func (m Messages) IsEmpty() bool {
	return len(m) == 0
}

func (m Messages) Clone() Messages {
	if m == nil {
		return nil
	}
	out := make(Messages, len(m))
	copy(out, m)
	return out
}

// Base carries message state for validators. Embed it and call Reset at the
// start of IsValid.
type Base struct {
	messages Messages
}

func (b *Base) Messages() Messages {
	return b.messages.Clone()
}

func (b *Base) Reset() {
	b.messages = nil
}

// Fail records a message and returns false so checks can end with `return v.Fail(...)`.
func (b *Base) Fail(code, text, translationKey string, values map[string]any) bool {
	b.messages.Set(Message{
		Code:              code,
		Text:              text,
		TranslationKey:    translationKey,
		TranslationValues: values,
	})
	return false
}

// IsEmpty reports whether v is nil, an empty string or an empty sequence.
// Numeric zero and false are not empty.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Code              string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// AddMessages records every message under field.
func (ve *ValidationErrors) AddMessages(field string, msgs Messages) {
	for _, msg := range msgs {
		ve.Add(ValidationError{
			Field:             field,
			Code:              msg.Code,
			Message:           msg.Text,
			TranslationKey:    msg.TranslationKey,
			TranslationValues: msg.TranslationValues,
		})
	}
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errors []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errors = append(errors, err)
		}
	}
	return errors
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
