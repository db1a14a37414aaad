package validator

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

const (
	NotEmptyIsEmpty = "isEmpty"
	NotEmptyInvalid = "notEmptyInvalid"

	DigitsNotDigits   = "notDigits"
	DigitsStringEmpty = "digitsStringEmpty"
	DigitsInvalid     = "digitsInvalid"

	AlphaNotAlpha    = "notAlpha"
	AlphaStringEmpty = "alphaStringEmpty"
	AlphaInvalid     = "alphaInvalid"

	AlnumNotAlnum    = "notAlnum"
	AlnumStringEmpty = "alnumStringEmpty"
	AlnumInvalid     = "alnumInvalid"

	StringLengthInvalid  = "stringLengthInvalid"
	StringLengthTooShort = "stringLengthTooShort"
	StringLengthTooLong  = "stringLengthTooLong"
)

// NotEmpty rejects nil, empty strings and empty sequences.
type NotEmpty struct {
	Base
}

func NewNotEmpty() *NotEmpty {
	return &NotEmpty{}
}

func (v *NotEmpty) RejectsEmpty() bool { return true }

func (v *NotEmpty) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	if IsEmpty(value) {
		return v.Fail(NotEmptyIsEmpty, "Value is required and can't be empty", "validation.not_empty", nil)
	}
	return true
}

// Digits accepts strings and integers made only of decimal digits.
type Digits struct {
	Base
}

func NewDigits() *Digits {
	return &Digits{}
}

func (v *Digits) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	s, ok := scalarString(value)
	if !ok {
		return v.Fail(DigitsInvalid, "Invalid type given. String, integer or float expected", "validation.digits_invalid", nil)
	}
	if s == "" {
		return v.Fail(DigitsStringEmpty, "The input is an empty string", "validation.digits_empty", nil)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return v.Fail(DigitsNotDigits, "The input must contain only digits", "validation.digits", nil)
		}
	}
	return true
}

// Alpha accepts letters only, optionally with whitespace.
type Alpha struct {
	Base
	AllowWhiteSpace bool
}

func NewAlpha(allowWhiteSpace bool) *Alpha {
	return &Alpha{AllowWhiteSpace: allowWhiteSpace}
}

func (v *Alpha) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	s, ok := value.(string)
	if !ok {
		return v.Fail(AlphaInvalid, "Invalid type given. String expected", "validation.alpha_invalid", nil)
	}
	if s == "" {
		return v.Fail(AlphaStringEmpty, "The input is an empty string", "validation.alpha_empty", nil)
	}
	for _, r := range s {
		if unicode.IsLetter(r) || (v.AllowWhiteSpace && unicode.IsSpace(r)) {
			continue
		}
		return v.Fail(AlphaNotAlpha, "The input contains non alphabetic characters", "validation.alpha", nil)
	}
	return true
}

// Alnum accepts letters and digits, optionally with whitespace.
type Alnum struct {
	Base
	AllowWhiteSpace bool
}

func NewAlnum(allowWhiteSpace bool) *Alnum {
	return &Alnum{AllowWhiteSpace: allowWhiteSpace}
}

func (v *Alnum) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	s, ok := scalarString(value)
	if !ok {
		return v.Fail(AlnumInvalid, "Invalid type given. String, integer or float expected", "validation.alnum_invalid", nil)
	}
	if s == "" {
		return v.Fail(AlnumStringEmpty, "The input is an empty string", "validation.alnum_empty", nil)
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || (v.AllowWhiteSpace && unicode.IsSpace(r)) {
			continue
		}
		return v.Fail(AlnumNotAlnum, "The input contains characters which are non alphabetic and no digits", "validation.alnum", nil)
	}
	return true
}

// StringLength checks the rune count of a string. Max 0 means unbounded.
type StringLength struct {
	Base
	Min int
	Max int
}

func NewStringLength(min, max int) (*StringLength, error) {
	if min < 0 || (max > 0 && max < min) {
		return nil, fmt.Errorf("%w: string length min %d, max %d", ErrInvalidConfig, min, max)
	}
	return &StringLength{Min: min, Max: max}, nil
}

func (v *StringLength) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	s, ok := value.(string)
	if !ok {
		return v.Fail(StringLengthInvalid, "Invalid type given. String expected", "validation.length_invalid", nil)
	}
	n := utf8.RuneCountInString(s)
	if n < v.Min {
		return v.Fail(StringLengthTooShort,
			fmt.Sprintf("The input is less than %d characters long", v.Min),
			"validation.min_length", map[string]any{"min": v.Min})
	}
	if v.Max > 0 && n > v.Max {
		return v.Fail(StringLengthTooLong,
			fmt.Sprintf("The input is more than %d characters long", v.Max),
			"validation.max_length", map[string]any{"max": v.Max})
	}
	return true
}
