package validator

import "reflect"

const (
	IdenticalNotSame      = "notSame"
	IdenticalMissingToken = "missingToken"
)

// Identical compares the value with a sibling field taken from the validation
// context (Token, dotted paths allowed) or with a fixed Literal when Token is empty.
type Identical struct {
	Base
	Token   string
	Literal any
	Strict  bool
}

// NewIdentical compares against the context field named token.
func NewIdentical(token string, strict bool) *Identical {
	return &Identical{Token: token, Strict: strict}
}

// NewIdenticalLiteral compares against a fixed value.
func NewIdenticalLiteral(literal any, strict bool) *Identical {
	return &Identical{Literal: literal, Strict: strict}
}

func (v *Identical) IsValid(value any, context map[string]any) bool {
	v.Reset()

	expected := v.Literal
	if v.Token != "" {
		var ok bool
		expected, ok = lookupPath(context, v.Token)
		if !ok {
			return v.Fail(IdenticalMissingToken, "No token was provided to match against", "validation.token_missing",
				map[string]any{"token": v.Token})
		}
	}

	same := reflect.DeepEqual(expected, value)
	if !same && !v.Strict {
		same = looseEqual(expected, value)
	}
	if !same {
		return v.Fail(IdenticalNotSame, "The two given tokens do not match", "validation.same",
			map[string]any{"token": v.Token})
	}
	return true
}
