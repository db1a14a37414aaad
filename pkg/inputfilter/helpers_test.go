package inputfilter_test

import (
	"github.com/dmitrymomot/inputfilter/pkg/validator"
)

// spyValidator records the values it was called with.
type spyValidator struct {
	validator.Base
	valid bool
	seen  []any
	ctx   map[string]any
}

func (v *spyValidator) IsValid(value any, context map[string]any) bool {
	v.Reset()
	v.seen = append(v.seen, value)
	v.ctx = context
	if !v.valid {
		return v.Fail("spy", "spy failed", "validation.spy", nil)
	}
	return true
}

func (v *spyValidator) calls() int { return len(v.seen) }
