package validator

import (
	"fmt"
	"regexp"
)

const (
	RegexInvalid  = "regexInvalid"
	RegexNotMatch = "regexNotMatch"
)

// Regex accepts strings and numbers matching Pattern.
type Regex struct {
	Base
	Pattern *regexp.Regexp
}

func NewRegex(pattern string) (*Regex, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: regex %q: %w", ErrInvalidConfig, pattern, err)
	}
	return &Regex{Pattern: re}, nil
}

func (v *Regex) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	s, ok := scalarString(value)
	if !ok {
		return v.Fail(RegexInvalid, "Invalid type given. String, integer or float expected", "validation.regex_invalid", nil)
	}
	if !v.Pattern.MatchString(s) {
		return v.Fail(RegexNotMatch,
			fmt.Sprintf("The input does not match against pattern '%s'", v.Pattern.String()),
			"validation.regex", map[string]any{"pattern": v.Pattern.String()})
	}
	return true
}
