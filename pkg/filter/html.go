package filter

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy

	ugcPolicyOnce sync.Once
	ugcPolicy     *bluemonday.Policy
)

// StripTags removes every HTML element and returns plain text.
func StripTags() Filter {
	return String(func(s string) string {
		strictPolicyOnce.Do(func() {
			strictPolicy = bluemonday.StrictPolicy()
		})
		return html.UnescapeString(strictPolicy.Sanitize(s))
	})
}

// SanitizeHTML keeps user-generated-content markup and drops anything unsafe.
func SanitizeHTML() Filter {
	return String(func(s string) string {
		ugcPolicyOnce.Do(func() {
			ugcPolicy = bluemonday.UGCPolicy()
		})
		return ugcPolicy.Sanitize(s)
	})
}
