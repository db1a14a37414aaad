package validator

import (
	"net/mail"
	"net/url"
	"slices"
	"strings"
)

const (
	EmailAddressInvalid       = "emailAddressInvalid"
	EmailAddressInvalidFormat = "emailAddressInvalidFormat"

	URIInvalid = "uriInvalid"
	URINotURI  = "notUri"
)

// EmailAddress accepts a single RFC 5322 address with a dotted domain.
type EmailAddress struct {
	Base
}

func NewEmailAddress() *EmailAddress {
	return &EmailAddress{}
}

func (v *EmailAddress) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	s, ok := value.(string)
	if !ok {
		return v.Fail(EmailAddressInvalid, "Invalid type given. String expected", "validation.email_invalid", nil)
	}
	if !validEmail(s) {
		return v.Fail(EmailAddressInvalidFormat, "The input is not a valid email address", "validation.email", nil)
	}
	return true
}

func validEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URI accepts absolute URLs. Schemes restricts the accepted schemes when set.
type URI struct {
	Base
	Schemes []string
}

func NewURI(schemes ...string) *URI {
	return &URI{Schemes: schemes}
}

func (v *URI) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	s, ok := value.(string)
	if !ok {
		return v.Fail(URIInvalid, "Invalid type given. String expected", "validation.uri_invalid", nil)
	}

	u, err := url.ParseRequestURI(strings.TrimSpace(s))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return v.Fail(URINotURI, "The input does not appear to be a valid Uri", "validation.url", nil)
	}
	if len(v.Schemes) > 0 && !slices.Contains(v.Schemes, strings.ToLower(u.Scheme)) {
		return v.Fail(URINotURI, "The input does not appear to be a valid Uri", "validation.url",
			map[string]any{"schemes": v.Schemes})
	}
	return true
}
