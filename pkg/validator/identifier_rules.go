package validator

import (
	"encoding/base64"
	"regexp"
	"strings"
)

const (
	SlugInvalid = "slugInvalid"
	SlugNotSlug = "notSlug"

	HostnameInvalid    = "hostnameInvalid"
	HostnameNotDomain  = "hostnameNotDomain"
	HostnameTooLong    = "hostnameTooLong"
	HostnameInvalidTLD = "hostnameInvalidTld"

	HexInvalid = "hexInvalid"
	HexNotHex  = "notHex"

	Base64Invalid   = "base64Invalid"
	Base64Malformed = "notBase64"

	CreditCardInvalid  = "creditcardInvalid"
	CreditCardLength   = "creditcardLength"
	CreditCardChecksum = "creditcardChecksum"
)

var (
	slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	hexRegex  = regexp.MustCompile(`^[0-9A-Fa-f]+$`)
)

// Slug accepts lowercase letters and digits separated by single hyphens.
type Slug struct {
	Base
}

func NewSlug() *Slug {
	return &Slug{}
}

func (v *Slug) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	s, ok := value.(string)
	if !ok {
		return v.Fail(SlugInvalid, "Invalid type given. String expected", "validation.slug_invalid", nil)
	}
	if !slugRegex.MatchString(s) {
		return v.Fail(SlugNotSlug,
			"The input must contain only lowercase letters, digits and single hyphens",
			"validation.slug", nil)
	}
	return true
}

// Hostname accepts dotted domain names whose last label is alphabetic.
type Hostname struct {
	Base
}

func NewHostname() *Hostname {
	return &Hostname{}
}

func (v *Hostname) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	s, ok := value.(string)
	if !ok {
		return v.Fail(HostnameInvalid, "Invalid type given. String expected", "validation.hostname_invalid", nil)
	}
	if len(s) > 253 {
		return v.Fail(HostnameTooLong, "The input exceeds the allowed length", "validation.hostname_length",
			map[string]any{"max": 253})
	}

	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return v.Fail(HostnameNotDomain, "The input is not a valid domain name", "validation.hostname", nil)
	}
	for _, label := range labels {
		if !validLabel(label) {
			return v.Fail(HostnameNotDomain, "The input is not a valid domain name", "validation.hostname", nil)
		}
	}

	tld := labels[len(labels)-1]
	if len(tld) < 2 || strings.IndexFunc(tld, func(r rune) bool { return !isASCIILetter(r) }) >= 0 {
		return v.Fail(HostnameInvalidTLD, "The input does not end with a valid top-level domain",
			"validation.hostname_tld", nil)
	}
	return true
}

func validLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for _, r := range label {
		if !isASCIILetter(r) && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Hex accepts hexadecimal strings. Length, when positive, requires an exact length.
type Hex struct {
	Base
	Length int
}

func NewHex(length int) *Hex {
	return &Hex{Length: length}
}

func (v *Hex) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	s, ok := value.(string)
	if !ok {
		return v.Fail(HexInvalid, "Invalid type given. String expected", "validation.hex_invalid", nil)
	}
	if !hexRegex.MatchString(s) || (v.Length > 0 && len(s) != v.Length) {
		return v.Fail(HexNotHex, "The input contains non-hexadecimal characters", "validation.hex",
			map[string]any{"length": v.Length})
	}
	return true
}

// Base64 accepts padded standard base64.
type Base64 struct {
	Base
}

func NewBase64() *Base64 {
	return &Base64{}
}

func (v *Base64) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	s, ok := value.(string)
	if !ok {
		return v.Fail(Base64Invalid, "Invalid type given. String expected", "validation.base64_invalid", nil)
	}
	if _, err := base64.StdEncoding.DecodeString(s); err != nil || s == "" {
		return v.Fail(Base64Malformed, "The input is not valid base64", "validation.base64", nil)
	}
	return true
}

// CreditCard accepts 13 to 19 digit card numbers passing the Luhn check.
// Spaces and dashes are ignored.
type CreditCard struct {
	Base
}

func NewCreditCard() *CreditCard {
	return &CreditCard{}
}

func (v *CreditCard) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	s, ok := value.(string)
	if !ok {
		return v.Fail(CreditCardInvalid, "Invalid type given. String expected", "validation.credit_card_invalid", nil)
	}
	digits := strings.NewReplacer(" ", "", "-", "").Replace(s)
	if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return v.Fail(CreditCardInvalid, "The input must contain only digits", "validation.credit_card_invalid", nil)
	}
	if len(digits) < 13 || len(digits) > 19 {
		return v.Fail(CreditCardLength, "The input contains an invalid amount of digits",
			"validation.credit_card_length", map[string]any{"min": 13, "max": 19})
	}
	if !luhn(digits) {
		return v.Fail(CreditCardChecksum, "The input seems to contain an invalid checksum",
			"validation.credit_card", nil)
	}
	return true
}

func luhn(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
