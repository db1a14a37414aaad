package filter

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var normForms = map[string]norm.Form{
	"NFC":  norm.NFC,
	"NFD":  norm.NFD,
	"NFKC": norm.NFKC,
	"NFKD": norm.NFKD,
}

// NormalizeUnicode converts strings to the given normalization form (NFC by default).
func NormalizeUnicode(form string) (Filter, error) {
	if form == "" {
		form = "NFC"
	}
	f, ok := normForms[strings.ToUpper(form)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown normalization form %q", ErrInvalidConfig, form)
	}
	return String(f.String), nil
}

// TitleCase title-cases words using the rules of locale (language neutral when empty).
func TitleCase(locale string) (Filter, error) {
	tag := language.Und
	if locale != "" {
		var err error
		tag, err = language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("%w: locale %q: %w", ErrInvalidConfig, locale, err)
		}
	}
	return String(func(s string) string {
		return cases.Title(tag).String(s)
	}), nil
}
