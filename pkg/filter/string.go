package filter

import (
	"strings"
	"unicode"
)

// StringTrim trims whitespace, or the characters in charlist when it is not empty.
func StringTrim(charlist string) Filter {
	if charlist == "" {
		return String(strings.TrimSpace)
	}
	return String(func(s string) string {
		return strings.Trim(s, charlist)
	})
}

func StringToLower() Filter {
	return String(strings.ToLower)
}

func StringToUpper() Filter {
	return String(strings.ToUpper)
}

// Digits keeps only decimal digits. Integers pass through.
func Digits() Filter {
	return String(func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsDigit(r) {
				return r
			}
			return -1
		}, s)
	})
}

// Alpha keeps letters, and whitespace when allowWhiteSpace is set.
func Alpha(allowWhiteSpace bool) Filter {
	return String(func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || (allowWhiteSpace && unicode.IsSpace(r)) {
				return r
			}
			return -1
		}, s)
	})
}

// Alnum keeps letters and digits, and whitespace when allowWhiteSpace is set.
func Alnum(allowWhiteSpace bool) Filter {
	return String(func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || (allowWhiteSpace && unicode.IsSpace(r)) {
				return r
			}
			return -1
		}, s)
	})
}

// NormalizeWhitespace collapses runs of whitespace into one space and trims.
func NormalizeWhitespace() Filter {
	return String(func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	})
}

// StripNewlines removes line breaks.
func StripNewlines() Filter {
	return String(func(s string) string {
		return strings.NewReplacer("\r\n", "", "\n", "", "\r", "").Replace(s)
	})
}

// RemoveControlChars drops control characters except tab and line breaks.
func RemoveControlChars() Filter {
	return String(func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
				return -1
			}
			return r
		}, s)
	})
}

// Callback adapts a function into a Filter.
func Callback(fn func(value any) any) Filter {
	return Func(fn)
}
