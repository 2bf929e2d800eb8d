package sanitizer

import (
	"strings"
	"unicode/utf8"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// KeepDigits drops everything except the ASCII digits 0-9.
// Other Unicode decimal digits are dropped as well, masks only understand ASCII.
func KeepDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// KeepRunes drops every rune for which keep returns false, preserving the order
// of the remaining runes. Invalid UTF-8 sequences are dropped.
func KeepRunes(s string, keep func(rune) bool) string {
	if keep == nil {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != utf8.RuneError || size > 1 {
			if keep(r) {
				b.WriteRune(r)
			}
		}
		i += size
	}
	return b.String()
}
