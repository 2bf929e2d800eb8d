package validator

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// PasswordSymbols is the punctuation set accepted as a password symbol.
const PasswordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

const (
	combiningCedilla = '\u0327'
	combiningTilde   = '\u0303'
)

// IsNameRune reports whether r may appear in a person's name:
// a Latin-script letter (accented ones included), a combining mark,
// whitespace, a hyphen, a period or an apostrophe.
func IsNameRune(r rune) bool {
	switch r {
	case '-', '.', '\'':
		return true
	}
	if unicode.IsSpace(r) || unicode.Is(unicode.Mn, r) {
		return true
	}
	return unicode.IsLetter(r) && unicode.Is(unicode.Latin, r)
}

// IsPasswordSymbol reports whether r belongs to PasswordSymbols.
func IsPasswordSymbol(r rune) bool {
	return strings.ContainsRune(PasswordSymbols, r)
}

// HasAccentedLetter reports whether s contains an accented vowel, a c with
// cedilla or an n with tilde, in either case. Precomposed (é) and decomposed
// (e + U+0301) spellings are both detected.
func HasAccentedLetter(s string) bool {
	var base rune
	for _, r := range norm.NFD.String(s) {
		if !unicode.Is(unicode.Mn, r) {
			base = unicode.ToLower(r)
			continue
		}
		switch base {
		case 'a', 'e', 'i', 'o', 'u':
			return true
		case 'c':
			if r == combiningCedilla {
				return true
			}
		case 'n':
			if r == combiningTilde {
				return true
			}
		}
	}
	return false
}

func containsFunc(s string, f func(rune) bool) bool {
	return strings.IndexFunc(s, f) >= 0
}
