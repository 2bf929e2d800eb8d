package validator

import (
	"regexp"
	"strings"
	"unicode"
)

// phoneBRRegex accepts an optional area code, with or without parentheses,
// followed by a 4-5 digit prefix and a 4 digit suffix. The separator after the
// area code may be any Unicode space, including NBSP and line separators.
var phoneBRRegex = regexp.MustCompile(`^(\(?\d{2}\)?[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]?)?(\d{4,5}[-.]?\d{4})$`)

// BRPhone validates Brazilian phone shapes such as "(11) 98765-4321",
// "11 8765.4321" or "987654321".
func BRPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phoneBRRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Code:           "format",
			Message:        "invalid phone number (e.g. 11 98765-4321)",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field":   field,
				"example": "11 98765-4321",
			},
		},
	}
}

// EmailShape validates the local@domain.tld shape: exactly one "@", a non-empty
// local part, a domain with a dot that is neither first nor last, no whitespace.
// It does not check deliverability.
func EmailShape(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailShape(value)
		},
		Error: ValidationError{
			Field:          field,
			Code:           "format",
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func emailShape(s string) bool {
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}
	if len(domain) < 3 {
		return false
	}
	return strings.Contains(domain[1:len(domain)-1], ".")
}
