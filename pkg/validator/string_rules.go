package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Code:           "required",
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NotEmpty validates that a string has at least one byte. Whitespace counts as content.
func NotEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:          field,
			Code:           "required",
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinRunes validates the length in characters rather than bytes,
// so "ação" counts as four.
func MinRunes(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Code:           "min_length",
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MinWords validates that value has at least min whitespace-separated words.
func MinWords(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(strings.Fields(value)) >= min
		},
		Error: ValidationError{
			Field:          field,
			Code:           "min_words",
			Message:        fmt.Sprintf("must contain at least %d words", min),
			TranslationKey: "validation.min_words",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// OnlyRunes validates that every character of value satisfies allowed.
// Invalid UTF-8 always fails.
func OnlyRunes(field, value string, allowed func(rune) bool) Rule {
	return Rule{
		Check: func() bool {
			if !utf8.ValidString(value) {
				return false
			}
			for _, r := range value {
				if !allowed(r) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Code:           "invalid_chars",
			Message:        "contains invalid characters",
			TranslationKey: "validation.invalid_chars",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
