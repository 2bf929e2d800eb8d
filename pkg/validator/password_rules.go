package validator

// PasswordLowercase requires at least one ASCII lowercase letter.
func PasswordLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return containsFunc(value, isASCIILower)
		},
		Error: ValidationError{
			Field:          field,
			Code:           "lowercase",
			Message:        "must contain at least one lowercase letter",
			TranslationKey: "validation.password_lowercase",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// PasswordUppercase requires at least one ASCII uppercase letter.
func PasswordUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return containsFunc(value, isASCIIUpper)
		},
		Error: ValidationError{
			Field:          field,
			Code:           "uppercase",
			Message:        "must contain at least one uppercase letter",
			TranslationKey: "validation.password_uppercase",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// PasswordDigit requires at least one ASCII digit.
func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return containsFunc(value, isASCIIDigit)
		},
		Error: ValidationError{
			Field:          field,
			Code:           "digit",
			Message:        "must contain at least one digit",
			TranslationKey: "validation.password_digit",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// PasswordSpecialChar requires at least one rune from PasswordSymbols.
func PasswordSpecialChar(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return containsFunc(value, IsPasswordSymbol)
		},
		Error: ValidationError{
			Field:          field,
			Code:           "symbol",
			Message:        "must contain at least one special character",
			TranslationKey: "validation.password_special",
			TranslationValues: map[string]any{
				"field":   field,
				"symbols": PasswordSymbols,
			},
		},
	}
}

// NoAccentedChars rejects values containing accented vowels, ç or ñ.
func NoAccentedChars(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !HasAccentedLetter(value)
		},
		Error: ValidationError{
			Field:          field,
			Code:           "accented",
			Message:        "must not contain accented characters",
			TranslationKey: "validation.no_accents",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }
