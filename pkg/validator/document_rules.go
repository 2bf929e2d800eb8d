package validator

import "fmt"

// ExactDigits validates that digits consists of exactly n ASCII digits.
// Callers strip separators before applying it.
func ExactDigits(field, digits string, n int) Rule {
	return Rule{
		Check: func() bool {
			return len(digits) == n && allDigits(digits)
		},
		Error: ValidationError{
			Field:          field,
			Code:           "length",
			Message:        fmt.Sprintf("must have %d digits", n),
			TranslationKey: "validation.exact_digits",
			TranslationValues: map[string]any{
				"field":  field,
				"length": n,
			},
		},
	}
}

// NotRepeatedDigits rejects sequences made of one digit repeated, such as
// 00000000 or 11111111111. Single characters and empty input pass.
func NotRepeatedDigits(field, digits string) Rule {
	return Rule{
		Check: func() bool {
			return !repeated(digits)
		},
		Error: ValidationError{
			Field:          field,
			Code:           "repeated",
			Message:        "must not be a repeated digit sequence",
			TranslationKey: "validation.repeated_digits",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// CPFCheckDigits validates both mod-11 check digits of an 11-digit CPF.
func CPFCheckDigits(field, digits string) Rule {
	return Rule{
		Check: func() bool {
			return ValidCPFDigits(digits)
		},
		Error: ValidationError{
			Field:          field,
			Code:           "checksum",
			Message:        "invalid check digits",
			TranslationKey: "validation.checksum",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// CEPShape validates the literal postal code shape 00000-000 or 00000000.
func CEPShape(field, value string) Rule {
	return Rule{
		Check: func() bool {
			switch len(value) {
			case 8:
				return allDigits(value)
			case 9:
				return value[5] == '-' && allDigits(value[:5]) && allDigits(value[6:])
			default:
				return false
			}
		},
		Error: ValidationError{
			Field:          field,
			Code:           "format",
			Message:        "must match 00000-000",
			TranslationKey: "validation.cep_format",
			TranslationValues: map[string]any{
				"field":  field,
				"format": "00000-000",
			},
		},
	}
}

// ValidCPFDigits reports whether an 11-digit string carries correct check digits.
//
// Each check digit is 11 - (weighted sum mod 11), with results above 9 mapped to 0.
// The first uses weights 10..2 over digits 0-8, the second weights 11..2 over digits 0-9.
func ValidCPFDigits(digits string) bool {
	if len(digits) != 11 || !allDigits(digits) {
		return false
	}
	return cpfCheckDigit(digits, 9) == digits[9]-'0' &&
		cpfCheckDigit(digits, 10) == digits[10]-'0'
}

func cpfCheckDigit(digits string, n int) byte {
	sum := 0
	for i := range n {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	r := 11 - sum%11
	if r > 9 {
		return 0
	}
	return byte(r)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func repeated(s string) bool {
	if len(s) < 2 {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
