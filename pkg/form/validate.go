package form

import (
	"maps"

	"github.com/dmitrymomot/brform/pkg/sanitizer"
	"github.com/dmitrymomot/brform/pkg/validator"
)

const (
	minNameWords      = 2
	minPasswordLength = 8
)

// Validate decides whether a completed value is acceptable for field.
// Rules run in a fixed order and the first failing rule determines the reason.
func Validate(field Field, value string) Result {
	name := field.String()

	var verr *validator.ValidationError
	switch field {
	case FullName:
		verr = validator.First(
			validator.RequiredString(name, value),
			validator.MinWords(name, value, minNameWords),
			validator.OnlyRunes(name, value, validator.IsNameRune),
		)
	case PostalCode:
		digits := sanitizer.KeepDigits(value)
		verr = validator.First(
			validator.RequiredString(name, digits),
			validator.ExactDigits(name, digits, sanitizer.CEPDigits),
			validator.NotRepeatedDigits(name, digits),
			validator.CEPShape(name, value),
		)
	case TaxID:
		digits := sanitizer.KeepDigits(value)
		verr = validator.First(
			validator.RequiredString(name, digits),
			validator.ExactDigits(name, digits, sanitizer.CPFDigits),
			validator.NotRepeatedDigits(name, digits),
			validator.CPFCheckDigits(name, digits),
		)
	case Phone:
		verr = validator.First(
			validator.NotEmpty(name, value),
			validator.BRPhone(name, value),
		)
	case Email:
		verr = validator.First(
			validator.NotEmpty(name, value),
			validator.EmailShape(name, value),
		)
	case Password:
		verr = validator.First(
			validator.NotEmpty(name, value),
			validator.MinRunes(name, value, minPasswordLength),
			validator.PasswordLowercase(name, value),
			validator.PasswordUppercase(name, value),
			validator.PasswordDigit(name, value),
			validator.PasswordSpecialChar(name, value),
			validator.NoAccentedChars(name, value),
		)
	default:
		return invalid(validator.ValidationError{
			Field:          name,
			Code:           "unknown_field",
			Message:        unknownFieldReason,
			TranslationKey: "form.unknown_field",
			TranslationValues: map[string]any{
				"field": name,
			},
		})
	}

	if verr == nil {
		return Valid()
	}
	return reject(field, *verr)
}

// reject rewrites a generic rule failure into a field-specific one.
func reject(field Field, verr validator.ValidationError) Result {
	values := maps.Clone(verr.TranslationValues)
	if values == nil {
		values = make(map[string]any, 1)
	}
	values["field"] = field.String()

	return invalid(validator.ValidationError{
		Field:             field.String(),
		Code:              verr.Code,
		Message:           reasonFor(field, verr.Code, verr.Message),
		TranslationKey:    "form." + field.String() + "." + verr.Code,
		TranslationValues: values,
	})
}
