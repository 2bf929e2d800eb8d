package form

// Default English reasons, keyed by field and reason code.
// Localized variants live in locales/*.yaml under form.<field>.<code>.
var reasons = map[Field]map[string]string{
	FullName: {
		"required":      "full name is required",
		"min_words":     "enter your full name",
		"invalid_chars": "name may contain only letters, spaces, hyphens, periods and apostrophes",
	},
	PostalCode: {
		"required": "postal code is required",
		"length":   "postal code must have 8 digits",
		"repeated": "invalid postal code",
		"format":   "invalid postal code (format: 00000-000)",
	},
	TaxID: {
		"required": "CPF is required",
		"length":   "CPF must have 11 digits",
		"repeated": "invalid CPF",
		"checksum": "invalid CPF",
	},
	Phone: {
		"required": "phone is required",
		"format":   "invalid phone (e.g. 11 98765-4321)",
	},
	Email: {
		"required": "email is required",
		"format":   "invalid email",
	},
	Password: {
		"required":   "password is required",
		"min_length": "password must be at least 8 characters long",
		"lowercase":  "password must contain a lowercase letter",
		"uppercase":  "password must contain an uppercase letter",
		"digit":      "password must contain a digit",
		"symbol":     "password must contain a special character",
		"accented":   "password must not contain accented letters or ç",
	},
}

const unknownFieldReason = "unknown field"

func reasonFor(field Field, code, fallback string) string {
	if msg, ok := reasons[field][code]; ok {
		return msg
	}
	return fallback
}
