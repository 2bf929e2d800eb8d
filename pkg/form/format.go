package form

import (
	"github.com/dmitrymomot/brform/pkg/sanitizer"
	"github.com/dmitrymomot/brform/pkg/validator"
)

// Format returns the canonical display form of raw for field. It never fails:
// partial input yields a partial mask, and formatting is idempotent.
//
//	Format(TaxID, "11144477735")    // "111.444.777-35"
//	Format(PostalCode, "01310100")  // "01310-100"
//	Format(Phone, "11987654321")    // "(11) 98765-4321"
//	Format(FullName, "Ana 2 Lú")    // "Ana  Lú"
//
// Email and Password values are returned unchanged.
func Format(field Field, raw string) string {
	switch field {
	case FullName:
		return sanitizer.KeepRunes(raw, validator.IsNameRune)
	case PostalCode:
		return sanitizer.MaskCEP(raw)
	case TaxID:
		return sanitizer.MaskCPF(raw)
	case Phone:
		return sanitizer.MaskPhoneBR(raw)
	case Email, Password:
		return raw
	default:
		return raw
	}
}

// FormatAll formats every value, keeping the keys of values.
func FormatAll(values Values) Values {
	out := make(Values, len(values))
	for f, v := range values {
		out[f] = Format(f, v)
	}
	return out
}
