package sanitizer

// Digit counts of complete Brazilian document numbers.
const (
	CEPDigits   = 8
	CPFDigits   = 11
	PhoneDigits = 11
)

// digitsUpTo extracts ASCII digits and drops everything past max.
func digitsUpTo(s string, max int) string {
	d := KeepDigits(s)
	if len(d) > max {
		return d[:max]
	}
	return d
}

// MaskCEP formats a postal code as 00000-000.
// Up to five digits are returned as typed; digits past the eighth are dropped.
func MaskCEP(s string) string {
	d := digitsUpTo(s, CEPDigits)
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// MaskCPF formats a taxpayer number as 000.000.000-00, growing the mask as
// digits accumulate: "111", "111.4", "111.444.7", "111.444.777-3".
func MaskCPF(s string) string {
	d := digitsUpTo(s, CPFDigits)
	switch n := len(d); {
	case n <= 3:
		return d
	case n <= 6:
		return d[:3] + "." + d[3:]
	case n <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

// MaskPhoneBR formats a phone number with a two-digit area code.
//
//	"11"          -> "11"
//	"119876"      -> "(11) 9876"
//	"1187654321"  -> "(11) 8765-4321"
//	"11987654321" -> "(11) 98765-4321"
func MaskPhoneBR(s string) string {
	d := digitsUpTo(s, PhoneDigits)
	switch n := len(d); {
	case n <= 2:
		return d
	case n <= 7:
		return "(" + d[:2] + ") " + d[2:]
	case n <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}
