// Package sanitizer provides small, pure helpers for cleaning user input and
// for applying the Brazilian display masks used by personal-data forms.
//
// The helpers fall into two groups:
//
//   - Strings – trimming and rune filtering (Trim, KeepDigits, KeepRunes).
//
//   - Format – incremental masks for postal codes (CEP), taxpayer numbers (CPF)
//     and phone numbers. Every mask first strips all non-digits and then
//     re-derives the separators, so masking an already-masked value returns it
//     unchanged and a partially typed value yields the partial mask.
//
// # Usage
//
//	import "github.com/dmitrymomot/brform/pkg/sanitizer"
//
//	sanitizer.MaskCEP("01310100")       // "01310-100"
//	sanitizer.MaskPhoneBR("11987654321") // "(11) 98765-4321"
//
// # Error handling
//
// None of the helpers returns an error. Malformed or empty input always yields a
// best-effort string, possibly empty.
//
// # Performance
//
// Digit extraction and masking work on ASCII bytes without regular
// expressions. There is no global state, so the helpers are safe for
// concurrent use.
package sanitizer
