// Package validator provides small declarative validation rules and the helpers
// that evaluate them.
//
// A Rule pairs a boolean Check with the ValidationError to report when the check
// fails. Every exported rule constructor only builds a Rule; nothing is evaluated
// until Apply or First runs it, and there is no package state, so rules are safe
// to build and evaluate from any goroutine.
//
// # Evaluation
//
// Apply runs every rule and aggregates failures into ValidationErrors, a slice
// type implementing error:
//
//	err := validator.Apply(
//	    validator.RequiredString("name", name),
//	    validator.EmailShape("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect verrs.Fields(), verrs.Get("email") ...
//	}
//
// First runs rules in order and returns only the first failure, which suits
// fields that report one precise reason at a time:
//
//	if verr := validator.First(
//	    validator.NotEmpty("password", pw),
//	    validator.MinRunes("password", pw, 8),
//	    validator.PasswordUppercase("password", pw),
//	); verr != nil {
//	    fmt.Println(verr.Code) // "min_length"
//	}
//
// # Rule families
//
//   - strings: RequiredString, NotEmpty, MinRunes, MinWords, OnlyRunes
//   - Brazilian documents: ExactDigits, NotRepeatedDigits, CPFCheckDigits, CEPShape
//   - contact: BRPhone, EmailShape
//   - passwords: PasswordLowercase, PasswordUppercase, PasswordDigit,
//     PasswordSpecialChar, NoAccentedChars
//
// Character classes are tested with the unicode tables and NFD decomposition
// (golang.org/x/text/unicode/norm) rather than regular expression classes.
//
// # Translation
//
// Each ValidationError carries a stable Code, a default English Message, a
// TranslationKey and TranslationValues ready for pkg/i18n. Callers are free to
// rewrite the key and message to something more specific before reporting.
package validator
