// Package form is the formatting and validation engine behind the Brazilian
// personal-data form.
//
// It knows six fields (see Field): full name, postal code (CEP), taxpayer
// number (CPF), phone, email and password. For each field it offers two pure
// operations:
//
//   - Format turns raw keystrokes into the canonical masked text, for example
//     "11144477735" into "111.444.777-35". It is total and idempotent.
//   - Validate decides whether a completed value is acceptable and, when it
//     is not, reports one precise reason. Rules run in a fixed priority order,
//     so a password missing both an uppercase letter and a digit always reports
//     the uppercase letter first.
//
// ValidateAll checks a whole submission and returns a Report; the submission
// succeeds only when every field is valid.
//
// # Usage
//
//	masked := form.Format(form.TaxID, "11144477735")
//	if res := form.Validate(form.TaxID, masked); !res.OK() {
//	    fmt.Println(res.Code(), res.Reason())
//	}
//
//	report := form.ValidateAll(form.Values{
//	    form.FullName: "Maria da Silva",
//	    form.TaxID:    masked,
//	    // ...
//	})
//	if err := report.Err(); err != nil {
//	    // err is a validator.ValidationErrors in form order
//	}
//
// # Reasons and translation
//
// A failing Result carries a stable Code ("checksum", "uppercase", ...), an
// English Reason and the translation key form.<field>.<code>. The embedded
// Locales catalogs provide English and Portuguese texts for every key and are
// loaded with i18n.NewEmbeddedFsAdapter; Result.Localize renders a reason in
// the requested language.
//
// Nothing in this package performs I/O or keeps state, so every function is
// safe for concurrent use.
package form
