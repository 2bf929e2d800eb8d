package form

import "github.com/dmitrymomot/brform/pkg/validator"

// Values holds the raw or formatted text of each field.
type Values map[Field]string

// Report maps every field to its validation result.
type Report map[Field]Result

// ValidateAll validates all six fields. A field missing from values is
// validated as the empty string.
func ValidateAll(values Values) Report {
	report := make(Report, fieldCount)
	for _, f := range Fields() {
		report[f] = Validate(f, values[f])
	}
	return report
}

// OK reports whether every field in the report is valid.
func (r Report) OK() bool {
	for _, res := range r {
		if !res.OK() {
			return false
		}
	}
	return true
}

// Invalid returns the failing fields in form order.
func (r Report) Invalid() []Field {
	var fields []Field
	for _, f := range Fields() {
		if res, ok := r[f]; ok && !res.OK() {
			fields = append(fields, f)
		}
	}
	return fields
}

// Err returns the failures as validator.ValidationErrors in form order,
// or nil when the report is OK.
func (r Report) Err() error {
	var errs validator.ValidationErrors
	for _, f := range r.Invalid() {
		errs.Add(*r[f].violation)
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Localize renders the reason of every failing field in lang.
func (r Report) Localize(tr Translator, lang string) map[Field]string {
	out := make(map[Field]string)
	for _, f := range r.Invalid() {
		out[f] = r[f].Localize(tr, lang)
	}
	return out
}
