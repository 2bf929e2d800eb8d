package form

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/brform/pkg/validator"
)

// Translator renders a translation key, falling back to defaultValue.
// *i18n.Translator satisfies it.
type Translator interface {
	Td(lang, key, defaultValue string, args ...string) string
}

// Result is the outcome of validating one field: valid, or invalid with a
// non-empty reason. The zero value is valid.
type Result struct {
	violation *validator.ValidationError
}

// Valid returns a passing Result.
func Valid() Result {
	return Result{}
}

func invalid(v validator.ValidationError) Result {
	return Result{violation: &v}
}

// OK reports whether the value passed validation.
func (r Result) OK() bool {
	return r.violation == nil
}

// Reason returns the default English reason, or "" for a valid result.
func (r Result) Reason() string {
	if r.violation == nil {
		return ""
	}
	return r.violation.Message
}

// Code returns the machine-readable reason code, or "" for a valid result.
func (r Result) Code() string {
	if r.violation == nil {
		return ""
	}
	return r.violation.Code
}

// Violation returns a copy of the underlying validation error, or nil.
func (r Result) Violation() *validator.ValidationError {
	if r.violation == nil {
		return nil
	}
	v := *r.violation
	v.TranslationValues = maps.Clone(r.violation.TranslationValues)
	return &v
}

// Localize renders the reason in lang, falling back to the English reason
// when the catalog lacks the key. It returns "" for a valid result.
func (r Result) Localize(tr Translator, lang string) string {
	if r.violation == nil {
		return ""
	}
	if tr == nil {
		return r.violation.Message
	}
	return tr.Td(lang, r.violation.TranslationKey, r.violation.Message, translationArgs(r.violation.TranslationValues)...)
}

// translationArgs flattens values into sorted key, value pairs.
func translationArgs(values map[string]any) []string {
	keys := slices.Sorted(maps.Keys(values))
	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(values[k]))
	}
	return args
}
