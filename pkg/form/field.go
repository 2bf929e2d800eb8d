package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/brform/pkg/sanitizer"
)

// ErrUnknownField is returned when a field name does not match any Field.
var ErrUnknownField = errors.New("unknown field")

// Field identifies one of the personal-data form fields.
type Field int

const (
	FullName Field = iota
	PostalCode
	TaxID
	Phone
	Email
	Password

	fieldCount
)

var fieldNames = [fieldCount]string{
	FullName:   "full_name",
	PostalCode: "postal_code",
	TaxID:      "tax_id",
	Phone:      "phone",
	Email:      "email",
	Password:   "password",
}

// Fields returns every field in form order.
func Fields() []Field {
	fields := make([]Field, 0, fieldCount)
	for f := range fieldCount {
		fields = append(fields, f)
	}
	return fields
}

// ParseField maps a wire name such as "tax_id" to its Field.
// Matching ignores case and surrounding whitespace.
func ParseField(name string) (Field, error) {
	name = strings.ToLower(sanitizer.Trim(name))
	for f, n := range fieldNames {
		if n == name {
			return Field(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// String returns the wire name of the field.
func (f Field) String() string {
	if !f.known() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// Masked reports whether Format rewrites values of this field.
func (f Field) Masked() bool {
	switch f {
	case FullName, PostalCode, TaxID, Phone:
		return true
	default:
		return false
	}
}

func (f Field) MarshalText() ([]byte, error) {
	if !f.known() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownField, int(f))
	}
	return []byte(fieldNames[f]), nil
}

func (f *Field) UnmarshalText(text []byte) error {
	parsed, err := ParseField(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f Field) known() bool {
	return f >= 0 && f < fieldCount
}
