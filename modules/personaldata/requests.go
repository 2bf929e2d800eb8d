package personaldata

import "github.com/dmitrymomot/brform/pkg/form"

// FormValues carries all six fields. It is the JSON and form body of a submit
// and the shape of the DataStar signal store.
type FormValues struct {
	FullName   string `json:"full_name" form:"full_name"`
	PostalCode string `json:"postal_code" form:"postal_code"`
	TaxID      string `json:"tax_id" form:"tax_id"`
	Phone      string `json:"phone" form:"phone"`
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
}

func (v FormValues) Values() form.Values {
	return form.Values{
		form.FullName:   v.FullName,
		form.PostalCode: v.PostalCode,
		form.TaxID:      v.TaxID,
		form.Phone:      v.Phone,
		form.Email:      v.Email,
		form.Password:   v.Password,
	}
}

// Get returns the value of field, or "" for an unknown field.
func (v FormValues) Get(field form.Field) string {
	return v.Values()[field]
}

// FieldRequest addresses one field. JSON and form clients send field and
// value; DataStar clients name the field in the URL and send the signal store.
type FieldRequest struct {
	Field string `json:"field" form:"field"`
	Value string `json:"value" form:"value"`
	FormValues
}

type FormatResponse struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Error string `json:"error"`
}

type ValidateResponse struct {
	Field  string `json:"field"`
	Valid  bool   `json:"valid"`
	Code   string `json:"code,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type SubmitResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
