package binder

import (
	"fmt"
	"net/http"
	"net/url"
)

// DefaultMaxMemory is the in-memory limit for multipart forms.
const DefaultMaxMemory = 1 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data bodies
// into struct fields tagged `form:"name"`. Untagged fields use the lowercase
// field name; `form:"-"` skips a field.
func Form() Func {
	return func(r *http.Request, v any) error {
		var values url.Values
		switch mediaType(r) {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidForm, err)
			}
			values = r.PostForm
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidForm, err)
			}
			values = url.Values(r.MultipartForm.Value)
		default:
			return ErrBinderNotApplicable
		}
		return bindToStruct(v, "form", values, ErrInvalidForm)
	}
}
