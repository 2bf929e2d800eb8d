package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals binds the DataStar signal store sent with a backend action. GET
// requests carry signals in the "datastar" query parameter, other methods in
// the JSON body. Unknown signals are ignored: the page owns more signals than
// any single endpoint reads.
func Signals() Func {
	return func(r *http.Request, v any) error {
		if !IsDataStar(r) {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSignals, err)
		}
		return nil
	}
}
