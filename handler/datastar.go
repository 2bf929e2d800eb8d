package handler

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/brform/pkg/binder"
)

// IsDataStar reports whether the request came from the DataStar client and
// expects an SSE response. It is the same test the binders use, so a request
// is bound and answered as DataStar or not at all.
func IsDataStar(r *http.Request) bool {
	return binder.IsDataStar(r)
}

// WantsJSON reports whether the client negotiates a JSON response.
func WantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
