package binder

import (
	"mime"
	"net/http"
	"strings"
)

// Func binds request data into v, which must be a pointer.
type Func func(r *http.Request, v any) error

// DataStarHeader is set by the DataStar client on every backend action.
const DataStarHeader = "Datastar-Request"

// IsDataStar reports whether the request was issued by the DataStar client.
func IsDataStar(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(DataStarHeader), "true")
}

// mediaType returns the lowercase media type of the Content-Type header
// without parameters, or "" when it is missing or malformed.
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return strings.ToLower(mt)
}
