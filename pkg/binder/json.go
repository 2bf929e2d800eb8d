package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize limits JSON request bodies.
const DefaultMaxJSONSize = 1 << 20

// JSON binds an application/json body with unknown fields rejected. String
// values are left untouched: the form engine decides what to strip.
func JSON() Func {
	return func(r *http.Request, v any) error {
		if mediaType(r) != "application/json" || IsDataStar(r) {
			return ErrBinderNotApplicable
		}
		return decodeJSON(r.Body, v, ErrInvalidJSON)
	}
}

func decodeJSON(body io.Reader, v any, bindErr error) error {
	if body == nil {
		return fmt.Errorf("%w: empty body", bindErr)
	}
	data, err := io.ReadAll(io.LimitReader(body, DefaultMaxJSONSize+1))
	if err != nil {
		return fmt.Errorf("%w: read body: %w", bindErr, err)
	}
	if len(data) > DefaultMaxJSONSize {
		return fmt.Errorf("%w: body exceeds %d bytes", bindErr, DefaultMaxJSONSize)
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: empty body", bindErr)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", bindErr, err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", bindErr)
	}
	return nil
}
