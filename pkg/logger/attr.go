package logger

import (
	"log/slog"
	"strings"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// Empty IDs produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a form field name under the key "field". Never pass the value.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Reason records a validation reason code under the key "reason".
func Reason(code string) slog.Attr {
	return slog.String("reason", code)
}

// InvalidFields records failing field names as a comma separated list.
func InvalidFields(names []string) slog.Attr {
	return slog.String("invalid_fields", strings.Join(names, ","))
}

// Language records the negotiated request language under the key "lang".
func Language(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Status records an HTTP status code under the key "status".
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}
