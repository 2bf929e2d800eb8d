package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/brform/pkg/binder"
	"github.com/dmitrymomot/brform/pkg/logger"
	"github.com/dmitrymomot/brform/pkg/requestid"
)

// ErrorPageParams feeds the HTML error page.
type ErrorPageParams struct {
	StatusCode int
	Message    string
	RequestID  string
}

type ErrorHandlerConfig struct {
	// ErrorPage renders HTML errors. Without it plain text is written.
	ErrorPage func(ErrorPageParams) templ.Component
	// Translate localizes "errors.<key>" messages. Without it the English
	// fallback is used.
	Translate func(ctx context.Context, key, fallback string) string
	// SignalName is the DataStar signal that receives the error message. A
	// ValidationError sends its field messages instead of the generic one.
	SignalName string
}

// ErrorInfo is the client-facing view of an error.
type ErrorInfo struct {
	StatusCode int
	Key        string
	Message    string
	LogLevel   slog.Level
}

var defaultMessages = map[string]string{
	"bad_request":            "The request could not be read",
	"not_found":              "Page not found",
	"method_not_allowed":     "Method not allowed",
	"unsupported_media_type": "Unsupported request format",
	"too_many_requests":      "Too many requests, try again shortly",
	"validation_error":       "Some fields are invalid",
	"internal_error":         "An error occurred processing your request",
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{StatusCode: http.StatusInternalServerError, Key: "internal_error"}

	var httpErr HTTPError
	var valErr ValidationError
	switch {
	case errors.As(err, &valErr):
		info.StatusCode, info.Key = http.StatusUnprocessableEntity, "validation_error"
	case errors.As(err, &httpErr):
		info.StatusCode, info.Key = httpErr.Code, httpErr.Key
	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidSignals),
		errors.Is(err, binder.ErrInvalidTarget):
		info.StatusCode, info.Key = http.StatusBadRequest, "bad_request"
	}

	info.Message = defaultMessages[info.Key]
	if info.Message == "" {
		info.Message = http.StatusText(info.StatusCode)
	}
	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler logs the error and answers in the client's format: DataStar
// signal patch, JSON envelope, HTML page or plain text.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}
	if cfg.SignalName == "" {
		cfg.SignalName = "error"
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err)
		if cfg.Translate != nil {
			info.Message = cfg.Translate(r.Context(), "errors."+info.Key, info.Message)
		}

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Component("error_handler"),
			logger.Error(err),
			logger.Status(info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		var renderErr error
		switch {
		case IsDataStar(r):
			msg := info.Message
			var valErr ValidationError
			if errors.As(err, &valErr) && !valErr.IsEmpty() {
				msg = strings.Join(valErr.Messages(), "; ")
			}
			renderErr = Signals(map[string]any{cfg.SignalName: msg}).Render(ctx.ResponseWriter(), r)
		case WantsJSON(r):
			var valErr ValidationError
			if errors.As(err, &valErr) {
				renderErr = JSONError(valErr).Render(ctx.ResponseWriter(), r)
				break
			}
			renderErr = jsonResponse{
				status: info.StatusCode,
				body:   JSONResponse{Error: &ErrorDetail{Code: info.Key, Message: info.Message}},
			}.Render(ctx.ResponseWriter(), r)
		case cfg.ErrorPage != nil:
			page := cfg.ErrorPage(ErrorPageParams{
				StatusCode: info.StatusCode,
				Message:    info.Message,
				RequestID:  requestid.FromContext(r.Context()),
			})
			renderErr = TemplWithStatus(info.StatusCode, page).Render(ctx.ResponseWriter(), r)
		default:
			http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
		}
		if renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Component("error_handler"),
				logger.Error(renderErr),
			)
		}
	}
}
