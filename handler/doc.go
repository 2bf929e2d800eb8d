// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request struct filled by the
// configured binders, and returns a Response:
//
//	func submit(ctx handler.Context, req SubmitRequest) handler.Response {
//		if err := check(req); err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(result)
//	}
//
//	r.Post("/submit", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, SubmitRequest](binder.Signals(), binder.JSON(), binder.Form()),
//		handler.WithErrorHandler[handler.Context, SubmitRequest](errorHandler),
//	))
//
// Responses cover JSON envelopes (JSON, JSONError), templ components (Templ,
// patched in place for DataStar requests) and DataStar SSE streams (SSE,
// Signals). ValidationError carries per-field messages and renders as 422
// "validation_error"; HTTPError carries a status code and translation key.
//
// NewErrorHandler logs failures with the request ID and answers in the format
// the client asked for.
package handler
