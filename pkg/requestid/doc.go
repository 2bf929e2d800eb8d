// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware keeps a client-supplied X-Request-ID when it is 1-128 characters
// of letters, digits, underscores or hyphens; otherwise it generates a UUIDv4
// with github.com/google/uuid. The ID is stored in the request context, echoed
// in the response header and, through LoggerExtractor, added to every log
// record written with that context:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
