// Package personaldata is the web front of the form engine in pkg/form.
//
// Service.Handle mounts:
//
//	GET  /                  the form page
//	POST /format            {field, value} -> formatted value (keystroke)
//	POST /format/{field}    same, DataStar signals
//	POST /validate          {field, value} -> valid, code, localized reason (blur)
//	POST /validate/{field}  same, DataStar signals
//	POST /submit            all six fields -> ValidateAll
//
// Every endpoint answers DataStar actions with signal patches, JSON clients
// with the handler envelope and plain form posts with the re-rendered page.
// Reasons are localized in the language negotiated by i18n.Middleware. Only
// field names and reason codes are logged, never values. Nothing is persisted
// or forwarded.
package personaldata
