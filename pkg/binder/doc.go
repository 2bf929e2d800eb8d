// Package binder fills request structs from HTTP payloads.
//
// Each binder is a Func that either binds the request or returns
// ErrBinderNotApplicable when the payload is not its kind, so several binders
// can be offered for one endpoint and the first applicable one wins:
//
//   - Signals: DataStar backend actions (Datastar-Request: true), decoded with
//     datastar.ReadSignals
//   - JSON: application/json bodies, strict decoding, 1 MiB limit
//   - Form: urlencoded and multipart forms via `form:"name"` tags
//
// Binders never trim or rewrite string values.
package binder
