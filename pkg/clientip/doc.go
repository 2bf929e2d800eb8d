// Package clientip resolves the client address of an HTTP request, for use
// as a rate-limit key. Forwarding headers are honoured only behind a trusted
// proxy.
package clientip
