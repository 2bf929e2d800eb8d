package ratelimiter

import (
	"net/http"
	"strconv"
)

// KeyFunc derives the bucket key of a request. Requests with an empty key are
// not limited.
type KeyFunc func(r *http.Request) string

// Middleware consumes one token per request. Rejected requests get the
// rate-limit headers and are served by onLimit; a nil onLimit writes a plain
// 429.
func Middleware(b *Bucket, key KeyFunc, onLimit http.Handler) func(http.Handler) http.Handler {
	if onLimit == nil {
		onLimit = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		})
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := b.Allow(r.Context(), k)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			if !res.Allowed() {
				w.Header().Set("Retry-After", strconv.Itoa(max(1, int(res.RetryAfter().Seconds()))))
				onLimit.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
