// Package ratelimiter throttles requests with a token bucket.
//
// A Bucket holds Capacity tokens and gains RefillRate tokens every
// RefillInterval; each request consumes one. MemoryStore keeps buckets in
// process memory and evicts idle ones. Middleware applies a Bucket to an
// http.Handler, keyed per request (typically by client IP):
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
//	r.Use(ratelimiter.Middleware(bucket, clientip.KeyFunc(false), nil))
package ratelimiter
