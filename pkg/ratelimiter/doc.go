// Package ratelimiter implements a token bucket limiter with pluggable
// storage and an HTTP middleware.
//
// Each key owns a bucket holding up to Capacity tokens; RefillRate tokens
// are added every RefillInterval. A request consumes one token and is
// denied once the bucket is empty.
//
//	limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     10,
//		RefillInterval: time.Minute,
//	})
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP, onLimit)).Post("/translate", h)
//
// MemoryStore keeps buckets per process. RedisStore shares them between
// replicas with an atomic Lua script.
//
// Denied requests get X-RateLimit-* and Retry-After headers before onLimit
// writes the body.
package ratelimiter
