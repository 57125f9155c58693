package ratelimiter

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/namanchhaparia06/agreement/pkg/clientip"
)

// Limiter is satisfied by *Bucket.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// KeyFunc picks the bucket for a request. An empty key skips limiting.
type KeyFunc func(r *http.Request) string

// ByClientIP keys requests by the address stored by clientip.Middleware,
// resolving it from the request when the middleware did not run.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.FromRequest(r)
}

// DeniedFunc writes the response for a denied request or a store failure.
// err is nil for plain denials.
type DeniedFunc func(w http.ResponseWriter, r *http.Request, res Result, err error)

// Middleware consumes one token per request. A nil onDenied answers with a
// plain 429 or 500.
func Middleware(l Limiter, key KeyFunc, onDenied DeniedFunc) func(http.Handler) http.Handler {
	if onDenied == nil {
		onDenied = func(w http.ResponseWriter, _ *http.Request, _ Result, err error) {
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := l.Allow(r.Context(), k)
			if err != nil {
				onDenied(w, r, res, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				if wait := res.RetryAfter(); wait > 0 {
					secs := (wait + time.Second - 1) / time.Second
					h.Set("Retry-After", strconv.FormatInt(int64(secs), 10))
				}
				onDenied(w, r, res, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
