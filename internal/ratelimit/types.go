package ratelimit

import (
	"context"
	"time"
)

// Result contains the result of a rate limit check.
type Result struct {
	// Allowed indicates whether the request is allowed.
	Allowed bool

	// Limit is the maximum number of requests allowed in the window.
	Limit int

	// Remaining is the number of requests remaining in the current window.
	Remaining int

	// ResetAt is the time when the current window ends.
	ResetAt time.Time
}

// RetryAfter returns how long to wait, as of now, before the next request
// is allowed. Returns 0 if the current request was allowed.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed || !r.ResetAt.After(now) {
		return 0
	}
	return r.ResetAt.Sub(now)
}

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	// Allow counts one request for key and reports whether it fits the
	// quota of the current window.
	Allow(ctx context.Context, key string) (Result, error)
}

// Store keeps fixed-window counters.
type Store interface {
	// IncrementAndGet atomically increments the counter for key, starting a
	// new window of the given length when none is active, and returns the
	// new count together with the time left in the window.
	IncrementAndGet(ctx context.Context, key string, window time.Duration) (count int64, ttl time.Duration, err error)
}
