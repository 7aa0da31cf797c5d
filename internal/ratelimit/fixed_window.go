package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/cpoint/internal/config"
)

// FixedWindow allows at most limit requests per key in each window. The
// window starts with the first request for the key.
type FixedWindow struct {
	store  Store
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewFixedWindow builds a [FixedWindow] limiter over store using the
// quota and window of cfg.
func NewFixedWindow(store Store, cfg config.RateLimit) (*FixedWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if cfg.Requests <= 0 {
		return nil, ErrInvalidLimit
	}
	if cfg.Window <= 0 {
		return nil, ErrInvalidWindow
	}

	return &FixedWindow{
		store:  store,
		limit:  cfg.Requests,
		window: cfg.Window,
		now:    time.Now,
	}, nil
}

// Allow implements [Limiter].
func (l *FixedWindow) Allow(ctx context.Context, key string) (Result, error) {
	if key == "" {
		return Result{}, ErrKeyRequired
	}

	count, ttl, err := l.store.IncrementAndGet(ctx, key, l.window)
	if err != nil {
		return Result{}, fmt.Errorf("error incrementing rate limit counter: %w", err)
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   count <= int64(l.limit),
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   l.now().Add(ttl),
	}, nil
}
