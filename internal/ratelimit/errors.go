package ratelimit

import "errors"

var (
	ErrInvalidLimit  = errors.New("invalid limit")
	ErrInvalidWindow = errors.New("invalid window")
	ErrKeyRequired   = errors.New("key is required")
	ErrStoreRequired = errors.New("store is required")

	// ErrRedisNotReady is returned when the Redis server does not answer
	// the initial ping.
	ErrRedisNotReady = errors.New("redis is not ready")
)
