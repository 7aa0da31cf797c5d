// Package ratelimit limits authentication attempts with a fixed-window
// counter per key (the client address).
//
// Counters live in a [Store]: [MemoryStore] keeps them in process,
// [RedisStore] shares them between server replicas.
package ratelimit
