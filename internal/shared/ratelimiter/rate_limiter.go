// Package ratelimiter provides an in-memory fixed-window rate limiter,
// used when Redis is unavailable.
package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Limiter restricts how often a key (typically a client IP) may perform
// an operation within a window.
type Limiter interface {
	// Allow reports whether the key may proceed, counting this attempt.
	Allow(ctx context.Context, key string) bool
}

// RateLimiter is an in-process fixed-window counter per key.
// Windows reset lazily on access; stale keys are dropped on reset.
type RateLimiter struct {
	limit  int64
	window time.Duration

	mu        sync.Mutex
	counts    map[string]int64
	windowEnd time.Time
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiter creates a new RateLimiter.
func NewRateLimiter(limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		window:    window,
		counts:    make(map[string]int64),
		windowEnd: time.Now().Add(window),
	}
}

// Allow reports whether the key is still under the limit for the current
// window, counting this attempt.
func (rl *RateLimiter) Allow(_ context.Context, key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.After(rl.windowEnd) {
		rl.counts = make(map[string]int64)
		rl.windowEnd = now.Add(rl.window)
	}

	rl.counts[key]++
	return rl.counts[key] <= rl.limit
}
