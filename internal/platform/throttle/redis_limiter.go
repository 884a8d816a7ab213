// Package throttle provides a Redis-backed fixed-window rate limiter for
// the credential endpoints.
package throttle

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter implements a fixed-window counter per key (INCR + EXPIRE).
// The first hit in a window sets the TTL; once the count passes the limit
// the key is denied until the window expires.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewRedisLimiter creates a new RedisLimiter.
func NewRedisLimiter(client *redis.Client, prefix string, limit int64, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, prefix: prefix, limit: limit, window: window}
}

// Allow reports whether the key may proceed, counting this attempt.
// On Redis errors the request is allowed: the throttle protects against
// brute force, it must not take the login path down with it.
func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	redisKey := fmt.Sprintf("%s:%s", l.prefix, key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return true
		}
	}
	return count <= l.limit
}
