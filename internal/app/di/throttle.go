// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"videotube_backend/internal/platform/throttle"
	"videotube_backend/internal/shared/ratelimiter"
)

const (
	// authThrottleLimit is the number of credential attempts allowed per window.
	authThrottleLimit = 10
	// authThrottleWindow is the fixed window for the credential throttle.
	authThrottleWindow = time.Minute
)

// NewAuthLimiter creates the rate limiter for the credential endpoints.
// If Redis is available the limiter is shared across instances; otherwise
// it falls back to an in-process fixed window.
func NewAuthLimiter(rdb *redis.Client) ratelimiter.Limiter {
	if rdb != nil {
		return throttle.NewRedisLimiter(rdb, "throttle:auth", authThrottleLimit, authThrottleWindow)
	}
	return ratelimiter.NewRateLimiter(authThrottleLimit, authThrottleWindow)
}
