package throttle

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube_backend/internal/shared/ratelimiter"
	"videotube_backend/internal/shared/response"
)

// Middleware returns a gin middleware that rate-limits requests per client
// IP with the given limiter. Used on the credential endpoints (login,
// register, refresh) to slow down brute-force attempts.
func Middleware(limiter ratelimiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context(), c.ClientIP()) {
			slog.Warn("request throttled", "remote_addr", c.ClientIP(), "path", c.FullPath())
			response.AbortError(c, http.StatusTooManyRequests, "too many requests, slow down")
			return
		}
		c.Next()
	}
}
