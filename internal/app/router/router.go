package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	accounthandler "videotube_backend/internal/feature/account/transport/handler"
	authhandler "videotube_backend/internal/feature/auth/transport/handler"
	channelhandler "videotube_backend/internal/feature/channel/transport/handler"
	"videotube_backend/internal/platform/http/handler"
	"videotube_backend/internal/platform/throttle"
	"videotube_backend/internal/shared/ratelimiter"
)

// NewRouter builds the gin engine with the full route table.
// All user routes are mounted under /api/v1/users; authenticated routes
// share the JWT guard, credential routes share the throttle.
func NewRouter(
	authH *authhandler.AuthHandler,
	accountH *accounthandler.AccountHandler,
	channelH *channelhandler.ChannelHandler,
	guard gin.HandlerFunc,
	authLimiter ratelimiter.Limiter,
	corsOrigin string,
) *gin.Engine {
	r := gin.Default()

	if corsOrigin != "" {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = []string{corsOrigin}
		cfg.AllowCredentials = true
		r.Use(cors.New(cfg))
	}

	r.GET("/healthz", handler.Health)

	users := r.Group("/api/v1/users")

	// Credential endpoints, throttled, no guard.
	throttled := users.Group("/")
	throttled.Use(throttle.Middleware(authLimiter))
	{
		throttled.POST("/register", authH.Register)
		throttled.POST("/login", authH.Login)
		throttled.POST("/refresh-token", authH.RefreshToken)
	}

	// Routes that require a valid access token.
	auth := users.Group("/")
	auth.Use(guard)
	{
		auth.POST("/logout", authH.Logout)
		auth.POST("/change-password", authH.ChangePassword)

		auth.GET("/current-user", accountH.CurrentUser)
		auth.PATCH("/update-details", accountH.UpdateDetails)
		auth.PATCH("/update-avatar", accountH.UpdateAvatar)
		auth.PATCH("/update-cover", accountH.UpdateCover)

		auth.GET("/channel/:username", channelH.GetChannelProfile)
		auth.POST("/channel/:username/subscribe", channelH.Subscribe)
		auth.DELETE("/channel/:username/subscribe", channelH.Unsubscribe)

		auth.GET("/history", channelH.GetWatchHistory)
		auth.POST("/history/:videoId", channelH.AddWatchEntry)

		auth.GET("/playlists", channelH.ListPlaylists)
		auth.POST("/playlists", channelH.CreatePlaylist)
	}

	return r
}
