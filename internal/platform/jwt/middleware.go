package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"videotube_backend/internal/feature/auth/domain/entity"
	"videotube_backend/internal/shared/response"
)

const (
	// ContextUserID is the gin context key holding the authenticated user's ID.
	ContextUserID = "userID"
	// ContextUser is the gin context key holding the authenticated user
	// (password and refresh token cleared).
	ContextUser = "currentUser"
	// AccessTokenCookie is the cookie carrying the access token.
	AccessTokenCookie = "accessToken"
	// RefreshTokenCookie is the cookie carrying the refresh token.
	RefreshTokenCookie = "refreshToken"
)

// UserLoader loads the user referenced by a verified token.
// Defined here because the middleware is the consumer; the auth adapters
// provide the implementation.
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthRequired returns a gin middleware that restricts access to
// authenticated users. The access token is taken from the accessToken
// cookie, falling back to the Authorization bearer header. On success the
// sanitized user is attached to the context; any failure ends the request
// with 401.
func AuthRequired(gen *Generator, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "unauthorized request")
			return
		}

		userID, err := gen.VerifyAccessToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid access token")
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			// Token may be valid for a user that no longer exists.
			response.AbortError(c, http.StatusUnauthorized, "invalid access token")
			return
		}

		sanitized := user.Sanitized()
		c.Set(ContextUserID, user.ID)
		c.Set(ContextUser, &sanitized)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by AuthRequired.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}

// tokenFromRequest extracts the access token, cookie first, bearer header second.
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
