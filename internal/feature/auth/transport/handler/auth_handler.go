// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube_backend/internal/app/config"
	"videotube_backend/internal/feature/auth/domain/entity"
	"videotube_backend/internal/feature/auth/transport/http/dto"
	"videotube_backend/internal/feature/auth/usecase"
	jwtmw "videotube_backend/internal/platform/jwt"
	"videotube_backend/internal/shared/response"
	"videotube_backend/internal/shared/uploads"
)

// AuthUsecase defines the authentication operations the handler depends on.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	Login(ctx context.Context, username, email, password string) (*entity.User, usecase.TokenPair, error)
	Logout(ctx context.Context, userID uint) error
	Refresh(ctx context.Context, presented string) (usecase.TokenPair, error)
	ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error
}

// AuthHandler handles HTTP requests for registration, login, logout,
// token refresh and password changes.
type AuthHandler struct {
	auth      AuthUsecase
	uploader  uploads.Uploader
	moderator uploads.Moderator
	tokens    config.TokenConfig
}

// NewAuthHandler creates a new instance of AuthHandler.
// moderator may be nil, in which case images are not screened.
func NewAuthHandler(auth AuthUsecase, uploader uploads.Uploader, moderator uploads.Moderator, tokens config.TokenConfig) *AuthHandler {
	return &AuthHandler{auth: auth, uploader: uploader, moderator: moderator, tokens: tokens}
}

// Register handles POST /register.
// Multipart form: username, email, fullName, password fields plus a
// required avatar file and an optional coverImage file.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusBadRequest, "all fields are required", err.Error())
		return
	}

	avatarFile, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "avatar is required")
		return
	}

	avatarURL, ok := h.uploadImage(c, avatarFile)
	if !ok {
		return
	}
	if avatarURL == "" {
		response.Error(c, http.StatusBadRequest, "avatar upload failed")
		return
	}

	// Cover image is optional and an upload failure only drops it.
	coverURL := ""
	if coverFile, err := c.FormFile("coverImage"); err == nil {
		coverURL, ok = h.uploadImage(c, coverFile)
		if !ok {
			return
		}
	}

	user, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Username:   req.Username,
		Email:      req.Email,
		FullName:   req.FullName,
		Password:   req.Password,
		Avatar:     avatarURL,
		CoverImage: coverURL,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			slog.Warn("register conflict", "username", req.Username, "remote_addr", c.ClientIP())
			response.Error(c, http.StatusConflict, "username or email already exists")
			return
		}
		slog.Error("register failed", "error", err, "username", req.Username)
		response.Error(c, http.StatusInternalServerError, "something went wrong while registering")
		return
	}

	slog.Info("user registered", "username", user.Username, "remote_addr", c.ClientIP())
	response.OK(c, http.StatusCreated, user, "user registered")
}

// Login handles POST /login.
// Accepts username or email plus password; on success sets the token
// cookies and returns the sanitized user with the token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	if req.Username == "" && req.Email == "" {
		response.Error(c, http.StatusBadRequest, "username or email is required")
		return
	}

	user, pair, err := h.auth.Login(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			slog.Warn("login for unknown user", "username", req.Username, "remote_addr", c.ClientIP())
			response.Error(c, http.StatusNotFound, "user not found")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			slog.Warn("login failed", "username", req.Username, "remote_addr", c.ClientIP())
			response.Error(c, http.StatusUnauthorized, "password is wrong")
		default:
			slog.Error("login failed", "error", err)
			response.Error(c, http.StatusInternalServerError, "something went wrong while generating tokens")
		}
		return
	}

	h.setAuthCookies(c, pair)
	slog.Info("user login successful", "username", user.Username, "remote_addr", c.ClientIP())
	response.OK(c, http.StatusOK, gin.H{
		"user":         user,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "user logged in successfully")
}

// Logout handles POST /logout (authenticated).
// Clears the stored refresh token and both cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	if err := h.auth.Logout(c.Request.Context(), user.ID); err != nil {
		slog.Error("logout failed", "error", err, "user_id", user.ID)
		response.Error(c, http.StatusInternalServerError, "logout failed")
		return
	}

	h.clearAuthCookies(c)
	slog.Info("user logout", "user_id", user.ID)
	response.OK(c, http.StatusOK, gin.H{}, "user logged out")
}

// RefreshToken handles POST /refresh-token.
// The refresh token is read from the refreshToken cookie, falling back to
// the JSON body.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	presented, _ := c.Cookie(jwtmw.RefreshTokenCookie)
	if presented == "" {
		var req dto.RefreshReq
		// Body is optional; ignore bind errors and let the usecase
		// reject the missing token.
		_ = c.ShouldBindJSON(&req)
		presented = req.RefreshToken
	}

	pair, err := h.auth.Refresh(c.Request.Context(), presented)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingRefreshToken):
			response.Error(c, http.StatusUnauthorized, "unauthorized request")
		case errors.Is(err, usecase.ErrRefreshTokenUsed):
			slog.Warn("reused refresh token presented", "remote_addr", c.ClientIP())
			response.Error(c, http.StatusUnauthorized, "refresh token expired or used")
		case errors.Is(err, usecase.ErrInvalidRefreshToken):
			response.Error(c, http.StatusUnauthorized, "invalid refresh token")
		default:
			slog.Error("token refresh failed", "error", err)
			response.Error(c, http.StatusInternalServerError, "something went wrong while generating tokens")
		}
		return
	}

	h.setAuthCookies(c, pair)
	response.OK(c, http.StatusOK, dto.TokenPairRes{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "access token refreshed")
}

// ChangePassword handles POST /change-password (authenticated).
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	var req dto.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), user.ID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "old password is wrong")
			return
		}
		slog.Error("change password failed", "error", err, "user_id", user.ID)
		response.Error(c, http.StatusInternalServerError, "failed to change password")
		return
	}

	response.OK(c, http.StatusOK, gin.H{}, "password changed")
}

// uploadImage runs the shared save/moderate/upload flow and writes the
// error response itself when the flow fails. The bool result is false when
// a response was already written; an empty URL with a true result means
// the remote upload failed and the caller decides.
func (h *AuthHandler) uploadImage(c *gin.Context, fh *multipart.FileHeader) (string, bool) {
	url, err := uploads.PushImage(c, fh, h.uploader, h.moderator)
	if err != nil {
		if errors.Is(err, uploads.ErrImageRejected) {
			response.Error(c, http.StatusBadRequest, "image rejected by moderation")
			return "", false
		}
		slog.Error("media upload errored", "error", err)
		response.Error(c, http.StatusInternalServerError, "upload failed")
		return "", false
	}
	return url, true
}

// setAuthCookies sets the accessToken and refreshToken cookies,
// httpOnly and secure, scoped to the whole site.
func (h *AuthHandler) setAuthCookies(c *gin.Context, pair usecase.TokenPair) {
	c.SetCookie(jwtmw.AccessTokenCookie, pair.AccessToken, int(h.tokens.AccessTTL.Seconds()), "/", "", true, true)
	c.SetCookie(jwtmw.RefreshTokenCookie, pair.RefreshToken, int(h.tokens.RefreshTTL.Seconds()), "/", "", true, true)
}

// clearAuthCookies expires both token cookies.
func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetCookie(jwtmw.AccessTokenCookie, "", -1, "/", "", true, true)
	c.SetCookie(jwtmw.RefreshTokenCookie, "", -1, "/", "", true, true)
}
