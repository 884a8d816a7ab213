// Package handler provides the HTTP handlers for the account feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube_backend/internal/feature/account/transport/http/dto"
	"videotube_backend/internal/feature/account/usecase"
	"videotube_backend/internal/feature/auth/domain/entity"
	jwtmw "videotube_backend/internal/platform/jwt"
	"videotube_backend/internal/shared/response"
	"videotube_backend/internal/shared/uploads"
)

// AccountUsecase defines the profile mutations the handler depends on.
type AccountUsecase interface {
	UpdateDetails(ctx context.Context, userID uint, fullName, email string) (*entity.User, error)
	UpdateAvatar(ctx context.Context, userID uint, url string) (*entity.User, error)
	UpdateCoverImage(ctx context.Context, userID uint, url string) (*entity.User, error)
}

// AccountHandler handles the logged-in user's profile endpoints.
type AccountHandler struct {
	accounts  AccountUsecase
	uploader  uploads.Uploader
	moderator uploads.Moderator
}

// NewAccountHandler creates a new instance of AccountHandler.
// moderator may be nil, in which case images are not screened.
func NewAccountHandler(accounts AccountUsecase, uploader uploads.Uploader, moderator uploads.Moderator) *AccountHandler {
	return &AccountHandler{accounts: accounts, uploader: uploader, moderator: moderator}
}

// CurrentUser handles GET /current-user.
// The guard already loaded and sanitized the caller's record.
func (h *AccountHandler) CurrentUser(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized request")
		return
	}
	response.OK(c, http.StatusOK, user, "current user fetched")
}

// UpdateDetails handles PATCH /update-details.
func (h *AccountHandler) UpdateDetails(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	var req dto.UpdateDetailsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "fullName and email are required", err.Error())
		return
	}

	updated, err := h.accounts.UpdateDetails(c.Request.Context(), user.ID, req.FullName, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			response.Error(c, http.StatusConflict, "email already in use")
		case errors.Is(err, usecase.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "user not found")
		default:
			slog.Error("update details failed", "error", err, "user_id", user.ID)
			response.Error(c, http.StatusInternalServerError, "failed to update details")
		}
		return
	}

	response.OK(c, http.StatusOK, updated, "account details updated")
}

// UpdateAvatar handles PATCH /update-avatar (multipart, single avatar file).
func (h *AccountHandler) UpdateAvatar(c *gin.Context) {
	h.updateImage(c, "avatar", h.accounts.UpdateAvatar)
}

// UpdateCover handles PATCH /update-cover (multipart, single coverImage file).
func (h *AccountHandler) UpdateCover(c *gin.Context) {
	h.updateImage(c, "coverImage", h.accounts.UpdateCoverImage)
}

// updateImage runs the shared flow for both media endpoints: take the
// single multipart file, push it to the media host, persist the URL.
func (h *AccountHandler) updateImage(c *gin.Context, field string, persist func(ctx context.Context, userID uint, url string) (*entity.User, error)) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	fh, err := c.FormFile(field)
	if err != nil {
		response.Error(c, http.StatusBadRequest, field+" file is required")
		return
	}

	url, err := uploads.PushImage(c, fh, h.uploader, h.moderator)
	if err != nil {
		if errors.Is(err, uploads.ErrImageRejected) {
			response.Error(c, http.StatusBadRequest, "image rejected by moderation")
			return
		}
		slog.Error("media upload errored", "error", err, "field", field)
		response.Error(c, http.StatusInternalServerError, "upload failed")
		return
	}
	if url == "" {
		response.Error(c, http.StatusBadRequest, field+" upload failed")
		return
	}

	updated, err := persist(c.Request.Context(), user.ID, url)
	if err != nil {
		slog.Error("failed to persist media url", "error", err, "user_id", user.ID, "field", field)
		response.Error(c, http.StatusInternalServerError, "failed to update "+field)
		return
	}

	response.OK(c, http.StatusOK, updated, field+" updated")
}
