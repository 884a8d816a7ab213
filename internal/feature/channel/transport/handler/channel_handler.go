// Package handler provides the HTTP handlers for the channel feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"videotube_backend/internal/feature/channel/domain/entity"
	"videotube_backend/internal/feature/channel/transport/http/dto"
	"videotube_backend/internal/feature/channel/usecase"
	jwtmw "videotube_backend/internal/platform/jwt"
	"videotube_backend/internal/shared/response"
)

// ChannelUsecase defines the channel operations the handler depends on.
type ChannelUsecase interface {
	GetChannelProfile(ctx context.Context, username string, viewerID uint) (*usecase.ChannelProfile, error)
	GetWatchHistory(ctx context.Context, userID uint) ([]usecase.WatchHistoryItem, error)
	Subscribe(ctx context.Context, viewerID uint, channelUsername string) error
	Unsubscribe(ctx context.Context, viewerID uint, channelUsername string) error
	AddWatchEntry(ctx context.Context, userID, videoID uint) error
	CreatePlaylist(ctx context.Context, ownerID uint, name, description string) (*entity.Playlist, error)
	ListPlaylists(ctx context.Context, ownerID uint) ([]entity.Playlist, error)
}

// ChannelHandler handles channel profile, subscription, watch history and
// playlist requests. All routes sit behind the auth guard.
type ChannelHandler struct {
	channels ChannelUsecase
}

// NewChannelHandler creates a new instance of ChannelHandler.
func NewChannelHandler(channels ChannelUsecase) *ChannelHandler {
	return &ChannelHandler{channels: channels}
}

// GetChannelProfile handles GET /channel/:username.
func (h *ChannelHandler) GetChannelProfile(c *gin.Context) {
	viewer, ok := jwtmw.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	profile, err := h.channels.GetChannelProfile(c.Request.Context(), c.Param("username"), viewer.ID)
	if err != nil {
		if errors.Is(err, usecase.ErrChannelNotFound) {
			response.Error(c, http.StatusNotFound, "channel does not exist")
			return
		}
		slog.Error("channel profile aggregation failed", "error", err, "username", c.Param("username"))
		response.Error(c, http.StatusInternalServerError, "failed to fetch channel profile")
		return
	}

	response.OK(c, http.StatusOK, profile, "channel profile fetched")
}

// GetWatchHistory handles GET /history.
func (h *ChannelHandler) GetWatchHistory(c *gin.Context) {
	viewer, ok := jwtmw.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	history, err := h.channels.GetWatchHistory(c.Request.Context(), viewer.ID)
	if err != nil {
		slog.Error("watch history aggregation failed", "error", err, "user_id", viewer.ID)
		response.Error(c, http.StatusInternalServerError, "failed to fetch watch history")
		return
	}

	response.OK(c, http.StatusOK, history, "watch history fetched")
}

// AddWatchEntry handles POST /history/:videoId.
func (h *ChannelHandler) AddWatchEntry(c *gin.Context) {
	viewer, ok := jwtmw.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	videoID, err := strconv.ParseUint(c.Param("videoId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid video id")
		return
	}

	if err := h.channels.AddWatchEntry(c.Request.Context(), viewer.ID, uint(videoID)); err != nil {
		if errors.Is(err, usecase.ErrVideoNotFound) {
			response.Error(c, http.StatusNotFound, "video not found")
			return
		}
		slog.Error("failed to append watch entry", "error", err, "user_id", viewer.ID)
		response.Error(c, http.StatusInternalServerError, "failed to record watch entry")
		return
	}

	response.OK(c, http.StatusOK, gin.H{}, "watch entry recorded")
}

// Subscribe handles POST /channel/:username/subscribe.
func (h *ChannelHandler) Subscribe(c *gin.Context) {
	viewer, ok := jwtmw.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	err := h.channels.Subscribe(c.Request.Context(), viewer.ID, c.Param("username"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrChannelNotFound):
			response.Error(c, http.StatusNotFound, "channel does not exist")
		case errors.Is(err, usecase.ErrSelfSubscription):
			response.Error(c, http.StatusBadRequest, "cannot subscribe to your own channel")
		case errors.Is(err, usecase.ErrAlreadySubscribed):
			response.Error(c, http.StatusConflict, "already subscribed")
		default:
			slog.Error("subscribe failed", "error", err, "user_id", viewer.ID)
			response.Error(c, http.StatusInternalServerError, "failed to subscribe")
		}
		return
	}

	response.OK(c, http.StatusCreated, gin.H{}, "subscribed")
}

// Unsubscribe handles DELETE /channel/:username/subscribe.
func (h *ChannelHandler) Unsubscribe(c *gin.Context) {
	viewer, ok := jwtmw.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	err := h.channels.Unsubscribe(c.Request.Context(), viewer.ID, c.Param("username"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrChannelNotFound):
			response.Error(c, http.StatusNotFound, "channel does not exist")
		case errors.Is(err, usecase.ErrNotSubscribed):
			response.Error(c, http.StatusNotFound, "not subscribed")
		default:
			slog.Error("unsubscribe failed", "error", err, "user_id", viewer.ID)
			response.Error(c, http.StatusInternalServerError, "failed to unsubscribe")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{}, "unsubscribed")
}

// CreatePlaylist handles POST /playlists.
func (h *ChannelHandler) CreatePlaylist(c *gin.Context) {
	viewer, ok := jwtmw.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	var req dto.CreatePlaylistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "name and description are required", err.Error())
		return
	}

	playlist, err := h.channels.CreatePlaylist(c.Request.Context(), viewer.ID, req.Name, req.Description)
	if err != nil {
		slog.Error("create playlist failed", "error", err, "user_id", viewer.ID)
		response.Error(c, http.StatusInternalServerError, "failed to create playlist")
		return
	}

	response.OK(c, http.StatusCreated, playlist, "playlist created")
}

// ListPlaylists handles GET /playlists.
func (h *ChannelHandler) ListPlaylists(c *gin.Context) {
	viewer, ok := jwtmw.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	playlists, err := h.channels.ListPlaylists(c.Request.Context(), viewer.ID)
	if err != nil {
		slog.Error("list playlists failed", "error", err, "user_id", viewer.ID)
		response.Error(c, http.StatusInternalServerError, "failed to list playlists")
		return
	}

	response.OK(c, http.StatusOK, playlists, "playlists fetched")
}
