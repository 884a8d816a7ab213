// Package dto defines data transfer objects for the channel feature's HTTP transport layer.
package dto

// CreatePlaylistReq represents the request body for POST /playlists.
type CreatePlaylistReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}
