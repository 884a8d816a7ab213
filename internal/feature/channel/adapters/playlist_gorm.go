package adapters

import (
	"context"

	"gorm.io/gorm"

	"videotube_backend/internal/feature/channel/domain/entity"
	"videotube_backend/internal/feature/channel/usecase"
)

// playlistGorm is the GORM implementation of PlaylistRepository.
type playlistGorm struct {
	db *gorm.DB
}

var _ usecase.PlaylistRepository = (*playlistGorm)(nil)

// NewPlaylistGorm creates a new instance of playlistGorm.
func NewPlaylistGorm(db *gorm.DB) *playlistGorm {
	return &playlistGorm{db: db}
}

// Create persists a new playlist.
func (r *playlistGorm) Create(ctx context.Context, p *entity.Playlist) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindByOwner returns all playlists owned by the user, newest first.
func (r *playlistGorm) FindByOwner(ctx context.Context, ownerID uint) ([]entity.Playlist, error) {
	var playlists []entity.Playlist
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&playlists).Error
	if err != nil {
		return nil, err
	}
	return playlists, nil
}
