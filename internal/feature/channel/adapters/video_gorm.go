package adapters

import (
	"context"

	"gorm.io/gorm"

	"videotube_backend/internal/feature/channel/domain/entity"
	"videotube_backend/internal/feature/channel/usecase"
)

// videoGorm is the GORM implementation of VideoRepository.
type videoGorm struct {
	db *gorm.DB
}

var _ usecase.VideoRepository = (*videoGorm)(nil)

// NewVideoGorm creates a new instance of videoGorm.
func NewVideoGorm(db *gorm.DB) *videoGorm {
	return &videoGorm{db: db}
}

// FindByIDs returns the videos matching the given IDs. IDs without a
// matching row are silently skipped; the caller resolves the gap.
func (r *videoGorm) FindByIDs(ctx context.Context, ids []uint) ([]entity.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []entity.Video
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// Exists reports whether a video with the given ID exists.
func (r *videoGorm) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Video{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// watchHistoryGorm is the GORM implementation of WatchHistoryRepository.
type watchHistoryGorm struct {
	db *gorm.DB
}

var _ usecase.WatchHistoryRepository = (*watchHistoryGorm)(nil)

// NewWatchHistoryGorm creates a new instance of watchHistoryGorm.
func NewWatchHistoryGorm(db *gorm.DB) *watchHistoryGorm {
	return &watchHistoryGorm{db: db}
}

// Append adds an entry at the end of the user's history.
func (r *watchHistoryGorm) Append(ctx context.Context, e *entity.WatchEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// ListByUser returns the user's entries in watch order (insertion order,
// duplicates preserved).
func (r *watchHistoryGorm) ListByUser(ctx context.Context, userID uint) ([]entity.WatchEntry, error) {
	var entries []entity.WatchEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
