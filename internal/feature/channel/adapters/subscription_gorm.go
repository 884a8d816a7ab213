// Package adapters provides repository implementations for the channel feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"videotube_backend/internal/feature/channel/domain/entity"
	"videotube_backend/internal/feature/channel/usecase"
)

// subscriptionGorm is the GORM implementation of SubscriptionRepository.
type subscriptionGorm struct {
	db *gorm.DB
}

// Compile-time check that subscriptionGorm implements SubscriptionRepository.
var _ usecase.SubscriptionRepository = (*subscriptionGorm)(nil)

// NewSubscriptionGorm creates a new instance of subscriptionGorm.
func NewSubscriptionGorm(db *gorm.DB) *subscriptionGorm {
	return &subscriptionGorm{db: db}
}

// Create inserts the edge. The composite unique index on
// (subscriber_id, channel_id) maps duplicates to ErrAlreadySubscribed.
func (r *subscriptionGorm) Create(ctx context.Context, sub *entity.Subscription) error {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadySubscribed
		}
		return err
	}
	return nil
}

// Delete removes the edge, ErrNotSubscribed when it does not exist.
func (r *subscriptionGorm) Delete(ctx context.Context, subscriberID, channelID uint) error {
	result := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&entity.Subscription{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrNotSubscribed
	}
	return nil
}

// CountByChannel counts the subscribers of a channel.
func (r *subscriptionGorm) CountByChannel(ctx context.Context, channelID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	return count, err
}

// CountBySubscriber counts the channels a user is subscribed to.
func (r *subscriptionGorm) CountBySubscriber(ctx context.Context, subscriberID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Subscription{}).
		Where("subscriber_id = ?", subscriberID).
		Count(&count).Error
	return count, err
}

// Exists reports whether the subscriber follows the channel.
func (r *subscriptionGorm) Exists(ctx context.Context, subscriberID, channelID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, err
}
