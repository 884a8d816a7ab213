// Package entity defines the domain entities for the channel feature.
package entity

import "time"

// Subscription is a directed "follows" edge: SubscriberID subscribes to
// the channel owned by ChannelID. The composite unique index keeps a user
// from subscribing to the same channel twice, so counts never inflate.
type Subscription struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// SubscriberID is the user who subscribes.
	SubscriberID uint `gorm:"uniqueIndex:idx_subscriber_channel;not null" json:"subscriber"`

	// ChannelID is the user being subscribed to.
	ChannelID uint `gorm:"uniqueIndex:idx_subscriber_channel;not null" json:"channel"`

	CreatedAt time.Time `json:"createdAt"`
}
