package entity

import "time"

// Playlist is a named, ordered collection of videos owned by a user.
type Playlist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID     uint   `gorm:"index;not null" json:"owner"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"size:1024;not null" json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlaylistVideo keeps the ordered membership of videos in a playlist.
type PlaylistVideo struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	PlaylistID uint `gorm:"index;not null" json:"playlist"`
	VideoID    uint `gorm:"not null" json:"video"`

	// Position preserves the insertion order within the playlist.
	Position int `gorm:"not null" json:"position"`
}
