package entity

import "time"

// Video represents an uploaded video record.
type Video struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// OwnerID references the user who published the video.
	OwnerID uint `gorm:"index;not null" json:"owner"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"size:2048" json:"description"`

	// VideoFile and Thumbnail are media-host URLs.
	VideoFile string `gorm:"size:512;not null" json:"videoFile"`
	Thumbnail string `gorm:"size:512" json:"thumbnail"`

	// Duration is the length in seconds as reported by the media host.
	Duration float64 `json:"duration"`
	Views    int64   `json:"views"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WatchEntry is one row of a user's ordered watch history.
// Duplicates are allowed: re-watching a video appends a new row.
type WatchEntry struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `gorm:"index;not null" json:"user"`
	VideoID uint `gorm:"index;not null" json:"video"`

	CreatedAt time.Time `json:"createdAt"`
}
