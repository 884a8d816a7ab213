// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
// It holds the credentials, profile media URLs and the single currently
// valid refresh token (one active refresh lineage per user).
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Username is the unique handle, stored lowercase and trimmed.
	Username string `gorm:"uniqueIndex;size:64;not null" json:"username"`

	// Email is the user's email address.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// FullName is the display name shown on the channel page.
	FullName string `gorm:"size:255;not null" json:"fullName"`

	// Password is the bcrypt hash of the user's password.
	// This never stores or serializes plaintext.
	Password string `gorm:"size:255;not null" json:"-"`

	// Avatar is the media-host URL of the profile image.
	Avatar string `gorm:"size:512;not null" json:"avatar"`

	// CoverImage is the media-host URL of the cover image, may be empty.
	CoverImage string `gorm:"size:512" json:"coverImage"`

	// RefreshToken is the currently valid refresh token, empty when the
	// user is logged out. Overwritten on every login and refresh.
	RefreshToken string `gorm:"size:1024" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sanitized returns a copy safe to hand to other layers: the password hash
// and refresh token are cleared (both also carry `json:"-"`).
func (u User) Sanitized() User {
	u.Password = ""
	u.RefreshToken = ""
	return u
}
