// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username, email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when registering a username or email that is already taken.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrInvalidCredentials is returned when the presented password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingRefreshToken is returned when no refresh token was presented.
	ErrMissingRefreshToken = errors.New("refresh token is missing")

	// ErrInvalidRefreshToken is returned when a refresh token fails signature or expiry checks.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrRefreshTokenUsed is returned when a cryptographically valid refresh token
	// no longer matches the one stored for the user. Once a token is rotated the
	// previous one is permanently rejected (single-use lineage).
	ErrRefreshTokenUsed = errors.New("refresh token expired or used")
)
