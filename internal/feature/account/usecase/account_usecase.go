// Package usecase implements the business logic for the account feature.
package usecase

import (
	"context"
	"errors"
	"strings"

	"videotube_backend/internal/feature/auth/domain/entity"
	authusecase "videotube_backend/internal/feature/auth/usecase"
)

var (
	// ErrUserNotFound is returned when the account no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when updating to an email another account uses.
	ErrEmailTaken = errors.New("email already in use")
)

// UserRepository abstracts the user mutations the account feature needs.
// Implemented by the auth feature's gorm adapter.
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdateProfile updates fullName and email in one write.
	UpdateProfile(ctx context.Context, id uint, fullName, email string) error

	UpdateAvatar(ctx context.Context, id uint, url string) error
	UpdateCoverImage(ctx context.Context, id uint, url string) error
}

// accountUsecase implements profile mutations for the logged-in user.
type accountUsecase struct {
	users UserRepository
}

// NewAccountUsecase creates a new instance of accountUsecase.
func NewAccountUsecase(users UserRepository) *accountUsecase {
	return &accountUsecase{users: users}
}

// UpdateDetails overwrites fullName and email and returns the updated
// sanitized record.
func (u *accountUsecase) UpdateDetails(ctx context.Context, userID uint, fullName, email string) (*entity.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	if fullName == "" || email == "" {
		return nil, errors.New("fullName and email are required")
	}

	if err := u.users.UpdateProfile(ctx, userID, fullName, email); err != nil {
		if errors.Is(err, authusecase.ErrUserAlreadyExists) {
			return nil, ErrEmailTaken
		}
		if errors.Is(err, authusecase.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u.reload(ctx, userID)
}

// UpdateAvatar stores the new avatar URL and returns the updated record.
func (u *accountUsecase) UpdateAvatar(ctx context.Context, userID uint, url string) (*entity.User, error) {
	if err := u.users.UpdateAvatar(ctx, userID, url); err != nil {
		return nil, err
	}
	return u.reload(ctx, userID)
}

// UpdateCoverImage stores the new cover URL and returns the updated record.
func (u *accountUsecase) UpdateCoverImage(ctx context.Context, userID uint, url string) (*entity.User, error) {
	if err := u.users.UpdateCoverImage(ctx, userID, url); err != nil {
		return nil, err
	}
	return u.reload(ctx, userID)
}

func (u *accountUsecase) reload(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	updated := user.Sanitized()
	return &updated, nil
}
