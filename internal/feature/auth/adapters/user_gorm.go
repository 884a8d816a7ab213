// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"videotube_backend/internal/feature/auth/domain/entity"
	"videotube_backend/internal/feature/auth/usecase"
)

// userGorm is the GORM implementation of the UserRepository interface.
// The database must be opened with gorm.Config{TranslateError: true} so
// duplicate-key violations surface as gorm.ErrDuplicatedKey.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new instance of userGorm for the given connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. Unique-index violations on username or email
// map to usecase.ErrUserAlreadyExists.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID retrieves a user by ID.
// Returns usecase.ErrUserNotFound when the user does not exist.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByUsername retrieves a user by exact (lowercased) username.
func (r *userGorm) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByUsernameOrEmail retrieves the first user whose username or email
// matches. Empty-string arguments never match any row.
func (r *userGorm) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).
		Where("(username = ? AND ? <> '') OR (email = ? AND ? <> '')", username, username, email, email).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateRefreshToken overwrites the stored refresh token (overwrite
// semantics, no revocation list). An empty token clears the field.
func (r *userGorm) UpdateRefreshToken(ctx context.Context, id uint, token string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update("refresh_token", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// UpdatePassword overwrites the stored password hash.
func (r *userGorm) UpdatePassword(ctx context.Context, id uint, hash string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update("password", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// UpdateProfile updates fullName and email.
// A duplicate email maps to usecase.ErrUserAlreadyExists.
func (r *userGorm) UpdateProfile(ctx context.Context, id uint, fullName, email string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"full_name": fullName, "email": email})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return usecase.ErrUserAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// UpdateAvatar stores a new avatar URL.
func (r *userGorm) UpdateAvatar(ctx context.Context, id uint, url string) error {
	return r.updateMediaColumn(ctx, id, "avatar", url)
}

// UpdateCoverImage stores a new cover image URL.
func (r *userGorm) UpdateCoverImage(ctx context.Context, id uint, url string) error {
	return r.updateMediaColumn(ctx, id, "cover_image", url)
}

func (r *userGorm) updateMediaColumn(ctx context.Context, id uint, column, url string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update(column, url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
