package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"videotube_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrUserAlreadyExists when the
	// username or email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID, ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByUsernameOrEmail retrieves the first user matching either the
	// username or the email. Empty arguments do not match anything.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// UpdateRefreshToken overwrites the user's stored refresh token.
	// An empty token clears it (logout).
	UpdateRefreshToken(ctx context.Context, id uint, token string) error

	// UpdatePassword overwrites the user's password hash.
	UpdatePassword(ctx context.Context, id uint, hash string) error
}

// TokenGenerator issues and verifies the signed tokens for a user.
// Defined here because the usecase is the consumer; implemented in platform/jwt.
type TokenGenerator interface {
	// GenerateAccessToken creates a short-lived signed token carrying the user ID.
	GenerateAccessToken(userID uint) (string, error)

	// GenerateRefreshToken creates a long-lived signed token carrying the user ID.
	GenerateRefreshToken(userID uint) (string, error)

	// VerifyRefreshToken checks signature and expiry of a refresh token
	// and returns the user ID it was issued for.
	VerifyRefreshToken(token string) (uint, error)
}

// TokenPair bundles a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterInput carries the validated registration fields. Avatar and
// CoverImage are durable media-host URLs, already uploaded by the caller.
type RegisterInput struct {
	Username   string
	Email      string
	FullName   string
	Password   string
	Avatar     string
	CoverImage string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenGenerator
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// validatePassword checks the password against the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a new account with a hashed password and returns the
// stored record. The username is normalized (trimmed, lowercased) before
// the uniqueness check, so "Alice" and "alice" collide.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	email := strings.TrimSpace(in.Email)

	if username == "" || email == "" || strings.TrimSpace(in.FullName) == "" {
		return nil, errors.New("username, email and fullName are required")
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	// Refuse duplicates before touching persistence. The unique indexes
	// still back this up against concurrent registrations.
	if _, err := u.users.FindByUsernameOrEmail(ctx, username, email); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:   username,
		Email:      email,
		FullName:   strings.TrimSpace(in.FullName),
		Password:   string(hashed),
		Avatar:     in.Avatar,
		CoverImage: in.CoverImage,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	created := user.Sanitized()
	return &created, nil
}

// Login authenticates by username or email and issues a token pair.
// The refresh token is persisted on the user record, replacing any prior
// one. To mitigate timing attacks the bcrypt comparison runs even when no
// user was found.
func (u *authUsecase) Login(ctx context.Context, username, email, password string) (*entity.User, TokenPair, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	user, err := u.users.FindByUsernameOrEmail(ctx, username, email)

	// Dummy hash so bcrypt.CompareHashAndPassword is always executed.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil {
		return nil, TokenPair{}, ErrUserNotFound
	}
	if compareErr != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := u.issueTokenPair(ctx, user.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}

	logged := user.Sanitized()
	return &logged, pair, nil
}

// Logout clears the stored refresh token, ending the refresh lineage.
func (u *authUsecase) Logout(ctx context.Context, userID uint) error {
	return u.users.UpdateRefreshToken(ctx, userID, "")
}

// Refresh exchanges a presented refresh token for a new token pair.
// The presented token must pass signature/expiry checks AND equal the one
// currently stored for the user: once rotated, the old token is rejected
// permanently even though it still verifies cryptographically.
func (u *authUsecase) Refresh(ctx context.Context, presented string) (TokenPair, error) {
	if presented == "" {
		return TokenPair{}, ErrMissingRefreshToken
	}

	userID, err := u.tokens.VerifyRefreshToken(presented)
	if err != nil {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	if user.RefreshToken != presented {
		return TokenPair{}, ErrRefreshTokenUsed
	}

	return u.issueTokenPair(ctx, user.ID)
}

// ChangePassword verifies the old password and stores a hash of the new one.
func (u *authUsecase) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return u.users.UpdatePassword(ctx, userID, string(hashed))
}

// issueTokenPair generates both tokens and rotates the stored refresh token.
// Last write wins under concurrent refreshes for the same user; the losing
// pair is invalidated on its next use.
func (u *authUsecase) issueTokenPair(ctx context.Context, userID uint) (TokenPair, error) {
	access, err := u.tokens.GenerateAccessToken(userID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := u.tokens.GenerateRefreshToken(userID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	if err := u.users.UpdateRefreshToken(ctx, userID, refresh); err != nil {
		return TokenPair{}, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
