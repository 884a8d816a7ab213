package usecase

import (
	"context"
	"errors"
	"testing"

	"videotube_backend/internal/feature/auth/domain/entity"
	authusecase "videotube_backend/internal/feature/auth/usecase"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	FindByIDFunc         func(ctx context.Context, id uint) (*entity.User, error)
	UpdateProfileFunc    func(ctx context.Context, id uint, fullName, email string) error
	UpdateAvatarFunc     func(ctx context.Context, id uint, url string) error
	UpdateCoverImageFunc func(ctx context.Context, id uint, url string) error
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &entity.User{ID: id, Username: "alice", Password: "hash", RefreshToken: "refresh"}, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, id uint, fullName, email string) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, fullName, email)
	}
	return nil
}

func (m *mockUserRepository) UpdateAvatar(ctx context.Context, id uint, url string) error {
	if m.UpdateAvatarFunc != nil {
		return m.UpdateAvatarFunc(ctx, id, url)
	}
	return nil
}

func (m *mockUserRepository) UpdateCoverImage(ctx context.Context, id uint, url string) error {
	if m.UpdateCoverImageFunc != nil {
		return m.UpdateCoverImageFunc(ctx, id, url)
	}
	return nil
}

func TestAccountUsecase_UpdateDetails(t *testing.T) {
	t.Run("trims fields and returns the sanitized record", func(t *testing.T) {
		repo := &mockUserRepository{
			UpdateProfileFunc: func(ctx context.Context, id uint, fullName, email string) error {
				if fullName != "Alice Updated" || email != "new@example.com" {
					t.Errorf("expected trimmed fields, got %q / %q", fullName, email)
				}
				return nil
			},
		}

		uc := NewAccountUsecase(repo)
		user, err := uc.UpdateDetails(context.Background(), 7, "  Alice Updated ", " new@example.com ")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Password != "" || user.RefreshToken != "" {
			t.Error("returned record must not carry password or refresh token")
		}
	})

	t.Run("empty fields rejected", func(t *testing.T) {
		uc := NewAccountUsecase(&mockUserRepository{})
		if _, err := uc.UpdateDetails(context.Background(), 7, " ", "a@example.com"); err == nil {
			t.Error("expected validation error for empty fullName")
		}
		if _, err := uc.UpdateDetails(context.Background(), 7, "Alice", ""); err == nil {
			t.Error("expected validation error for empty email")
		}
	})

	t.Run("duplicate email maps to ErrEmailTaken", func(t *testing.T) {
		repo := &mockUserRepository{
			UpdateProfileFunc: func(ctx context.Context, id uint, fullName, email string) error {
				return authusecase.ErrUserAlreadyExists
			},
		}
		uc := NewAccountUsecase(repo)
		_, err := uc.UpdateDetails(context.Background(), 7, "Alice", "taken@example.com")
		if !errors.Is(err, ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("missing user maps to ErrUserNotFound", func(t *testing.T) {
		repo := &mockUserRepository{
			UpdateProfileFunc: func(ctx context.Context, id uint, fullName, email string) error {
				return authusecase.ErrUserNotFound
			},
		}
		uc := NewAccountUsecase(repo)
		_, err := uc.UpdateDetails(context.Background(), 7, "Alice", "a@example.com")
		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestAccountUsecase_UpdateAvatar(t *testing.T) {
	t.Run("persists the URL and reloads", func(t *testing.T) {
		var storedURL string
		repo := &mockUserRepository{
			UpdateAvatarFunc: func(ctx context.Context, id uint, url string) error {
				storedURL = url
				return nil
			},
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return &entity.User{ID: id, Avatar: storedURL, Password: "hash"}, nil
			},
		}

		uc := NewAccountUsecase(repo)
		user, err := uc.UpdateAvatar(context.Background(), 7, "https://media.example/a.png")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Avatar != "https://media.example/a.png" {
			t.Errorf("expected new avatar URL, got %q", user.Avatar)
		}
		if user.Password != "" {
			t.Error("returned record must not carry the password hash")
		}
	})

	t.Run("persist failure propagates", func(t *testing.T) {
		repo := &mockUserRepository{
			UpdateAvatarFunc: func(ctx context.Context, id uint, url string) error {
				return errors.New("db down")
			},
		}
		uc := NewAccountUsecase(repo)
		if _, err := uc.UpdateAvatar(context.Background(), 7, "x"); err == nil {
			t.Error("expected the persistence error to propagate")
		}
	})
}

func TestAccountUsecase_UpdateCoverImage(t *testing.T) {
	var storedURL string
	repo := &mockUserRepository{
		UpdateCoverImageFunc: func(ctx context.Context, id uint, url string) error {
			storedURL = url
			return nil
		},
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			return &entity.User{ID: id, CoverImage: storedURL}, nil
		},
	}

	uc := NewAccountUsecase(repo)
	user, err := uc.UpdateCoverImage(context.Background(), 7, "https://media.example/c.png")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.CoverImage != "https://media.example/c.png" {
		t.Errorf("expected new cover URL, got %q", user.CoverImage)
	}
}
