package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/storefront-api/internal/domain"
	"github.com/vietanh2810/storefront-api/internal/repository"
)

type fakeAdminRepo struct {
	byEmail map[string]domain.Admin
	nextID  uint
}

func (f *fakeAdminRepo) Create(_ context.Context, admin domain.Admin) (domain.Admin, error) {
	if _, exists := f.byEmail[admin.Email]; exists {
		return domain.Admin{}, repository.ErrAdminEmailExists
	}

	f.nextID++
	admin.ID = f.nextID
	f.byEmail[admin.Email] = admin

	return admin, nil
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (domain.Admin, error) {
	admin, ok := f.byEmail[email]
	if !ok {
		return domain.Admin{}, repository.ErrAdminNotFound
	}

	return admin, nil
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes the email and hashes the password", func(t *testing.T) {
		repo := &fakeAdminRepo{byEmail: map[string]domain.Admin{}}
		svc := NewAuthService(repo)

		admin, err := svc.Signup(ctx, "  Admin@Example.COM ", "secret-pw-1")

		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", admin.Email)

		stored := repo.byEmail["admin@example.com"]
		assert.NotEqual(t, "secret-pw-1", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret-pw-1")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := &fakeAdminRepo{byEmail: map[string]domain.Admin{}}
		svc := NewAuthService(repo)

		_, err := svc.Signup(ctx, "admin@example.com", "secret-pw-1")
		require.NoError(t, err)

		_, err = svc.Signup(ctx, "ADMIN@example.com", "another-pw-2")
		assert.ErrorIs(t, err, ErrAdminEmailExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	repo := &fakeAdminRepo{byEmail: map[string]domain.Admin{}}
	svc := NewAuthService(repo)

	_, err := svc.Signup(ctx, "admin@example.com", "secret-pw-1")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		admin, err := svc.Login(ctx, "Admin@Example.com", "secret-pw-1")

		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", admin.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin@example.com", "wrong-pw")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "secret-pw-1")

		assert.ErrorIs(t, err, ErrAdminNotFound)
	})
}
