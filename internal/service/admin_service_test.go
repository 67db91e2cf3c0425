package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/church-cms/internal/config"
	"github.com/spec-kit/church-cms/internal/domain"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

type fakeAdminRepo struct {
	admins    map[string]*domain.Admin
	createErr error
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*domain.Admin{}}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *domain.Admin) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.admins[admin.Username]; exists {
		return &pgconn.PgError{Code: "23505"}
	}
	admin.ID = "admin-1"
	admin.CreatedAt = time.Now()
	r.admins[admin.Username] = admin
	return nil
}

func (r *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*domain.Admin, error) {
	admin, ok := r.admins[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return admin, nil
}

func (r *fakeAdminRepo) Count(_ context.Context) (int, error) {
	return len(r.admins), nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 48, BcryptCost: bcrypt.MinCost}
}

func TestAdminRegister(t *testing.T) {
	t.Run("first registration succeeds", func(t *testing.T) {
		svc := NewAdminService(testAuthConfig(), newFakeAdminRepo())

		admin, err := svc.Register(context.Background(), "pastor", "flock1234")
		require.NoError(t, err)
		assert.Equal(t, "pastor", admin.Username)
		assert.NotEqual(t, "flock1234", admin.PasswordHash)
	})

	t.Run("registration closes once an admin exists", func(t *testing.T) {
		repo := newFakeAdminRepo()
		svc := NewAdminService(testAuthConfig(), repo)

		_, err := svc.Register(context.Background(), "pastor", "flock1234")
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "intruder", "whatever")
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, apperrors.ToDomainError(err).HTTPStatus)
	})

	t.Run("lost race on the unique constraint is a conflict", func(t *testing.T) {
		repo := newFakeAdminRepo()
		repo.createErr = &pgconn.PgError{Code: "23505"}
		svc := NewAdminService(testAuthConfig(), repo)

		_, err := svc.Register(context.Background(), "pastor", "flock1234")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, apperrors.ToDomainError(err).HTTPStatus)
	})

	t.Run("blank credentials are rejected", func(t *testing.T) {
		svc := NewAdminService(testAuthConfig(), newFakeAdminRepo())

		_, err := svc.Register(context.Background(), "  ", "")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
	})
}

func TestAdminLogin(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewAdminService(testAuthConfig(), repo)
	_, err := svc.Register(context.Background(), "pastor", "flock1234")
	require.NoError(t, err)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		view, token, expiresAt, err := svc.Login(context.Background(), "pastor", "flock1234")
		require.NoError(t, err)
		assert.Equal(t, "pastor", view.Username)
		assert.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(48*time.Hour), expiresAt, time.Minute)

		claims, err := svc.TokenManager().ParseToken(token)
		require.NoError(t, err)
		assert.True(t, claims.IsAdmin)
		assert.Equal(t, view.ID, claims.AdminID())
	})

	t.Run("unknown username is 404", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), "nobody", "flock1234")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), "pastor", "wrong")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(err).HTTPStatus)
	})
}
