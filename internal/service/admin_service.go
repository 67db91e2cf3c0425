package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/church-cms/internal/auth"
	"github.com/spec-kit/church-cms/internal/config"
	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/repository"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// AdminView is the non-sensitive account projection returned on login.
type AdminView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AdminService coordinates registration and login for the admin account.
type AdminService struct {
	admins     repository.AdminRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAdminService builds the service.
func NewAdminService(cfg config.AuthConfig, admins repository.AdminRepository) *AdminService {
	return &AdminService{
		admins:     admins,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates the admin account. Registration is a one-time bootstrap
// operation: once any admin exists the endpoint is closed, since it carries
// no authentication guard of its own.
func (s *AdminService) Register(ctx context.Context, username, password string) (*domain.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("username and password are required", nil)
	}

	count, err := s.admins.Count(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if count > 0 {
		return nil, apperrors.NewForbidden("registration is disabled")
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	admin := &domain.Admin{Username: username, PasswordHash: hash}
	if err := s.admins.Create(ctx, admin); err != nil {
		// The unique constraint on username is the only serialization point
		// between concurrent registrations: exactly one wins.
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("admin already exists", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return admin, nil
}

// Login authenticates the admin and issues a bearer token valid for the
// configured window (two days by default). The token always embeds the
// admin privilege claim explicitly.
func (s *AdminService) Login(ctx context.Context, username, password string) (*AdminView, string, time.Time, error) {
	if username == "" || password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("username and password are required", nil)
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewNotFound("admin", nil)
		}
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(admin.ID, true)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	return &AdminView{ID: admin.ID, Username: admin.Username}, token, expiresAt, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AdminService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
