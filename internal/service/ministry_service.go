package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/repository"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// MinistryService coordinates ministry workflows.
type MinistryService struct {
	ministries repository.MinistryRepository
}

// MinistryInput describes a create/update payload.
type MinistryInput struct {
	Name        string
	Leader      string
	Description string
}

// NewMinistryService constructs the service.
func NewMinistryService(ministries repository.MinistryRepository) *MinistryService {
	return &MinistryService{ministries: ministries}
}

// Create adds a ministry.
func (s *MinistryService) Create(ctx context.Context, input MinistryInput) (*domain.Ministry, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Leader) == "" {
		return nil, apperrors.NewValidationError("name and leader are required", nil)
	}

	ministry := &domain.Ministry{
		Name:        strings.TrimSpace(input.Name),
		Leader:      strings.TrimSpace(input.Leader),
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.ministries.Create(ctx, ministry); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return ministry, nil
}

// List returns all ministries.
func (s *MinistryService) List(ctx context.Context) ([]domain.Ministry, error) {
	ministries, err := s.ministries.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return ministries, nil
}

// Update modifies a ministry by id.
func (s *MinistryService) Update(ctx context.Context, id string, input MinistryInput) (*domain.Ministry, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Leader) == "" {
		return nil, apperrors.NewValidationError("name and leader are required", nil)
	}

	ministry := &domain.Ministry{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Leader:      strings.TrimSpace(input.Leader),
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.ministries.Update(ctx, ministry); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ministry", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return ministry, nil
}

// Delete removes a ministry by id.
func (s *MinistryService) Delete(ctx context.Context, id string) error {
	if err := s.ministries.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("ministry", nil)
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}
