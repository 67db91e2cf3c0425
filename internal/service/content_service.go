package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/microcosm-cc/bluemonday"

	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/repository"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// ContentService manages static site sections (about, mission, etc.).
type ContentService struct {
	content   repository.ContentRepository
	sanitizer *bluemonday.Policy
}

// NewContentService constructs the service.
func NewContentService(content repository.ContentRepository) *ContentService {
	return &ContentService{content: content, sanitizer: bluemonday.UGCPolicy()}
}

// List returns every content section.
func (s *ContentService) List(ctx context.Context) ([]domain.ContentSection, error) {
	sections, err := s.content.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return sections, nil
}

// Get returns a single section by name.
func (s *ContentService) Get(ctx context.Context, name string) (*domain.ContentSection, error) {
	section, err := s.content.GetBySection(ctx, strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("section", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return section, nil
}

// Upsert creates or replaces a section's content.
func (s *ContentService) Upsert(ctx context.Context, name, title, body string) (*domain.ContentSection, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return nil, apperrors.NewValidationError("section, title and body are required", nil)
	}

	section := &domain.ContentSection{
		Section: name,
		Title:   strings.TrimSpace(title),
		Body:    s.sanitizer.Sanitize(body),
	}
	if err := s.content.Upsert(ctx, section); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return section, nil
}
