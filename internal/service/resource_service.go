package service

import (
	"context"
	"errors"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/repository"
	"github.com/spec-kit/church-cms/internal/storage"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// ResourceList bundles resources with their counts.
type ResourceList struct {
	Resources []domain.Resource    `json:"resources"`
	Stats     domain.ResourceStats `json:"stats"`
}

// ResourceService coordinates document and link resources.
type ResourceService struct {
	resources repository.ResourceRepository
	store     *storage.LocalStore
	maxBytes  int64
}

// ResourceInput describes a create/update payload.
type ResourceInput struct {
	Title       string
	Description string
	Type        string
	Link        string
	File        *multipart.FileHeader
}

// NewResourceService constructs the service.
func NewResourceService(resources repository.ResourceRepository, store *storage.LocalStore, maxBytes int64) *ResourceService {
	return &ResourceService{resources: resources, store: store, maxBytes: maxBytes}
}

func (s *ResourceService) resolveLink(input ResourceInput) (string, error) {
	switch domain.ResourceType(input.Type) {
	case domain.ResourceTypeFile:
		if input.File == nil {
			return "", apperrors.NewValidationError("please upload a file for file-type resources", nil)
		}
		stored, err := s.store.SaveDocument(input.File, s.maxBytes)
		if err != nil {
			return "", err
		}
		return stored.URL, nil
	case domain.ResourceTypeLink:
		if input.Link == "" {
			return "", apperrors.NewValidationError("please provide a link for link-type resources", nil)
		}
		parsed, err := url.ParseRequestURI(input.Link)
		if err != nil || parsed.Host == "" {
			return "", apperrors.NewValidationError("please provide a valid URL", nil)
		}
		return input.Link, nil
	default:
		return "", apperrors.NewValidationError(`type must be either "file" or "link"`, nil)
	}
}

// Create adds a resource, storing the uploaded document when type is file.
func (s *ResourceService) Create(ctx context.Context, input ResourceInput) (*domain.Resource, error) {
	if strings.TrimSpace(input.Title) == "" || input.Type == "" {
		return nil, apperrors.NewValidationError("title and type are required", nil)
	}

	link, err := s.resolveLink(input)
	if err != nil {
		return nil, err
	}

	resource := &domain.Resource{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Link:        link,
		Type:        domain.ResourceType(input.Type),
	}
	if err := s.resources.Create(ctx, resource); err != nil {
		_ = s.store.DeleteByURL(link)
		return nil, apperrors.NewInternalError(err)
	}
	return resource, nil
}

// List returns all resources plus file/link counts.
func (s *ResourceService) List(ctx context.Context) (*ResourceList, error) {
	resources, err := s.resources.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	stats := domain.ResourceStats{Total: len(resources)}
	for _, r := range resources {
		if r.Type == domain.ResourceTypeFile {
			stats.Files++
		} else {
			stats.Links++
		}
	}
	if resources == nil {
		resources = []domain.Resource{}
	}
	return &ResourceList{Resources: resources, Stats: stats}, nil
}

// Update modifies a resource; replacing a stored file removes the old one.
func (s *ResourceService) Update(ctx context.Context, id string, input ResourceInput) (*domain.Resource, error) {
	if strings.TrimSpace(input.Title) == "" || input.Type == "" {
		return nil, apperrors.NewValidationError("title and type are required", nil)
	}

	existing, err := s.resources.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("resource", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}

	link := existing.Link
	replacedFile := false
	switch domain.ResourceType(input.Type) {
	case domain.ResourceTypeFile:
		if input.File != nil {
			stored, err := s.store.SaveDocument(input.File, s.maxBytes)
			if err != nil {
				return nil, err
			}
			link = stored.URL
			replacedFile = true
		} else if existing.Type != domain.ResourceTypeFile {
			return nil, apperrors.NewValidationError("please upload a file for file-type resources", nil)
		}
	case domain.ResourceTypeLink:
		if input.Link == "" {
			return nil, apperrors.NewValidationError("please provide a link for link-type resources", nil)
		}
		parsed, err := url.ParseRequestURI(input.Link)
		if err != nil || parsed.Host == "" {
			return nil, apperrors.NewValidationError("please provide a valid URL", nil)
		}
		link = input.Link
		replacedFile = existing.Type == domain.ResourceTypeFile
	default:
		return nil, apperrors.NewValidationError(`type must be either "file" or "link"`, nil)
	}

	resource := &domain.Resource{
		ID:          id,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Link:        link,
		Type:        domain.ResourceType(input.Type),
		CreatedAt:   existing.CreatedAt,
	}
	if err := s.resources.Update(ctx, resource); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("resource", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}

	if replacedFile {
		_ = s.store.DeleteByURL(existing.Link)
	}
	return resource, nil
}

// Delete removes a resource and its stored file, if any.
func (s *ResourceService) Delete(ctx context.Context, id string) error {
	existing, err := s.resources.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("resource", nil)
		}
		return apperrors.NewInternalError(err)
	}

	if err := s.resources.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("resource", nil)
		}
		return apperrors.NewInternalError(err)
	}

	if existing.Type == domain.ResourceTypeFile {
		_ = s.store.DeleteByURL(existing.Link)
	}
	return nil
}
