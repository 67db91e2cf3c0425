package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/repository"
	"github.com/spec-kit/church-cms/internal/storage"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// GalleryService coordinates gallery image management.
type GalleryService struct {
	gallery  repository.GalleryRepository
	store    *storage.LocalStore
	maxBytes int64
}

// NewGalleryService constructs the service.
func NewGalleryService(gallery repository.GalleryRepository, store *storage.LocalStore, maxBytes int64) *GalleryService {
	return &GalleryService{gallery: gallery, store: store, maxBytes: maxBytes}
}

// Upload stores an image on disk and records it in the gallery.
func (s *GalleryService) Upload(ctx context.Context, caption string, file *multipart.FileHeader) (*domain.GalleryImage, error) {
	if file == nil {
		return nil, apperrors.NewValidationError("no image uploaded", nil)
	}

	stored, err := s.store.SaveImage(file, s.maxBytes)
	if err != nil {
		return nil, err
	}

	image := &domain.GalleryImage{URL: stored.URL, Caption: strings.TrimSpace(caption)}
	if err := s.gallery.Create(ctx, image); err != nil {
		_ = s.store.DeleteByURL(stored.URL)
		return nil, apperrors.NewInternalError(err)
	}
	return image, nil
}

// List returns all gallery images, newest first.
func (s *GalleryService) List(ctx context.Context) ([]domain.GalleryImage, error) {
	images, err := s.gallery.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return images, nil
}

// Delete removes a gallery record and its file on disk.
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	image, err := s.gallery.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("image", nil)
		}
		return apperrors.NewInternalError(err)
	}

	if err := s.gallery.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("image", nil)
		}
		return apperrors.NewInternalError(err)
	}

	// Best effort: an orphaned file is preferable to a dangling DB record.
	_ = s.store.DeleteByURL(image.URL)
	return nil
}
