package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/events"
	"github.com/spec-kit/church-cms/internal/repository"
	"github.com/spec-kit/church-cms/internal/storage"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// BulletinService coordinates bulletin publication.
type BulletinService struct {
	bulletins  repository.BulletinRepository
	store      *storage.LocalStore
	maxBytes   int64
	dispatcher events.Dispatcher
}

// NewBulletinService constructs the service.
func NewBulletinService(bulletins repository.BulletinRepository, store *storage.LocalStore, maxBytes int64, dispatcher events.Dispatcher) *BulletinService {
	return &BulletinService{bulletins: bulletins, store: store, maxBytes: maxBytes, dispatcher: dispatcher}
}

// Create publishes a bulletin with an optional attached document.
func (s *BulletinService) Create(ctx context.Context, title, description string, file *multipart.FileHeader) (*domain.Bulletin, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.NewValidationError("title is required", nil)
	}

	bulletin := &domain.Bulletin{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
	if file != nil {
		stored, err := s.store.SaveDocument(file, s.maxBytes)
		if err != nil {
			return nil, err
		}
		bulletin.File = stored.URL
	}

	if err := s.bulletins.Create(ctx, bulletin); err != nil {
		if bulletin.File != "" {
			_ = s.store.DeleteByURL(bulletin.File)
		}
		return nil, apperrors.NewInternalError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventBulletinPublished,
			Timestamp: time.Now(),
			Payload:   events.BulletinPublishedPayload{BulletinID: bulletin.ID, Title: bulletin.Title},
		})
	}
	return bulletin, nil
}

// List returns all bulletins, newest first.
func (s *BulletinService) List(ctx context.Context) ([]domain.Bulletin, error) {
	bulletins, err := s.bulletins.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return bulletins, nil
}

// Delete removes a bulletin by id.
func (s *BulletinService) Delete(ctx context.Context, id string) error {
	if err := s.bulletins.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("bulletin", nil)
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}
