package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/microcosm-cc/bluemonday"

	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/events"
	"github.com/spec-kit/church-cms/internal/repository"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a title into a lowercase, hyphen-separated URL slug.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStrip.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// BlogService coordinates blog post workflows.
type BlogService struct {
	blogs      repository.BlogRepository
	sanitizer  *bluemonday.Policy
	dispatcher events.Dispatcher
}

// BlogInput describes a create/update payload.
type BlogInput struct {
	Title   string
	Content string
	Author  string
	Image   string
}

// NewBlogService constructs the service. Post content is sanitized with a
// UGC policy before persistence so stored HTML is safe to render as-is.
func NewBlogService(blogs repository.BlogRepository, dispatcher events.Dispatcher) *BlogService {
	return &BlogService{
		blogs:      blogs,
		sanitizer:  bluemonday.UGCPolicy(),
		dispatcher: dispatcher,
	}
}

// Create publishes a new blog post with a slug derived from its title.
func (s *BlogService) Create(ctx context.Context, input BlogInput) (*domain.Blog, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.NewValidationError("title and content are required", nil)
	}

	author := strings.TrimSpace(input.Author)
	if author == "" {
		author = "Admin"
	}

	blog := &domain.Blog{
		Title:   strings.TrimSpace(input.Title),
		Slug:    Slugify(input.Title),
		Content: s.sanitizer.Sanitize(input.Content),
		Author:  author,
		Image:   input.Image,
	}
	if err := s.blogs.Create(ctx, blog); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("a post with this title already exists", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventBlogPublished,
			Timestamp: time.Now(),
			Payload:   events.BlogPublishedPayload{BlogID: blog.ID, Title: blog.Title, Slug: blog.Slug},
		})
	}
	return blog, nil
}

// List returns all posts, newest first.
func (s *BlogService) List(ctx context.Context) ([]domain.Blog, error) {
	blogs, err := s.blogs.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return blogs, nil
}

// GetBySlug returns a single post.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	blog, err := s.blogs.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("blog", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return blog, nil
}

// Update replaces a post identified by its current slug; the slug is
// re-derived from the new title.
func (s *BlogService) Update(ctx context.Context, slug string, input BlogInput) (*domain.Blog, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.NewValidationError("title and content are required", nil)
	}

	blog, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	blog.Title = strings.TrimSpace(input.Title)
	blog.Slug = Slugify(input.Title)
	blog.Content = s.sanitizer.Sanitize(input.Content)
	if author := strings.TrimSpace(input.Author); author != "" {
		blog.Author = author
	}
	if input.Image != "" {
		blog.Image = input.Image
	}

	if err := s.blogs.Update(ctx, blog); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("a post with this title already exists", nil)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("blog", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return blog, nil
}

// Delete removes a post by slug.
func (s *BlogService) Delete(ctx context.Context, slug string) error {
	if err := s.blogs.DeleteBySlug(ctx, slug); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("blog", nil)
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}
