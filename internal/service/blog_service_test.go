package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/church-cms/internal/domain"
	"github.com/spec-kit/church-cms/internal/events"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

type fakeBlogRepo struct {
	bySlug map[string]*domain.Blog
	nextID int
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{bySlug: map[string]*domain.Blog{}}
}

func (r *fakeBlogRepo) Create(_ context.Context, blog *domain.Blog) error {
	r.nextID++
	blog.ID = "blog-" + string(rune('0'+r.nextID))
	r.bySlug[blog.Slug] = blog
	return nil
}

func (r *fakeBlogRepo) Update(_ context.Context, blog *domain.Blog) error {
	for slug, existing := range r.bySlug {
		if existing.ID == blog.ID {
			delete(r.bySlug, slug)
			r.bySlug[blog.Slug] = blog
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeBlogRepo) GetBySlug(_ context.Context, slug string) (*domain.Blog, error) {
	blog, ok := r.bySlug[slug]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *blog
	return &copied, nil
}

func (r *fakeBlogRepo) List(_ context.Context) ([]domain.Blog, error) {
	blogs := make([]domain.Blog, 0, len(r.bySlug))
	for _, blog := range r.bySlug {
		blogs = append(blogs, *blog)
	}
	return blogs, nil
}

func (r *fakeBlogRepo) DeleteBySlug(_ context.Context, slug string) error {
	if _, ok := r.bySlug[slug]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.bySlug, slug)
	return nil
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Sunday Service Times", "sunday-service-times"},
		{"  Easter 2025: He Is Risen!  ", "easter-2025-he-is-risen"},
		{"---", ""},
		{"Already-Slugged", "already-slugged"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.input), "input %q", tc.input)
	}
}

func TestBlogCreate(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo, events.NewInMemoryDispatcher())

	t.Run("derives slug and sanitizes content", func(t *testing.T) {
		blog, err := svc.Create(context.Background(), BlogInput{
			Title:   "Welcome to Our Church!",
			Content: `<p>Hello</p><script>alert("xss")</script>`,
		})
		require.NoError(t, err)
		assert.Equal(t, "welcome-to-our-church", blog.Slug)
		assert.Contains(t, blog.Content, "<p>Hello</p>")
		assert.NotContains(t, blog.Content, "<script>")
		assert.Equal(t, "Admin", blog.Author)
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		_, err := svc.Create(context.Background(), BlogInput{Content: "body"})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
	})
}

func TestBlogUpdate(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo, events.NewInMemoryDispatcher())

	created, err := svc.Create(context.Background(), BlogInput{
		Title:   "Original Title",
		Content: "original body",
		Author:  "Jordan",
	})
	require.NoError(t, err)

	t.Run("re-derives slug from new title", func(t *testing.T) {
		updated, err := svc.Update(context.Background(), created.Slug, BlogInput{
			Title:   "Brand New Title",
			Content: "new body",
		})
		require.NoError(t, err)
		assert.Equal(t, "brand-new-title", updated.Slug)
		assert.Equal(t, "Jordan", updated.Author, "blank author leaves the existing one")

		_, err = svc.GetBySlug(context.Background(), "original-title")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
	})

	t.Run("unknown slug is 404", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "missing", BlogInput{Title: "T", Content: "C"})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
	})
}

func TestBlogDelete(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo, events.NewInMemoryDispatcher())

	created, err := svc.Create(context.Background(), BlogInput{Title: "To Remove", Content: "body"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.Slug))

	err = svc.Delete(context.Background(), created.Slug)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}
