package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/church-cms/internal/domain"
)

// BlogRepository defines persistence access for blog posts.
type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) error
	Update(ctx context.Context, blog *domain.Blog) error
	GetBySlug(ctx context.Context, slug string) (*domain.Blog, error)
	List(ctx context.Context) ([]domain.Blog, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type blogRepository struct {
	pool *pgxpool.Pool
}

// NewBlogRepository returns a Postgres-backed implementation.
func NewBlogRepository(pool *pgxpool.Pool) BlogRepository {
	return &blogRepository{pool: pool}
}

func (r *blogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	const query = `
        INSERT INTO blogs (title, slug, content, author, image)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		blog.Title,
		blog.Slug,
		blog.Content,
		blog.Author,
		blog.Image,
	).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)
}

func (r *blogRepository) Update(ctx context.Context, blog *domain.Blog) error {
	const query = `
        UPDATE blogs SET title=$1, slug=$2, content=$3, author=$4, image=$5, updated_at=NOW()
        WHERE id=$6
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		blog.Title,
		blog.Slug,
		blog.Content,
		blog.Author,
		blog.Image,
		blog.ID,
	).Scan(&blog.UpdatedAt)
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	const query = `
        SELECT id, title, slug, content, author, COALESCE(image, ''), created_at, updated_at
        FROM blogs WHERE slug=$1`

	var blog domain.Blog
	if err := r.pool.QueryRow(ctx, query, slug).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Slug,
		&blog.Content,
		&blog.Author,
		&blog.Image,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) List(ctx context.Context) ([]domain.Blog, error) {
	const query = `
        SELECT id, title, slug, content, author, COALESCE(image, ''), created_at, updated_at
        FROM blogs ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []domain.Blog
	for rows.Next() {
		var blog domain.Blog
		if err := rows.Scan(
			&blog.ID,
			&blog.Title,
			&blog.Slug,
			&blog.Content,
			&blog.Author,
			&blog.Image,
			&blog.CreatedAt,
			&blog.UpdatedAt,
		); err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, rows.Err()
}

func (r *blogRepository) DeleteBySlug(ctx context.Context, slug string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE slug=$1`, slug)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
