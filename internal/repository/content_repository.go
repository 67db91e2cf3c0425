package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/church-cms/internal/domain"
)

// ContentRepository defines persistence access for static site sections.
type ContentRepository interface {
	Upsert(ctx context.Context, section *domain.ContentSection) error
	GetBySection(ctx context.Context, name string) (*domain.ContentSection, error)
	List(ctx context.Context) ([]domain.ContentSection, error)
}

type contentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository returns a Postgres-backed implementation.
func NewContentRepository(pool *pgxpool.Pool) ContentRepository {
	return &contentRepository{pool: pool}
}

func (r *contentRepository) Upsert(ctx context.Context, section *domain.ContentSection) error {
	const query = `
        INSERT INTO content_sections (section, title, body)
        VALUES ($1, $2, $3)
        ON CONFLICT (section) DO UPDATE SET title=EXCLUDED.title, body=EXCLUDED.body, updated_at=NOW()
        RETURNING id, updated_at`

	return r.pool.QueryRow(ctx, query,
		section.Section,
		section.Title,
		section.Body,
	).Scan(&section.ID, &section.UpdatedAt)
}

func (r *contentRepository) GetBySection(ctx context.Context, name string) (*domain.ContentSection, error) {
	const query = `
        SELECT id, section, title, body, updated_at
        FROM content_sections WHERE section=$1`

	var section domain.ContentSection
	if err := r.pool.QueryRow(ctx, query, name).Scan(
		&section.ID,
		&section.Section,
		&section.Title,
		&section.Body,
		&section.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *contentRepository) List(ctx context.Context) ([]domain.ContentSection, error) {
	const query = `
        SELECT id, section, title, body, updated_at
        FROM content_sections ORDER BY section`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []domain.ContentSection
	for rows.Next() {
		var section domain.ContentSection
		if err := rows.Scan(
			&section.ID,
			&section.Section,
			&section.Title,
			&section.Body,
			&section.UpdatedAt,
		); err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, rows.Err()
}
