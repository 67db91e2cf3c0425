package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/church-cms/internal/domain"
)

// GalleryRepository defines persistence access for gallery images.
type GalleryRepository interface {
	Create(ctx context.Context, image *domain.GalleryImage) error
	List(ctx context.Context) ([]domain.GalleryImage, error)
	GetByID(ctx context.Context, id string) (*domain.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

type galleryRepository struct {
	pool *pgxpool.Pool
}

// NewGalleryRepository returns a Postgres-backed implementation.
func NewGalleryRepository(pool *pgxpool.Pool) GalleryRepository {
	return &galleryRepository{pool: pool}
}

func (r *galleryRepository) Create(ctx context.Context, image *domain.GalleryImage) error {
	const query = `
        INSERT INTO gallery_images (url, caption)
        VALUES ($1, $2)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		image.URL,
		image.Caption,
	).Scan(&image.ID, &image.CreatedAt)
}

func (r *galleryRepository) List(ctx context.Context) ([]domain.GalleryImage, error) {
	const query = `
        SELECT id, url, COALESCE(caption, ''), created_at
        FROM gallery_images ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []domain.GalleryImage
	for rows.Next() {
		var image domain.GalleryImage
		if err := rows.Scan(&image.ID, &image.URL, &image.Caption, &image.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	return images, rows.Err()
}

func (r *galleryRepository) GetByID(ctx context.Context, id string) (*domain.GalleryImage, error) {
	const query = `
        SELECT id, url, COALESCE(caption, ''), created_at
        FROM gallery_images WHERE id=$1`

	var image domain.GalleryImage
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&image.ID,
		&image.URL,
		&image.Caption,
		&image.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *galleryRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM gallery_images WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
