package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/church-cms/internal/domain"
)

// BulletinRepository defines persistence access for bulletins.
type BulletinRepository interface {
	Create(ctx context.Context, bulletin *domain.Bulletin) error
	List(ctx context.Context) ([]domain.Bulletin, error)
	Delete(ctx context.Context, id string) error
}

type bulletinRepository struct {
	pool *pgxpool.Pool
}

// NewBulletinRepository returns a Postgres-backed implementation.
func NewBulletinRepository(pool *pgxpool.Pool) BulletinRepository {
	return &bulletinRepository{pool: pool}
}

func (r *bulletinRepository) Create(ctx context.Context, bulletin *domain.Bulletin) error {
	const query = `
        INSERT INTO bulletins (title, description, file)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		bulletin.Title,
		bulletin.Description,
		bulletin.File,
	).Scan(&bulletin.ID, &bulletin.CreatedAt)
}

func (r *bulletinRepository) List(ctx context.Context) ([]domain.Bulletin, error) {
	const query = `
        SELECT id, title, COALESCE(description, ''), COALESCE(file, ''), created_at
        FROM bulletins ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bulletins []domain.Bulletin
	for rows.Next() {
		var bulletin domain.Bulletin
		if err := rows.Scan(
			&bulletin.ID,
			&bulletin.Title,
			&bulletin.Description,
			&bulletin.File,
			&bulletin.CreatedAt,
		); err != nil {
			return nil, err
		}
		bulletins = append(bulletins, bulletin)
	}
	return bulletins, rows.Err()
}

func (r *bulletinRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM bulletins WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
