package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/church-cms/internal/domain"
)

// MinistryRepository defines persistence access for ministries.
type MinistryRepository interface {
	Create(ctx context.Context, ministry *domain.Ministry) error
	Update(ctx context.Context, ministry *domain.Ministry) error
	List(ctx context.Context) ([]domain.Ministry, error)
	Delete(ctx context.Context, id string) error
}

type ministryRepository struct {
	pool *pgxpool.Pool
}

// NewMinistryRepository returns a Postgres-backed implementation.
func NewMinistryRepository(pool *pgxpool.Pool) MinistryRepository {
	return &ministryRepository{pool: pool}
}

func (r *ministryRepository) Create(ctx context.Context, ministry *domain.Ministry) error {
	const query = `
        INSERT INTO ministries (name, leader, description)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		ministry.Name,
		ministry.Leader,
		ministry.Description,
	).Scan(&ministry.ID, &ministry.CreatedAt)
}

func (r *ministryRepository) Update(ctx context.Context, ministry *domain.Ministry) error {
	const query = `
        UPDATE ministries SET name=$1, leader=$2, description=$3
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		ministry.Name,
		ministry.Leader,
		ministry.Description,
		ministry.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ministryRepository) List(ctx context.Context) ([]domain.Ministry, error) {
	const query = `
        SELECT id, name, leader, COALESCE(description, ''), created_at
        FROM ministries ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ministries []domain.Ministry
	for rows.Next() {
		var ministry domain.Ministry
		if err := rows.Scan(
			&ministry.ID,
			&ministry.Name,
			&ministry.Leader,
			&ministry.Description,
			&ministry.CreatedAt,
		); err != nil {
			return nil, err
		}
		ministries = append(ministries, ministry)
	}
	return ministries, rows.Err()
}

func (r *ministryRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM ministries WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
