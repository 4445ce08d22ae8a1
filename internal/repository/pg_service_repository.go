package repository

import (
	"context"
	"errors"

	"github.com/gibugumi/cms/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgServiceRepository is the PostgreSQL implementation of ServiceRepository.
type PgServiceRepository struct {
	pool *pgxpool.Pool
}

func NewPgServiceRepository(pool *pgxpool.Pool) *PgServiceRepository {
	return &PgServiceRepository{pool: pool}
}

var _ ServiceRepository = (*PgServiceRepository)(nil)

const serviceColumns = `id, title, description, "position", locale, COALESCE(icon_url, ''), created_at, updated_at`

func scanService(row pgx.Row) (*model.Service, error) {
	var s model.Service
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Position, &s.Locale, &s.IconURL, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgServiceRepository) queryServices(ctx context.Context, query string, args ...any) ([]*model.Service, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*model.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *PgServiceRepository) List(ctx context.Context) ([]*model.Service, error) {
	return r.queryServices(ctx,
		`SELECT `+serviceColumns+` FROM services ORDER BY "position" ASC, created_at ASC`)
}

func (r *PgServiceRepository) ListByLocale(ctx context.Context, locale string) ([]*model.Service, error) {
	return r.queryServices(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE locale = $1 ORDER BY "position" ASC, created_at ASC`, locale)
}

func (r *PgServiceRepository) FindByID(ctx context.Context, id string) (*model.Service, error) {
	return scanService(r.pool.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
}

func (r *PgServiceRepository) Create(ctx context.Context, s *model.Service) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO services (title, description, "position", locale, icon_url)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		 RETURNING id, created_at, updated_at`,
		s.Title, s.Description, s.Position, s.Locale, s.IconURL,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *PgServiceRepository) Update(ctx context.Context, s *model.Service) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE services
		 SET title = $2, description = $3, "position" = $4, locale = $5,
		     icon_url = NULLIF($6, ''), updated_at = now()
		 WHERE id = $1`,
		s.ID, s.Title, s.Description, s.Position, s.Locale, s.IconURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgServiceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgServiceRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&n)
	return n, err
}
