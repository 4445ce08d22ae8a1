package repository

import (
	"context"
	"errors"

	"github.com/gibugumi/cms/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgTestimonialRepository is the PostgreSQL implementation of TestimonialRepository.
type PgTestimonialRepository struct {
	pool *pgxpool.Pool
}

func NewPgTestimonialRepository(pool *pgxpool.Pool) *PgTestimonialRepository {
	return &PgTestimonialRepository{pool: pool}
}

var _ TestimonialRepository = (*PgTestimonialRepository)(nil)

const testimonialColumns = `id, name, quote, locale, COALESCE(avatar_url, ''), created_at, updated_at`

func scanTestimonial(row pgx.Row) (*model.Testimonial, error) {
	var t model.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Quote, &t.Locale, &t.AvatarURL, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PgTestimonialRepository) queryTestimonials(ctx context.Context, query string, args ...any) ([]*model.Testimonial, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []*model.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

func (r *PgTestimonialRepository) List(ctx context.Context) ([]*model.Testimonial, error) {
	return r.queryTestimonials(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials ORDER BY created_at DESC`)
}

func (r *PgTestimonialRepository) ListByLocale(ctx context.Context, locale string) ([]*model.Testimonial, error) {
	return r.queryTestimonials(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE locale = $1 ORDER BY created_at DESC`, locale)
}

func (r *PgTestimonialRepository) FindByID(ctx context.Context, id string) (*model.Testimonial, error) {
	return scanTestimonial(r.pool.QueryRow(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id))
}

func (r *PgTestimonialRepository) Create(ctx context.Context, t *model.Testimonial) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO testimonials (name, quote, locale, avatar_url)
		 VALUES ($1, $2, $3, NULLIF($4, ''))
		 RETURNING id, created_at, updated_at`,
		t.Name, t.Quote, t.Locale, t.AvatarURL,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *PgTestimonialRepository) Update(ctx context.Context, t *model.Testimonial) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE testimonials
		 SET name = $2, quote = $3, locale = $4, avatar_url = NULLIF($5, ''), updated_at = now()
		 WHERE id = $1`,
		t.ID, t.Name, t.Quote, t.Locale, t.AvatarURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgTestimonialRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgTestimonialRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM testimonials`).Scan(&n)
	return n, err
}
