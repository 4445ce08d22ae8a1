package repository

import (
	"context"
	"errors"

	"github.com/gibugumi/cms/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgPageRepository is the PostgreSQL implementation of PageRepository.
type PgPageRepository struct {
	pool *pgxpool.Pool
}

func NewPgPageRepository(pool *pgxpool.Pool) *PgPageRepository {
	return &PgPageRepository{pool: pool}
}

var _ PageRepository = (*PgPageRepository)(nil)

const pageColumns = `id, title, slug, published, locale, content, created_at, updated_at`

func scanPage(row pgx.Row) (*model.Page, error) {
	var p model.Page
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Published, &p.Locale, &p.Content, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all pages newest first (admin index ordering).
func (r *PgPageRepository) List(ctx context.Context) ([]*model.Page, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+pageColumns+` FROM pages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*model.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

func (r *PgPageRepository) FindByID(ctx context.Context, id string) (*model.Page, error) {
	return scanPage(r.pool.QueryRow(ctx,
		`SELECT `+pageColumns+` FROM pages WHERE id = $1`, id))
}

func (r *PgPageRepository) FindPublishedBySlug(ctx context.Context, slug string) (*model.Page, error) {
	return scanPage(r.pool.QueryRow(ctx,
		`SELECT `+pageColumns+` FROM pages WHERE slug = $1 AND published`, slug))
}

func (r *PgPageRepository) Create(ctx context.Context, p *model.Page) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO pages (title, slug, published, locale, content)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		p.Title, p.Slug, p.Published, p.Locale, p.Content,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PgPageRepository) Update(ctx context.Context, p *model.Page) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE pages
		 SET title = $2, slug = $3, published = $4, locale = $5, content = $6, updated_at = now()
		 WHERE id = $1`,
		p.ID, p.Title, p.Slug, p.Published, p.Locale, p.Content)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgPageRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgPageRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM pages`).Scan(&n)
	return n, err
}
