package repository

import (
	"context"
	"errors"

	"github.com/gibugumi/cms/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgSocialLinkRepository is the PostgreSQL implementation of SocialLinkRepository.
type PgSocialLinkRepository struct {
	pool *pgxpool.Pool
}

func NewPgSocialLinkRepository(pool *pgxpool.Pool) *PgSocialLinkRepository {
	return &PgSocialLinkRepository{pool: pool}
}

var _ SocialLinkRepository = (*PgSocialLinkRepository)(nil)

// List returns all social links ordered by name.
func (r *PgSocialLinkRepository) List(ctx context.Context) ([]*model.SocialLink, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, url FROM social_links ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []*model.SocialLink
	for rows.Next() {
		var l model.SocialLink
		if err := rows.Scan(&l.ID, &l.Name, &l.URL); err != nil {
			return nil, err
		}
		links = append(links, &l)
	}
	return links, rows.Err()
}

func (r *PgSocialLinkRepository) FindByID(ctx context.Context, id string) (*model.SocialLink, error) {
	var l model.SocialLink
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, url FROM social_links WHERE id = $1`, id,
	).Scan(&l.ID, &l.Name, &l.URL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PgSocialLinkRepository) Create(ctx context.Context, l *model.SocialLink) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO social_links (name, url) VALUES ($1, $2) RETURNING id`,
		l.Name, l.URL,
	).Scan(&l.ID)
}

func (r *PgSocialLinkRepository) Update(ctx context.Context, l *model.SocialLink) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE social_links SET name = $2, url = $3 WHERE id = $1`,
		l.ID, l.Name, l.URL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgSocialLinkRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM social_links WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
