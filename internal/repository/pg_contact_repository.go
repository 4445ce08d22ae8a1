package repository

import (
	"context"

	"github.com/gibugumi/cms/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_messages row and populates msg.ID and CreatedAt
// from the RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, subject, message)
		 VALUES ($1, $2, NULLIF($3, ''), $4)
		 RETURNING id, created_at`,
		msg.Name, msg.Email, msg.Subject, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
}

// List returns contact messages newest first.
func (r *PgContactRepository) List(ctx context.Context, limit, offset int) ([]*model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, COALESCE(subject, ''), message, created_at
		 FROM contact_messages
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// Count returns the total number of stored contact messages.
func (r *PgContactRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n)
	return n, err
}
