package repository

import (
	"context"

	"github.com/gibugumi/cms/internal/model"
)

// ContactRepository defines persistence for contact messages. Submissions are
// insert-only; listing and counting exist for the admin back-office.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context, limit, offset int) ([]*model.ContactMessage, error)
	Count(ctx context.Context) (int, error)
}
