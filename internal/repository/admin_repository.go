package repository

import (
	"context"

	"github.com/gibugumi/cms/internal/model"
)

// AdminRepository defines persistence for back-office users.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	FindByID(ctx context.Context, id string) (*model.Admin, error)
	Create(ctx context.Context, a *model.Admin) error
}
