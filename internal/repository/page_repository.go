package repository

import (
	"context"

	"github.com/gibugumi/cms/internal/model"
)

// PageRepository defines persistence for CMS pages.
type PageRepository interface {
	List(ctx context.Context) ([]*model.Page, error)
	FindByID(ctx context.Context, id string) (*model.Page, error)
	// FindPublishedBySlug resolves a public page; unpublished pages behave as
	// if they do not exist.
	FindPublishedBySlug(ctx context.Context, slug string) (*model.Page, error)
	Create(ctx context.Context, p *model.Page) error
	Update(ctx context.Context, p *model.Page) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
