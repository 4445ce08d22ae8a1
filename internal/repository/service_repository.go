package repository

import (
	"context"

	"github.com/gibugumi/cms/internal/model"
)

// ServiceRepository defines persistence for service offerings.
type ServiceRepository interface {
	List(ctx context.Context) ([]*model.Service, error)
	// ListByLocale returns the services shown on the public site for one
	// locale, ordered by position.
	ListByLocale(ctx context.Context, locale string) ([]*model.Service, error)
	FindByID(ctx context.Context, id string) (*model.Service, error)
	Create(ctx context.Context, s *model.Service) error
	Update(ctx context.Context, s *model.Service) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
