package repository

import (
	"context"

	"github.com/gibugumi/cms/internal/model"
)

// TestimonialRepository defines persistence for testimonials.
type TestimonialRepository interface {
	List(ctx context.Context) ([]*model.Testimonial, error)
	ListByLocale(ctx context.Context, locale string) ([]*model.Testimonial, error)
	FindByID(ctx context.Context, id string) (*model.Testimonial, error)
	Create(ctx context.Context, t *model.Testimonial) error
	Update(ctx context.Context, t *model.Testimonial) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
