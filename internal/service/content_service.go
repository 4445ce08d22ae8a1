package service

import (
	"context"

	"github.com/gibugumi/cms/internal/model"
)

// ContentService serves the public site's locale-scoped content.
type ContentService interface {
	ServicesByLocale(ctx context.Context, locale string) ([]*model.Service, error)
	TestimonialsByLocale(ctx context.Context, locale string) ([]*model.Testimonial, error)
	// PageBySlug resolves a published CMS page; unpublished pages are
	// repository.ErrNotFound to the public site.
	PageBySlug(ctx context.Context, slug string) (*model.Page, error)
	SocialLinks(ctx context.Context) ([]*model.SocialLink, error)
}
