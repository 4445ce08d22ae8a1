package service

import (
	"context"

	"github.com/gibugumi/cms/internal/model"
	"github.com/gibugumi/cms/internal/repository"
)

// contentServiceImpl is the production implementation of ContentService.
type contentServiceImpl struct {
	services     repository.ServiceRepository
	testimonials repository.TestimonialRepository
	pages        repository.PageRepository
	socialLinks  repository.SocialLinkRepository
}

// NewContentService creates a ContentService over the given repositories.
func NewContentService(
	services repository.ServiceRepository,
	testimonials repository.TestimonialRepository,
	pages repository.PageRepository,
	socialLinks repository.SocialLinkRepository,
) ContentService {
	return &contentServiceImpl{
		services:     services,
		testimonials: testimonials,
		pages:        pages,
		socialLinks:  socialLinks,
	}
}

func (s *contentServiceImpl) ServicesByLocale(ctx context.Context, locale string) ([]*model.Service, error) {
	return s.services.ListByLocale(ctx, locale)
}

func (s *contentServiceImpl) TestimonialsByLocale(ctx context.Context, locale string) ([]*model.Testimonial, error) {
	return s.testimonials.ListByLocale(ctx, locale)
}

func (s *contentServiceImpl) PageBySlug(ctx context.Context, slug string) (*model.Page, error) {
	return s.pages.FindPublishedBySlug(ctx, slug)
}

func (s *contentServiceImpl) SocialLinks(ctx context.Context) ([]*model.SocialLink, error) {
	return s.socialLinks.List(ctx)
}
