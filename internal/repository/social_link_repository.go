package repository

import (
	"context"

	"github.com/gibugumi/cms/internal/model"
)

// SocialLinkRepository defines persistence for footer social links.
type SocialLinkRepository interface {
	List(ctx context.Context) ([]*model.SocialLink, error)
	FindByID(ctx context.Context, id string) (*model.SocialLink, error)
	Create(ctx context.Context, l *model.SocialLink) error
	Update(ctx context.Context, l *model.SocialLink) error
	Delete(ctx context.Context, id string) error
}
