package handler

import (
	"log/slog"
	"net/http"

	"github.com/gibugumi/cms/internal/i18n"
	"github.com/gibugumi/cms/internal/model"
	"github.com/gibugumi/cms/internal/repository"
	"github.com/gibugumi/cms/internal/web"
	"github.com/gibugumi/cms/pkg/auth"
)

// ViewBuilder assembles the layout context (locale, flash, footer links)
// shared by every rendered page.
type ViewBuilder struct {
	renderer    *web.Renderer
	bundle      *i18n.Bundle
	socialLinks repository.SocialLinkRepository
}

func NewViewBuilder(renderer *web.Renderer, bundle *i18n.Bundle, socialLinks repository.SocialLinkRepository) *ViewBuilder {
	return &ViewBuilder{renderer: renderer, bundle: bundle, socialLinks: socialLinks}
}

// data builds the ViewData for a full-page render, consuming any pending flash.
func (v *ViewBuilder) data(w http.ResponseWriter, r *http.Request, title string, content any) *web.ViewData {
	var links []*model.SocialLink
	if v.socialLinks != nil {
		var err error
		links, err = v.socialLinks.List(r.Context())
		if err != nil {
			slog.Warn("view: loading social links failed", "error", err)
		}
	}

	_, isAdmin := auth.AdminIDFromContext(r.Context())

	return &web.ViewData{
		Title:       title,
		Locale:      LocaleFromContext(r.Context()),
		Locales:     v.bundle.Locales(),
		Flash:       web.TakeFlash(w, r),
		SocialLinks: links,
		Admin:       isAdmin,
		Content:     content,
	}
}

func (v *ViewBuilder) render(w http.ResponseWriter, r *http.Request, status int, page, title string, content any) {
	v.renderer.Render(w, status, page, v.data(w, r, title, content))
}
