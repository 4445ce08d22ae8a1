package handler

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gibugumi/cms/internal/model"
	"github.com/gibugumi/cms/internal/repository"
	"github.com/gibugumi/cms/internal/service"
)

// PublicHandler renders the public marketing pages with locale-scoped content.
type PublicHandler struct {
	content service.ContentService
	views   *ViewBuilder
}

func NewPublicHandler(content service.ContentService, views *ViewBuilder) *PublicHandler {
	return &PublicHandler{content: content, views: views}
}

type homeContent struct {
	Services     []*model.Service
	Testimonials []*model.Testimonial
}

// Home handles GET /.
func (h *PublicHandler) Home(w http.ResponseWriter, r *http.Request) {
	locale := LocaleFromContext(r.Context())

	services, err := h.content.ServicesByLocale(r.Context(), locale)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	testimonials, err := h.content.TestimonialsByLocale(r.Context(), locale)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.views.render(w, r, http.StatusOK, "home", "GIBU Gumi", homeContent{
		Services:     services,
		Testimonials: testimonials,
	})
}

// About handles GET /about.
func (h *PublicHandler) About(w http.ResponseWriter, r *http.Request) {
	h.views.render(w, r, http.StatusOK, "about", "About", nil)
}

// Services handles GET /services.
func (h *PublicHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.content.ServicesByLocale(r.Context(), LocaleFromContext(r.Context()))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.views.render(w, r, http.StatusOK, "services", "Services", homeContent{Services: services})
}

// Testimonials handles GET /testimonials.
func (h *PublicHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.content.TestimonialsByLocale(r.Context(), LocaleFromContext(r.Context()))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.views.render(w, r, http.StatusOK, "testimonials", "Testimonials", homeContent{Testimonials: testimonials})
}

type pageContent struct {
	Page *model.Page
	// Body is admin-authored HTML, rendered unescaped.
	Body template.HTML
}

// Page handles GET /pages/{slug}: published CMS pages only.
func (h *PublicHandler) Page(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	page, err := h.content.PageBySlug(r.Context(), slug)
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.views.render(w, r, http.StatusOK, "page", page.Title, pageContent{
		Page: page,
		Body: template.HTML(page.Content),
	})
}
