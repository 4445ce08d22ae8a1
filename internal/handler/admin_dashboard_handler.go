package handler

import (
	"net/http"

	"github.com/gibugumi/cms/internal/repository"
)

// AdminDashboardHandler shows record counts for the back-office landing page.
type AdminDashboardHandler struct {
	pages        repository.PageRepository
	services     repository.ServiceRepository
	testimonials repository.TestimonialRepository
	contacts     repository.ContactRepository
	views        *ViewBuilder
}

func NewAdminDashboardHandler(
	pages repository.PageRepository,
	services repository.ServiceRepository,
	testimonials repository.TestimonialRepository,
	contacts repository.ContactRepository,
	views *ViewBuilder,
) *AdminDashboardHandler {
	return &AdminDashboardHandler{
		pages:        pages,
		services:     services,
		testimonials: testimonials,
		contacts:     contacts,
		views:        views,
	}
}

type dashboardContent struct {
	Pages           int
	Services        int
	Testimonials    int
	ContactMessages int
}

// Index handles GET /admin.
func (h *AdminDashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var c dashboardContent
	var err error

	if c.Pages, err = h.pages.Count(ctx); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if c.Services, err = h.services.Count(ctx); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if c.Testimonials, err = h.testimonials.Count(ctx); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if c.ContactMessages, err = h.contacts.Count(ctx); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.views.render(w, r, http.StatusOK, "admin_dashboard", "Dashboard", c)
}
