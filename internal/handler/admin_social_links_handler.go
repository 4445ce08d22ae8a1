package handler

import (
	"errors"
	"net/http"

	"github.com/gibugumi/cms/internal/model"
	"github.com/gibugumi/cms/internal/repository"
	"github.com/gibugumi/cms/internal/web"
)

// AdminSocialLinksHandler is the back-office CRUD for footer social links.
type AdminSocialLinksHandler struct {
	links repository.SocialLinkRepository
	views *ViewBuilder
}

func NewAdminSocialLinksHandler(links repository.SocialLinkRepository, views *ViewBuilder) *AdminSocialLinksHandler {
	return &AdminSocialLinksHandler{links: links, views: views}
}

type socialLinksIndexContent struct {
	SocialLinks []*model.SocialLink
}

type socialLinkFormContent struct {
	SocialLink *model.SocialLink
	Action     string
	Error      string
}

// Index handles GET /admin/social-links.
func (h *AdminSocialLinksHandler) Index(w http.ResponseWriter, r *http.Request) {
	links, err := h.links.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.views.render(w, r, http.StatusOK, "admin_social_links_index", "Social links", socialLinksIndexContent{SocialLinks: links})
}

// New handles GET /admin/social-links/new.
func (h *AdminSocialLinksHandler) New(w http.ResponseWriter, r *http.Request) {
	h.views.render(w, r, http.StatusOK, "admin_social_link_form", "New social link", socialLinkFormContent{
		SocialLink: &model.SocialLink{},
		Action:     "/admin/social-links",
	})
}

// Edit handles GET /admin/social-links/{id}/edit.
func (h *AdminSocialLinksHandler) Edit(w http.ResponseWriter, r *http.Request) {
	link, err := h.links.FindByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.views.render(w, r, http.StatusOK, "admin_social_link_form", "Edit social link", socialLinkFormContent{
		SocialLink: link,
		Action:     "/admin/social-links/" + link.ID,
	})
}

// Create handles POST /admin/social-links.
func (h *AdminSocialLinksHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	link := &model.SocialLink{Name: r.PostFormValue("name"), URL: r.PostFormValue("url")}

	if err := h.links.Create(r.Context(), link); err != nil {
		h.views.render(w, r, http.StatusUnprocessableEntity, "admin_social_link_form", "New social link", socialLinkFormContent{
			SocialLink: link,
			Action:     "/admin/social-links",
			Error:      "Social link could not be saved: " + err.Error(),
		})
		return
	}

	web.SetFlash(w, "notice", "Social link was successfully created.")
	http.Redirect(w, r, "/admin/social-links", http.StatusSeeOther)
}

// Update handles POST /admin/social-links/{id}.
func (h *AdminSocialLinksHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	link := &model.SocialLink{
		ID:   r.PathValue("id"),
		Name: r.PostFormValue("name"),
		URL:  r.PostFormValue("url"),
	}

	err := h.links.Update(r.Context(), link)
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.views.render(w, r, http.StatusUnprocessableEntity, "admin_social_link_form", "Edit social link", socialLinkFormContent{
			SocialLink: link,
			Action:     "/admin/social-links/" + link.ID,
			Error:      "Social link could not be saved: " + err.Error(),
		})
		return
	}

	web.SetFlash(w, "notice", "Social link was successfully updated.")
	http.Redirect(w, r, "/admin/social-links", http.StatusSeeOther)
}

// Delete handles POST /admin/social-links/{id}/delete.
func (h *AdminSocialLinksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.links.Delete(r.Context(), r.PathValue("id"))
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	web.SetFlash(w, "notice", "Social link was successfully deleted.")
	http.Redirect(w, r, "/admin/social-links", http.StatusSeeOther)
}
