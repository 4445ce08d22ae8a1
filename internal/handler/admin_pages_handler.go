package handler

import (
	"errors"
	"net/http"

	"github.com/gibugumi/cms/internal/model"
	"github.com/gibugumi/cms/internal/repository"
	"github.com/gibugumi/cms/internal/web"
)

// AdminPagesHandler is the back-office CRUD for CMS pages.
type AdminPagesHandler struct {
	pages repository.PageRepository
	views *ViewBuilder
}

func NewAdminPagesHandler(pages repository.PageRepository, views *ViewBuilder) *AdminPagesHandler {
	return &AdminPagesHandler{pages: pages, views: views}
}

type pagesIndexContent struct {
	Pages []*model.Page
}

type pageFormContent struct {
	Page   *model.Page
	Action string
	Error  string
}

// Index handles GET /admin/pages.
func (h *AdminPagesHandler) Index(w http.ResponseWriter, r *http.Request) {
	pages, err := h.pages.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.views.render(w, r, http.StatusOK, "admin_pages_index", "Pages", pagesIndexContent{Pages: pages})
}

// New handles GET /admin/pages/new.
func (h *AdminPagesHandler) New(w http.ResponseWriter, r *http.Request) {
	h.views.render(w, r, http.StatusOK, "admin_page_form", "New page", pageFormContent{
		Page:   &model.Page{Locale: "en"},
		Action: "/admin/pages",
	})
}

// Edit handles GET /admin/pages/{id}/edit.
func (h *AdminPagesHandler) Edit(w http.ResponseWriter, r *http.Request) {
	page, err := h.pages.FindByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.views.render(w, r, http.StatusOK, "admin_page_form", "Edit page", pageFormContent{
		Page:   page,
		Action: "/admin/pages/" + page.ID,
	})
}

// Create handles POST /admin/pages.
func (h *AdminPagesHandler) Create(w http.ResponseWriter, r *http.Request) {
	page := &model.Page{}
	if !h.bindForm(w, r, page) {
		return
	}

	if err := h.pages.Create(r.Context(), page); err != nil {
		h.views.render(w, r, http.StatusUnprocessableEntity, "admin_page_form", "New page", pageFormContent{
			Page:   page,
			Action: "/admin/pages",
			Error:  "Page could not be saved: " + err.Error(),
		})
		return
	}

	web.SetFlash(w, "notice", "Page was successfully created.")
	http.Redirect(w, r, "/admin/pages", http.StatusSeeOther)
}

// Update handles POST /admin/pages/{id}.
func (h *AdminPagesHandler) Update(w http.ResponseWriter, r *http.Request) {
	page := &model.Page{ID: r.PathValue("id")}
	if !h.bindForm(w, r, page) {
		return
	}

	err := h.pages.Update(r.Context(), page)
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.views.render(w, r, http.StatusUnprocessableEntity, "admin_page_form", "Edit page", pageFormContent{
			Page:   page,
			Action: "/admin/pages/" + page.ID,
			Error:  "Page could not be saved: " + err.Error(),
		})
		return
	}

	web.SetFlash(w, "notice", "Page was successfully updated.")
	http.Redirect(w, r, "/admin/pages", http.StatusSeeOther)
}

// Delete handles POST /admin/pages/{id}/delete.
func (h *AdminPagesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.pages.Delete(r.Context(), r.PathValue("id"))
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	web.SetFlash(w, "notice", "Page was successfully deleted.")
	http.Redirect(w, r, "/admin/pages", http.StatusSeeOther)
}

func (h *AdminPagesHandler) bindForm(w http.ResponseWriter, r *http.Request, page *model.Page) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return false
	}
	page.Title = r.PostFormValue("title")
	page.Slug = r.PostFormValue("slug")
	page.Published = r.PostFormValue("published") == "1"
	page.Locale = r.PostFormValue("locale")
	page.Content = r.PostFormValue("content")
	return true
}
