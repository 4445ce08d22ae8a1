package handler

import (
	"errors"
	"net/http"

	"github.com/gibugumi/cms/internal/model"
	"github.com/gibugumi/cms/internal/repository"
	"github.com/gibugumi/cms/internal/storage"
	"github.com/gibugumi/cms/internal/web"
)

// AdminTestimonialsHandler is the back-office CRUD for testimonials.
// Avatar images go through Storage, same as service icons.
type AdminTestimonialsHandler struct {
	testimonials repository.TestimonialRepository
	store        storage.Storage
	views        *ViewBuilder
}

func NewAdminTestimonialsHandler(testimonials repository.TestimonialRepository, store storage.Storage, views *ViewBuilder) *AdminTestimonialsHandler {
	return &AdminTestimonialsHandler{testimonials: testimonials, store: store, views: views}
}

type testimonialsIndexContent struct {
	Testimonials []*model.Testimonial
}

type testimonialFormContent struct {
	Testimonial *model.Testimonial
	Action      string
	Error       string
}

// Index handles GET /admin/testimonials.
func (h *AdminTestimonialsHandler) Index(w http.ResponseWriter, r *http.Request) {
	list, err := h.testimonials.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.views.render(w, r, http.StatusOK, "admin_testimonials_index", "Testimonials", testimonialsIndexContent{Testimonials: list})
}

// New handles GET /admin/testimonials/new.
func (h *AdminTestimonialsHandler) New(w http.ResponseWriter, r *http.Request) {
	h.views.render(w, r, http.StatusOK, "admin_testimonial_form", "New testimonial", testimonialFormContent{
		Testimonial: &model.Testimonial{Locale: "en"},
		Action:      "/admin/testimonials",
	})
}

// Edit handles GET /admin/testimonials/{id}/edit.
func (h *AdminTestimonialsHandler) Edit(w http.ResponseWriter, r *http.Request) {
	t, err := h.testimonials.FindByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.views.render(w, r, http.StatusOK, "admin_testimonial_form", "Edit testimonial", testimonialFormContent{
		Testimonial: t,
		Action:      "/admin/testimonials/" + t.ID,
	})
}

// Create handles POST /admin/testimonials (multipart, optional avatar).
func (h *AdminTestimonialsHandler) Create(w http.ResponseWriter, r *http.Request) {
	t := &model.Testimonial{}
	if ok, msg := h.bindForm(r, t); !ok {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "New testimonial", t, "/admin/testimonials", msg)
		return
	}

	if err := h.testimonials.Create(r.Context(), t); err != nil {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "New testimonial", t, "/admin/testimonials",
			"Testimonial could not be saved: "+err.Error())
		return
	}

	web.SetFlash(w, "notice", "Testimonial was successfully created.")
	http.Redirect(w, r, "/admin/testimonials", http.StatusSeeOther)
}

// Update handles POST /admin/testimonials/{id} (multipart, optional avatar).
func (h *AdminTestimonialsHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, err := h.testimonials.FindByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	t := &model.Testimonial{ID: existing.ID, AvatarURL: existing.AvatarURL}
	action := "/admin/testimonials/" + t.ID
	if ok, msg := h.bindForm(r, t); !ok {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "Edit testimonial", t, action, msg)
		return
	}

	if err := h.testimonials.Update(r.Context(), t); err != nil {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "Edit testimonial", t, action,
			"Testimonial could not be saved: "+err.Error())
		return
	}

	web.SetFlash(w, "notice", "Testimonial was successfully updated.")
	http.Redirect(w, r, "/admin/testimonials", http.StatusSeeOther)
}

// Delete handles POST /admin/testimonials/{id}/delete.
func (h *AdminTestimonialsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.testimonials.Delete(r.Context(), r.PathValue("id"))
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	web.SetFlash(w, "notice", "Testimonial was successfully deleted.")
	http.Redirect(w, r, "/admin/testimonials", http.StatusSeeOther)
}

func (h *AdminTestimonialsHandler) bindForm(r *http.Request, t *model.Testimonial) (bool, string) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return false, "Form could not be read: " + err.Error()
	}

	t.Name = r.PostFormValue("name")
	t.Quote = r.PostFormValue("quote")
	t.Locale = r.PostFormValue("locale")

	url, err := saveUpload(r, h.store, "avatar", "testimonials")
	if err != nil {
		return false, "Avatar could not be saved: " + err.Error()
	}
	if url != "" {
		t.AvatarURL = url
	}
	return true, ""
}

func (h *AdminTestimonialsHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, title string, t *model.Testimonial, action, msg string) {
	h.views.render(w, r, status, "admin_testimonial_form", title, testimonialFormContent{
		Testimonial: t,
		Action:      action,
		Error:       msg,
	})
}
