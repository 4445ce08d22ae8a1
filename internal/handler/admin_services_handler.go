package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gibugumi/cms/internal/model"
	"github.com/gibugumi/cms/internal/repository"
	"github.com/gibugumi/cms/internal/storage"
	"github.com/gibugumi/cms/internal/web"
)

// AdminServicesHandler is the back-office CRUD for service entries.
// Icon images go through Storage and are served under /uploads/.
type AdminServicesHandler struct {
	services repository.ServiceRepository
	store    storage.Storage
	views    *ViewBuilder
}

func NewAdminServicesHandler(services repository.ServiceRepository, store storage.Storage, views *ViewBuilder) *AdminServicesHandler {
	return &AdminServicesHandler{services: services, store: store, views: views}
}

type servicesIndexContent struct {
	Services []*model.Service
}

type serviceFormContent struct {
	Service *model.Service
	Action  string
	Error   string
}

// Index handles GET /admin/services.
func (h *AdminServicesHandler) Index(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.views.render(w, r, http.StatusOK, "admin_services_index", "Services", servicesIndexContent{Services: services})
}

// New handles GET /admin/services/new.
func (h *AdminServicesHandler) New(w http.ResponseWriter, r *http.Request) {
	h.views.render(w, r, http.StatusOK, "admin_service_form", "New service", serviceFormContent{
		Service: &model.Service{Locale: "en"},
		Action:  "/admin/services",
	})
}

// Edit handles GET /admin/services/{id}/edit.
func (h *AdminServicesHandler) Edit(w http.ResponseWriter, r *http.Request) {
	svc, err := h.services.FindByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.views.render(w, r, http.StatusOK, "admin_service_form", "Edit service", serviceFormContent{
		Service: svc,
		Action:  "/admin/services/" + svc.ID,
	})
}

// Create handles POST /admin/services (multipart, optional icon).
func (h *AdminServicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	svc := &model.Service{}
	if ok, msg := h.bindForm(r, svc); !ok {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "New service", svc, "/admin/services", msg)
		return
	}

	if err := h.services.Create(r.Context(), svc); err != nil {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "New service", svc, "/admin/services",
			"Service could not be saved: "+err.Error())
		return
	}

	web.SetFlash(w, "notice", "Service was successfully created.")
	http.Redirect(w, r, "/admin/services", http.StatusSeeOther)
}

// Update handles POST /admin/services/{id} (multipart, optional icon).
func (h *AdminServicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, err := h.services.FindByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	svc := &model.Service{ID: existing.ID, IconURL: existing.IconURL}
	action := "/admin/services/" + svc.ID
	if ok, msg := h.bindForm(r, svc); !ok {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "Edit service", svc, action, msg)
		return
	}

	if err := h.services.Update(r.Context(), svc); err != nil {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "Edit service", svc, action,
			"Service could not be saved: "+err.Error())
		return
	}

	web.SetFlash(w, "notice", "Service was successfully updated.")
	http.Redirect(w, r, "/admin/services", http.StatusSeeOther)
}

// Delete handles POST /admin/services/{id}/delete.
func (h *AdminServicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.services.Delete(r.Context(), r.PathValue("id"))
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	web.SetFlash(w, "notice", "Service was successfully deleted.")
	http.Redirect(w, r, "/admin/services", http.StatusSeeOther)
}

// bindForm reads the multipart form into svc. An uploaded icon replaces
// IconURL; without one the pre-set value stays.
func (h *AdminServicesHandler) bindForm(r *http.Request, svc *model.Service) (bool, string) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return false, "Form could not be read: " + err.Error()
	}

	svc.Title = r.PostFormValue("title")
	svc.Description = r.PostFormValue("description")
	svc.Locale = r.PostFormValue("locale")
	if pos, err := strconv.Atoi(r.PostFormValue("position")); err == nil {
		svc.Position = pos
	}

	url, err := saveUpload(r, h.store, "icon", "services")
	if err != nil {
		return false, "Icon could not be saved: " + err.Error()
	}
	if url != "" {
		svc.IconURL = url
	}
	return true, ""
}

func (h *AdminServicesHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, title string, svc *model.Service, action, msg string) {
	h.views.render(w, r, status, "admin_service_form", title, serviceFormContent{
		Service: svc,
		Action:  action,
		Error:   msg,
	})
}
