package handler

import (
	"net/http"
	"strconv"

	"github.com/gibugumi/cms/internal/model"
	"github.com/gibugumi/cms/internal/repository"
)

// AdminContactsHandler lists received contact messages (read-only).
type AdminContactsHandler struct {
	contacts repository.ContactRepository
	views    *ViewBuilder
}

func NewAdminContactsHandler(contacts repository.ContactRepository, views *ViewBuilder) *AdminContactsHandler {
	return &AdminContactsHandler{contacts: contacts, views: views}
}

type contactsContent struct {
	Messages []*model.ContactMessage
}

// Index handles GET /admin/contact-messages.
func (h *AdminContactsHandler) Index(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			offset = n
		}
	}

	messages, err := h.contacts.List(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.views.render(w, r, http.StatusOK, "admin_contacts_index", "Contact messages", contactsContent{
		Messages: messages,
	})
}
