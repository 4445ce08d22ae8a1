package handler

import (
	"errors"
	"net/http"

	"github.com/gibugumi/cms/internal/service"
	"github.com/gibugumi/cms/pkg/auth"
)

// AdminAuthHandler serves the back-office login/logout flow.
type AdminAuthHandler struct {
	authService   service.AuthService
	sessionSecret []byte
	views         *ViewBuilder
}

func NewAdminAuthHandler(authService service.AuthService, sessionSecret []byte, views *ViewBuilder) *AdminAuthHandler {
	return &AdminAuthHandler{authService: authService, sessionSecret: sessionSecret, views: views}
}

type loginContent struct {
	Email string
	Error string
}

// LoginForm handles GET /admin/login.
func (h *AdminAuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.views.render(w, r, http.StatusOK, "admin_login", "Admin Login", loginContent{})
}

// Login handles POST /admin/login.
func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	admin, err := h.authService.Authenticate(r.Context(), email, password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		h.views.render(w, r, http.StatusUnprocessableEntity, "admin_login", "Admin Login", loginContent{
			Email: email,
			Error: "Invalid email or password.",
		})
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	auth.SetSessionCookie(w, admin.ID, h.sessionSecret)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout handles POST /admin/logout.
func (h *AdminAuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}
