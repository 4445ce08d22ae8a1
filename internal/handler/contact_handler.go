package handler

import (
	"net/http"

	"github.com/gibugumi/cms/internal/service"
	"github.com/gibugumi/cms/internal/spam"
	"github.com/gibugumi/cms/internal/web"
)

// ContactHandler serves the contact form and runs submissions through the
// pipeline. The orchestration itself lives in service.ContactService; this
// handler only adapts the single Result to the client's transport — a Turbo
// fragment update or a redirect/full render.
type ContactHandler struct {
	svc   service.ContactService
	gate  *spam.Gate
	views *ViewBuilder
}

func NewContactHandler(svc service.ContactService, gate *spam.Gate, views *ViewBuilder) *ContactHandler {
	return &ContactHandler{svc: svc, gate: gate, views: views}
}

// New handles GET /contact-form.
func (h *ContactHandler) New(w http.ResponseWriter, r *http.Request) {
	h.views.render(w, r, http.StatusOK, "contact_new", "Contact", h.emptyForm())
}

// Create handles POST /contact-messages.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	locale := LocaleFromContext(r.Context())

	honeypots := make([]string, 0, len(spam.HoneypotFields))
	for _, field := range spam.HoneypotFields {
		honeypots = append(honeypots, r.PostFormValue(field))
	}

	sub := service.ContactSubmission{
		Name:      r.PostFormValue("name"),
		Email:     r.PostFormValue("email"),
		Subject:   r.PostFormValue("subject"),
		Message:   r.PostFormValue("message"),
		SpamToken: r.PostFormValue(spam.TokenField),
		Honeypots: honeypots,
		Locale:    locale,
	}

	res := h.svc.Submit(r.Context(), sub)

	switch res.Status {
	case service.StatusSuccess:
		notice := h.views.bundle.T(locale, "contact.flash.success")
		if web.WantsTurboStream(r) {
			h.views.renderer.RenderStream(w, "contact_stream", web.ContactStream{
				Flash: &web.Flash{Kind: "notice", Text: notice},
				Form:  h.emptyForm(),
			})
			return
		}
		web.SetFlash(w, "notice", notice)
		http.Redirect(w, r, "/", http.StatusSeeOther)

	case service.StatusInvalid:
		form := h.formFrom(sub)
		form.Errors = res.Errors
		if web.WantsTurboStream(r) {
			h.views.renderer.RenderStream(w, "contact_stream", web.ContactStream{Form: form})
			return
		}
		h.views.render(w, r, http.StatusUnprocessableEntity, "contact_new", "Contact", form)

	default: // service.StatusFailed
		alert := h.views.bundle.Tf(locale, "contact.flash.failure",
			map[string]string{"error": res.Err.Error()})
		form := h.formFrom(sub)
		if web.WantsTurboStream(r) {
			h.views.renderer.RenderStream(w, "contact_stream", web.ContactStream{
				Flash: &web.Flash{Kind: "alert", Text: alert},
				Form:  form,
			})
			return
		}
		data := h.views.data(w, r, "Contact", form)
		data.Flash = &web.Flash{Kind: "alert", Text: alert}
		h.views.renderer.Render(w, http.StatusInternalServerError, "contact_new", data)
	}
}

func (h *ContactHandler) emptyForm() *web.ContactForm {
	return &web.ContactForm{
		Token:     h.gate.Token(),
		Honeypots: spam.HoneypotFields,
	}
}

// formFrom rebuilds the form with the submitted values and a fresh token so
// the user can correct and resubmit.
func (h *ContactHandler) formFrom(sub service.ContactSubmission) *web.ContactForm {
	return &web.ContactForm{
		Name:      sub.Name,
		Email:     sub.Email,
		Subject:   sub.Subject,
		Message:   sub.Message,
		Token:     h.gate.Token(),
		Honeypots: spam.HoneypotFields,
	}
}
