// Package web renders the server-side HTML views. Templates are embedded and
// parsed once at startup: every page is a clone of the shared layout plus its
// own content block; stream templates render Turbo fragment updates without
// the layout.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/gibugumi/cms/internal/model"
)

//go:embed templates
var templateFS embed.FS

// TurboStreamMIME marks a client capable of fragment updates.
const TurboStreamMIME = "text/vnd.turbo-stream.html"

// ViewData is the context every layout render receives.
type ViewData struct {
	Title       string
	Locale      string
	Locales     []string
	Flash       *Flash
	SocialLinks []*model.SocialLink
	Admin       bool
	Content     any
}

// ContactForm carries the contact form's values, errors, and spam-gate fields
// into the form template.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string

	Errors    []string
	Token     string
	Honeypots []string
}

// ContactStream is the data for the Turbo fragment response: the flash region
// and the contact_form region are replaced together.
type ContactStream struct {
	Flash *Flash
	Form  *ContactForm
}

// Renderer holds the parsed templates.
type Renderer struct {
	pages   map[string]*template.Template
	streams *template.Template
}

// NewRenderer parses every embedded template.
func NewRenderer() (*Renderer, error) {
	pageFiles, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, file := range pageFiles {
		t, err := template.ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials/*.html",
			file,
		)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		pages[name] = t
	}

	streams, err := template.ParseFS(templateFS,
		"templates/partials/*.html",
		"templates/streams/*.html",
	)
	if err != nil {
		return nil, err
	}

	return &Renderer{pages: pages, streams: streams}, nil
}

// Render writes a full page wrapped in the layout.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data *ViewData) {
	t, ok := r.pages[page]
	if !ok {
		slog.Error("render: unknown page template", "page", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout.html", data); err != nil {
		slog.Error("render: execute failed", "page", page, "error", err)
	}
}

// RenderStream writes a Turbo fragment response.
func (r *Renderer) RenderStream(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", TurboStreamMIME+"; charset=utf-8")
	if err := r.streams.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("render: stream execute failed", "stream", name, "error", err)
	}
}

// WantsTurboStream reports whether the client declared fragment-update
// capability in its Accept header.
func WantsTurboStream(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), TurboStreamMIME)
}
