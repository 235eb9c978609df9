package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	emailAndPasswordValidMessage = "Email and password are valid. Please complete the remaining fields correctly."
	genericFailureMessage        = "Something went wrong. Please try again later."
)

type bannerKind string

const (
	bannerSuccess bannerKind = "success"
	bannerInfo    bannerKind = "info"
	bannerError   bannerKind = "error"
)

type banner struct {
	Kind          bannerKind
	Message       string
	ShowUsersLink bool
}

// render executes the named template into a buffer first so a template
// failure never leaves a half-written page behind.
func render(w http.ResponseWriter, log *zap.SugaredLogger, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Errorw("failed to render template", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
