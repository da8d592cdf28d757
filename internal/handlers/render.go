package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"magicwriting/internal/logger"
	"magicwriting/internal/models"
	"magicwriting/internal/security"
	"magicwriting/internal/service"
)

// Renderer builds the common page data and executes page templates
type Renderer struct {
	templates *template.Template
	csrf      *security.CSRFGenerator
	assistant *service.AssistantService
	log       *logger.Logger
}

// NewRenderer creates a renderer
func NewRenderer(templates *template.Template, csrf *security.CSRFGenerator, assistant *service.AssistantService, log *logger.Logger) *Renderer {
	return &Renderer{templates: templates, csrf: csrf, assistant: assistant, log: log}
}

// pageData records page as the session's current page and returns the shared view data
func (rd *Renderer) pageData(sess *models.Session, page models.Page, title string) PageData {
	sess.Page = page
	token, err := rd.csrf.GenerateToken(sess.ID)
	if err != nil {
		rd.log.Error("Failed to generate CSRF token", "error", err)
	}
	return PageData{
		Title:     title,
		Page:      page,
		Nav:       buildNav(page),
		Offline:   rd.assistant.Mode() == service.ModeOffline,
		CSRFToken: token,
		GameScore: sess.GameScore,
	}
}

func (rd *Renderer) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := rd.templates.ExecuteTemplate(&buf, name, data); err != nil {
		respondWithError(w, rd.log, http.StatusInternalServerError, ErrInternalServerError, "Error rendering "+name, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// sessionOr500 returns the request's session or writes an error
func (rd *Renderer) sessionOr500(w http.ResponseWriter, r *http.Request) *models.Session {
	sess := GetSessionFromContext(r.Context())
	if sess == nil {
		respondWithError(w, rd.log, http.StatusInternalServerError, ErrSessionUnavailable, "", nil)
	}
	return sess
}
