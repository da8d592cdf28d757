package handlers

import (
	"net/http"

	"magicwriting/internal/library"
	"magicwriting/internal/models"
	"magicwriting/internal/security"
	"magicwriting/internal/service"
	"magicwriting/internal/session"
)

// PageHandler serves the home and history pages and resets sessions
type PageHandler struct {
	rd       *Renderer
	sessions *session.Manager
	email    *service.EmailService
}

// NewPageHandler creates a new page handler
func NewPageHandler(rd *Renderer, sessions *session.Manager, email *service.EmailService) *PageHandler {
	return &PageHandler{rd: rd, sessions: sessions, email: email}
}

// Home shows the landing page
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	sess := h.rd.sessionOr500(w, r)
	if sess == nil {
		return
	}
	h.rd.render(w, "home.tmpl", HomeViewData{
		PageData: h.rd.pageData(sess, models.PageHome, "首页"),
		Themes:   library.Themes(),
	})
}

// History lists the writing and evaluation records of this session
func (h *PageHandler) History(w http.ResponseWriter, r *http.Request) {
	sess := h.rd.sessionOr500(w, r)
	if sess == nil {
		return
	}
	h.rd.render(w, "history.tmpl", HistoryViewData{
		PageData:     h.rd.pageData(sess, models.PageHistory, "我的记录"),
		Writings:     sess.WritingHistory,
		Evaluations:  sess.EvaluationHistory,
		EmailEnabled: h.email.IsEnabled(),
	})
}

// Reset discards the session and all its history
func (h *PageHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess := h.rd.sessionOr500(w, r)
	if sess == nil {
		return
	}
	if err := h.sessions.Destroy(r.Context(), sess.ID); err != nil {
		respondWithError(w, h.rd.log, http.StatusInternalServerError, ErrInternalServerError, "Failed to destroy session", err)
		return
	}
	// an empty ID tells the session middleware not to save it back
	sess.ID = ""
	http.SetCookie(w, security.CreateDeleteCookie(r, SessionCookieName))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
