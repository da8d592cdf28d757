package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"magicwriting/internal/logger"
	"magicwriting/internal/models"
	"magicwriting/internal/security"
	"magicwriting/internal/session"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const SessionContextKey ContextKey = "session"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	sessions *session.Manager
	signer   *security.SessionSigner
	csrf     *security.CSRFGenerator
	limiter  *security.RateLimiter
	log      *logger.Logger
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(sessions *session.Manager, signer *security.SessionSigner, csrf *security.CSRFGenerator, limiter *security.RateLimiter, log *logger.Logger) *Middleware {
	return &Middleware{
		sessions: sessions,
		signer:   signer,
		csrf:     csrf,
		limiter:  limiter,
		log:      log,
	}
}

// Session loads the visitor's session, creating one on first contact, and
// saves it once the handler returns.
func (m *Middleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := m.loadFromCookie(ctx, r)

		if sess == nil {
			created, err := m.sessions.Create(ctx)
			if err != nil {
				respondWithError(w, m.log, http.StatusServiceUnavailable, ErrSessionUnavailable, "Failed to create session", err)
				return
			}
			token, err := m.signer.Sign(created.ID, created.ExpiresAt)
			if err != nil {
				respondWithError(w, m.log, http.StatusInternalServerError, ErrInternalServerError, "Failed to sign session cookie", err)
				return
			}
			http.SetCookie(w, security.CreateSessionCookie(r, SessionCookieName, token, created.ExpiresAt))
			sess = created
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, SessionContextKey, sess)))

		if sess.ID == "" {
			// destroyed by the handler
			return
		}
		if err := m.sessions.Save(context.WithoutCancel(ctx), sess); err != nil {
			m.log.Error("Failed to save session", "session", sess.ID, "error", err)
		}
	})
}

func (m *Middleware) loadFromCookie(ctx context.Context, r *http.Request) *models.Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}
	id, err := m.signer.Verify(cookie.Value)
	if err != nil {
		m.log.Debug("Ignoring invalid session cookie", "error", err)
		return nil
	}
	sess, err := m.sessions.Load(ctx, id)
	if err != nil {
		m.log.Warn("Failed to load session", "session", id, "error", err)
		return nil
	}
	return sess
}

// CSRFProtect rejects form posts whose token does not belong to the session
func (m *Middleware) CSRFProtect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := GetSessionFromContext(r.Context())
		if sess == nil {
			http.Error(w, ErrForbidden, http.StatusForbidden)
			return
		}
		token := r.Header.Get(CSRFHeader)
		if token == "" {
			token = r.FormValue(CSRFFormField)
		}
		if !m.csrf.ValidateToken(sess.ID, token) {
			m.log.Warn("CSRF token mismatch", "path", r.URL.Path, "ip", security.GetClientIP(r))
			http.Error(w, ErrForbidden, http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

// RequireJSON rejects API writes that are not JSON. Browsers cannot send a
// cross-origin JSON body without a preflight, so this stands in for a form token.
func RequireJSON(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
			respondJSON(w, http.StatusUnsupportedMediaType, apiError{Error: "Content-Type must be application/json"})
			return
		}
		next(w, r)
	}
}

// RateLimit limits how often one client may hit generation endpoints
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := security.GetClientIP(r)
		if !m.limiter.Allow(ip) {
			m.log.Warn("Rate limit exceeded", "ip", ip, "path", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			http.Error(w, ErrTooManyRequests, http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Logging middleware logs HTTP requests
func Logging(log *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// GetSessionFromContext retrieves the visitor session from the request context
func GetSessionFromContext(ctx context.Context) *models.Session {
	sess, ok := ctx.Value(SessionContextKey).(*models.Session)
	if !ok {
		return nil
	}
	return sess
}
