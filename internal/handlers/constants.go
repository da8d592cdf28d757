package handlers

const (
	SessionCookieName = "mw_session"
	CSRFFormField     = "csrf_token"
	CSRFHeader        = "X-CSRF-Token"

	ErrInvalidFormData     = "Invalid form data"
	ErrInvalidRequest      = "Invalid request"
	ErrForbidden           = "Forbidden"
	ErrTooManyRequests     = "Too many requests, please slow down"
	ErrInternalServerError = "Internal server error"
	ErrSessionUnavailable  = "Session unavailable"
)
