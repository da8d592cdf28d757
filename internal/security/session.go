package security

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidSessionToken is returned for cookies that fail signature, expiry or shape checks
var ErrInvalidSessionToken = errors.New("invalid session token")

const sessionIssuer = "magicwriting"

// GenerateSessionID creates a new UUID for session identification
func GenerateSessionID() string {
	return uuid.New().String()
}

// SessionSigner wraps session IDs in short HS256 tokens so a forged or
// guessed cookie value never reaches the session store.
type SessionSigner struct {
	key []byte
	now func() time.Time
}

// NewSessionSigner derives the signing key from the application secret
func NewSessionSigner(secret []byte) (*SessionSigner, error) {
	key, err := DeriveKey(secret, PurposeSessionCookie)
	if err != nil {
		return nil, err
	}
	return &SessionSigner{key: key, now: time.Now}, nil
}

// Sign returns a token carrying sessionID that expires at expires
func (s *SessionSigner) Sign(sessionID string, expires time.Time) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("session ID is required")
	}
	claims := jwt.RegisteredClaims{
		Issuer:    sessionIssuer,
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(s.now()),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Verify checks the token and returns the session ID it carries
func (s *SessionSigner) Verify(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidSessionToken
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", ErrInvalidSessionToken
	}
	return claims.Subject, nil
}

// IsSecureRequest determines if the request is over HTTPS, directly or behind a proxy
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if r.Header.Get("X-Forwarded-Proto") == "https" {
		return true
	}
	return r.URL.Scheme == "https"
}

// CreateSessionCookie creates a session cookie with proper security flags
func CreateSessionCookie(r *http.Request, name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
}

// CreateDeleteCookie creates a cookie that clears name
func CreateDeleteCookie(r *http.Request, name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
}
