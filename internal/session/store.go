// Package session keeps per-visitor writing state. A session is created on the
// first request, carried in a signed cookie, and discarded when it expires.
package session

import (
	"context"
	"errors"

	"magicwriting/internal/models"
)

// ErrNotFound is returned when a session does not exist or has expired
var ErrNotFound = errors.New("session not found")

// Store persists sessions until they expire
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, sess *models.Session) error
	Delete(ctx context.Context, id string) error
	// CleanupExpired removes expired sessions and reports how many were removed
	CleanupExpired(ctx context.Context) (int, error)
}
