package session

import (
	"context"
	"errors"
	"time"

	"magicwriting/internal/logger"
	"magicwriting/internal/models"
	"magicwriting/internal/security"
)

// Manager creates, loads and expires sessions on top of a Store
type Manager struct {
	store    Store
	duration time.Duration
	log      *logger.Logger
	now      func() time.Time
}

// NewManager creates a manager whose sessions live for duration
func NewManager(store Store, duration time.Duration, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.NewNop()
	}
	return &Manager{store: store, duration: duration, log: log, now: time.Now}
}

// Create starts a fresh session and stores it
func (m *Manager) Create(ctx context.Context) (*models.Session, error) {
	sess := models.NewSession(security.GenerateSessionID(), m.now(), m.duration)
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Load returns the live session with id, or nil when it is missing or expired
func (m *Manager) Load(ctx context.Context, id string) (*models.Session, error) {
	if id == "" {
		return nil, nil
	}
	sess, err := m.store.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if sess.ExpiredAt(m.now()) {
		_ = m.store.Delete(ctx, id)
		return nil, nil
	}
	return sess, nil
}

// Save writes the session back to the store
func (m *Manager) Save(ctx context.Context, sess *models.Session) error {
	return m.store.Save(ctx, sess)
}

// Destroy removes the session and all the history it holds
func (m *Manager) Destroy(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}

// CleanupExpired sweeps expired sessions from the store
func (m *Manager) CleanupExpired(ctx context.Context) (int, error) {
	return m.store.CleanupExpired(ctx)
}

// RunCleanup sweeps expired sessions every interval until ctx is done
func (m *Manager) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := m.store.CleanupExpired(ctx)
			if err != nil {
				m.log.Error("Error cleaning up expired sessions", "error", err)
				continue
			}
			if n > 0 {
				m.log.Info("Cleaned up expired sessions", "count", n)
			}
		}
	}
}
