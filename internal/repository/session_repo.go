package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"magicwriting/internal/database"
	"magicwriting/internal/models"
)

// SessionRepository persists writer sessions as JSON documents
type SessionRepository struct {
	db database.DBTX
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db database.DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

// Get returns the session with id, or nil if it does not exist or has expired
func (r *SessionRepository) Get(ctx context.Context, id string, now time.Time) (*models.Session, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		"SELECT data FROM sessions WHERE id = ? AND expires_at > ?",
		id, now.Unix(),
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	sess := &models.Session{}
	if err := json.Unmarshal([]byte(data), sess); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return sess, nil
}

// Save inserts or replaces the session row
func (r *SessionRepository) Save(ctx context.Context, sess *models.Session, now time.Time) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	_, err = r.db.ExecContext(ctx, r.db.GetDialect().UpsertSessionQuery(),
		sess.ID, string(data), sess.ExpiresAt.Unix(), now.Unix())
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes the session
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	return err
}

// DeleteExpired purges sessions that expired at or before now
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at <= ?", now.Unix())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Count returns the number of stored sessions, expired or not
func (r *SessionRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(&n)
	return n, err
}
