package session

import (
	"context"
	"time"

	"magicwriting/internal/models"
	"magicwriting/internal/repository"
)

// SQLStore keeps sessions in the sessions table of a SQL database
type SQLStore struct {
	repo *repository.SessionRepository
	now  func() time.Time
}

// NewSQLStore creates a store backed by repo
func NewSQLStore(repo *repository.SessionRepository) *SQLStore {
	return &SQLStore{repo: repo, now: time.Now}
}

func (s *SQLStore) Get(ctx context.Context, id string) (*models.Session, error) {
	sess, err := s.repo.Get(ctx, id, s.now())
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNotFound
	}
	return sess, nil
}

func (s *SQLStore) Save(ctx context.Context, sess *models.Session) error {
	return s.repo.Save(ctx, sess, s.now())
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *SQLStore) CleanupExpired(ctx context.Context) (int, error) {
	n, err := s.repo.DeleteExpired(ctx, s.now())
	return int(n), err
}
