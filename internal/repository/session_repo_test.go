package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magicwriting/internal/database"
	"magicwriting/internal/models"
)

func newTestRepo(t *testing.T) *SessionRepository {
	t.Helper()
	db, err := database.Initialize(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = db.RunMigrations(context.Background())
	require.NoError(t, err)
	return NewSessionRepository(db)
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	sess := models.NewSession("abc", now, time.Hour)
	sess.GameScore = 30
	sess.Game = &models.GameRound{Type: models.GameWordPuzzle, Scrambled: "tca", CorrectAnswer: "cat"}
	require.NoError(t, repo.Save(ctx, sess, now))

	got, err := repo.Get(ctx, "abc", now)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 30, got.GameScore)
	assert.Equal(t, "cat", got.Game.CorrectAnswer)
	assert.Equal(t, models.PageHome, got.Page)
}

func TestSessionRepositoryMissingAndExpired(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	got, err := repo.Get(ctx, "nope", now)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Save(ctx, models.NewSession("old", now, time.Minute), now))
	got, err = repo.Get(ctx, "old", now.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Nil(t, got, "expired sessions are not returned")
}

func TestSessionRepositoryDeleteExpired(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, models.NewSession("short", now, time.Minute), now))
	require.NoError(t, repo.Save(ctx, models.NewSession("long", now, 2*time.Hour), now))

	n, err := repo.DeleteExpired(ctx, now.Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.Delete(ctx, "long"))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
