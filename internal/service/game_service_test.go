package service

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magicwriting/internal/models"
)

func newSeededGames(seed int64) *GameService {
	return NewGameService(rand.New(rand.NewSource(seed)))
}

func sortedLetters(s string) string {
	r := []rune(strings.ToLower(s))
	for i := 1; i < len(r); i++ {
		for j := i; j > 0 && r[j] < r[j-1]; j-- {
			r[j], r[j-1] = r[j-1], r[j]
		}
	}
	return string(r)
}

func TestWordPuzzleScramblesThemeWord(t *testing.T) {
	games := newSeededGames(1)
	for i := 0; i < 20; i++ {
		round, err := games.NewRound(models.GameWordPuzzle, models.ThemeSchool)
		require.NoError(t, err)

		assert.Equal(t, models.ThemeSchool, round.Theme)
		assert.Equal(t, sortedLetters(round.CorrectAnswer), sortedLetters(round.Scrambled))
		assert.Equal(t, strings.ToUpper(round.Scrambled), round.Scrambled)
		assert.True(t, strings.HasPrefix(round.Hint, "中文意思："))
		if len(round.CorrectAnswer) > 3 {
			assert.NotEqual(t, strings.ToUpper(round.CorrectAnswer), round.Scrambled)
		}
	}
}

func TestNewRoundDefaultsToAnimals(t *testing.T) {
	games := newSeededGames(2)
	round, err := games.NewRound(models.GameWordPuzzle, models.ThemeSports)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeAnimals, round.Theme)
}

func TestSentenceBuilderOptionsContainAnswer(t *testing.T) {
	games := newSeededGames(3)
	for i := 0; i < 20; i++ {
		round, err := games.NewRound(models.GameSentenceBuilder, models.ThemeAnimals)
		require.NoError(t, err)
		assert.Contains(t, round.Pattern, "___")
		assert.Len(t, round.Options, 5)
		assert.Contains(t, round.Options, round.CorrectAnswer)
	}
}

func TestVocabQuizHasFourDistinctOptions(t *testing.T) {
	games := newSeededGames(4)
	for _, theme := range models.GameThemes {
		round, err := games.NewRound(models.GameVocabQuiz, theme)
		require.NoError(t, err)
		require.Len(t, round.Options, 4)
		assert.Contains(t, round.Options, round.CorrectAnswer)

		seen := map[string]bool{}
		for _, o := range round.Options {
			assert.False(t, seen[o], "duplicate option %q", o)
			seen[o] = true
		}
	}
}

func TestUnknownGame(t *testing.T) {
	_, err := newSeededGames(5).NewRound("chess", models.ThemeAnimals)
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestCheckAnswer(t *testing.T) {
	games := newSeededGames(6)
	sess := models.NewSession("s", time.Now(), time.Hour)

	_, err := games.CheckAnswer(sess, "cat")
	assert.ErrorIs(t, err, ErrNoActiveRound)

	sess.Game = &models.GameRound{Type: models.GameWordPuzzle, Scrambled: "TAC", CorrectAnswer: "cat"}
	res, err := games.CheckAnswer(sess, "  CAT ")
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, models.PointsPerCorrectAnswer, res.PointsEarned)
	assert.Equal(t, 10, sess.GameScore)

	_, err = games.CheckAnswer(sess, "cat")
	assert.ErrorIs(t, err, ErrRoundAnswered)
	assert.Equal(t, 10, sess.GameScore, "answering twice does not score twice")

	sess.Game = &models.GameRound{Type: models.GameVocabQuiz, Options: []string{"猫", "狗"}, CorrectAnswer: "猫"}
	res, err = games.CheckAnswer(sess, "狗")
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Equal(t, "猫", res.CorrectAnswer)
	assert.Equal(t, 10, res.GameScore)
}

func TestPublicRoundHidesAnswer(t *testing.T) {
	round, err := newSeededGames(7).NewRound(models.GameVocabQuiz, models.ThemeFood)
	require.NoError(t, err)
	pub := round.Public()
	assert.Empty(t, pub.CorrectAnswer)
	assert.NotEmpty(t, round.CorrectAnswer)
	assert.Equal(t, round.Options, pub.Options)
}
