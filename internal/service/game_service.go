package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"magicwriting/internal/library"
	"magicwriting/internal/models"
)

var (
	ErrUnknownGame    = errors.New("unknown game type")
	ErrNoActiveRound  = errors.New("no active game round")
	ErrRoundAnswered  = errors.New("round already answered")
	ErrNotEnoughWords = errors.New("not enough vocabulary for a quiz")
)

const maxScrambleAttempts = 10

type builderPattern struct {
	pattern string
	words   []string
}

var builderPatterns = []builderPattern{
	{"I have a ___.", []string{"book", "pen", "dog", "cat", "ball"}},
	{"I like to ___.", []string{"read", "play", "sing", "dance", "run"}},
	{"This is my ___.", []string{"friend", "teacher", "mother", "father", "book"}},
	{"I can ___.", []string{"swim", "jump", "run", "sing", "dance"}},
	{"My ___ is ___.", []string{"book", "red", "dog", "small", "pen"}},
}

// GameService builds game rounds from the vocabulary table and checks answers
type GameService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGameService creates a game service. A nil rng is seeded from the clock.
func NewGameService(rng *rand.Rand) *GameService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GameService{rng: rng}
}

// NewRound starts a round of game for theme. Themes outside the game themes use animals.
func (s *GameService) NewRound(game models.GameType, theme models.Theme) (*models.GameRound, error) {
	if !isGameTheme(theme) {
		theme = models.ThemeAnimals
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch game {
	case models.GameWordPuzzle:
		return s.wordPuzzle(theme), nil
	case models.GameSentenceBuilder:
		return s.sentenceBuilder(), nil
	case models.GameVocabQuiz:
		return s.vocabQuiz(theme)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, game)
	}
}

func isGameTheme(theme models.Theme) bool {
	for _, t := range models.GameThemes {
		if t == theme {
			return true
		}
	}
	return false
}

func vocabularyTagged(theme models.Theme) []models.VocabularyEntry {
	var out []models.VocabularyEntry
	for _, v := range library.AllVocabulary() {
		if v.Theme == theme {
			out = append(out, v)
		}
	}
	return out
}

func (s *GameService) wordPuzzle(theme models.Theme) *models.GameRound {
	pool := vocabularyTagged(theme)
	if len(pool) == 0 {
		pool = library.AllVocabulary()
	}
	target := pool[s.rng.Intn(len(pool))]
	word := strings.ToUpper(target.Word)

	letters := []rune(word)
	scrambled := word
	for i := 0; i < maxScrambleAttempts && scrambled == word; i++ {
		s.rng.Shuffle(len(letters), func(a, b int) { letters[a], letters[b] = letters[b], letters[a] })
		scrambled = string(letters)
	}

	return &models.GameRound{
		Type:          models.GameWordPuzzle,
		Theme:         theme,
		Prompt:        "把打乱的字母拼成正确的单词",
		Scrambled:     scrambled,
		Hint:          "中文意思：" + target.Translation,
		CorrectAnswer: strings.ToLower(target.Word),
	}
}

func (s *GameService) sentenceBuilder() *models.GameRound {
	p := builderPatterns[s.rng.Intn(len(builderPatterns))]
	missing := p.words[s.rng.Intn(len(p.words))]
	options := append([]string(nil), p.words...)
	s.rng.Shuffle(len(options), func(a, b int) { options[a], options[b] = options[b], options[a] })

	return &models.GameRound{
		Type:          models.GameSentenceBuilder,
		Prompt:        "选择合适的单词填空",
		Pattern:       p.pattern,
		Options:       options,
		CorrectAnswer: missing,
	}
}

func (s *GameService) vocabQuiz(theme models.Theme) (*models.GameRound, error) {
	pool := vocabularyTagged(theme)
	if len(pool) < 4 {
		pool = library.VocabularyForTheme(models.ThemeGeneral)
	}
	if len(pool) < 4 {
		return nil, ErrNotEnoughWords
	}
	target := pool[s.rng.Intn(len(pool))]

	var distractors []string
	seen := map[string]bool{target.Translation: true}
	for _, i := range s.rng.Perm(len(pool)) {
		tr := pool[i].Translation
		if seen[tr] {
			continue
		}
		seen[tr] = true
		distractors = append(distractors, tr)
		if len(distractors) == 3 {
			break
		}
	}
	if len(distractors) < 3 {
		return nil, ErrNotEnoughWords
	}

	options := append([]string{target.Translation}, distractors...)
	s.rng.Shuffle(len(options), func(a, b int) { options[a], options[b] = options[b], options[a] })

	return &models.GameRound{
		Type:          models.GameVocabQuiz,
		Theme:         theme,
		Prompt:        fmt.Sprintf("What is the Chinese meaning of '%s'?", target.Word),
		Options:       options,
		CorrectAnswer: target.Translation,
	}, nil
}

// CheckAnswer marks the session's current round answered and awards points when
// answer is right. Spelling answers ignore case and surrounding space.
func (s *GameService) CheckAnswer(sess *models.Session, answer string) (models.GameAnswer, error) {
	round := sess.Game
	if round == nil {
		return models.GameAnswer{}, ErrNoActiveRound
	}
	if round.Answered {
		return models.GameAnswer{}, ErrRoundAnswered
	}

	var correct bool
	switch round.Type {
	case models.GameWordPuzzle:
		correct = strings.EqualFold(strings.TrimSpace(answer), round.CorrectAnswer)
	default:
		correct = strings.TrimSpace(answer) == round.CorrectAnswer
	}

	round.Answered = true
	points := 0
	if correct {
		points = models.PointsPerCorrectAnswer
		sess.GameScore += points
	}
	return models.GameAnswer{
		Correct:       correct,
		CorrectAnswer: round.CorrectAnswer,
		PointsEarned:  points,
		GameScore:     sess.GameScore,
	}, nil
}
