package models

// GameType identifies one of the writing games
type GameType string

const (
	GameWordPuzzle      GameType = "word_puzzle"
	GameSentenceBuilder GameType = "sentence_builder"
	GameVocabQuiz       GameType = "vocab_quiz"
)

// AllGameTypes lists the games in display order
var AllGameTypes = []GameType{GameWordPuzzle, GameSentenceBuilder, GameVocabQuiz}

// GameThemes are the themes offered for the word games
var GameThemes = []Theme{ThemeAnimals, ThemeSchool, ThemeFamily, ThemeFood}

// PointsPerCorrectAnswer is added to the session game score for each correct answer
const PointsPerCorrectAnswer = 10

// ParseGameType matches s against the known games
func ParseGameType(s string) (GameType, bool) {
	for _, g := range AllGameTypes {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

// GameRound is a single question of a game
type GameRound struct {
	Type          GameType `json:"type"`
	Theme         Theme    `json:"theme,omitempty"`
	Prompt        string   `json:"prompt"`
	Scrambled     string   `json:"scrambled,omitempty"`
	Hint          string   `json:"hint,omitempty"`
	Pattern       string   `json:"pattern,omitempty"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"answer,omitempty"`
	Answered      bool     `json:"answered"`
}

// GameAnswer is the outcome of checking an answer
type GameAnswer struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	PointsEarned  int    `json:"points_earned"`
	GameScore     int    `json:"game_score"`
}

// Public returns a copy safe to send to the browser, without the answer
func (g *GameRound) Public() *GameRound {
	if g == nil {
		return nil
	}
	c := *g
	c.Options = append([]string(nil), g.Options...)
	c.CorrectAnswer = ""
	return &c
}
