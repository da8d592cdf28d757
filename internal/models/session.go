package models

import "time"

// Page is a navigation destination within the app
type Page string

const (
	PageHome       Page = "home"
	PageWriting    Page = "writing"
	PageVocabulary Page = "vocabulary"
	PagePhrases    Page = "phrases"
	PageSentences  Page = "sentences"
	PageEvaluate   Page = "evaluate"
	PageGames      Page = "games"
	PageHistory    Page = "history"
)

// WritingKind describes what a writing history record holds
type WritingKind string

const (
	WritingExample WritingKind = "example"
	WritingDraft   WritingKind = "draft"
)

// WritingRecord is an entry in a session's writing history
type WritingRecord struct {
	Kind      WritingKind `json:"kind"`
	Topic     string      `json:"topic"`
	Grade     string      `json:"grade"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// FormState holds transient form values carried between pages
type FormState struct {
	WritingTopic string   `json:"writing_topic"`
	WritingGrade string   `json:"writing_grade"`
	WritingDraft string   `json:"writing_draft"`
	SearchTopic  string   `json:"search_topic"`
	SelectedGame GameType `json:"selected_game"`
	GameTheme    Theme    `json:"game_theme"`
}

// Session is the per-visitor state. It lives until ExpiresAt and is never shared.
type Session struct {
	ID                string             `json:"id"`
	Page              Page               `json:"page"`
	WritingHistory    []WritingRecord    `json:"writing_history"`
	EvaluationHistory []EvaluationResult `json:"evaluation_history"`
	GameScore         int                `json:"game_score"`
	Form              FormState          `json:"form"`
	Game              *GameRound         `json:"game,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	ExpiresAt         time.Time          `json:"expires_at"`
}

// NewSession creates a session with the default form values
func NewSession(id string, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:   id,
		Page: PageHome,
		Form: FormState{
			WritingGrade: string(DefaultGradeBand),
			GameTheme:    ThemeAnimals,
		},
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// ExpiredAt reports whether the session has expired at now
func (s *Session) ExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// AddWriting appends to the writing history
func (s *Session) AddWriting(rec WritingRecord) {
	s.WritingHistory = append(s.WritingHistory, rec)
}

// AddEvaluation appends to the evaluation history
func (s *Session) AddEvaluation(res EvaluationResult) {
	s.EvaluationHistory = append(s.EvaluationHistory, res)
}
