package handlers

import (
	"magicwriting/internal/library"
	"magicwriting/internal/models"
)

// NavItem is an entry in the sidebar navigation
type NavItem struct {
	Path   string
	Label  string
	Emoji  string
	Active bool
}

var navItems = []struct {
	page  models.Page
	path  string
	label string
	emoji string
}{
	{models.PageHome, "/", "首页", "🏠"},
	{models.PageWriting, "/writing", "写作工坊", "✏️"},
	{models.PageVocabulary, "/vocabulary", "词汇学习", "📖"},
	{models.PagePhrases, "/phrases", "常用短语", "💬"},
	{models.PageSentences, "/sentences", "句型学习", "🔤"},
	{models.PageEvaluate, "/evaluate", "作品评价", "⭐"},
	{models.PageGames, "/games", "游戏乐园", "🎮"},
	{models.PageHistory, "/history", "我的记录", "📚"},
}

func buildNav(current models.Page) []NavItem {
	out := make([]NavItem, len(navItems))
	for i, n := range navItems {
		out[i] = NavItem{Path: n.path, Label: n.label, Emoji: n.emoji, Active: n.page == current}
	}
	return out
}

// PageData is shared by every HTML page
type PageData struct {
	Title     string
	Page      models.Page
	Nav       []NavItem
	Offline   bool
	CSRFToken string
	GameScore int
	Error     string
	Success   string
	Warnings  []string
}

// GradeSelect feeds the grade_options template
type GradeSelect struct {
	Grades   []models.GradeBand
	Selected string
}

type HomeViewData struct {
	PageData
	Themes []library.ThemeOption
}

type WritingViewData struct {
	PageData
	Topic       string
	Draft       string
	GradeSelect GradeSelect
	Example     *models.Generation
}

type LibraryViewData struct {
	PageData
	Heading        string
	Path           string
	RecommendPath  string
	Topic          string
	Searched       bool
	Theme          models.Theme
	ThemeLabel     string
	Themes         []library.ThemeOption
	Vocabulary     []models.VocabularyEntry
	Phrases        []models.PhraseEntry
	Patterns       []models.SentencePatternEntry
	Recommendation *models.Generation
}

type EvaluateViewData struct {
	PageData
	Topic        string
	Content      string
	GradeSelect  GradeSelect
	Result       *models.EvaluationResult
	ResultIndex  int
	EmailEnabled bool
}

// GameOption describes a game on the games page
type GameOption struct {
	Type        models.GameType
	Name        string
	Emoji       string
	Description string
	Active      bool
}

// GameThemeOption is a theme radio button on the games page
type GameThemeOption struct {
	Theme  models.Theme
	Label  string
	Active bool
}

type GamesViewData struct {
	PageData
	Games      []GameOption
	Selected   models.GameType
	ShowThemes bool
	Themes     []GameThemeOption
	Round      *models.GameRound
	Answer     *models.GameAnswer
}

type HistoryViewData struct {
	PageData
	Writings     []models.WritingRecord
	Evaluations  []models.EvaluationResult
	EmailEnabled bool
}

var gameOptions = []GameOption{
	{Type: models.GameWordPuzzle, Name: "单词拼图", Emoji: "🧩", Description: "将打乱的字母拼成正确的单词"},
	{Type: models.GameSentenceBuilder, Name: "句子组装", Emoji: "🔤", Description: "用给定的单词组成正确的句子"},
	{Type: models.GameVocabQuiz, Name: "词汇挑战", Emoji: "🏆", Description: "快速回答单词的意思"},
}

func buildGameOptions(selected models.GameType) []GameOption {
	out := make([]GameOption, len(gameOptions))
	for i, g := range gameOptions {
		g.Active = g.Type == selected
		out[i] = g
	}
	return out
}

func buildGameThemes(selected models.Theme) []GameThemeOption {
	out := make([]GameThemeOption, 0, len(models.GameThemes))
	for _, t := range models.GameThemes {
		out = append(out, GameThemeOption{Theme: t, Label: library.ThemeLabel(t), Active: t == selected})
	}
	return out
}

func gradeSelect(selected string) GradeSelect {
	if selected == "" {
		selected = string(models.DefaultGradeBand)
	}
	return GradeSelect{Grades: models.AllGradeBands, Selected: selected}
}

// API payloads

type generateRequest struct {
	Task    string `json:"task"`
	Topic   string `json:"topic"`
	Grade   string `json:"grade"`
	Content string `json:"content"`
}

type generateResponse struct {
	Task     string   `json:"task"`
	Mode     string   `json:"mode"`
	Text     string   `json:"text"`
	Warnings []string `json:"warnings,omitempty"`
}

type statusResponse struct {
	Mode   string `json:"mode"`
	Online bool   `json:"online"`
	Email  bool   `json:"email"`
}

type contentResponse[T any] struct {
	Topic   string       `json:"topic,omitempty"`
	Theme   models.Theme `json:"theme"`
	Entries []T          `json:"entries"`
}

type startGameRequest struct {
	Game  string `json:"game"`
	Theme string `json:"theme"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

type sessionResponse struct {
	ID                string                    `json:"id"`
	Page              models.Page               `json:"page"`
	GameScore         int                       `json:"game_score"`
	WritingHistory    []models.WritingRecord    `json:"writing_history"`
	EvaluationHistory []models.EvaluationResult `json:"evaluation_history"`
	Game              *models.GameRound         `json:"game,omitempty"`
	CSRFToken         string                    `json:"csrf_token"`
	ExpiresAt         string                    `json:"expires_at"`
}
