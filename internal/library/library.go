// Package library holds the static vocabulary, phrase and sentence pattern tables and
// the theme-based lookups over them. The tables are read-only and safe to share
// between sessions.
package library

import "magicwriting/internal/models"

// MaxResults caps every retrieval
const MaxResults = 10

// ThemeOption is a browseable theme with its display label
type ThemeOption struct {
	Theme models.Theme `json:"theme"`
	Label string       `json:"label"`
	Emoji string       `json:"emoji"`
}

var themeOptions = []ThemeOption{
	{models.ThemeAnimals, "动物", "🐶"},
	{models.ThemeSchool, "学校", "🏫"},
	{models.ThemeFamily, "家庭", "👨‍👩‍👧‍👦"},
	{models.ThemeFood, "食物", "🍎"},
	{models.ThemeSports, "运动", "⚽"},
	{models.ThemeDaily, "日常", "🌞"},
	{models.ThemeColors, "颜色", "🌈"},
}

// Themes lists the themes offered as browse buttons
func Themes() []ThemeOption {
	out := make([]ThemeOption, len(themeOptions))
	copy(out, themeOptions)
	return out
}

// ThemeLabel returns the display label for a theme
func ThemeLabel(t models.Theme) string {
	for _, o := range themeOptions {
		if o.Theme == t {
			return o.Emoji + " " + o.Label
		}
	}
	return "通用"
}

// selectForTheme returns the entries tagged with theme in table order, capped at
// MaxResults. General, or a theme without entries, falls back to the head of the table.
func selectForTheme[T any](table []T, themeOf func(T) models.Theme, theme models.Theme) []T {
	out := make([]T, 0, MaxResults)
	if theme != models.ThemeGeneral {
		for _, e := range table {
			if themeOf(e) == theme {
				out = append(out, e)
				if len(out) == MaxResults {
					break
				}
			}
		}
	}
	if len(out) == 0 {
		n := min(len(table), MaxResults)
		out = append(out, table[:n]...)
	}
	return out
}

// VocabularyForTheme returns up to MaxResults vocabulary entries for theme
func VocabularyForTheme(theme models.Theme) []models.VocabularyEntry {
	return selectForTheme(vocabulary, func(e models.VocabularyEntry) models.Theme { return e.Theme }, theme)
}

// PhrasesForTheme returns up to MaxResults phrases for theme
func PhrasesForTheme(theme models.Theme) []models.PhraseEntry {
	return selectForTheme(phrases, func(e models.PhraseEntry) models.Theme { return e.Theme }, theme)
}

// SentencePatternsForTheme returns up to MaxResults sentence patterns for theme
func SentencePatternsForTheme(theme models.Theme) []models.SentencePatternEntry {
	return selectForTheme(sentencePatterns, func(e models.SentencePatternEntry) models.Theme { return e.Theme }, theme)
}

// SearchVocabulary resolves topic to a theme and returns its vocabulary
func SearchVocabulary(topic string) []models.VocabularyEntry {
	return VocabularyForTheme(ResolveTheme(topic))
}

// SearchPhrases resolves topic to a theme and returns its phrases
func SearchPhrases(topic string) []models.PhraseEntry {
	return PhrasesForTheme(ResolveTheme(topic))
}

// SearchSentencePatterns resolves topic to a theme and returns its sentence patterns
func SearchSentencePatterns(topic string) []models.SentencePatternEntry {
	return SentencePatternsForTheme(ResolveTheme(topic))
}

// AllVocabulary returns a copy of the whole vocabulary table
func AllVocabulary() []models.VocabularyEntry {
	return append([]models.VocabularyEntry(nil), vocabulary...)
}

// AllPhrases returns a copy of the whole phrase table
func AllPhrases() []models.PhraseEntry {
	return append([]models.PhraseEntry(nil), phrases...)
}

// AllSentencePatterns returns a copy of the whole sentence pattern table
func AllSentencePatterns() []models.SentencePatternEntry {
	return append([]models.SentencePatternEntry(nil), sentencePatterns...)
}
