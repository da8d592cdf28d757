package models

// VocabularyEntry is a single word in the vocabulary table
type VocabularyEntry struct {
	Word            string `json:"word" yaml:"word"`
	Translation     string `json:"translation" yaml:"translation"`
	Grade           int    `json:"grade" yaml:"grade"`
	Theme           Theme  `json:"theme" yaml:"theme"`
	ExampleSentence string `json:"example_sentence" yaml:"example_sentence"`
}

// PhraseEntry is a ready-made expression in the phrase table
type PhraseEntry struct {
	English         string `json:"english" yaml:"english"`
	Translation     string `json:"translation" yaml:"translation"`
	Theme           Theme  `json:"theme" yaml:"theme"`
	ExampleSentence string `json:"example_sentence" yaml:"example_sentence"`
}

// SentencePatternEntry is a sentence frame with a placeholder to fill in
type SentencePatternEntry struct {
	Pattern     string `json:"pattern" yaml:"pattern"`
	Translation string `json:"translation" yaml:"translation"`
	Example     string `json:"example" yaml:"example"`
	Level       Level  `json:"level" yaml:"level"`
	Theme       Theme  `json:"theme" yaml:"theme"`
}

// NewVocabularyEntry builds a vocabulary entry. Unknown themes become ThemeGeneral and
// grades are kept within 1..8.
func NewVocabularyEntry(word, translation string, grade int, theme, example string) VocabularyEntry {
	if grade < 1 {
		grade = 1
	}
	if grade > 8 {
		grade = 8
	}
	return VocabularyEntry{
		Word:            word,
		Translation:     translation,
		Grade:           grade,
		Theme:           NormalizeTheme(theme),
		ExampleSentence: example,
	}
}

// NewPhraseEntry builds a phrase entry, normalizing unknown themes to ThemeGeneral
func NewPhraseEntry(english, translation, theme, example string) PhraseEntry {
	return PhraseEntry{
		English:         english,
		Translation:     translation,
		Theme:           NormalizeTheme(theme),
		ExampleSentence: example,
	}
}

// NewSentencePatternEntry builds a sentence pattern entry. Unknown themes become
// ThemeGeneral and unknown levels become LevelBasic.
func NewSentencePatternEntry(pattern, translation, example string, level Level, theme string) SentencePatternEntry {
	switch level {
	case LevelBasic, LevelIntermediate, LevelAdvanced:
	default:
		level = LevelBasic
	}
	return SentencePatternEntry{
		Pattern:     pattern,
		Translation: translation,
		Example:     example,
		Level:       level,
		Theme:       NormalizeTheme(theme),
	}
}
