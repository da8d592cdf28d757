package library

import (
	"strings"

	"magicwriting/internal/models"
)

// ThemeKeywords pairs a theme with the lowercase substrings that select it
type ThemeKeywords struct {
	Theme    models.Theme
	Keywords []string
}

// DefaultKeywords is the keyword table in match order. Earlier themes win ties.
var DefaultKeywords = []ThemeKeywords{
	{models.ThemeSchool, []string{"school", "teacher", "student", "class", "study", "learn"}},
	{models.ThemeFamily, []string{"family", "father", "mother", "parent", "home", "house"}},
	{models.ThemeAnimals, []string{"animal", "pet", "dog", "cat", "rabbit", "bird", "fish"}},
	{models.ThemeFood, []string{"food", "eat", "drink", "apple", "banana", "rice", "milk"}},
	{models.ThemeSports, []string{"sport", "play", "game", "football", "basketball", "run"}},
	{models.ThemeDaily, []string{"hello", "thank", "please", "sorry", "goodbye"}},
	{models.ThemeColors, []string{"color", "colour", "rainbow", "paint"}},
}

// Resolver maps free-text topics to themes by keyword containment
type Resolver struct {
	table []ThemeKeywords
}

// NewResolver creates a resolver over table. Themes outside the closed set are
// normalized to general; keywords are lowercased.
func NewResolver(table []ThemeKeywords) *Resolver {
	cp := make([]ThemeKeywords, 0, len(table))
	for _, tk := range table {
		kws := make([]string, 0, len(tk.Keywords))
		for _, kw := range tk.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kws = append(kws, kw)
			}
		}
		cp = append(cp, ThemeKeywords{Theme: models.NormalizeTheme(string(tk.Theme)), Keywords: kws})
	}
	return &Resolver{table: cp}
}

// Resolve returns the first theme, in table order, with a keyword contained in topic.
// Topics with no match (including the empty string) resolve to general.
func (r *Resolver) Resolve(topic string) models.Theme {
	lower := strings.ToLower(topic)
	if lower == "" {
		return models.ThemeGeneral
	}
	for _, tk := range r.table {
		for _, kw := range tk.Keywords {
			if strings.Contains(lower, kw) {
				return tk.Theme
			}
		}
	}
	return models.ThemeGeneral
}

var defaultResolver = NewResolver(DefaultKeywords)

// ResolveTheme resolves topic with the default keyword table
func ResolveTheme(topic string) models.Theme {
	return defaultResolver.Resolve(topic)
}
