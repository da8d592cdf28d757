package models

import "strings"

// Theme is the coarse topical category used to bucket content entries
type Theme string

const (
	ThemeSchool  Theme = "school"
	ThemeFamily  Theme = "family"
	ThemeAnimals Theme = "animals"
	ThemeFood    Theme = "food"
	ThemeSports  Theme = "sports"
	ThemeDaily   Theme = "daily"
	ThemeColors  Theme = "colors"
	ThemeGeneral Theme = "general"
)

// AllThemes lists every theme in declared order. General is always last.
var AllThemes = []Theme{
	ThemeSchool,
	ThemeFamily,
	ThemeAnimals,
	ThemeFood,
	ThemeSports,
	ThemeDaily,
	ThemeColors,
	ThemeGeneral,
}

// ParseTheme matches s against the closed theme set, ignoring case and surrounding space
func ParseTheme(s string) (Theme, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range AllThemes {
		if string(t) == s {
			return t, true
		}
	}
	return ThemeGeneral, false
}

// NormalizeTheme returns the matching theme, or ThemeGeneral for anything unknown
func NormalizeTheme(s string) Theme {
	t, _ := ParseTheme(s)
	return t
}

// GradeBand is the grade selection offered on writing and evaluation forms
type GradeBand string

const (
	Grade12 GradeBand = "Grade 1-2"
	Grade34 GradeBand = "Grade 3-4"
	Grade56 GradeBand = "Grade 5-6"
	Grade78 GradeBand = "Grade 7-8"

	DefaultGradeBand = Grade34
)

// AllGradeBands lists the grade bands in display order
var AllGradeBands = []GradeBand{Grade12, Grade34, Grade56, Grade78}

// ParseGradeBand matches s against the grade bands
func ParseGradeBand(s string) (GradeBand, bool) {
	s = strings.TrimSpace(s)
	for _, g := range AllGradeBands {
		if strings.EqualFold(string(g), s) {
			return g, true
		}
	}
	return DefaultGradeBand, false
}

// Level is the difficulty of a sentence pattern
type Level string

const (
	LevelBasic        Level = "basic"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)
