package library

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"magicwriting/internal/models"
)

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		want  models.Theme
	}{
		{name: "school title", topic: "My School Life", want: models.ThemeSchool},
		{name: "upper case", topic: "MY FAMILY", want: models.ThemeFamily},
		{name: "pet", topic: "My Pet", want: models.ThemeAnimals},
		{name: "food substring", topic: "What I eat for lunch", want: models.ThemeFood},
		{name: "sports", topic: "Playing football", want: models.ThemeSports},
		{name: "daily", topic: "Saying thank you", want: models.ThemeDaily},
		{name: "colors", topic: "The Rainbow", want: models.ThemeColors},
		{name: "no keyword", topic: "A trip to the moon", want: models.ThemeGeneral},
		{name: "empty", topic: "", want: models.ThemeGeneral},
		{name: "whitespace", topic: "   ", want: models.ThemeGeneral},
		{name: "chinese only", topic: "我的暑假", want: models.ThemeGeneral},
		{name: "two themes picks earlier", topic: "my cat at school", want: models.ThemeSchool},
		{name: "family before animals", topic: "our dog at home", want: models.ThemeFamily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveTheme(tt.topic))
		})
	}
}

func TestResolveThemeIsDeterministic(t *testing.T) {
	topics := []string{"", "My School Life", "my cat at school", "zzz", "Teacher's pet"}
	for _, topic := range topics {
		first := ResolveTheme(topic)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, ResolveTheme(topic), topic)
		}
		_, known := models.ParseTheme(string(first))
		assert.True(t, known, "resolved theme %q must be in the closed set", first)
	}
}

func TestResolverFirstMatchTieBreak(t *testing.T) {
	r := NewResolver([]ThemeKeywords{
		{Theme: models.ThemeSchool, Keywords: []string{"school"}},
		{Theme: models.ThemeAnimals, Keywords: []string{"cat"}},
	})
	assert.Equal(t, models.ThemeSchool, r.Resolve("my cat at school"))

	reversed := NewResolver([]ThemeKeywords{
		{Theme: models.ThemeAnimals, Keywords: []string{"cat"}},
		{Theme: models.ThemeSchool, Keywords: []string{"school"}},
	})
	assert.Equal(t, models.ThemeAnimals, reversed.Resolve("my cat at school"))
}

func TestNewResolverNormalizesTable(t *testing.T) {
	r := NewResolver([]ThemeKeywords{
		{Theme: models.Theme("space"), Keywords: []string{"ROCKET", " "}},
	})
	assert.Equal(t, models.ThemeGeneral, r.Resolve("a rocket ship"))
	assert.Equal(t, models.ThemeGeneral, r.Resolve("anything"))
}
