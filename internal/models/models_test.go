package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionExpiredAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{
			name:      "future expiration",
			expiresAt: now.Add(1 * time.Hour),
			want:      false,
		},
		{
			name:      "just expired",
			expiresAt: now.Add(-1 * time.Second),
			want:      true,
		},
		{
			name:      "expires exactly now",
			expiresAt: now,
			want:      true,
		},
		{
			name:      "expired yesterday",
			expiresAt: now.Add(-24 * time.Hour),
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := Session{
				ID:        "test-session",
				ExpiresAt: tt.expiresAt,
				CreatedAt: now.Add(-2 * time.Hour),
			}
			assert.Equal(t, tt.want, session.ExpiredAt(now))
		})
	}
}

func TestNewSessionDefaults(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	s := NewSession("abc", now, 2*time.Hour)

	assert.Equal(t, PageHome, s.Page)
	assert.Equal(t, string(Grade34), s.Form.WritingGrade)
	assert.Equal(t, ThemeAnimals, s.Form.GameTheme)
	assert.Equal(t, now.Add(2*time.Hour), s.ExpiresAt)
	assert.Empty(t, s.WritingHistory)
	assert.Empty(t, s.EvaluationHistory)
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in     string
		want   Theme
		wantOK bool
	}{
		{"school", ThemeSchool, true},
		{"  Animals ", ThemeAnimals, true},
		{"COLORS", ThemeColors, true},
		{"general", ThemeGeneral, true},
		{"dinosaurs", ThemeGeneral, false},
		{"", ThemeGeneral, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTheme(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestEntryConstructorsNormalizeTheme(t *testing.T) {
	v := NewVocabularyEntry("robot", "机器人", 12, "toys", "I have a robot.")
	assert.Equal(t, ThemeGeneral, v.Theme)
	assert.Equal(t, 8, v.Grade)

	v = NewVocabularyEntry("cat", "猫", 0, "animals", "The cat sleeps.")
	assert.Equal(t, ThemeAnimals, v.Theme)
	assert.Equal(t, 1, v.Grade)

	p := NewPhraseEntry("Hi!", "嗨！", "weather", "Hi! How are you?")
	assert.Equal(t, ThemeGeneral, p.Theme)

	s := NewSentencePatternEntry("I like...", "我喜欢...", "I like apples.", Level("expert"), "food")
	assert.Equal(t, LevelBasic, s.Level)
	assert.Equal(t, ThemeFood, s.Theme)
}

func TestParseGradeBand(t *testing.T) {
	g, ok := ParseGradeBand("grade 5-6")
	assert.True(t, ok)
	assert.Equal(t, Grade56, g)

	g, ok = ParseGradeBand("Grade 9-10")
	assert.False(t, ok)
	assert.Equal(t, DefaultGradeBand, g)
}

func TestParseTask(t *testing.T) {
	for _, task := range []Task{TaskGenerateExample, TaskRecommendVocabulary, TaskRecommendSentences, TaskEvaluateEssay} {
		got, ok := ParseTask(task.String())
		assert.True(t, ok, task.String())
		assert.Equal(t, task, got)
	}

	_, ok := ParseTask("poem")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Task(42).String())
}
