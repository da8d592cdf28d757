package models

import "time"

// CategoryScore is the points awarded for one rubric category
type CategoryScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Max   int    `json:"max"`
}

// EvaluationResult is a scored essay evaluation, kept only in session history
type EvaluationResult struct {
	TotalScore     int             `json:"total_score"`
	CategoryScores []CategoryScore `json:"category_scores"`
	Feedback       string          `json:"feedback"`
	Timestamp      time.Time       `json:"timestamp"`
	Topic          string          `json:"topic"`
	Grade          string          `json:"grade"`
	Warnings       []string        `json:"warnings,omitempty"`
}
