package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"magicwriting/internal/models"
)

const (
	MaxTopicLength = 100
	MaxEssayLength = 5000
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateTopic requires a non-empty writing topic of reasonable length
func ValidateTopic(topic string) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ValidationError{Field: "topic", Message: "请先输入写作主题"}
	}
	if utf8.RuneCountInString(topic) > MaxTopicLength {
		return ValidationError{Field: "topic", Message: fmt.Sprintf("主题不能超过%d个字符", MaxTopicLength)}
	}
	return nil
}

// ValidateGrade parses a grade band. An empty value selects the default band.
func ValidateGrade(grade string) (models.GradeBand, error) {
	if strings.TrimSpace(grade) == "" {
		return models.DefaultGradeBand, nil
	}
	g, ok := models.ParseGradeBand(grade)
	if !ok {
		return models.DefaultGradeBand, ValidationError{Field: "grade", Message: "请选择有效的年级"}
	}
	return g, nil
}

// ValidateEssay requires essay content for evaluation
func ValidateEssay(essay string) error {
	essay = strings.TrimSpace(essay)
	if essay == "" {
		return ValidationError{Field: "content", Message: "请输入你的作文"}
	}
	if utf8.RuneCountInString(essay) > MaxEssayLength {
		return ValidationError{Field: "content", Message: fmt.Sprintf("作文不能超过%d个字符", MaxEssayLength)}
	}
	return nil
}

// ValidateTheme accepts only the closed theme set
func ValidateTheme(theme string) (models.Theme, error) {
	t, ok := models.ParseTheme(theme)
	if !ok {
		return models.ThemeGeneral, ValidationError{Field: "theme", Message: "unknown theme"}
	}
	return t, nil
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}
