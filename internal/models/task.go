package models

// Task selects the prompt template and fallback used by the writing assistant
type Task int

const (
	TaskGenerateExample Task = iota
	TaskRecommendVocabulary
	TaskRecommendSentences
	TaskEvaluateEssay
)

var taskNames = map[Task]string{
	TaskGenerateExample:     "example",
	TaskRecommendVocabulary: "vocabulary",
	TaskRecommendSentences:  "sentences",
	TaskEvaluateEssay:       "evaluate",
}

func (t Task) String() string {
	if name, ok := taskNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseTask maps an API task name to a Task
func ParseTask(s string) (Task, bool) {
	for t, name := range taskNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

// Generation is the text produced for a task. Warnings carries transient retry notices.
type Generation struct {
	Task     Task     `json:"-"`
	Text     string   `json:"text"`
	Warnings []string `json:"warnings,omitempty"`
}
