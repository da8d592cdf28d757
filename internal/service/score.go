package service

import (
	"regexp"
	"sort"
	"strconv"

	"magicwriting/internal/models"
)

// DefaultScore is reported when no score can be read from evaluation text
const DefaultScore = 75

// Score patterns, tried in order. A leading minus sign is captured so that a
// negative score clamps to 0 instead of reading as its absolute value.
var (
	slashScorePattern = regexp.MustCompile(`(?:^|[^\d-])(-?\d{1,3})\s*/\s*100(?:\D|$)`)
	// the optional denominator lets a label score "out of 10" be rejected
	labelScorePattern  = regexp.MustCompile(`(?i)(?:总评分|总分|评分|得分|分数|score|total)\s*[:：]\s*(-?\d{1,3})(?:\s*/\s*(\d+))?(?:\D|$)`)
	pointsScorePattern = regexp.MustCompile(`(?i)(?:^|[^\d-])(-?\d{1,3})\s*(?:分(?:[^钟]|$)|points?)`)
)

// ExtractScore reads a 0-100 score from free text. Captured values outside the
// range clamp to it. "分钟" is minutes, not points, and a labelled score with a
// denominator other than 100 is ignored.
func ExtractScore(text string) int {
	if n, ok := firstScore(slashScorePattern, text); ok {
		return n
	}
	for _, m := range labelScorePattern.FindAllStringSubmatch(text, -1) {
		if m[2] != "" && m[2] != "100" {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil {
			return clamp(n, 0, 100)
		}
	}
	if n, ok := firstScore(pointsScorePattern, text); ok {
		return n
	}
	return DefaultScore
}

func firstScore(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return clamp(n, 0, 100), true
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

type rubricCategory struct {
	name    string
	max     int
	pattern *regexp.Regexp
}

// rubric weights sum to 100
var rubric = []rubricCategory{
	{"Content", 30, regexp.MustCompile(`(?i)(?:content|内容)\s*[:：]\s*(\d{1,3})`)},
	{"Structure", 25, regexp.MustCompile(`(?i)(?:structure|结构)\s*[:：]\s*(\d{1,3})`)},
	{"Vocabulary", 25, regexp.MustCompile(`(?i)(?:vocabulary|词汇)\s*[:：]\s*(\d{1,3})`)},
	{"Grammar", 20, regexp.MustCompile(`(?i)(?:grammar|语法)\s*[:：]\s*(\d{1,3})`)},
}

// CategoryScores breaks total down across the rubric. Scores stated in text are used
// only when every category is present, within its maximum, and they add up to total;
// otherwise total is apportioned by weight. The result always sums to total.
func CategoryScores(text string, total int) []models.CategoryScore {
	total = clamp(total, 0, 100)
	if parsed, ok := parseCategoryScores(text, total); ok {
		return parsed
	}
	return apportion(total)
}

func parseCategoryScores(text string, total int) ([]models.CategoryScore, bool) {
	out := make([]models.CategoryScore, 0, len(rubric))
	sum := 0
	for _, c := range rubric {
		m := c.pattern.FindStringSubmatch(text)
		if m == nil {
			return nil, false
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n > c.max {
			return nil, false
		}
		sum += n
		out = append(out, models.CategoryScore{Name: c.name, Score: n, Max: c.max})
	}
	if sum != total {
		return nil, false
	}
	return out, true
}

// apportion splits total by rubric weight using the largest-remainder method
func apportion(total int) []models.CategoryScore {
	out := make([]models.CategoryScore, len(rubric))
	type rem struct{ idx, value int }
	rems := make([]rem, len(rubric))
	assigned := 0
	for i, c := range rubric {
		share := total * c.max
		out[i] = models.CategoryScore{Name: c.name, Score: share / 100, Max: c.max}
		rems[i] = rem{idx: i, value: share % 100}
		assigned += share / 100
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].value > rems[b].value })
	for i := 0; assigned < total; i++ {
		out[rems[i%len(rems)].idx].Score++
		assigned++
	}
	return out
}
