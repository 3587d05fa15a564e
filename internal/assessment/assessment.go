package assessment

import "time"

// Likert scale bounds for a single answer.
const (
	MinValue = 1
	MaxValue = 5
)

// Answer is one response to a catalog question.
type Answer struct {
	QuestionID string `json:"questionId" validate:"required"`
	Value      int    `json:"value" validate:"min=1,max=5"`
}

// StrengthItem is a ranked strength derived from a set of answers.
// Description and Category are carried for compatibility with records
// written by the mobile and web apps.
type StrengthItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Score       float64 `json:"score" validate:"gte=0,lte=100"`
	Category    string  `json:"category,omitempty"`
}

// Result is a single completed assessment.
type Result struct {
	ID        string         `json:"id" validate:"required"`
	Date      time.Time      `json:"date" validate:"required"`
	Answers   []Answer       `json:"answers" validate:"dive"`
	Strengths []StrengthItem `json:"strengths" validate:"max=5,dive"`
	Values    []string       `json:"values" validate:"dive,required"`
}

// Highlights returns up to n strength titles in rank order and the number of
// strengths left out.
func (r Result) Highlights(n int) ([]string, int) {
	if n < 0 {
		n = 0
	}
	titles := make([]string, 0, min(n, len(r.Strengths)))
	for i, s := range r.Strengths {
		if i >= n {
			break
		}
		titles = append(titles, s.Title)
	}
	return titles, len(r.Strengths) - len(titles)
}

// ScoreFor returns the score recorded for title, or 0 when absent.
func (r Result) ScoreFor(title string) (float64, bool) {
	for _, s := range r.Strengths {
		if s.Title == title {
			return s.Score, true
		}
	}
	return 0, false
}

// LikertLabel returns the prompt label shown for a scale value.
func LikertLabel(v int) string {
	switch v {
	case 1:
		return "全く違う"
	case 2:
		return "あまり違う"
	case 3:
		return "どちらでもない"
	case 4:
		return "やや当てはまる"
	case 5:
		return "とても当てはまる"
	default:
		return ""
	}
}
