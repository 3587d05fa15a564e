// Package scoring turns a list of answers into ranked strengths and value
// tags. Everything here is pure: the tables are fixed at compile time and
// Analyze reads nothing but its argument and the question catalog.
package scoring

import (
	"fmt"
	"sort"

	"github.com/abhisek/strengthmap/internal/assessment"
	"github.com/abhisek/strengthmap/internal/catalog"
)

const (
	// QualifyingThreshold is the lowest answer value that counts as signal.
	QualifyingThreshold = 4

	// MaxStrengths is the number of strengths kept after ranking.
	MaxStrengths = 5

	// SaturationTotal is the accumulated total that maps to a score of 100.
	// It assumes at most two contributing questions per label answered 5.
	SaturationTotal = 10.0

	strengthCategory = "strength"
)

// Analysis is the scoring output stored on an assessment result.
type Analysis struct {
	Strengths []assessment.StrengthItem `json:"strengths"`
	Values    []string                  `json:"values"`
}

// Analyze scores answers. Unknown question ids and values outside
// [QualifyingThreshold, assessment.MaxValue] contribute nothing.
func Analyze(answers []assessment.Answer) Analysis {
	totals := make(map[string]int)
	var order []string // labels in first-contribution order

	values := []string{}
	seen := make(map[string]bool)

	for _, a := range answers {
		q, ok := catalog.FindByID(a.QuestionID)
		if !ok || !qualifies(a.Value) {
			continue
		}

		if label, ok := strengthLabels[q.ID]; ok {
			if _, exists := totals[label]; !exists {
				order = append(order, label)
			}
			totals[label] += a.Value
		}

		if q.Category == catalog.CategoryValue {
			if tag, ok := valueTags[q.ID]; ok && !seen[tag] {
				seen[tag] = true
				values = append(values, tag)
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})
	if len(order) > MaxStrengths {
		order = order[:MaxStrengths]
	}

	strengths := make([]assessment.StrengthItem, len(order))
	for i, label := range order {
		strengths[i] = assessment.StrengthItem{
			ID:       fmt.Sprintf("strength_%d", i),
			Title:    label,
			Score:    NormalizeScore(totals[label]),
			Category: strengthCategory,
		}
	}

	return Analysis{Strengths: strengths, Values: values}
}

// NormalizeScore rescales an accumulated total to a 0-100 display score.
func NormalizeScore(total int) float64 {
	if total <= 0 {
		return 0
	}
	return min(float64(total)*100/SaturationTotal, 100)
}

func qualifies(v int) bool {
	return v >= QualifyingThreshold && v <= assessment.MaxValue
}
