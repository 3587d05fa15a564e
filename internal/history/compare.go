package history

import (
	"sort"

	"github.com/abhisek/strengthmap/internal/assessment"
)

// GrowthItem is one strength's change between two assessments.
type GrowthItem struct {
	Title    string  `json:"title"`
	Previous float64 `json:"previous"`
	Current  float64 `json:"current"`
	Diff     float64 `json:"diff"`
	IsNew    bool    `json:"isNew"`
}

// Compare joins the strengths of current and previous by title. Every title
// found in either result appears once, with a missing side scored 0. Items
// are sorted by Diff, largest first; equal diffs keep current's order
// followed by titles that only previous had.
func Compare(current, previous assessment.Result) []GrowthItem {
	items := make([]GrowthItem, 0, len(current.Strengths)+len(previous.Strengths))
	seen := make(map[string]bool, len(current.Strengths))

	for _, s := range current.Strengths {
		if seen[s.Title] {
			continue
		}
		seen[s.Title] = true
		prev, ok := previous.ScoreFor(s.Title)
		items = append(items, GrowthItem{
			Title:    s.Title,
			Previous: prev,
			Current:  s.Score,
			Diff:     s.Score - prev,
			IsNew:    !ok,
		})
	}
	for _, s := range previous.Strengths {
		if seen[s.Title] {
			continue
		}
		seen[s.Title] = true
		items = append(items, GrowthItem{
			Title:    s.Title,
			Previous: s.Score,
			Diff:     -s.Score,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Diff > items[j].Diff
	})
	return items
}

// Improved returns the items whose score went up, in input order.
func Improved(items []GrowthItem) []GrowthItem {
	return filter(items, func(g GrowthItem) bool { return g.Diff > 0 })
}

// Declined returns the items whose score went down, in input order.
func Declined(items []GrowthItem) []GrowthItem {
	return filter(items, func(g GrowthItem) bool { return g.Diff < 0 })
}

func filter(items []GrowthItem, keep func(GrowthItem) bool) []GrowthItem {
	out := []GrowthItem{}
	for _, g := range items {
		if keep(g) {
			out = append(out, g)
		}
	}
	return out
}
