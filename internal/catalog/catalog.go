package catalog

import (
	"errors"
	"fmt"
)

// ErrQuestionNotFound is returned by GetQuestion for unknown ids.
var ErrQuestionNotFound = errors.New("question not found")

// catalog holds the ordered question list with precomputed indices.
type catalog struct {
	questions  []Question
	byID       map[string]int
	byCategory map[Category][]Question
}

// c is the package-level catalog, set by init() in seed.go.
var c *catalog

func buildCatalog(questions []Question) *catalog {
	cat := &catalog{
		questions:  questions,
		byID:       make(map[string]int, len(questions)),
		byCategory: make(map[Category][]Question),
	}
	for i, q := range cat.questions {
		cat.byID[q.ID] = i
		cat.byCategory[q.Category] = append(cat.byCategory[q.Category], q)
	}
	return cat
}

// All returns every question in presentation order. The returned slice is
// a copy.
func All() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// IDs returns every question id in presentation order.
func IDs() []string {
	out := make([]string, len(c.questions))
	for i, q := range c.questions {
		out[i] = q.ID
	}
	return out
}

// Count returns the number of questions in the catalog.
func Count() int {
	return len(c.questions)
}

// FindByID looks up a question. The second result is false when id is not
// in the catalog.
func FindByID(id string) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

// GetQuestion is FindByID with an error for the not-found case.
func GetQuestion(id string) (Question, error) {
	q, ok := FindByID(id)
	if !ok {
		return Question{}, fmt.Errorf("%w: %q", ErrQuestionNotFound, id)
	}
	return q, nil
}

// ByCategory returns the questions tagged with cat, in presentation order.
func ByCategory(cat Category) []Question {
	qs := c.byCategory[cat]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// Position returns the zero-based presentation index of id, or -1.
func Position(id string) int {
	i, ok := c.byID[id]
	if !ok {
		return -1
	}
	return i
}
