// Package quiz walks a user through the question catalog one question at a
// time and collects their answers.
package quiz

import (
	"errors"

	"github.com/abhisek/strengthmap/internal/assessment"
	"github.com/abhisek/strengthmap/internal/catalog"
)

// ErrComplete is returned by Answer once every question has been answered.
var ErrComplete = errors.New("quiz already complete")

// Session holds the answers of a single quiz run. It is owned by one caller
// and is not safe for concurrent use.
type Session struct {
	questions []catalog.Question
	answers   []assessment.Answer
}

// NewSession starts a run over the full catalog.
func NewSession() *Session {
	return NewSessionWith(catalog.All())
}

// NewSessionWith starts a run over the given questions.
func NewSessionWith(questions []catalog.Question) *Session {
	return &Session{
		questions: questions,
		answers:   make([]assessment.Answer, 0, len(questions)),
	}
}

// Current returns the question awaiting an answer. ok is false once the
// run is complete.
func (s *Session) Current() (q catalog.Question, ok bool) {
	if s.Done() {
		return catalog.Question{}, false
	}
	return s.questions[len(s.answers)], true
}

// Answer records value for the current question and advances.
func (s *Session) Answer(value int) error {
	q, ok := s.Current()
	if !ok {
		return ErrComplete
	}
	a := assessment.Answer{QuestionID: q.ID, Value: value}
	if err := assessment.ValidateAnswer(a); err != nil {
		return err
	}
	s.answers = append(s.answers, a)
	return nil
}

// Back discards the most recent answer so its question is asked again.
// It reports false on the first question.
func (s *Session) Back() bool {
	if len(s.answers) == 0 {
		return false
	}
	s.answers = s.answers[:len(s.answers)-1]
	return true
}

// Done reports whether every question has an answer.
func (s *Session) Done() bool {
	return len(s.answers) >= len(s.questions)
}

// Answers returns a copy of the answers collected so far, in question order.
func (s *Session) Answers() []assessment.Answer {
	out := make([]assessment.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Progress returns the 1-based position of the current question and the
// total number of questions. Once done, position equals total.
func (s *Session) Progress() (position, total int) {
	total = len(s.questions)
	return min(len(s.answers)+1, total), total
}
