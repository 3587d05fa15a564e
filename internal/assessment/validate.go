package assessment

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrIncompleteRun is wrapped by ValidateRun when the answers do not cover
// the question set exactly once.
var ErrIncompleteRun = errors.New("answers must cover every question exactly once")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// instance returns the shared validator. Field names in errors use the JSON
// names so messages match the stored format.
func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// FieldError describes one invalid field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Value string `json:"value,omitempty"`
}

// ValidationError reports every field that failed validation.
type ValidationError struct {
	Fields []FieldError
	Err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("validation failed: %v", e.Err)
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s (%s)", f.Field, f.Rule)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ValidateAnswer checks a single answer's shape and range.
func ValidateAnswer(a Answer) error {
	return wrap(instance().Struct(a))
}

// ValidateAnswers checks every answer in the list and reports all failures
// at once.
func ValidateAnswers(answers []Answer) error {
	var all *ValidationError
	for i, a := range answers {
		err := ValidateAnswer(a)
		if err == nil {
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		if all == nil {
			all = &ValidationError{Err: verr.Err}
		}
		for _, f := range verr.Fields {
			f.Field = fmt.Sprintf("answers[%d].%s", i, strings.TrimPrefix(f.Field, "Answer."))
			all.Fields = append(all.Fields, f)
		}
	}
	if all == nil {
		return nil
	}
	return all
}

// ValidateRun checks that answers form one completed run over questionIDs:
// every answer is in range, and every question is answered exactly once.
// Unknown, duplicate and missing question ids are all reported together.
func ValidateRun(answers []Answer, questionIDs []string) error {
	if err := ValidateAnswers(answers); err != nil {
		return err
	}

	known := make(map[string]bool, len(questionIDs))
	for _, id := range questionIDs {
		known[id] = true
	}
	var fields []FieldError
	seen := make(map[string]bool, len(answers))
	for i, a := range answers {
		field := fmt.Sprintf("answers[%d].questionId", i)
		switch {
		case !known[a.QuestionID]:
			fields = append(fields, FieldError{Field: field, Rule: "unknown", Value: a.QuestionID})
		case seen[a.QuestionID]:
			fields = append(fields, FieldError{Field: field, Rule: "duplicate", Value: a.QuestionID})
		}
		seen[a.QuestionID] = true
	}
	for _, id := range questionIDs {
		if !seen[id] {
			fields = append(fields, FieldError{Field: "answers", Rule: "missing", Value: id})
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields, Err: ErrIncompleteRun}
}

// Validate checks a stored result record.
func (r Result) Validate() error {
	return wrap(instance().Struct(r))
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Err: err}
	}
	fields := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		fields[i] = FieldError{
			Field: fe.Namespace(),
			Rule:  fe.Tag(),
			Value: fmt.Sprint(fe.Value()),
		}
	}
	return &ValidationError{Fields: fields, Err: err}
}
