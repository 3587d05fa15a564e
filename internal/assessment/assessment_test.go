package assessment

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidateAnswer(t *testing.T) {
	tests := []struct {
		name    string
		answer  Answer
		wantErr bool
	}{
		{"valid low", Answer{QuestionID: "q1", Value: 1}, false},
		{"valid high", Answer{QuestionID: "q1", Value: 5}, false},
		{"missing id", Answer{Value: 3}, true},
		{"zero value", Answer{QuestionID: "q1", Value: 0}, true},
		{"above scale", Answer{QuestionID: "q1", Value: 6}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswer(tt.answer)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAnswer(%+v) error = %v, wantErr %v", tt.answer, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAnswers_ReportsFields(t *testing.T) {
	err := ValidateAnswers([]Answer{
		{QuestionID: "q1", Value: 4},
		{QuestionID: "q2", Value: 9},
	})
	if err == nil {
		t.Fatal("expected error for out-of-range value")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Fields) != 1 {
		t.Fatalf("got %d field errors, want 1", len(verr.Fields))
	}
	if !strings.Contains(verr.Fields[0].Field, "value") {
		t.Errorf("field = %q, want it to name value", verr.Fields[0].Field)
	}
	if verr.Fields[0].Rule != "max" {
		t.Errorf("rule = %q, want max", verr.Fields[0].Rule)
	}
}

func TestValidateAnswers_Empty(t *testing.T) {
	if err := ValidateAnswers(nil); err != nil {
		t.Fatalf("unexpected error for empty list: %v", err)
	}
}

func TestResultValidate(t *testing.T) {
	r := Result{
		ID:   "1",
		Date: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		Answers: []Answer{
			{QuestionID: "q1", Value: 5},
		},
		Strengths: []StrengthItem{{ID: "strength_0", Title: "創造力豊か", Score: 50}},
		Values:    []string{"調和"},
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("valid result rejected: %v", err)
	}

	r.Strengths[0].Score = 120
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for score above 100")
	}

	r.Strengths[0].Score = 50
	r.ID = ""
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for missing id")
	}
}

func TestHighlights(t *testing.T) {
	r := Result{Strengths: []StrengthItem{
		{Title: "A"}, {Title: "B"}, {Title: "C"}, {Title: "D"}, {Title: "E"},
	}}

	titles, more := r.Highlights(3)
	if strings.Join(titles, ",") != "A,B,C" {
		t.Errorf("titles = %v, want [A B C]", titles)
	}
	if more != 2 {
		t.Errorf("more = %d, want 2", more)
	}

	titles, more = Result{}.Highlights(3)
	if len(titles) != 0 || more != 0 {
		t.Errorf("empty result: titles=%v more=%d", titles, more)
	}
}

func TestLikertLabel(t *testing.T) {
	if got := LikertLabel(3); got != "どちらでもない" {
		t.Errorf("LikertLabel(3) = %q", got)
	}
	if got := LikertLabel(7); got != "" {
		t.Errorf("LikertLabel(7) = %q, want empty", got)
	}
}

func TestValidateRun(t *testing.T) {
	ids := []string{"q1", "q2", "q3"}

	tests := []struct {
		name    string
		answers []Answer
		want    []FieldError
	}{
		{
			name:    "complete",
			answers: []Answer{{"q2", 3}, {"q1", 5}, {"q3", 1}},
		},
		{
			name:    "empty",
			answers: nil,
			want: []FieldError{
				{Field: "answers", Rule: "missing", Value: "q1"},
				{Field: "answers", Rule: "missing", Value: "q2"},
				{Field: "answers", Rule: "missing", Value: "q3"},
			},
		},
		{
			name:    "same question three times",
			answers: []Answer{{"q2", 5}, {"q2", 5}, {"q2", 5}},
			want: []FieldError{
				{Field: "answers[1].questionId", Rule: "duplicate", Value: "q2"},
				{Field: "answers[2].questionId", Rule: "duplicate", Value: "q2"},
				{Field: "answers", Rule: "missing", Value: "q1"},
				{Field: "answers", Rule: "missing", Value: "q3"},
			},
		},
		{
			name:    "unknown id",
			answers: []Answer{{"q1", 5}, {"q2", 5}, {"q3", 5}, {"q99", 5}},
			want: []FieldError{
				{Field: "answers[3].questionId", Rule: "unknown", Value: "q99"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRun(tt.answers, ids)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
			}
			if !errors.Is(err, ErrIncompleteRun) {
				t.Errorf("error does not wrap ErrIncompleteRun: %v", err)
			}
			if len(verr.Fields) != len(tt.want) {
				t.Fatalf("fields = %+v, want %+v", verr.Fields, tt.want)
			}
			for i := range tt.want {
				if verr.Fields[i] != tt.want[i] {
					t.Errorf("fields[%d] = %+v, want %+v", i, verr.Fields[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidateRun_RangeCheckedFirst(t *testing.T) {
	err := ValidateRun([]Answer{{"q1", 9}}, []string{"q1"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if errors.Is(err, ErrIncompleteRun) {
		t.Errorf("range failure reported as incomplete run: %v", err)
	}
}
