package scoring

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/abhisek/strengthmap/internal/assessment"
	"github.com/abhisek/strengthmap/internal/catalog"
)

func answersOf(pairs ...any) []assessment.Answer {
	var out []assessment.Answer
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, assessment.Answer{
			QuestionID: pairs[i].(string),
			Value:      pairs[i+1].(int),
		})
	}
	return out
}

func uniform(v int) []assessment.Answer {
	var out []assessment.Answer
	for _, q := range catalog.All() {
		out = append(out, assessment.Answer{QuestionID: q.ID, Value: v})
	}
	return out
}

func TestAnalyze_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		answers    []assessment.Answer
		wantTitles []string
		wantScores []float64
		wantValues []string
	}{
		{
			name:       "two questions saturate one label",
			answers:    answersOf("q1", 5, "q3", 5),
			wantTitles: []string{LabelReassuring},
			wantScores: []float64{100},
			wantValues: []string{},
		},
		{
			name:       "single four",
			answers:    answersOf("q2", 4),
			wantTitles: []string{LabelPerseverance},
			wantScores: []float64{40},
			wantValues: []string{},
		},
		{
			name:       "all threes yield nothing",
			answers:    uniform(3),
			wantTitles: []string{},
			wantScores: []float64{},
			wantValues: []string{},
		},
		{
			name:       "unknown question ignored",
			answers:    answersOf("zzz", 5),
			wantTitles: []string{},
			wantScores: []float64{},
			wantValues: []string{},
		},
		{
			name:       "out of range value ignored",
			answers:    answersOf("q4", 9, "q14", 0),
			wantTitles: []string{},
			wantScores: []float64{},
			wantValues: []string{},
		},
		{
			name:       "value question emits strength and tag",
			answers:    answersOf("q7", 5, "q15", 4),
			wantTitles: []string{LabelCompassion},
			wantScores: []float64{90},
			wantValues: []string{"他者貢献", "成長支援"},
		},
		{
			name:       "personality question feeds strength but no tag",
			answers:    answersOf("q8", 4, "q10", 4, "q9", 5, "q13", 5),
			wantTitles: []string{LabelPlanning},
			wantScores: []float64{80},
			wantValues: []string{},
		},
		{
			name:       "value question without a strength label",
			answers:    answersOf("q6", 5),
			wantTitles: []string{},
			wantScores: []float64{},
			wantValues: []string{"自立性"},
		},
		{
			name:       "ranking descending",
			answers:    answersOf("q4", 4, "q2", 5, "q11", 5, "q14", 5),
			wantTitles: []string{LabelPerseverance, LabelLogical, LabelCreative},
			wantScores: []float64{100, 50, 40},
			wantValues: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.answers)

			titles := []string{}
			scores := []float64{}
			for _, s := range got.Strengths {
				titles = append(titles, s.Title)
				scores = append(scores, s.Score)
			}
			if !reflect.DeepEqual(titles, tt.wantTitles) {
				t.Errorf("titles = %v, want %v", titles, tt.wantTitles)
			}
			if !reflect.DeepEqual(scores, tt.wantScores) {
				t.Errorf("scores = %v, want %v", scores, tt.wantScores)
			}
			if !reflect.DeepEqual(got.Values, tt.wantValues) {
				t.Errorf("values = %v, want %v", got.Values, tt.wantValues)
			}
		})
	}
}

func TestAnalyze_TiesKeepFirstContributionOrder(t *testing.T) {
	// Every label receives 4 per question; labels fed by two questions
	// total 8, single-question labels total 4.
	got := Analyze(uniform(4))

	want := []string{
		LabelReassuring,   // q1
		LabelPerseverance, // q2
		LabelCooperative,  // q5
		LabelCompassion,   // q7
		LabelPlanning,     // q8
	}
	if len(got.Strengths) != MaxStrengths {
		t.Fatalf("got %d strengths, want %d", len(got.Strengths), MaxStrengths)
	}
	for i, s := range got.Strengths {
		if s.Title != want[i] {
			t.Errorf("strengths[%d] = %q, want %q", i, s.Title, want[i])
		}
		if s.Score != 80 {
			t.Errorf("strengths[%d].Score = %v, want 80", i, s.Score)
		}
	}
}

func TestAnalyze_StrengthIDsFollowRank(t *testing.T) {
	got := Analyze(answersOf("q4", 4, "q14", 5))
	if len(got.Strengths) != 2 {
		t.Fatalf("got %d strengths, want 2", len(got.Strengths))
	}
	if got.Strengths[0].ID != "strength_0" || got.Strengths[1].ID != "strength_1" {
		t.Errorf("ids = %q, %q", got.Strengths[0].ID, got.Strengths[1].ID)
	}
	if got.Strengths[0].Title != LabelLogical {
		t.Errorf("top strength = %q, want %q", got.Strengths[0].Title, LabelLogical)
	}
}

func TestAnalyze_ValuesDeduplicated(t *testing.T) {
	// The same question answered twice must not repeat its tag.
	got := Analyze(answersOf("q7", 5, "q7", 4, "q5", 4))
	want := []string{"他者貢献", "チームワーク"}
	if !reflect.DeepEqual(got.Values, want) {
		t.Errorf("values = %v, want %v", got.Values, want)
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	got := Analyze(nil)
	if got.Strengths == nil || got.Values == nil {
		t.Fatal("expected non-nil empty slices")
	}
	if len(got.Strengths) != 0 || len(got.Values) != 0 {
		t.Errorf("got %+v, want empty analysis", got)
	}
}

func TestAnalyze_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"zzz", ""}
	for _, q := range catalog.All() {
		ids = append(ids, q.ID)
	}

	for iter := 0; iter < 500; iter++ {
		n := rng.Intn(25)
		answers := make([]assessment.Answer, n)
		for i := range answers {
			answers[i] = assessment.Answer{
				QuestionID: ids[rng.Intn(len(ids))],
				Value:      rng.Intn(8) - 1,
			}
		}

		got := Analyze(answers)

		if len(got.Strengths) > MaxStrengths {
			t.Fatalf("iter %d: %d strengths exceeds %d", iter, len(got.Strengths), MaxStrengths)
		}
		for i, s := range got.Strengths {
			if s.Score < 0 || s.Score > 100 {
				t.Fatalf("iter %d: score %v out of range", iter, s.Score)
			}
			if i > 0 && s.Score > got.Strengths[i-1].Score {
				t.Fatalf("iter %d: strengths not sorted: %v", iter, got.Strengths)
			}
		}
		seen := make(map[string]bool)
		for _, v := range got.Values {
			if seen[v] {
				t.Fatalf("iter %d: duplicate value tag %q", iter, v)
			}
			seen[v] = true
		}

		again := Analyze(answers)
		if !reflect.DeepEqual(got, again) {
			t.Fatalf("iter %d: Analyze not idempotent", iter)
		}
	}
}

func TestAnalyze_WeakAnswersNeverContribute(t *testing.T) {
	strong := answersOf("q1", 5, "q5", 5)
	weak := append(answersOf("q3", 3, "q12", 2, "q7", 1, "q15", 3), strong...)

	if !reflect.DeepEqual(Analyze(strong), Analyze(weak)) {
		t.Error("adding answers below the threshold changed the analysis")
	}
}

func TestNormalizeScore(t *testing.T) {
	tests := []struct {
		total int
		want  float64
	}{
		{0, 0},
		{-3, 0},
		{4, 40},
		{5, 50},
		{9, 90},
		{10, 100},
		{15, 100},
	}
	for _, tt := range tests {
		if got := NormalizeScore(tt.total); got != tt.want {
			t.Errorf("NormalizeScore(%d) = %v, want %v", tt.total, got, tt.want)
		}
	}
}

func TestTablesReferenceCatalog(t *testing.T) {
	for id := range strengthLabels {
		if _, ok := catalog.FindByID(id); !ok {
			t.Errorf("strength table references unknown question %q", id)
		}
	}
	for id := range valueTags {
		q, ok := catalog.FindByID(id)
		if !ok {
			t.Errorf("value table references unknown question %q", id)
			continue
		}
		if q.Category != catalog.CategoryValue {
			t.Errorf("value table entry %q is category %q", id, q.Category)
		}
	}

	labels := make(map[string]bool)
	for _, l := range Labels() {
		labels[l] = true
	}
	for id, l := range strengthLabels {
		if !labels[l] {
			t.Errorf("label %q for %q missing from Labels()", l, id)
		}
	}
}

func TestValueTagsCoverTable(t *testing.T) {
	tags := make(map[string]bool)
	for _, v := range ValueTags() {
		tags[v] = true
	}
	if len(tags) != len(valueTags) {
		t.Errorf("ValueTags() has %d entries, table has %d", len(tags), len(valueTags))
	}
	for id, v := range valueTags {
		if !tags[v] {
			t.Errorf("tag %q for %q missing from ValueTags()", v, id)
		}
	}
}
