package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/strengthmap/internal/assessment"
	"github.com/abhisek/strengthmap/internal/catalog"
	"github.com/abhisek/strengthmap/internal/history"
	"github.com/abhisek/strengthmap/internal/scoring"
	"github.com/abhisek/strengthmap/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	clock := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	seq := 0
	svc := history.NewService(st.KVRepo(), st.SnapshotRepo(), history.Options{
		Now: func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		},
		NewID: func() (string, error) {
			seq++
			return fmt.Sprintf("a%d", seq), nil
		},
	})
	return New(svc, nil, gin.TestMode)
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

// fullRun answers every catalog question with 1 and then applies overrides.
func fullRun(overrides ...assessment.Answer) []assessment.Answer {
	out := make([]assessment.Answer, 0, catalog.Count())
	for _, id := range catalog.IDs() {
		out = append(out, assessment.Answer{QuestionID: id, Value: 1})
	}
	for _, o := range overrides {
		for i := range out {
			if out[i].QuestionID == o.QuestionID {
				out[i].Value = o.Value
			}
		}
	}
	return out
}

func record(t *testing.T, s *Server, overrides ...assessment.Answer) assessment.Result {
	t.Helper()
	w := do(t, s, http.MethodPost, "/api/v1/assessments", AnswersRequest{Answers: fullRun(overrides...)})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[assessment.Result](t, w)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]any](t, w)["status"])
}

func TestListQuestions(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/api/v1/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	qs := decode[[]catalog.Question](t, w)
	assert.Equal(t, catalog.All(), qs)
}

func TestAnalyze(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/v1/analyze", AnswersRequest{Answers: []assessment.Answer{
		{QuestionID: "q1", Value: 5},
		{QuestionID: "q3", Value: 5},
	}})
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[scoring.Analysis](t, w)
	require.Len(t, got.Strengths, 1)
	assert.Equal(t, 100.0, got.Strengths[0].Score)

	// Nothing is stored.
	w = do(t, s, http.MethodGet, "/api/v1/assessments", nil)
	assert.Empty(t, decode[[]assessment.Result](t, w))
}

func TestAnalyzeRejectsBadInput(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/v1/analyze", AnswersRequest{Answers: []assessment.Answer{{QuestionID: "q1", Value: 7}}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, "invalid", resp.Code)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "answers[0].value", resp.Details[0].Field)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssessmentLifecycle(t *testing.T) {
	s := newTestServer(t)

	first := record(t, s, assessment.Answer{QuestionID: "q1", Value: 5})
	second := record(t, s,
		assessment.Answer{QuestionID: "q1", Value: 5},
		assessment.Answer{QuestionID: "q3", Value: 5},
		assessment.Answer{QuestionID: "q14", Value: 4},
	)
	assert.Equal(t, "a1", first.ID)
	assert.Equal(t, "a2", second.ID)

	w := do(t, s, http.MethodGet, "/api/v1/assessments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]assessment.Result](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "a2", list[0].ID, "newest first")

	w = do(t, s, http.MethodGet, "/api/v1/assessments/a1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a1", decode[assessment.Result](t, w).ID)

	w = do(t, s, http.MethodGet, "/api/v1/assessments/a2/compare", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cmp := decode[history.Comparison](t, w)
	assert.Equal(t, "a1", cmp.Previous.ID)
	require.Len(t, cmp.Items, 2)
	assert.Equal(t, history.GrowthItem{Title: "人に安心感を与える", Previous: 50, Current: 100, Diff: 50}, cmp.Items[0])
	assert.True(t, cmp.Items[1].IsNew)

	w = do(t, s, http.MethodGet, "/api/v1/assessments/a1/compare?previous=a2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[history.Comparison](t, w).Declined(), 2)

	w = do(t, s, http.MethodGet, "/api/v1/assessments/a1/compare", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "no_previous", decode[ErrorResponse](t, w).Code)

	w = do(t, s, http.MethodGet, "/api/v1/assessments/a2/share", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode[ShareResponse](t, w).Text, "・人に安心感を与える")

	w = do(t, s, http.MethodDelete, "/api/v1/assessments/a1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, s, http.MethodDelete, "/api/v1/assessments/a1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodGet, "/api/v1/assessments/a1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decode[ErrorResponse](t, w).Code)
}

func TestCreateRejectsIncompleteRun(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		answers []assessment.Answer
		rule    string
	}{
		{"empty", nil, "missing"},
		{"repeated question", []assessment.Answer{
			{QuestionID: "q4", Value: 5},
			{QuestionID: "q4", Value: 5},
			{QuestionID: "q4", Value: 5},
		}, "duplicate"},
		{"unknown question", append(fullRun(), assessment.Answer{QuestionID: "q99", Value: 5}), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/api/v1/assessments", AnswersRequest{Answers: tt.answers})
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			resp := decode[ErrorResponse](t, w)
			assert.Equal(t, "invalid", resp.Code)
			require.NotEmpty(t, resp.Details)

			var rules []string
			for _, d := range resp.Details {
				rules = append(rules, d.Rule)
			}
			assert.Contains(t, rules, tt.rule)
		})
	}

	w := do(t, s, http.MethodGet, "/api/v1/assessments", nil)
	assert.Empty(t, decode[[]assessment.Result](t, w))
}

type failingHistory struct{ History }

func (failingHistory) List(context.Context) ([]assessment.Result, error) {
	return nil, fmt.Errorf("load history: %w", context.DeadlineExceeded)
}

func TestStorageFailureIs500(t *testing.T) {
	s := New(failingHistory{}, nil, gin.TestMode)

	w := do(t, s, http.MethodGet, "/api/v1/assessments", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal", decode[ErrorResponse](t, w).Code)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
