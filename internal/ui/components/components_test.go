package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestScoreBarCounts(t *testing.T) {
	tests := []struct {
		score  float64
		filled int
	}{
		{0, 0},
		{50, 10},
		{100, 20},
		{150, 20},
		{-5, 0},
	}
	for _, tt := range tests {
		bar := ScoreBar{Score: tt.score, Width: 20}
		filled, empty := bar.Counts()
		if filled != tt.filled || filled+empty != 20 {
			t.Errorf("Counts(%v) = %d, %d; want %d filled of 20", tt.score, filled, empty, tt.filled)
		}
		view := ansi.Strip(bar.View())
		if n := strings.Count(view, "█"); n != tt.filled {
			t.Errorf("View(%v) filled = %d, want %d", tt.score, n, tt.filled)
		}
	}
}

func TestProgressBarWidth(t *testing.T) {
	p := NewProgressBar("質問 1 / 15", 0.5, true, 40)
	view := p.View()
	if got := ansi.StringWidth(view); got > 40 {
		t.Errorf("width = %d, want at most 40", got)
	}
	if !strings.Contains(ansi.Strip(view), "50%") {
		t.Errorf("missing percent: %q", ansi.Strip(view))
	}
}

func TestLikertChoice(t *testing.T) {
	m := NewLikertChoice("q", []string{"a", "b", "c"}, 9)
	if m.Selected != 2 {
		t.Fatalf("selected = %d, want clamped to 2", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	if m.Value() != 1 {
		t.Errorf("value = %d, want 1", m.Value())
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.Submitted || m.Value() != 2 {
		t.Errorf("submitted = %v, value = %d; want true, 2", m.Submitted, m.Value())
	}

	// Submitted choices ignore further keys.
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Value() != 2 {
		t.Errorf("value changed after submit: %d", m.Value())
	}

	if !strings.Contains(ansi.Strip(m.View()), "▸ 2  b") {
		t.Errorf("view missing cursor: %q", ansi.Strip(m.View()))
	}
}
