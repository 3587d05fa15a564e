package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/strengthmap/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Body.Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := max(p.Width-labelWidth-percentWidth, 4)
	filled := fillCount(p.Percent, barWidth)

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		result += theme.Hint.Italic(false).Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// ScoreBar draws a 0-100 score as a bar of block glyphs, so it stays
// readable when colors are stripped.
type ScoreBar struct {
	Score float64
	Width int
}

// Counts returns the number of filled and empty cells.
func (b ScoreBar) Counts() (filled, empty int) {
	filled = fillCount(b.Score/100, b.Width)
	return filled, b.Width - filled
}

// View renders the bar.
func (b ScoreBar) View() string {
	filled, empty := b.Counts()
	return theme.ScoreFilled.Render(strings.Repeat("█", filled)) +
		theme.ScoreEmpty.Render(strings.Repeat("░", empty))
}

func fillCount(fraction float64, width int) int {
	return max(0, min(int(float64(width)*fraction), width))
}
