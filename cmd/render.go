package cmd

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/strengthmap/internal/assessment"
	"github.com/abhisek/strengthmap/internal/history"
	"github.com/abhisek/strengthmap/internal/ui/components"
	"github.com/abhisek/strengthmap/internal/ui/theme"
)

const (
	dateLayout    = "2006年1月2日"
	historyTopN   = 3
	scoreBarWidth = 20
)

func formatDate(t time.Time) string {
	return t.Local().Format(dateLayout)
}

func renderResult(r assessment.Result) string {
	var b strings.Builder
	b.WriteString(theme.Hint.Render("分析日: " + formatDate(r.Date)))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("【あなたの強み】"))
	b.WriteString("\n")
	if len(r.Strengths) == 0 {
		b.WriteString(theme.Hint.Render("  (なし)"))
		b.WriteString("\n")
	}
	for i, s := range r.Strengths {
		bar := components.ScoreBar{Score: s.Score, Width: scoreBarWidth}
		b.WriteString(fmt.Sprintf("  %s  %s %s\n",
			theme.Body.Bold(true).Render(fmt.Sprintf("%d. %s", i+1, s.Title)),
			bar.View(),
			theme.Body.Render(fmt.Sprintf("%3.0f", s.Score)),
		))
	}

	b.WriteString("\n")
	b.WriteString(theme.Heading.Render("【大切にしている価値観】"))
	b.WriteString("\n")
	if len(r.Values) == 0 {
		b.WriteString(theme.Hint.Render("  (なし)"))
	} else {
		b.WriteString("  " + theme.Body.Render(strings.Join(r.Values, " / ")))
	}
	return b.String()
}

// renderHistory lists results newest first. Each entry after the first
// points at the entry below it for comparison.
func renderHistory(list []assessment.Result) string {
	if len(list) == 0 {
		return theme.Hint.Render("まだ分析結果がありません") + "\n" +
			theme.Body.Render("`strengthmap take` で自己分析を始めましょう！")
	}

	entries := make([]string, 0, len(list)+1)
	entries = append(entries, theme.Title.Render(fmt.Sprintf("これまでに%d回の分析を行いました", len(list))))
	for i, r := range list {
		var b strings.Builder
		b.WriteString(theme.Selected.Render(fmt.Sprintf("#%d回目の分析", i+1)))
		b.WriteString("  " + theme.Body.Render(formatDate(r.Date)))
		b.WriteString("  " + theme.Hint.Render("("+r.ID+")"))
		b.WriteString("\n")

		top, more := r.Highlights(historyTopN)
		line := strings.Join(top, "、")
		if more > 0 {
			line += fmt.Sprintf(" +%d個", more)
		}
		if line == "" {
			line = "(強みなし)"
		}
		b.WriteString("強み: " + theme.Body.Render(line))

		if i+1 < len(list) {
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render(fmt.Sprintf("前回と比較: strengthmap compare %s %s", r.ID, list[i+1].ID)))
		}
		entries = append(entries, theme.Card.Render(b.String()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, entries...)
}

func renderComparison(c history.Comparison) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("%s → %s", formatDate(c.Previous.Date), formatDate(c.Current.Date))))
	b.WriteString("\n\n")

	improved := c.Improved()
	declined := c.Declined()

	b.WriteString(theme.Heading.Render("【成長した強み】"))
	b.WriteString("\n")
	if len(improved) == 0 {
		b.WriteString(theme.Hint.Render("  (なし)"))
		b.WriteString("\n")
	}
	for _, g := range improved {
		line := fmt.Sprintf("  %s  %.0f → %.0f ", g.Title, g.Previous, g.Current) +
			theme.Growth.Render(fmt.Sprintf("(+%.0f)", g.Diff))
		if g.IsNew {
			line += " " + theme.New.Render("NEW")
		}
		b.WriteString(line + "\n")
	}

	if len(declined) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Heading.Render("【変化した強み】"))
		b.WriteString("\n")
		for _, g := range declined {
			b.WriteString(fmt.Sprintf("  %s  %.0f → %.0f ", g.Title, g.Previous, g.Current) +
				theme.Decline.Render(fmt.Sprintf("(%.0f)", g.Diff)) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
