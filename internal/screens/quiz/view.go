package quiz

import (
	"fmt"
	"strings"

	"github.com/abhisek/strengthmap/internal/ui/components"
	"github.com/abhisek/strengthmap/internal/ui/theme"
)

const scalePrompt = "どのくらい当てはまりますか？"

func (m *QuizScreen) render() string {
	if m.aborted {
		return ""
	}
	if m.Done() {
		return theme.Growth.Render("すべての質問に回答しました") + "\n"
	}

	pos, total := m.session.Progress()
	var b strings.Builder
	b.WriteString(theme.Title.Render("わたしの強みマップ"))
	b.WriteString("\n\n")

	label := fmt.Sprintf("質問 %d / %d", pos, total)
	b.WriteString(components.NewProgressBar(label, float64(pos-1)/float64(total), true, m.width).View())
	b.WriteString("\n\n")

	b.WriteString(theme.Card.Width(m.width).Render(m.choice.View() + "\n" + theme.Hint.Render(scalePrompt)))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(theme.Decline.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	b.WriteString("\n")
	return b.String()
}
