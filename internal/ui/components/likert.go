package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/strengthmap/internal/ui/theme"
)

// LikertKeyMap holds the bindings a LikertChoice reacts to.
type LikertKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
}

// DefaultLikertKeys are arrow/vim navigation and enter to submit. ctrl+j is
// what a bare newline decodes to on piped input.
var DefaultLikertKeys = LikertKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "上へ")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "下へ")),
	Submit: key.NewBinding(key.WithKeys("enter", "ctrl+j"), key.WithHelp("enter", "決定")),
}

// LikertChoice is a single-answer selector over an agreement scale. The
// option at index i stands for value i+1. Digit keys jump to an option.
type LikertChoice struct {
	Question  string
	Options   []string
	Selected  int
	Submitted bool
	Keys      LikertKeyMap
}

// NewLikertChoice creates a selector with the cursor on selected.
func NewLikertChoice(question string, options []string, selected int) LikertChoice {
	return LikertChoice{
		Question: question,
		Options:  options,
		Selected: max(0, min(selected, len(options)-1)),
		Keys:     DefaultLikertKeys,
	}
}

// Init returns nil.
func (m LikertChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m LikertChoice) Update(msg tea.Msg) (LikertChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.Keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(kmsg, m.Keys.Down):
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case key.Matches(kmsg, m.Keys.Submit):
		m.Submitted = true
	default:
		if n, err := strconv.Atoi(kmsg.String()); err == nil && n >= 1 && n <= len(m.Options) {
			m.Selected = n - 1
		}
	}

	return m, nil
}

// Value returns the scale value under the cursor.
func (m LikertChoice) Value() int {
	return m.Selected + 1
}

// View renders the question and its options.
func (m LikertChoice) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		style := theme.Unselected
		if i == m.Selected {
			prefix = "▸ "
			style = theme.Selected
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%d  %s", prefix, i+1, opt)))
		b.WriteString("\n")
	}
	return b.String()
}
