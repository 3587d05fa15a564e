// Package quiz is the interactive terminal screen for answering the
// question catalog.
package quiz

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/strengthmap/internal/assessment"
	sess "github.com/abhisek/strengthmap/internal/quiz"
	"github.com/abhisek/strengthmap/internal/ui/components"
)

const (
	defaultWidth = 60
	maxWidth     = 80

	noticeFirstQuestion = "最初の質問です"
)

// InputClosedMsg tells the screen its input stream ended. An unfinished run
// is aborted.
type InputClosedMsg struct{}

// QuizScreen walks a quiz session one question at a time.
type QuizScreen struct {
	session *sess.Session
	choice  components.LikertChoice
	keys    keyMap
	help    help.Model
	width   int
	aborted bool
	notice  string
}

var _ tea.Model = (*QuizScreen)(nil)

// New creates a QuizScreen over s.
func New(s *sess.Session) *QuizScreen {
	m := &QuizScreen{
		session: s,
		keys:    defaultKeys(),
		help:    help.New(),
		width:   defaultWidth,
	}
	m.nextChoice(0)
	return m
}

func (m *QuizScreen) Init() tea.Cmd {
	return nil
}

func (m *QuizScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = min(msg.Width, maxWidth)
		return m, nil

	case InputClosedMsg:
		if !m.Done() {
			m.aborted = true
		}
		return m, tea.Quit

	case tea.KeyPressMsg:
		if m.Done() || m.aborted {
			return m, nil
		}
		m.notice = ""

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back()
			return m, nil
		}

		m.choice, _ = m.choice.Update(msg)
		if !m.choice.Submitted {
			return m, nil
		}
		if err := m.session.Answer(m.choice.Value()); err != nil {
			m.notice = err.Error()
			m.choice.Submitted = false
			return m, nil
		}
		if m.session.Done() {
			return m, tea.Quit
		}
		m.nextChoice(0)
		return m, nil
	}
	return m, nil
}

func (m *QuizScreen) View() tea.View {
	return tea.NewView(m.render())
}

// Done reports whether every question has been answered.
func (m *QuizScreen) Done() bool {
	return m.session.Done()
}

// Aborted reports whether the user quit before finishing.
func (m *QuizScreen) Aborted() bool {
	return m.aborted
}

// Answers returns the answers collected so far.
func (m *QuizScreen) Answers() []assessment.Answer {
	return m.session.Answers()
}

// back returns to the previous question with its old answer preselected.
func (m *QuizScreen) back() {
	answers := m.session.Answers()
	if !m.session.Back() {
		m.notice = noticeFirstQuestion
		return
	}
	last := answers[len(answers)-1]
	m.nextChoice(last.Value)
}

// nextChoice builds the selector for the current question. value 0 puts the
// cursor on the neutral midpoint.
func (m *QuizScreen) nextChoice(value int) {
	q, ok := m.session.Current()
	if !ok {
		return
	}
	if value == 0 {
		value = (assessment.MinValue + assessment.MaxValue) / 2
	}
	m.choice = components.NewLikertChoice(q.Text, likertOptions(), value-1)
	m.choice.Keys = m.keys.LikertKeyMap
}

func likertOptions() []string {
	opts := make([]string, 0, assessment.MaxValue-assessment.MinValue+1)
	for v := assessment.MinValue; v <= assessment.MaxValue; v++ {
		opts = append(opts, assessment.LikertLabel(v))
	}
	return opts
}
