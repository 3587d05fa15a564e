package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abhisek/strengthmap/internal/quiz"
	quizscreen "github.com/abhisek/strengthmap/internal/screens/quiz"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Answer the questions and save a new result",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTake(cmd)
	},
}

func runTake(cmd *cobra.Command) error {
	svc, closeFn, err := openService(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	out := cmd.OutOrStdout()
	screen := quizscreen.New(quiz.NewSession())

	in := &eofNotifier{r: cmd.InOrStdin()}
	opts := []tea.ProgramOption{
		tea.WithContext(cmd.Context()),
		tea.WithOutput(out),
	}
	if isTerminal(cmd.InOrStdin()) {
		opts = append(opts, tea.WithInput(cmd.InOrStdin()))
	} else {
		opts = append(opts, tea.WithInput(in))
	}
	p := tea.NewProgram(screen, opts...)
	in.onEOF = func() { p.Send(quizscreen.InputClosedMsg{}) }

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run quiz: %w", err)
	}
	if !screen.Done() {
		fmt.Fprintln(out, "中断しました。結果は保存されていません。")
		return nil
	}

	result, err := svc.Record(cmd.Context(), screen.Answers())
	if err != nil {
		return fmt.Errorf("結果の保存に失敗しました: %w", err)
	}

	lipgloss.Fprintln(out, renderResult(result))
	fmt.Fprintf(out, "\nID: %s\n", result.ID)
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// eofNotifier calls onEOF once when the wrapped reader is exhausted, so a
// piped run that ends early stops the program instead of waiting for keys.
type eofNotifier struct {
	r     io.Reader
	onEOF func()
	once  sync.Once
}

func (e *eofNotifier) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if errors.Is(err, io.EOF) && e.onEOF != nil {
		e.once.Do(e.onEOF)
	}
	return n, err
}
