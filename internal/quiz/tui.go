package quiz

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Run plays the quiz, choosing the TUI when stdout is a terminal and the
// plain loop otherwise. Returns the final score.
func Run(questions []Question, forcePlain bool) (int, error) {
	if forcePlain || len(questions) == 0 || !isTTY(os.Stdout) {
		return RunPlain(questions, os.Stdin, os.Stdout), nil
	}

	final, err := tea.NewProgram(newModel(questions), tea.WithAltScreen()).Run()
	if err != nil {
		return 0, err
	}
	m, ok := final.(model)
	if !ok {
		return 0, fmt.Errorf("unexpected final model %T", final)
	}
	// The alt screen is gone by now; repeat the result where it stays visible.
	fmt.Printf("Quiz Complete! Your Score: %d/%d\n", m.score, len(questions))
	return m.score, nil
}

func isTTY(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

type model struct {
	questions []Question
	current   int
	input     string
	feedback  string
	score     int
	done      bool
}

func newModel(questions []Question) model {
	return model{questions: questions}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		if m.done {
			return m, tea.Quit
		}
		q := m.questions[m.current]
		if q.Check(m.input) {
			m.feedback = "Correct!"
			m.score++
		} else {
			m.feedback = fmt.Sprintf("Wrong! Correct answer: %s", q.Answer)
		}
		m.input = ""
		m.current++
		if m.current >= len(m.questions) {
			m.done = true
		}
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes:
		m.input += string(key.Runes)
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	if m.done {
		fmt.Fprintf(&b, "%s\n\n", m.feedback)
		fmt.Fprintf(&b, "Quiz Complete! Your Score: %d/%d\n\n", m.score, len(m.questions))
		b.WriteString("(press enter to exit)\n")
		return b.String()
	}

	q := m.questions[m.current]
	fmt.Fprintf(&b, "%d. %s\n", m.current+1, q.Question)
	for _, opt := range q.Options {
		fmt.Fprintf(&b, "%s\n", opt)
	}
	if m.feedback != "" {
		fmt.Fprintf(&b, "\n%s\n", m.feedback)
	}
	fmt.Fprintf(&b, "\nYour answer (a / b / c / d): %s\n", m.input)
	return b.String()
}
