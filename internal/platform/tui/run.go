package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/IGOLIVIT/galaxy-quest/internal/engine"
	"github.com/IGOLIVIT/galaxy-quest/internal/storage"
)

// Run starts the full-session TUI on the local terminal.
func Run(eng *engine.Engine, store *storage.Store) error {
	p := tea.NewProgram(NewSessionModel(eng, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunQuiz runs a standalone quiz for one mission and returns its
// outcome, nil when the player abandoned the run.
func RunQuiz(m QuizModel) (*QuizOutcome, error) {
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if qm, ok := final.(QuizModel); ok {
		return qm.Outcome(), nil
	}
	return nil, nil
}

// RunCatcher runs a standalone Cash Catcher session and returns the
// final score.
func RunCatcher(store *storage.Store, width, height int) (int, error) {
	p := tea.NewProgram(NewCatcherModel(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	if cm, ok := final.(CatcherModel); ok {
		return cm.FinalScore(), nil
	}
	return 0, nil
}
