package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/IGOLIVIT/galaxy-quest/internal/challenge"
	"github.com/IGOLIVIT/galaxy-quest/internal/content"
)

// QuizOutcome is what a finished quiz run reports back to the caller.
type QuizOutcome struct {
	MissionID string
	Fraction  float64
	Passed    bool
}

// quizKeyMap defines the quiz key bindings.
type quizKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Pick    key.Binding
	Confirm key.Binding
	Retry   key.Binding
	Quit    key.Binding
}

func (k quizKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Quit}
}

func (k quizKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Pick},
		{k.Confirm, k.Retry, k.Quit},
	}
}

func defaultQuizKeyMap() quizKeyMap {
	return quizKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous answer"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next answer"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "pick answer"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit / continue"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "abandon"),
		),
	}
}

// QuizModel runs one mission challenge in the terminal.
type QuizModel struct {
	session *challenge.Session
	limit   time.Duration
	bar     progress.Model
	keys    quizKeyMap
	help    help.Model

	cursor      int
	lastCorrect bool
	abandoned   bool
	done        bool
	width       int
}

// NewQuizModel starts a quiz for the mission.
func NewQuizModel(m content.Mission) QuizModel {
	return QuizModel{
		session: challenge.NewSession(m),
		limit:   challenge.TimeLimit(m.Difficulty),
		bar:     progress.New(progress.WithDefaultGradient()),
		keys:    defaultQuizKeyMap(),
		help:    help.New(),
	}
}

// Outcome returns the result of the run, nil when abandoned.
func (m QuizModel) Outcome() *QuizOutcome {
	if m.abandoned || !m.session.Completed() {
		return nil
	}
	return &QuizOutcome{
		MissionID: m.session.Mission().ID,
		Fraction:  m.session.ScoreFraction(),
		Passed:    m.session.Passed(),
	}
}

// Abandoned reports whether the player bailed out mid-run.
func (m QuizModel) Abandoned() bool {
	return m.abandoned
}

func (m QuizModel) Init() tea.Cmd {
	return secondCmd()
}

func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 8
		if m.bar.Width > 60 {
			m.bar.Width = 60
		}
		return m, nil

	case SecondMsg:
		if m.session.Completed() {
			return m, nil
		}
		m.session.TickSecond()
		return m, secondCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m QuizModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.abandoned = !m.session.Completed()
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Retry):
		if m.session.Completed() && !m.session.Passed() {
			m.session.Reset()
			m.cursor = 0
			return m, secondCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.confirm()
	}

	if m.session.CurrentPhase() != challenge.PhaseAnswering {
		return m, nil
	}

	q, ok := m.session.Current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.session.Select(m.cursor)
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(q.Answers)-1 {
			m.cursor++
		}
		m.session.Select(m.cursor)
	case key.Matches(msg, m.keys.Pick):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(q.Answers) {
			m.cursor = idx
			m.session.Select(idx)
		}
	}

	return m, nil
}

func (m QuizModel) confirm() (tea.Model, tea.Cmd) {
	switch m.session.CurrentPhase() {
	case challenge.PhaseAnswering:
		m.lastCorrect = m.session.Submit()
	case challenge.PhaseExplaining:
		m.session.Next()
		m.cursor = 0
	case challenge.PhaseCompleted:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// Done reports whether the screen is finished, either by abandoning
// the run or by confirming the results. Embedding models check this
// instead of forwarding the quit command.
func (m QuizModel) Done() bool {
	return m.done
}

func (m QuizModel) View() string {
	var b strings.Builder

	mission := m.session.Mission()
	b.WriteString(titleStyle.Render(mission.Title))
	b.WriteString("\n")

	if m.session.Completed() {
		return b.String() + m.viewResults()
	}

	remaining := m.session.Remaining()
	b.WriteString(fmt.Sprintf("Time  %s\n", formatDuration(remaining)))
	b.WriteString(m.bar.ViewAs(float64(remaining) / float64(m.limit)))
	b.WriteString("\n\n")

	q, ok := m.session.Current()
	if !ok {
		return b.String()
	}

	b.WriteString(subtleStyle.Render(fmt.Sprintf("Question %d of %d", m.session.QuestionNumber(), m.session.TotalQuestions())))
	b.WriteString("\n\n")
	b.WriteString(q.Prompt)
	b.WriteString("\n\n")

	for i, answer := range q.Answers {
		line := fmt.Sprintf("  %d. %s", i+1, answer)
		switch {
		case m.session.CurrentPhase() == challenge.PhaseExplaining && q.Correct(i):
			line = correctStyle.Render(line)
		case m.session.CurrentPhase() == challenge.PhaseExplaining && i == m.session.Selected() && !q.Correct(i):
			line = wrongStyle.Render(line)
		case i == m.cursor && m.session.CurrentPhase() == challenge.PhaseAnswering:
			line = selectedStyle.Render("> " + strings.TrimPrefix(line, "  "))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.session.CurrentPhase() == challenge.PhaseExplaining {
		verdict := wrongStyle.Render("Wrong.")
		if m.lastCorrect {
			verdict = correctStyle.Render("Correct!")
		}
		b.WriteString("\n" + verdict + "\n")
		b.WriteString(panelStyle.Render(q.Explanation))
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m QuizModel) viewResults() string {
	var b strings.Builder

	fraction := m.session.ScoreFraction()
	b.WriteString(panelStyle.Render(fmt.Sprintf(
		"%s\n\nScore: %d / %d points (%.0f%%)",
		challenge.PerformanceRating(fraction),
		m.session.Score(),
		m.session.PointsPossible(),
		fraction*100,
	)))
	b.WriteString("\n\n")

	if m.session.Passed() {
		b.WriteString(correctStyle.Render("Mission challenge passed."))
		b.WriteString("\n" + subtleStyle.Render("enter: claim reward"))
	} else {
		b.WriteString(wrongStyle.Render("Below the 60% pass mark."))
		b.WriteString("\n" + subtleStyle.Render("r: retry  |  enter: back"))
	}
	b.WriteString("\n")
	return b.String()
}

func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
