package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/IGOLIVIT/galaxy-quest/internal/content"
	"github.com/IGOLIVIT/galaxy-quest/internal/economy"
	"github.com/IGOLIVIT/galaxy-quest/internal/engine"
	"github.com/IGOLIVIT/galaxy-quest/internal/storage"
)

// screen selects which view the session shows.
type screen int

const (
	screenMissions screen = iota
	screenColony
	screenAchievements
	screenQuiz
	screenCatcher
)

// SessionModel is the top-level model: mission browser, colony view,
// achievement list, and the two interactive screens. It is the model
// served over SSH and used by the play command.
type SessionModel struct {
	engine *engine.Engine
	store  *storage.Store

	active  screen
	quiz    *QuizModel
	catcher *CatcherModel

	progress     economy.UserProgress
	colony       economy.PlanetColony
	missions     []content.Mission
	achievements []content.Achievement

	cursor        int
	buildCursor   int
	statusLine    string
	width, height int
	onboarding    bool
	quitting      bool
}

// NewSessionModel builds the session over a running engine. store may
// be nil; Cash Catcher scores are then not recorded.
func NewSessionModel(eng *engine.Engine, store *storage.Store) SessionModel {
	m := SessionModel{engine: eng, store: store}
	m.refresh()
	m.onboarding = !m.progress.HasCompletedOnboarding
	return m
}

func (m *SessionModel) refresh() {
	m.progress, m.colony, m.missions, m.achievements = m.engine.LoadGameData()
}

func (m SessionModel) Init() tea.Cmd {
	return nil
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.active {
	case screenQuiz:
		return m.updateQuiz(msg)
	case screenCatcher:
		return m.updateCatcher(msg)
	}
	return m.updateBrowser(msg)
}

func (m SessionModel) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.onboarding {
		if keyMsg.String() == "ctrl+c" || keyMsg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		m.onboarding = false
		m.engine.CompleteOnboarding()
		m.refresh()
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "m":
		m.active = screenMissions
		m.statusLine = ""
	case "c":
		m.active = screenColony
		m.statusLine = ""
	case "a":
		m.active = screenAchievements
		m.statusLine = ""
	case "g":
		cm := NewCatcherModel(m.store, m.width, m.height)
		m.catcher = &cm
		m.active = screenCatcher
		return m, m.catcher.Init()
	}

	switch m.active {
	case screenMissions:
		return m.updateMissionList(keyMsg)
	case screenColony:
		return m.updateColony(keyMsg)
	}
	return m, nil
}

func (m SessionModel) updateMissionList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.missions)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor >= len(m.missions) {
			return m, nil
		}
		mission := m.missions[m.cursor]
		switch mission.State {
		case content.MissionAvailable:
			qm := NewQuizModel(mission)
			m.quiz = &qm
			m.active = screenQuiz
			m.statusLine = ""
			return m, m.quiz.Init()
		case content.MissionLocked:
			m.statusLine = "Locked: complete its prerequisites first."
		case content.MissionCompleted:
			m.statusLine = "Already completed."
		}
	}
	return m, nil
}

func (m SessionModel) updateColony(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.buildCursor > 0 {
			m.buildCursor--
		}
	case "down", "j":
		if m.buildCursor < len(m.colony.Buildings)-1 {
			m.buildCursor++
		}
	case "b":
		b := m.colony.Buildings[m.buildCursor]
		if m.engine.ConstructBuilding(b.ID) {
			m.statusLine = fmt.Sprintf("%s constructed.", b.Name)
		} else {
			m.statusLine = fmt.Sprintf("Cannot construct %s.", b.Name)
		}
		m.refresh()
	case "u":
		b := m.colony.Buildings[m.buildCursor]
		if m.engine.UpgradeBuilding(b.ID) {
			m.statusLine = fmt.Sprintf("%s upgraded.", b.Name)
		} else {
			m.statusLine = fmt.Sprintf("Cannot upgrade %s.", b.Name)
		}
		m.refresh()
	}
	return m, nil
}

func (m SessionModel) updateQuiz(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.quiz.Update(msg)
	if qm, ok := model.(QuizModel); ok {
		m.quiz = &qm
	}

	if !m.quiz.Done() {
		return m, cmd
	}

	// The run is over; swallow the quiz's quit command and settle.
	if outcome := m.quiz.Outcome(); outcome != nil && outcome.Passed {
		m.engine.CompleteMission(outcome.MissionID, outcome.Fraction)
		m.statusLine = "Mission settled: rewards applied."
	} else {
		m.statusLine = "No reward this time."
	}
	m.quiz = nil
	m.active = screenMissions
	m.refresh()
	return m, nil
}

func (m SessionModel) updateCatcher(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "q", "esc":
			m.catcher = nil
			m.active = screenMissions
			m.refresh()
			return m, nil
		}
	}

	model, cmd := m.catcher.Update(msg)
	if cm, ok := model.(CatcherModel); ok {
		m.catcher = &cm
	}
	return m, cmd
}

func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.onboarding {
		return m.viewOnboarding()
	}

	switch m.active {
	case screenQuiz:
		if m.quiz != nil {
			return m.quiz.View()
		}
	case screenCatcher:
		if m.catcher != nil {
			return m.catcher.View()
		}
	case screenColony:
		return m.viewColony()
	case screenAchievements:
		return m.viewAchievements()
	}
	return m.viewMissions()
}

func (m SessionModel) viewOnboarding() string {
	return titleStyle.Render("Welcome to Galaxy Quest") + "\n" +
		panelStyle.Render(
			"You command the colony of "+m.colony.Name+".\n\n"+
				"Complete financial literacy missions to earn credits and\n"+
				"experience, then spend credits on buildings that produce the\n"+
				"resources your colonists need. Wealthy colonies are happy\n"+
				"colonies.\n\n"+
				"Start with a budgeting mission; harder ones unlock as you go.",
		) + "\n\n" +
		subtleStyle.Render("press any key to take command") + "\n"
}

func (m SessionModel) header() string {
	return titleStyle.Render("Galaxy Quest") + "\n" +
		fmt.Sprintf("%s   level %d (%s)   xp %d\n",
			creditStyle.Render(fmt.Sprintf("%d cr", m.progress.Credits)),
			m.progress.Level,
			m.progress.CurrentDifficulty.Rank(),
			m.progress.Experience,
		)
}

func (m SessionModel) footer() string {
	s := subtleStyle.Render("m: missions  c: colony  a: achievements  g: cash catcher  q: quit")
	if m.statusLine != "" {
		s = m.statusLine + "\n" + s
	}
	return "\n" + s + "\n"
}

func (m SessionModel) viewMissions() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")

	for i, mission := range m.missions {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		line := fmt.Sprintf("%s%-34s %-12s %5d cr", marker, mission.Title, mission.Difficulty, mission.AdjustedReward())
		switch mission.State {
		case content.MissionLocked:
			line = lockedStyle.Render(line)
		case content.MissionCompleted:
			line = correctStyle.Render(line + "  [done]")
		default:
			if i == m.cursor {
				line = selectedStyle.Render(line)
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.footer())
	return b.String()
}

func (m SessionModel) viewColony() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString(fmt.Sprintf("\n%s   population %d   happiness %.0f%%\n\n",
		m.colony.Name, m.colony.Population, m.colony.Happiness*100))

	for kind := economy.ResourceKind(0); kind < economy.ResourceCount; kind++ {
		r := m.colony.Resource(kind)
		b.WriteString(fmt.Sprintf("%s %-10s %4d / %4d\n", r.Icon, r.Name, r.Amount, r.MaxCapacity))
	}
	b.WriteString("\n")

	for i, building := range m.colony.Buildings {
		marker := "  "
		if i == m.buildCursor {
			marker = "> "
		}
		status := "not built"
		if building.IsBuilt {
			status = fmt.Sprintf("level %d, +%d/tick", building.Level, building.ProductionRate)
		}
		line := fmt.Sprintf("%s%-18s %s", marker, building.Name, status)
		if i == m.buildCursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n" + subtleStyle.Render("b: build  u: upgrade"))
	b.WriteString(m.footer())
	return b.String()
}

func (m SessionModel) viewAchievements() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")

	for _, a := range m.achievements {
		if a.State == content.AchievementUnlocked {
			b.WriteString(correctStyle.Render(fmt.Sprintf("%s %s", a.Icon, a.Title)))
			b.WriteString(subtleStyle.Render("  unlocked " + a.UnlockedAt.Format("2006-01-02")))
		} else {
			b.WriteString(lockedStyle.Render(fmt.Sprintf("%s %s", a.Icon, a.Title)))
		}
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render("   " + a.Description))
		b.WriteString("\n")
	}

	b.WriteString(m.footer())
	return b.String()
}
