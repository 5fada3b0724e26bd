package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/IGOLIVIT/galaxy-quest/internal/games/catcher"
	"github.com/IGOLIVIT/galaxy-quest/internal/storage"
)

// CatcherGameID keys Cash Catcher rows in the scores table.
const CatcherGameID = "cash_catcher"

var billStyles = map[int]lipgloss.Style{
	1:   lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	5:   lipgloss.NewStyle().Foreground(lipgloss.Color("129")),
	10:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	20:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	50:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	100: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
}

// CatcherModel runs the Cash Catcher mini-game in the terminal.
type CatcherModel struct {
	game  *catcher.Game
	store *storage.Store
	state catcher.State

	width, height int
	pending       catcher.Input
	scoreSaved    bool
	quitting      bool
}

// NewCatcherModel creates the mini-game screen. store may be nil;
// scores are then not recorded.
func NewCatcherModel(store *storage.Store, width, height int) CatcherModel {
	fieldW, fieldH := fieldSize(width, height)
	g := catcher.New()
	g.Reset(time.Now().UnixNano(), fieldW, fieldH)
	return CatcherModel{
		game:   g,
		store:  store,
		state:  g.State(),
		width:  width,
		height: height,
	}
}

func fieldSize(width, height int) (int, int) {
	fieldW := width - 4
	if fieldW < 20 {
		fieldW = 20
	}
	fieldH := height - 6
	if fieldH < 10 {
		fieldH = 10
	}
	return fieldW, fieldH
}

func (m CatcherModel) Init() tea.Cmd {
	return frameCmd()
}

func (m CatcherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.state.GameOver {
			fieldW, fieldH := fieldSize(msg.Width, msg.Height)
			m.game.Reset(time.Now().UnixNano(), fieldW, fieldH)
			m.state = m.game.State()
			m.scoreSaved = false
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "left", "a", "h":
			m.pending = catcher.InputLeft
		case "right", "d", "l":
			m.pending = catcher.InputRight
		case "r":
			if m.state.GameOver {
				fieldW, fieldH := fieldSize(m.width, m.height)
				m.game.Reset(time.Now().UnixNano(), fieldW, fieldH)
				m.state = m.game.State()
				m.scoreSaved = false
				return m, frameCmd()
			}
		}
		return m, nil

	case FrameMsg:
		if m.state.GameOver {
			return m, nil
		}
		m.state = m.game.Step(m.pending)
		m.pending = catcher.InputNone

		if m.state.GameOver && !m.scoreSaved && m.state.Score > 0 {
			if m.store != nil {
				m.store.SaveScore(CatcherGameID, m.state.Score) //nolint:errcheck
			}
			m.scoreSaved = true
		}
		return m, frameCmd()
	}

	return m, nil
}

// FinalScore is the score of the last finished run, 0 otherwise.
func (m CatcherModel) FinalScore() int {
	if !m.state.GameOver {
		return 0
	}
	return m.state.Score
}

func (m CatcherModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Cash Catcher"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s   misses %d/%d   %s\n",
		creditStyle.Render(fmt.Sprintf("$%d", m.state.Score)),
		m.state.Missed, catcher.MaxMisses,
		subtleStyle.Render(fmt.Sprintf("%2ds left", m.state.RemainingTicks()/10)),
	))

	b.WriteString(m.renderField())

	if m.state.GameOver {
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(fmt.Sprintf(
			"Run over. Caught %d bills for $%d (%.0f%% accuracy).\nr: play again  |  q: back",
			m.state.Caught, m.state.Score, m.state.Accuracy()*100,
		)))
	} else {
		b.WriteString("\n" + subtleStyle.Render("left/right: move tray  |  q: quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m CatcherModel) renderField() string {
	w, h := m.game.Width(), m.game.Height()

	rows := make([][]string, h)
	for y := range rows {
		rows[y] = make([]string, w)
		for x := range rows[y] {
			rows[y][x] = " "
		}
	}

	for _, bill := range m.state.Bills {
		if bill.Y < 0 || bill.Y >= h || bill.X < 0 || bill.X >= w {
			continue
		}
		rows[bill.Y][bill.X] = billStyles[bill.Value].Render("$")
	}

	tray := m.state.TrayX
	for x := tray; x < tray+catcher.TrayWidth && x < w; x++ {
		rows[h-1][x] = creditStyle.Render("=")
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}
	return b.String()
}
