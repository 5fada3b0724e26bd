// Package tui provides the Bubble Tea integration for Galaxy Quest:
// the quiz screen, the Cash Catcher screen, the mission browser, and
// SSH serving via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SecondMsg drives the quiz countdown, one per second.
type SecondMsg time.Time

func secondCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return SecondMsg(t)
	})
}

// FrameMsg drives the Cash Catcher simulation at 10 ticks per second.
type FrameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
