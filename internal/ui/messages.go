package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg carries the generation of the subscription that scheduled it so
// frames from a released subscription can be dropped.
type frameMsg struct {
	seq int
	at  time.Time
}

func frameCmd(seq int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg{seq: seq, at: t}
	})
}
