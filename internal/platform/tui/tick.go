// Package tui provides the Bubble Tea host for the snake game.
// It handles the terminal UI loop, input mapping, and tick pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval converts a rate in ticks per second to a delay.
// Non-positive rates fall back to one tick per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends a tick message after one
// interval at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
