package shared

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/event-recreator/internal/recreate"
)

// TickMsg is a message sent on each tick interval
type TickMsg time.Time

// TickCmd returns a command that sends tick messages at regular intervals
func TickCmd() tea.Cmd {
	return tea.Tick(TickIntervalMs*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// GenerationTimerCmd fires once after delay with the completion for gen
func GenerationTimerCmd(gen recreate.Generation, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return GenerationCompleteMsg{Generation: gen}
	})
}
