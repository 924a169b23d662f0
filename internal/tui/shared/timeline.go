package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTimeline renders the step progression for the header.
// Shows 4 steps: Describe, Generate, Review, Done
// Steps before current show ✓ (completed)
// Current step shows ◉ (active)
// Steps after current show ○ (pending)
// The timeline keys are the screen names: input, loading, script, results.
func RenderTimeline(current string) string {
	key := strings.ToLower(strings.TrimSpace(current))

	type stepDefinition struct {
		name string
		key  string
	}

	steps := []stepDefinition{
		{"Describe", "input"},
		{"Generate", "loading"},
		{"Review", "script"},
		{"Done", "results"},
	}

	currentIdx := 0
	for i, step := range steps {
		if step.key == key {
			currentIdx = i
			break
		}
	}

	parts := make([]string, 0, len(steps))

	for stepIdx, step := range steps {
		var symbol string
		var style lipgloss.Style

		switch {
		case stepIdx < currentIdx:
			symbol = SuccessSymbol()
			style = lipgloss.NewStyle().Foreground(SuccessColor())
		case stepIdx == currentIdx && currentIdx == len(steps)-1:
			// "done" shows as complete, not active
			symbol = SuccessSymbol()
			style = lipgloss.NewStyle().Foreground(SuccessColor())
		case stepIdx == currentIdx:
			symbol = ActiveSymbol()
			style = lipgloss.NewStyle().Foreground(PrimaryColor())
		default:
			symbol = PendingSymbol()
			style = DimStyle()
		}

		parts = append(parts, style.Render(symbol+" "+step.name))
	}

	separator := DimStyle().Render(" " + Rule(2) + " ")

	return strings.Join(parts, separator)
}
