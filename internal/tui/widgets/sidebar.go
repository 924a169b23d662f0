package widgets

import (
	"strings"

	"github.com/joe/event-recreator/internal/history"
	"github.com/joe/event-recreator/internal/tui/shared"
)

// SidebarItems is the number of selectable rows for a history of n entries:
// "New Recreation", one row per session, then "Settings".
func SidebarItems(n int) int {
	return n + 2 //nolint:mnd // New Recreation + Settings
}

// NewSidebarWidget creates a widget rendering the session-history panel with
// the cursor on the given row.
func NewSidebarWidget(entries []history.Entry, cursor int) func() string {
	return func() string {
		inner := shared.SidebarWidth - 4 //nolint:mnd // Border and padding

		var builder strings.Builder

		builder.WriteString(shared.RenderTitle(shared.SparkleSymbol() + " AI Recreator"))
		builder.WriteString("\n\n")
		builder.WriteString(item(shared.ActionStyle().Render("+ New Recreation"), cursor == 0))
		builder.WriteString("\n\n")
		builder.WriteString(shared.RenderLabel("Recent Sessions"))
		builder.WriteString("\n")

		if len(entries) == 0 {
			builder.WriteString(shared.RenderDim("  Nothing yet"))
			builder.WriteString("\n")
		}

		for i, entry := range entries {
			builder.WriteString(item(shared.Truncate(entry.Title, inner-2), cursor == i+1))
			builder.WriteString("\n")
			builder.WriteString("  " + shared.RenderDim(shared.Truncate(firstLine(entry.Description), inner-2)))
			builder.WriteString("\n")
			builder.WriteString("  " + shared.RenderDim(entry.At.Format("Jan 2, 2006")))
			builder.WriteString("\n")
		}

		builder.WriteString("\n")
		builder.WriteString(shared.RenderDim(shared.Rule(inner)))
		builder.WriteString("\n")
		builder.WriteString(item("Settings", cursor == len(entries)+1))
		builder.WriteString("\n\n")
		builder.WriteString(shared.RenderDim("↑/↓ move " + shared.Bullet() + " n new " + shared.Bullet() + " esc close"))

		return builder.String()
	}
}

func item(text string, selected bool) string {
	if selected {
		return shared.SelectedStyle().Render(shared.PromptArrow() + text)
	}

	return "  " + text
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")

	return line
}
