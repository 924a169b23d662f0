package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joe/event-recreator/internal/tui/shared"
)

// VideoLength is the advertised length of the recreation
const VideoLength = "30s"

// NewResultCardWidget creates a widget that renders the simulated video card
// for the approved recreation.
func NewResultCardWidget(description string, photoCount, width int) func() string {
	return func() string {
		title := cardTitle(description)

		lines := []string{
			shared.RenderSuccess(shared.SparkleSymbol() + " " + VideoLength + " AI Recreation"),
			"",
			lipgloss.NewStyle().Bold(true).Render(title),
			shared.RenderDim(fmt.Sprintf("Built from your photo and %s", shared.PhotoCountLabel(photoCount))),
		}

		style := shared.CardStyle()
		if width > 0 {
			style = style.Width(max(width-style.GetHorizontalFrameSize(), shared.MinContentWidth/2))
		}

		return style.Render(strings.Join(lines, "\n"))
	}
}

func cardTitle(description string) string {
	title := firstLine(description)
	if title == "" {
		return "Your special moment"
	}

	return shared.Truncate(title, shared.MinContentWidth)
}
