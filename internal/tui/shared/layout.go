package shared

import "github.com/charmbracelet/lipgloss"

// RenderWithSidebar places the sidebar column left of the main content.
// An empty sidebar returns main unchanged.
func RenderWithSidebar(sidebar, main string, height int) string {
	if sidebar == "" {
		return main
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		SidebarStyle(height).Render(sidebar),
		main,
	)
}

// ContentWidth is the width left for the main column
func ContentWidth(width int, sidebarOpen bool) int {
	if width <= 0 {
		return 0
	}

	if sidebarOpen {
		width -= SidebarWidth
	}

	return max(width, MinContentWidth)
}

// RenderWidgetBox renders content in a titled box with borders.
// Width accounts for padding (width - 4 for borders and padding).
func RenderWidgetBox(title, content string, width int) string {
	const widthOverhead = 4 // Account for borders (2) and padding (2)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor())

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor()).
		Padding(0, 1)
	if width > widthOverhead {
		boxStyle = boxStyle.Width(width - widthOverhead)
	}

	return boxStyle.Render(titleStyle.Render(title) + "\n" + content)
}
