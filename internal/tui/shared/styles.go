package shared

import "github.com/charmbracelet/lipgloss"

// Exported constants organized by category for clarity.
const (
	// ============================================================================
	// UI Layout & Display
	// ============================================================================

	// DefaultPadding is the default padding for UI elements
	DefaultPadding = 2
	// SidebarWidth is the width of the sidebar column, borders included
	SidebarWidth = 34
	// MinContentWidth keeps the main column usable on narrow terminals
	MinContentWidth = 40
	// MaxCompletions is how many path completions are listed at once
	MaxCompletions = 8

	// ============================================================================
	// Time Intervals
	// ============================================================================

	// TickIntervalMs is the interval for tick messages in milliseconds
	TickIntervalMs = 100

	// ============================================================================
	// Keys
	// ============================================================================

	// KeyCtrlC is the key binding for quitting
	KeyCtrlC = "ctrl+c"
)

// ============================================================================
// Colors
// ============================================================================

func AccentColor() lipgloss.Color    { return lipgloss.Color(accentColorCode) }
func DimColor() lipgloss.Color       { return lipgloss.Color(dimColorCode) }
func ErrorColor() lipgloss.Color     { return lipgloss.Color(errorColorCode) }
func HighlightColor() lipgloss.Color { return lipgloss.Color(highlightColorCode) }
func NormalColor() lipgloss.Color    { return lipgloss.Color(normalColorCode) }
func SubtleColor() lipgloss.Color    { return lipgloss.Color(subtleColorCode) }
func SuccessColor() lipgloss.Color   { return lipgloss.Color(successColorCode) }
func WarningColor() lipgloss.Color   { return lipgloss.Color(warningColorCode) }

// PrimaryColor returns the primary color for the UI
func PrimaryColor() lipgloss.Color { return lipgloss.Color(primaryColorCode) }

// ============================================================================
// Box and Container Styles
// ============================================================================

// BoxStyle returns the style for boxes with padding
func BoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor()).
		Padding(1, DefaultPadding)
}

// FieldStyle frames a photo field
func FieldStyle(focused, dropping bool) lipgloss.Style {
	border := DimColor()
	switch {
	case dropping:
		border = HighlightColor()
	case focused:
		border = PrimaryColor()
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	if dropping {
		style = style.BorderStyle(lipgloss.DoubleBorder())
	}

	return style
}

// CardStyle is the frame of the results "video" card
func CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(HighlightColor()).
		Padding(1, DefaultPadding).
		Align(lipgloss.Center)
}

// SidebarStyle frames the sidebar column
func SidebarStyle(height int) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(DimColor()).
		Width(SidebarWidth-1).
		Padding(0, 1)
	if height > 0 {
		style = style.Height(height)
	}

	return style
}

// ============================================================================
// Completion Styles (for path completion)
// ============================================================================

// CompletionSelectedStyle returns the style for selected completion items
func CompletionSelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(HighlightColor()).
		Bold(true)
}

// CompletionStyle returns the style for completion items
func CompletionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(NormalColor())
}

// ============================================================================
// Action Styles
// ============================================================================

// ActionStyle renders an available action such as "[enter] Approve"
func ActionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(HighlightColor()).
		Bold(true)
}

// DisabledActionStyle renders an action whose precondition does not hold
func DisabledActionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(DimColor()).
		Strikethrough(true)
}

// SelectedStyle marks the sidebar item under the cursor
func SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(PrimaryColor()).
		Bold(true)
}

// ============================================================================
// Text Styles
// ============================================================================

// DimStyle returns the style for dimmed text
func DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(DimColor())
}

// ErrorStyle returns the style for error messages
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ErrorColor()).
		Bold(true)
}

// LabelStyle returns the style for labels
func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(HighlightColor()).
		Bold(true)
}

// SubtitleStyle returns the style for subtitles
func SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(SubtleColor())
}

// SuccessStyle returns the style for success messages
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(SuccessColor()).
		Bold(true)
}

// TitleStyle returns the style for titles
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor())
}

// WarningStyle returns the style for warning messages
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(WarningColor()).
		Bold(true)
}

// ============================================================================
// Helper Functions
// ============================================================================

// RenderBox renders content in a box that fills width when it is known
func RenderBox(content string, width int) string {
	style := BoxStyle()
	if width > 0 {
		style = style.Width(width - BoxStyle().GetHorizontalFrameSize())
	}

	return style.Render(content)
}

// RenderAction renders one action hint, dimmed when it is not available
func RenderAction(key, label string, enabled bool) string {
	text := "[" + key + "] " + label
	if !enabled {
		return DisabledActionStyle().Render(text)
	}

	return ActionStyle().Render(text)
}

// RenderDim renders dimmed text with consistent styling
func RenderDim(text string) string {
	return DimStyle().Render(text)
}

// RenderError renders an error message with consistent styling
func RenderError(text string) string {
	return ErrorStyle().Render(text)
}

// RenderLabel renders a label with consistent styling
func RenderLabel(text string) string {
	return LabelStyle().Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func RenderSubtitle(text string) string {
	return SubtitleStyle().Render(text)
}

// RenderSuccess renders a success message with consistent styling
func RenderSuccess(text string) string {
	return SuccessStyle().Render(text)
}

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle().Render(text)
}

// RenderWarning renders a warning message with consistent styling
func RenderWarning(text string) string {
	return WarningStyle().Render(text)
}

// unexported constants.
const (
	accentColorCode    = "62"  // Blue
	dimColorCode       = "240" // Dark gray
	errorColorCode     = "196" // Red
	highlightColorCode = "51"  // Cyan
	normalColorCode    = "252" // Light gray
	primaryColorCode   = "135" // Violet
	subtleColorCode    = "245" // Medium gray
	successColorCode   = "42"  // Green
	warningColorCode   = "226" // Yellow
)
