package shared

import "strings"

//nolint:gochecknoglobals // set once at startup from --ascii
var unicodeDisabled bool

// SetASCII switches every symbol to its ASCII fallback
func SetASCII(ascii bool) {
	unicodeDisabled = ascii
}

// ActiveSymbol returns a circled dot symbol with ASCII fallback
func ActiveSymbol() string {
	if unicodeDisabled {
		return "[*]"
	}

	return "◉"
}

// PendingSymbol returns an empty circle with ASCII fallback
func PendingSymbol() string {
	if unicodeDisabled {
		return "[ ]"
	}

	return "○"
}

// SuccessSymbol returns a check mark with ASCII fallback
func SuccessSymbol() string {
	if unicodeDisabled {
		return "[v]"
	}

	return "✓"
}

// ErrorSymbol returns a cross with ASCII fallback
func ErrorSymbol() string {
	if unicodeDisabled {
		return "[x]"
	}

	return "✗"
}

// PromptArrow is the prompt of the focused field
func PromptArrow() string {
	if unicodeDisabled {
		return "> "
	}

	return "▶ "
}

// RightArrow returns a right arrow with ASCII fallback
func RightArrow() string {
	if unicodeDisabled {
		return "->"
	}

	return "→"
}

// MenuSymbol is shown in the header while the sidebar is closed
func MenuSymbol() string {
	if unicodeDisabled {
		return "="
	}

	return "≡"
}

// CloseSymbol is shown in the header while the sidebar is open
func CloseSymbol() string {
	if unicodeDisabled {
		return "x"
	}

	return "✕"
}

// SparkleSymbol decorates titles
func SparkleSymbol() string {
	if unicodeDisabled {
		return "*"
	}

	return "✨"
}

// Bullet separates items in help lines
func Bullet() string {
	if unicodeDisabled {
		return "-"
	}

	return "•"
}

// Rule returns a horizontal line of width cells
func Rule(width int) string {
	char := "─"
	if unicodeDisabled {
		char = "-"
	}

	return strings.Repeat(char, max(width, 0))
}
