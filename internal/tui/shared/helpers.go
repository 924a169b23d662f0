package shared

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/joe/event-recreator/pkg/errors"
)

// ============================================================================
// Formatting Functions
// These are used by multiple screens for consistent display
// ============================================================================

// FormatBytes formats a file size in SI units (e.g. "1.5 kB")
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}

	return humanize.Bytes(uint64(bytes))
}

// FormatDuration formats duration into human-readable format (e.g., "2m 30s")
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)
	minutes := duration / time.Minute
	duration %= time.Minute
	seconds := duration / time.Second

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

// PhotoCountLabel renders "1 event photo" or "N event photos"
func PhotoCountLabel(n int) string {
	if n == 1 {
		return "1 event photo"
	}

	return fmt.Sprintf("%d event photos", n)
}

// Truncate cuts s to width terminal cells, escape sequences included
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	return ansi.Truncate(s, width, "…")
}

// RenderLoadError renders a load failure with its suggestions, indented
// below a photo field
func RenderLoadError(err error, more int, width int) string {
	if err == nil {
		return ""
	}

	var builder strings.Builder

	message := err.Error()
	if more > 0 {
		message += fmt.Sprintf(" (and %d more)", more)
	}
	if width > 0 {
		message = Truncate(message, max(width-4, MinContentWidth/2)) //nolint:mnd // Box frame
	}
	builder.WriteString(RenderError(ErrorSymbol() + " " + message))

	if suggestions := errors.FormatSuggestions(err); suggestions != "" {
		builder.WriteString("\n")
		builder.WriteString(RenderDim(suggestions))
	}

	return builder.String()
}
