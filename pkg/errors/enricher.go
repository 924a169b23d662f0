package errors

import (
	"errors"
	"regexp"
	"strings"
)

// Enricher turns plain errors into ActionableErrors
type Enricher interface {
	Enrich(err error, affectedPath string) error
}

// NewEnricher creates an Enricher with the default matcher and generator
func NewEnricher() Enricher {
	return &enricher{
		matcher:   NewPatternMatcher(),
		generator: NewSuggestionGenerator(),
	}
}

//nolint:gochecknoglobals // compiled once
var sourcePatterns = []*regexp.Regexp{
	// sftp://user@host:port/path, which carries its own colons
	regexp.MustCompile(`(sftp://\S+?):\s`),
	// "open ./photo.jpg:", "stat ~/Pictures:", "lstat /tmp/x:"
	regexp.MustCompile(`\b\w+\s+([./~][^\s:]+):`),
	// C:\Users\me\photo.jpg or C:/Users/me/photo.jpg
	regexp.MustCompile(`\b\w+\s+([A-Za-z]:[\\/][^\s:]+):`),
}

type enricher struct {
	matcher   PatternMatcher
	generator SuggestionGenerator
}

// Enrich categorises err and attaches suggestions for the photo source it
// names. ActionableErrors pass through unchanged and nil stays nil. An empty
// affectedPath is taken from the message when one can be found.
func (e *enricher) Enrich(err error, affectedPath string) error {
	if err == nil {
		return nil
	}

	var actionable ActionableError
	if errors.As(err, &actionable) {
		return actionable
	}

	msg := err.Error()
	if affectedPath == "" {
		affectedPath = extractSource(msg)
	}

	category := e.matcher.Match(msg)

	return NewActionableError(msg, category, e.generator.Generate(category, affectedPath), affectedPath)
}

// extractSource finds the path or sftp URL an error message is about.
// Returns "" when none is found.
func extractSource(msg string) string {
	for _, pattern := range sourcePatterns {
		if m := pattern.FindStringSubmatch(msg); len(m) > 1 {
			if source := strings.TrimSpace(m[1]); source != "" {
				return source
			}
		}
	}

	return ""
}
