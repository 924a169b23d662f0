// Package errors turns photo loading failures into actionable errors.
//
// A failure is categorised from its message (permission, missing path,
// remote connection, size limit, bad glob) and paired with suggestions the
// input screen shows under the field that triggered the load.
//
//	enricher := errors.NewEnricher()
//	batch := loader.Load(ctx, "~/Pictures/wedding/*.jpg")
//	for _, failure := range batch.Failures {
//	    fmt.Println(failure)
//	    fmt.Println(errors.FormatSuggestions(failure))
//	}
//
// When no path is passed, Enrich tries to pull one out of the message:
//
//	err := errors.New("open /home/me/photo.jpg: permission denied")
//	enriched := enricher.Enrich(err, "") // AffectedPath() == "/home/me/photo.jpg"
package errors

import "strings"

// Exported constants.
const (
	CategoryPattern    ErrorCategory = "pattern"
	CategoryPath       ErrorCategory = "path"
	CategoryPermission ErrorCategory = "permission"
	CategoryRemote     ErrorCategory = "remote"
	CategorySize       ErrorCategory = "size"
	CategoryUnknown    ErrorCategory = "unknown"
)

// ActionableError is an error with suggestions the user can act on
type ActionableError interface {
	error
	OriginalError() string
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// ErrorCategory is the kind of failure
type ErrorCategory string

// NewActionableError builds an ActionableError from its parts
func NewActionableError(
	originalError string,
	category ErrorCategory,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		originalError: originalError,
		category:      category,
		suggestions:   suggestions,
		affectedPath:  affectedPath,
	}
}

// FormatSuggestions renders the suggestions of an ActionableError as an
// indented bullet list. Anything else formats as the empty string.
func FormatSuggestions(err error) string {
	actionable, ok := err.(ActionableError)
	if !ok || actionable == nil {
		return ""
	}

	lines := make([]string, 0, len(actionable.Suggestions()))
	for _, suggestion := range actionable.Suggestions() {
		lines = append(lines, "  • "+suggestion)
	}

	return strings.Join(lines, "\n")
}

type actionableError struct {
	originalError string
	category      ErrorCategory
	suggestions   []string
	affectedPath  string
}

func (e *actionableError) AffectedPath() string    { return e.affectedPath }
func (e *actionableError) Category() ErrorCategory { return e.category }
func (e *actionableError) Error() string           { return e.originalError }
func (e *actionableError) OriginalError() string   { return e.originalError }
func (e *actionableError) Suggestions() []string   { return e.suggestions }
