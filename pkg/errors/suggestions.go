package errors

import "fmt"

// SuggestionGenerator produces suggestions for a category
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates the default generator
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

type suggestionGenerator struct{}

// Generate returns suggestions for category, mentioning affectedPath when known
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryPermission:
		return g.permission(affectedPath)
	case CategoryPath:
		return g.path(affectedPath)
	case CategoryRemote:
		return g.remote(affectedPath)
	case CategorySize:
		return []string{
			"Pick a smaller photo or export a resized copy",
			"Large RAW files can be converted to JPEG first",
		}
	case CategoryPattern:
		return g.pattern(affectedPath)
	case CategoryUnknown:
		return g.unknown(affectedPath)
	default:
		return g.unknown(affectedPath)
	}
}

func (g *suggestionGenerator) permission(path string) []string {
	suggestions := []string{"Make sure you can read the photo and its folder"}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -la %s'", path))
	}

	return suggestions
}

func (g *suggestionGenerator) path(path string) []string {
	suggestions := []string{"Verify the path exists and is spelled correctly"}

	if path != "" {
		suggestions = append(suggestions, "Check if the path exists: "+path)
	}

	return append(suggestions, "Use tab to complete paths or ctrl+o to browse")
}

func (g *suggestionGenerator) remote(path string) []string {
	suggestions := []string{
		"Use the form sftp://user@host[:port]/path",
		"Make sure ssh-agent is running or a key exists in ~/.ssh",
	}

	if path != "" {
		suggestions = append(suggestions, "Try 'sftp' by hand to confirm the server is reachable: "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) pattern(path string) []string {
	suggestions := []string{"Globs support *, ?, [abc], {jpg,png} and ** for nested folders"}

	if path != "" {
		suggestions = append(suggestions, "Check the pattern matches at least one file: "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) unknown(path string) []string {
	suggestions := []string{"Check the error message for more details"}

	if path != "" {
		suggestions = append(suggestions, "Verify the file is accessible: "+path)
	}

	return suggestions
}
