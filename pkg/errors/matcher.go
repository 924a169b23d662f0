package errors

import "strings"

// PatternMatcher maps an error message to a category
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

type categoryPatterns struct {
	category ErrorCategory
	patterns []string
}

// NewPatternMatcher creates a matcher with the built-in patterns. Categories
// are tried in order; the first one with a matching pattern wins.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		ordered: []categoryPatterns{
			{CategorySize, []string{
				"file is too large",
				"exceeds",
			}},
			{CategoryPattern, []string{
				"invalid glob pattern",
				"syntax error in pattern",
				"no files match",
			}},
			{CategoryRemote, []string{
				"sftp url",
				"ssh:",
				"ssh connection",
				"ssh authentication",
				"sftp session",
				"connection refused",
				"no route to host",
				"i/o timeout",
				"failed to connect",
				"invalid port",
			}},
			{CategoryPermission, []string{
				"permission denied",
				"access denied",
				"operation not permitted",
			}},
			{CategoryPath, []string{
				"no such file or directory",
				"file does not exist",
				"file not found",
				"not a directory",
			}},
		},
	}
}

type patternMatcher struct {
	ordered []categoryPatterns
}

// Match returns the first category whose pattern occurs in errorMsg,
// ignoring case, or CategoryUnknown.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	for _, entry := range m.ordered {
		for _, pattern := range entry.patterns {
			if strings.Contains(lowerMsg, pattern) {
				return entry.category
			}
		}
	}

	return CategoryUnknown
}
