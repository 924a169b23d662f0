package imagefile

import (
	"net/url"
	"strings"

	"github.com/kballard/go-shellquote"
)

// SplitDropped turns text pasted by a terminal drag-and-drop into paths.
//
// Terminals paste dropped files as shell words, either quoted or with
// backslash-escaped spaces, and some paste file:// URLs instead.
func SplitDropped(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	words, err := shellquote.Split(text)
	if err != nil {
		// unbalanced quotes: fall back to one path per line
		words = strings.Split(text, "\n")
	}

	paths := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		paths = append(paths, fromFileURL(word))
	}

	return paths
}

func fromFileURL(word string) string {
	if !strings.HasPrefix(word, "file://") {
		return word
	}

	parsed, err := url.Parse(word)
	if err != nil || parsed.Path == "" {
		return word
	}

	return parsed.Path
}
