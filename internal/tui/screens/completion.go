package screens

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/joe/event-recreator/internal/tui/shared"
	"github.com/joe/event-recreator/pkg/imagefile"
)

// completion is the tab-completion state of one path input
type completion struct {
	candidates []string
	index      int
	visible    bool
}

// next starts completing the input, or cycles forward when already showing
func (c completion) next(input *textinput.Model) completion {
	if !c.visible {
		c.candidates = getPathCompletions(input.Value())
		c.index = 0
		c.visible = true

		// If only one match, complete it immediately and hide list
		if len(c.candidates) == 1 {
			apply(input, c.candidates[0])
			c.visible = false
		}

		return c
	}

	if len(c.candidates) > 0 {
		c.index = (c.index + 1) % len(c.candidates)
		apply(input, c.candidates[c.index])
	}

	return c
}

func (c completion) previous(input *textinput.Model) completion {
	if c.visible && len(c.candidates) > 0 {
		c.index--
		if c.index < 0 {
			c.index = len(c.candidates) - 1
		}

		apply(input, c.candidates[c.index])
	}

	return c
}

// accept takes the current candidate and opens completion for the next
// path segment. ok is false when nothing was showing, so the key belongs to
// the input.
func (c completion) accept(input *textinput.Model) (completion, bool) {
	if !c.visible || len(c.candidates) == 0 {
		return completion{}, false
	}

	current := c.candidates[c.index]
	apply(input, current)

	c = completion{candidates: getPathCompletions(current)}
	if len(c.candidates) > 0 {
		c.visible = true
		apply(input, c.candidates[0])
	}

	return c, true
}

func (c completion) view() string {
	if !c.visible || len(c.candidates) == 0 {
		return ""
	}

	if len(c.candidates) == 1 {
		return shared.CompletionStyle().Render("  " + shared.RightArrow() + " " + getBaseName(c.candidates[0]))
	}

	start, end := completionWindow(c.index, shared.MaxCompletions, len(c.candidates))

	lines := []string{shared.CompletionStyle().Render("  " + shared.Rule(shared.MinContentWidth/2))}
	if start > 0 {
		lines = append(lines, shared.CompletionStyle().Render("    ..."))
	}

	for i := start; i < end; i++ {
		base := getBaseName(c.candidates[i])
		if i == c.index {
			lines = append(lines, shared.CompletionSelectedStyle().Render("  "+shared.PromptArrow()+base))
		} else {
			lines = append(lines, shared.CompletionStyle().Render("    "+base))
		}
	}

	if end < len(c.candidates) {
		lines = append(lines, shared.CompletionStyle().Render("    ..."))
	}

	return strings.Join(lines, "\n")
}

func apply(input *textinput.Model, value string) {
	input.SetValue(value)
	input.CursorEnd()
}

func completionWindow(currentIndex, maxShow, totalCount int) (start, end int) {
	start = max(currentIndex-maxShow/2, 0) //nolint:mnd // Keep the selection centred

	end = start + maxShow
	if end > totalCount {
		end = totalCount
		start = max(end-maxShow, 0)
	}

	return start, end
}

func expandHomePath(input string) string {
	if input == "" {
		return "."
	}

	if input == "~" || strings.HasPrefix(input, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, input[1:]) + trailingSeparator(input)
		}
	}

	return input
}

func trailingSeparator(input string) string {
	if input == "~" || strings.HasSuffix(input, "/") {
		return string(filepath.Separator)
	}

	return ""
}

func getBaseName(path string) string {
	trimmed := strings.TrimSuffix(path, "/")

	idx := strings.LastIndex(trimmed, "/")
	if idx == -1 {
		if strings.HasSuffix(path, "/") {
			return trimmed + "/"
		}

		return path
	}

	base := trimmed[idx+1:]
	if strings.HasSuffix(path, "/") {
		return base + "/"
	}

	return base
}

// getPathCompletions lists directories and image files that complete input.
// Remote specs are not completed.
func getPathCompletions(input string) []string {
	if strings.HasPrefix(strings.ToLower(input), "sftp://") {
		return nil
	}

	input = expandHomePath(input)
	dir, prefix := parseCompletionPath(input)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	completions := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()

		if !shouldIncludeEntry(name, prefix) {
			continue
		}

		fullPath := filepath.Join(dir, name)

		if entry.IsDir() {
			completions = append(completions, fullPath+string(filepath.Separator))
			continue
		}

		if imagefile.IsImageType(imagefile.DetectContentType(name, nil)) {
			completions = append(completions, fullPath)
		}
	}

	sort.Strings(completions)

	return completions
}

func parseCompletionPath(input string) (dir, prefix string) {
	dir = filepath.Dir(input)
	prefix = filepath.Base(input)

	// If input ends with /, we're completing in that directory
	if strings.HasSuffix(input, string(filepath.Separator)) {
		dir = input
		prefix = ""
	}

	return dir, prefix
}

func shouldIncludeEntry(name, prefix string) bool {
	// Skip hidden files unless prefix starts with .
	if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
		return false
	}

	return prefix == "" || strings.HasPrefix(strings.ToLower(name), strings.ToLower(prefix))
}
