// Package history keeps the "Recent Sessions" list shown in the sidebar.
// Entries live for the process only.
package history

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TitleLength is the number of runes of a description used as a title
const TitleLength = 40

// Entry is one recent session
type Entry struct {
	ID          string
	Title       string
	Description string
	At          time.Time
}

// Store is an in-memory list of entries
type Store struct {
	entries []Entry
}

// NewStore creates a store seeded with the given entries
func NewStore(seed ...Entry) *Store {
	s := &Store{}
	for _, entry := range seed {
		s.insert(entry)
	}

	return s
}

// Add records a session and returns the stored entry. A blank title falls
// back to the description.
func (s *Store) Add(title, description string, at time.Time) Entry {
	if strings.TrimSpace(title) == "" {
		title = TitleFor(description)
	}

	entry := Entry{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		At:          at,
	}
	s.insert(entry)

	return entry
}

// List returns the entries, newest first
func (s *Store) List() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)

	return out
}

// Len returns the number of entries
func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) insert(entry Entry) {
	s.entries = append(s.entries, entry)
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].At.After(s.entries[j].At)
	})
}

// TitleFor derives a title from a description: the first line, trimmed and
// cut to TitleLength runes.
func TitleFor(description string) string {
	title, _, _ := strings.Cut(strings.TrimSpace(description), "\n")
	title = strings.TrimSpace(title)

	runes := []rune(title)
	if len(runes) > TitleLength {
		return strings.TrimSpace(string(runes[:TitleLength])) + "…"
	}

	if title == "" {
		return "Untitled Recreation"
	}

	return title
}

// SampleEntries returns the demo sessions the sidebar starts with
func SampleEntries() []Entry {
	return []Entry{
		{
			ID:          "1",
			Title:       "Wedding Recreation",
			Description: "Beautiful wedding ceremony at sunset",
			At:          time.Date(2024, time.December, 15, 0, 0, 0, 0, time.Local),
		},
		{
			ID:          "2",
			Title:       "Birthday Party",
			Description: "Kids birthday party with cake and balloons",
			At:          time.Date(2024, time.December, 10, 0, 0, 0, 0, time.Local),
		},
		{
			ID:          "3",
			Title:       "Concert Experience",
			Description: "Rock concert with amazing light show",
			At:          time.Date(2024, time.December, 5, 0, 0, 0, 0, time.Local),
		},
	}
}
