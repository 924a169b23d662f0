// Package clipboard copies the generated script to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// Copier writes text to a clipboard
type Copier interface {
	Copy(text string) error
}

// System is the clipboard of the desktop session. It is initialised on
// first use.
type System struct {
	once    sync.Once
	initErr error
}

// NewSystem creates a Copier for the desktop clipboard
func NewSystem() *System {
	return &System{}
}

// Copy places text on the clipboard
func (s *System) Copy(text string) error {
	s.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			s.initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
		}
	})
	if s.initErr != nil {
		return s.initErr
	}

	clipboard.Write(clipboard.FmtText, []byte(text))

	return nil
}

// Memory is an in-process Copier, used when no desktop clipboard exists and
// in tests
type Memory struct {
	mu   sync.Mutex
	text string
}

// Copy stores text
func (m *Memory) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.text = text

	return nil
}

// Text returns the last copied text
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.text
}
