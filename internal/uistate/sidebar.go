// Package uistate holds UI state shared across screens that is not part of
// the recreation flow: currently the sidebar visibility.
//
// State is handed out as explicit handles by a Provider. There is no global
// lookup: a consumer without a live handle has a programming error, and every
// method panics with a *UsageError in that case.
package uistate

import "fmt"

// UsageError reports use of a sidebar handle outside its provider's scope
type UsageError struct {
	Op     string
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("uistate: %s: %s", e.Op, e.Reason)
}

// Provider owns the sidebar state for the lifetime of one UI session
type Provider struct {
	sidebar *Sidebar
}

// NewProvider creates a provider with the sidebar closed
func NewProvider() *Provider {
	p := &Provider{}
	p.sidebar = &Sidebar{provider: p}

	return p
}

// Sidebar returns the handle consumers use to read and change visibility
func (p *Provider) Sidebar() *Sidebar {
	if p == nil {
		panic(&UsageError{Op: "Sidebar", Reason: "no provider"})
	}

	return p.sidebar
}

// Release ends the provider scope. Handles obtained from it stop working.
func (p *Provider) Release() {
	if p == nil {
		return
	}

	p.sidebar.released = true
	p.sidebar.subscribers = nil
}

// Sidebar is the open/closed state of the session-history panel
type Sidebar struct {
	provider    *Provider
	open        bool
	released    bool
	subscribers []func(bool)
}

// IsOpen reports whether the sidebar is visible
func (s *Sidebar) IsOpen() bool {
	s.mustBeLive("IsOpen")

	return s.open
}

// Open shows the sidebar
func (s *Sidebar) Open() {
	s.mustBeLive("Open")
	s.set(true)
}

// Close hides the sidebar
func (s *Sidebar) Close() {
	s.mustBeLive("Close")
	s.set(false)
}

// Toggle flips the sidebar visibility
func (s *Sidebar) Toggle() {
	s.mustBeLive("Toggle")
	s.set(!s.open)
}

// Subscribe registers fn to be called with the new value whenever it changes
func (s *Sidebar) Subscribe(fn func(open bool)) {
	s.mustBeLive("Subscribe")
	s.subscribers = append(s.subscribers, fn)
}

func (s *Sidebar) set(open bool) {
	if s.open == open {
		return
	}

	s.open = open
	for _, fn := range s.subscribers {
		fn(open)
	}
}

func (s *Sidebar) mustBeLive(op string) {
	if s == nil || s.provider == nil {
		panic(&UsageError{Op: op, Reason: "sidebar state used outside a provider"})
	}
	if s.released {
		panic(&UsageError{Op: op, Reason: "sidebar state used after its provider was released"})
	}
}
