package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/event-recreator/internal/tui/shared"
	"github.com/joe/event-recreator/internal/tui/widgets"
)

const (
	keyToggleSidebar = "ctrl+b"
	keyCloseSidebar  = "esc"
	keyNewRecreation = "n"
)

// handleGlobalKey handles keys that work on every screen. While the sidebar
// is open it takes every key.
func (a AppModel) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case shared.KeyCtrlC:
		a.cancel()

		return a, tea.Quit, true
	case keyToggleSidebar:
		a.sidebar.Toggle()
		model, cmd := a.resizeScreen()

		return model, cmd, true
	}

	if !a.sidebar.IsOpen() {
		return a, nil, false
	}

	rows := widgets.SidebarItems(a.history.Len())

	switch msg.String() {
	case keyCloseSidebar:
		a.sidebar.Close()
		model, cmd := a.resizeScreen()

		return model, cmd, true
	case "up", "k":
		a.cursor = max(a.cursor-1, 0)
	case "down", "j":
		a.cursor = min(a.cursor+1, rows-1)
	case keyNewRecreation:
		return a.newRecreation()
	case "enter":
		if a.cursor == 0 {
			return a.newRecreation()
		}

		a.session.Log.Debug().Int("row", a.cursor).Msg("sidebar row has no action")
	}

	return a, nil, true
}

func (a AppModel) newRecreation() (tea.Model, tea.Cmd, bool) {
	a.sidebar.Close()
	model, cmd := a.restart()

	return model, cmd, true
}
