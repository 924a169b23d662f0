package tui

import (
	"github.com/joe/event-recreator/internal/tui/shared"
	"github.com/joe/event-recreator/internal/tui/widgets"
)

// AppTitle is shown in the header
const AppTitle = "AI Event Recreator"

// headerHeight is the number of lines above the screen
const headerHeight = 3

// View implements tea.Model
func (a AppModel) View() string {
	var sidebar string
	if a.sidebar.IsOpen() {
		sidebar = widgets.NewSidebarWidget(a.history.List(), a.cursor)()
	}

	body := shared.RenderWithSidebar(sidebar, a.currentScreen.View(), max(a.height-headerHeight, 0))

	return a.renderHeader() + "\n" + body
}

func (a AppModel) renderHeader() string {
	marker := shared.MenuSymbol()
	if a.sidebar.IsOpen() {
		marker = shared.CloseSymbol()
	}

	title := shared.ActionStyle().Render(marker) + " " + shared.RenderTitle(AppTitle)
	timeline := shared.RenderTimeline(a.session.Flow.Screen().String())

	return title + "   " + timeline + "\n" +
		shared.RenderDim("ctrl+b sessions "+shared.Bullet()+" ctrl+c quit") + "\n"
}
