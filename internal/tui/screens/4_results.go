package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/event-recreator/internal/tui/shared"
	"github.com/joe/event-recreator/internal/tui/widgets"
)

// Copy of the results screen
const (
	ResultsTitle    = "Your AI Recreation is Ready!"
	ResultsSubtitle = "Here's your personalized event recreation"
)

// ResultsScreen shows the simulated video card for the approved script
type ResultsScreen struct {
	session *shared.Session
	keys    resultKeys
	width   int
}

// NewResultsScreen creates the results screen
func NewResultsScreen(session *shared.Session) *ResultsScreen {
	return &ResultsScreen{
		session: session,
		keys:    newResultKeys(),
	}
}

// Init implements tea.Model
func (s ResultsScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s ResultsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width

		return s, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Restart):
			return s, func() tea.Msg { return shared.RestartMsg{} }
		case key.Matches(msg, s.keys.Quit):
			return s, tea.Quit
		}
	}

	return s, nil
}

// DownloadAvailable reports whether the download action is offered
func (s ResultsScreen) DownloadAvailable() bool {
	return s.keys.Download.Enabled()
}

// View implements tea.Model
func (s ResultsScreen) View() string {
	flow := s.session.Flow

	var builder strings.Builder

	builder.WriteString(shared.RenderSuccess(shared.SparkleSymbol() + " " + ResultsTitle))
	builder.WriteString("\n")
	builder.WriteString(shared.RenderSubtitle(ResultsSubtitle))
	builder.WriteString("\n\n")
	builder.WriteString(widgets.NewResultCardWidget(flow.Description(), flow.EventPhotoCount(), s.width-shared.DefaultPadding*4)()) //nolint:mnd,lll // Box frame
	builder.WriteString("\n\n")
	builder.WriteString(strings.Join([]string{
		shared.RenderAction("d", "Download Video", s.keys.Download.Enabled()),
		shared.RenderAction("c", "Create Another", true),
		shared.RenderAction("q", "Quit", true),
	}, "  "))

	return shared.RenderBox(builder.String(), s.width)
}
