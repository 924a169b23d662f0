package screens

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joe/event-recreator/internal/tui/shared"
)

// Copy of the loading screen
const (
	LoadingTitle    = "AI is Working Its Magic"
	LoadingSubtitle = "Analyzing your photos and recreating the perfect moment..."
)

// maxPercent keeps the bar short of full until the script actually arrives
const maxPercent = 0.99

// LoadingScreen shows progress while the simulated generation runs. It
// offers no actions.
type LoadingScreen struct {
	session  *shared.Session
	delay    time.Duration
	spinner  spinner.Model
	progress progress.Model
	percent  float64
	width    int
}

// NewLoadingScreen creates a loading screen for a generation taking delay
func NewLoadingScreen(session *shared.Session, delay time.Duration) *LoadingScreen {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(shared.PrimaryColor())

	return &LoadingScreen{
		session:  session,
		delay:    delay,
		spinner:  spin,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

// Init implements tea.Model
func (s LoadingScreen) Init() tea.Cmd {
	return tea.Batch(
		s.spinner.Tick,
		shared.TickCmd(),
	)
}

// Update implements tea.Model
func (s LoadingScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.progress.Width = max(msg.Width-shared.MinContentWidth/2, shared.MinContentWidth/2)

		return s, nil
	case shared.TickMsg:
		s.percent = s.percentAt(time.Time(msg))

		return s, shared.TickCmd()
	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)

		return s, cmd
	}

	return s, nil
}

// View implements tea.Model
func (s LoadingScreen) View() string {
	content := s.spinner.View() + " " + shared.RenderTitle(LoadingTitle) + "\n\n" +
		shared.RenderSubtitle(LoadingSubtitle) + "\n\n" +
		s.progress.ViewAs(s.percent) + "\n"

	if gen, ok := s.session.Flow.Pending(); ok {
		content += "\n" + shared.RenderDim(shared.PhotoCountLabel(gen.PhotoCount)+" "+shared.Bullet()+" "+
			shared.FormatDuration(s.delay)+" estimated")
	}

	return shared.RenderBox(content, s.width)
}

// Percent returns the progress shown by the bar (for testing)
func (s LoadingScreen) Percent() float64 {
	return s.percent
}

func (s LoadingScreen) percentAt(now time.Time) float64 {
	gen, ok := s.session.Flow.Pending()
	if !ok || s.delay <= 0 {
		return s.percent
	}

	elapsed := now.Sub(gen.RequestedAt)
	if elapsed <= 0 {
		return 0
	}

	return min(float64(elapsed)/float64(s.delay), maxPercent)
}
