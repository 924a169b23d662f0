// Package tui is the terminal front end: the root model, its screens and the
// sidebar of recent sessions.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/joe/event-recreator/internal/clipboard"
	"github.com/joe/event-recreator/internal/config"
	"github.com/joe/event-recreator/internal/history"
	"github.com/joe/event-recreator/internal/notify"
	"github.com/joe/event-recreator/internal/picker"
	"github.com/joe/event-recreator/internal/preview"
	"github.com/joe/event-recreator/internal/recreate"
	"github.com/joe/event-recreator/internal/tui/screens"
	"github.com/joe/event-recreator/internal/tui/shared"
	"github.com/joe/event-recreator/internal/uistate"
	"github.com/joe/event-recreator/pkg/imagefile"
)

// Option replaces one of the AppModel collaborators
type Option func(*deps)

type deps struct {
	log      zerolog.Logger
	loader   shared.PhotoLoader
	picker   picker.Picker
	copier   clipboard.Copier
	notifier notify.Notifier
	history  *history.Store
	now      func() time.Time
}

// WithLogger sets the logger shared by every component
func WithLogger(logger zerolog.Logger) Option {
	return func(d *deps) { d.log = logger }
}

// WithLoader replaces the photo loader
func WithLoader(loader shared.PhotoLoader) Option {
	return func(d *deps) { d.loader = loader }
}

// WithPicker replaces the native file dialog
func WithPicker(p picker.Picker) Option {
	return func(d *deps) { d.picker = p }
}

// WithCopier replaces the system clipboard
func WithCopier(c clipboard.Copier) Option {
	return func(d *deps) { d.copier = c }
}

// WithNotifier replaces the desktop notifier
func WithNotifier(n notify.Notifier) Option {
	return func(d *deps) { d.notifier = n }
}

// WithHistory replaces the recent-sessions store
func WithHistory(store *history.Store) Option {
	return func(d *deps) { d.history = store }
}

// WithClock replaces the clock used for generation requests and history
func WithClock(now func() time.Time) Option {
	return func(d *deps) { d.now = now }
}

// AppModel is the top-level model. It owns the recreation flow and the
// sidebar, and shows the screen for the flow's current state.
type AppModel struct {
	config        *config.Config
	session       *shared.Session
	provider      *uistate.Provider
	sidebar       *uistate.Sidebar
	history       *history.Store
	notifier      notify.Notifier
	now           func() time.Time
	cancel        context.CancelFunc
	currentScreen tea.Model
	cursor        int
	width         int
	height        int
}

// NewAppModel creates the app model for cfg. A preset description is applied
// at once; preset photos are loaded by Init.
func NewAppModel(cfg *config.Config, opts ...Option) *AppModel {
	d := deps{log: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(&d)
	}
	d.fillDefaults(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	session := &shared.Session{
		Ctx:      ctx,
		Loader:   d.loader,
		Previews: preview.NewRegistry(preview.WithLogger(d.log)),
		Picker:   d.picker,
		Copier:   d.copier,
		Log:      d.log,
	}
	session.Flow = recreate.New(
		recreate.WithLogger(d.log),
		recreate.WithReleaser(session.ReleaseImage),
		recreate.WithClock(d.now),
	)
	if cfg.EventDescription != "" {
		session.Flow.SetDescription(cfg.EventDescription)
	}

	provider := uistate.NewProvider()

	app := &AppModel{
		config:   cfg,
		session:  session,
		provider: provider,
		sidebar:  provider.Sidebar(),
		history:  d.history,
		notifier: d.notifier,
		now:      d.now,
		cancel:   cancel,
	}
	app.subscribe()
	app.currentScreen = app.screenFor(session.Flow.Screen())

	return app
}

func (d *deps) fillDefaults(cfg *config.Config) {
	if d.loader == nil {
		d.loader = imagefile.NewLoader()
	}

	if d.picker == nil {
		if cfg.NoPicker {
			d.picker = picker.Disabled{}
		} else {
			d.picker = picker.NewDialog()
		}
	}

	if d.copier == nil {
		d.copier = clipboard.NewSystem()
	}

	if d.notifier == nil {
		if cfg.Notify {
			d.notifier = notify.NewDesktop(d.log)
		} else {
			d.notifier = notify.Nop{}
		}
	}

	if d.history == nil {
		var seed []history.Entry
		if cfg.SampleHistory {
			seed = history.SampleEntries()
		}
		d.history = history.NewStore(seed...)
	}
}

// CurrentScreen returns the current screen (for testing)
func (a AppModel) CurrentScreen() tea.Model {
	return a.currentScreen
}

// Flow returns the recreation flow (for testing)
func (a AppModel) Flow() *recreate.Flow {
	return a.session.Flow
}

// Sidebar returns the sidebar handle (for testing)
func (a AppModel) Sidebar() *uistate.Sidebar {
	return a.sidebar
}

// History returns the recent-sessions store (for testing)
func (a AppModel) History() *history.Store {
	return a.history
}

// Previews returns the preview registry (for testing)
func (a AppModel) Previews() *preview.Registry {
	return a.session.Previews
}

// Session returns the state shared with the screens (for testing)
func (a AppModel) Session() *shared.Session {
	return a.session
}

// Cursor returns the sidebar row under the cursor (for testing)
func (a AppModel) Cursor() int {
	return a.cursor
}

// Init implements tea.Model
func (a AppModel) Init() tea.Cmd {
	initCmd := a.currentScreen.Init()
	if !a.config.Preloaded() {
		return initCmd
	}

	a.session.Log.Info().
		Bool("photo", a.config.Photo != "").
		Int("count", len(a.config.Events)).
		Msg("preloading inputs from flags")

	cmds := []tea.Cmd{initCmd}

	if a.config.Photo != "" {
		cmds = append(cmds, a.session.LoadCmd(shared.FieldSubject, a.config.Photo))
	}
	if len(a.config.Events) > 0 {
		cmds = append(cmds, a.session.LoadCmd(shared.FieldEvents, a.config.Events...))
	}

	return tea.Batch(cmds...)
}

// Close cancels outstanding loads and releases the sidebar state
func (a AppModel) Close() {
	a.cancel()
	a.provider.Release()
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		return a.resizeScreen()
	case tea.KeyMsg:
		if model, cmd, handled := a.handleGlobalKey(msg); handled {
			return model, cmd
		}
	case shared.GenerateRequestedMsg:
		return a.handleGenerateRequested()
	case shared.GenerationCompleteMsg:
		return a.handleGenerationComplete(msg)
	case shared.ApproveScriptMsg:
		if !a.session.Flow.ApproveScript() {
			return a, nil
		}

		return a.switchScreen()
	case shared.RestartMsg:
		return a.restart()
	case shared.TickMsg, spinner.TickMsg:
		// Ticks outlive the loading screen by one interval
		if a.session.Flow.Screen() != recreate.ScreenLoading {
			return a, nil
		}
	case shared.ImagesLoadedMsg:
		if a.session.Flow.Screen() != recreate.ScreenInput || msg.Epoch != a.session.Flow.Epoch() {
			return a.dropLateImages(msg), nil
		}
	}

	var cmd tea.Cmd
	a.currentScreen, cmd = a.currentScreen.Update(msg)

	return a, cmd
}

// ============================================================================
// Transitions
// ============================================================================

func (a AppModel) handleGenerateRequested() (tea.Model, tea.Cmd) {
	gen, ok := a.session.Flow.RequestGenerate()
	if !ok {
		return a, nil
	}

	a.session.Log.Info().
		Int("generation", gen.ID).
		Int("count", gen.PhotoCount).
		Msg("generation requested")

	model, cmd := a.switchScreen()

	return model, tea.Batch(cmd, shared.GenerationTimerCmd(gen, a.config.Delay))
}

func (a AppModel) handleGenerationComplete(msg shared.GenerationCompleteMsg) (tea.Model, tea.Cmd) {
	a.session.Flow.CompleteGeneration(msg.Generation)

	model, cmd := a.switchScreen()

	return model, tea.Batch(cmd, a.notifyCmd(msg.Generation.Description))
}

func (a AppModel) restart() (tea.Model, tea.Cmd) {
	a.session.Flow.Restart()
	a.cursor = 0

	return a.switchScreen()
}

// switchScreen builds the screen for the flow's current state and sizes it
func (a AppModel) switchScreen() (tea.Model, tea.Cmd) {
	a.currentScreen = a.screenFor(a.session.Flow.Screen())
	initCmd := a.currentScreen.Init()

	model, sizeCmd := a.resizeScreen()

	return model, tea.Batch(initCmd, sizeCmd)
}

func (a AppModel) screenFor(screen recreate.Screen) tea.Model {
	switch screen {
	case recreate.ScreenLoading:
		return *screens.NewLoadingScreen(a.session, a.config.Delay)
	case recreate.ScreenScriptReview:
		return *screens.NewScriptScreen(a.session)
	case recreate.ScreenResults:
		return *screens.NewResultsScreen(a.session)
	case recreate.ScreenInput:
		return *screens.NewInputScreen(a.session)
	default:
		return *screens.NewInputScreen(a.session)
	}
}

func (a AppModel) resizeScreen() (tea.Model, tea.Cmd) {
	if a.width == 0 {
		return a, nil
	}

	var cmd tea.Cmd
	a.currentScreen, cmd = a.currentScreen.Update(tea.WindowSizeMsg{
		Width:  shared.ContentWidth(a.width, a.sidebar.IsOpen()),
		Height: max(a.height-headerHeight, 0),
	})

	return a, cmd
}

func (a AppModel) dropLateImages(msg shared.ImagesLoadedMsg) AppModel {
	a.session.Log.Debug().
		Str("field", msg.Field.String()).
		Int("count", len(msg.Images)).
		Str("screen", a.session.Flow.Screen().String()).
		Int("epoch", msg.Epoch).
		Msg("dropping photos loaded for a session that is gone")

	for _, img := range msg.Images {
		a.session.ReleaseImage(img)
	}

	return a
}

func (a AppModel) notifyCmd(description string) tea.Cmd {
	notifier := a.notifier

	return func() tea.Msg {
		// Failures are logged by the notifier and never shown
		_ = notifier.ScriptReady(description)

		return nil
	}
}

// subscribe records approved recreations in the session history
func (a *AppModel) subscribe() {
	flow := a.session.Flow
	store := a.history
	log := a.session.Log
	now := a.now

	flow.Subscribe(func(change recreate.Change) {
		if change.Op != recreate.OpApprove {
			return
		}

		entry := store.Add("", flow.Description(), now())
		log.Info().Str("id", entry.ID).Str("title", entry.Title).Msg("recreation saved to history")
	})
}
