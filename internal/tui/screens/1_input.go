package screens

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/event-recreator/internal/picker"
	"github.com/joe/event-recreator/internal/tui/shared"
	"github.com/joe/event-recreator/internal/tui/widgets"
	"github.com/joe/event-recreator/pkg/imagefile"
)

// Hero copy of the input screen
const (
	HeroTitle     = "Missed the Moment? Relive It with AI."
	HeroSubtitle  = "Upload your photo + event photos, and let AI create a 30-sec video or photostory."
	GenerateLabel = "Generate AI Recreation"
)

// Focus order of the input fields
const (
	focusDescription = iota
	focusSubject
	focusEvents
	focusCount
)

// fieldState is the per photo field state that is not part of the flow
type fieldState struct {
	input textinput.Model
	comp  completion
	// loads counts outstanding loads; the field is highlighted while > 0
	loads int
	err   error
	more  int
}

// InputScreen collects the description, the subject photo and the event photos
type InputScreen struct {
	session     *shared.Session
	description textarea.Model
	subject     fieldState
	events      fieldState
	focusIndex  int
	keys        inputKeys
	help        help.Model
	width       int
}

// NewInputScreen creates a new input screen seeded from the session flow
func NewInputScreen(session *shared.Session) *InputScreen {
	keys := newInputKeys()

	description := textarea.New()
	description.Placeholder = "Describe the event you missed, e.g. Sarah & John's wedding at the lake"
	description.ShowLineNumbers = false
	description.CharLimit = 0
	description.SetHeight(3) //nolint:mnd // Three visible lines
	description.KeyMap.InsertNewline = keys.Newline
	description.SetValue(session.Flow.Description())
	description.Focus()

	subjectInput := textinput.New()
	subjectInput.Placeholder = "~/photos/me.jpg or sftp://user@host/me.jpg"
	subjectInput.Prompt = "  "

	eventsInput := textinput.New()
	eventsInput.Placeholder = "~/party/, ~/party/**/*.jpg or sftp://user@host/party/"
	eventsInput.Prompt = "  "

	return &InputScreen{
		session:     session,
		description: description,
		subject:     fieldState{input: subjectInput},
		events:      fieldState{input: eventsInput},
		focusIndex:  focusDescription,
		keys:        keys,
		help:        help.New(),
	}
}

// Init implements tea.Model
func (s InputScreen) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (s InputScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return s.handleWindowSize(msg)
	case tea.KeyMsg:
		return s.handleKeyMsg(msg)
	case shared.ImagesLoadedMsg:
		return s.handleImagesLoaded(msg), nil
	case shared.PickedMsg:
		return s.handlePicked(msg)
	}

	return s.updateFocused(msg)
}

// View implements tea.Model
func (s InputScreen) View() string {
	return s.renderInputView()
}

// Focused returns the index of the focused field (for testing)
func (s InputScreen) Focused() int {
	return s.focusIndex
}

// FieldError returns the load error shown under a photo field (for testing)
func (s InputScreen) FieldError(field shared.Field) error {
	return s.fieldFor(field).err
}

// Loading reports whether a photo field is waiting on a load (for testing)
func (s InputScreen) Loading(field shared.Field) bool {
	return s.fieldFor(field).loads > 0
}

// PathValue returns the typed text of a photo field (for testing)
func (s InputScreen) PathValue(field shared.Field) string {
	return s.fieldFor(field).input.Value()
}

// ============================================================================
// Key Handling
// ============================================================================

func (s InputScreen) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, s.keys.Generate) {
		return s.handleGenerate()
	}

	if s.focusIndex == focusDescription {
		return s.handleDescriptionKey(msg)
	}

	field := s.focusedField()
	state := s.fieldFor(field)

	if msg.Paste {
		return s.handleDrop(field, string(msg.Runes))
	}

	switch msg.Type {
	case tea.KeyEsc:
		state.input.SetValue("")
		state.comp = completion{}
		state.err = nil
		state.more = 0
		return s, nil
	case tea.KeyTab:
		state.comp = state.comp.next(&state.input)
		return s, nil
	case tea.KeyShiftTab:
		state.comp = state.comp.previous(&state.input)
		return s, nil
	case tea.KeyRight:
		comp, accepted := state.comp.accept(&state.input)
		state.comp = comp
		if accepted {
			return s, nil
		}
	case tea.KeyEnter:
		state.comp = completion{}
		return s.loadTyped(field)
	}

	switch {
	case key.Matches(msg, s.keys.Next):
		return s.moveToNextField(), nil
	case key.Matches(msg, s.keys.Prev):
		return s.moveToPreviousField(), nil
	case key.Matches(msg, s.keys.Browse):
		return s, s.session.PickCmd(field)
	}

	state.comp.visible = false

	var cmd tea.Cmd
	state.input, cmd = state.input.Update(msg)

	return s, cmd
}

func (s InputScreen) handleDescriptionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEnter && !msg.Alt && !msg.Paste:
		return s.moveToNextField(), nil
	case msg.Type == tea.KeyTab, msg.String() == "ctrl+n":
		return s.moveToNextField(), nil
	}

	var cmd tea.Cmd
	s.description, cmd = s.description.Update(msg)
	s.session.Flow.SetDescription(s.description.Value())

	return s, cmd
}

func (s InputScreen) handleGenerate() (tea.Model, tea.Cmd) {
	if !s.session.Flow.CanGenerate() {
		return s, nil
	}

	return s, func() tea.Msg {
		return shared.GenerateRequestedMsg{}
	}
}

func (s InputScreen) handleDrop(field shared.Field, text string) (tea.Model, tea.Cmd) {
	specs := imagefile.SplitDropped(text)
	if len(specs) == 0 {
		return s, nil
	}

	s.session.Log.Debug().Str("field", field.String()).Int("count", len(specs)).Msg("paths dropped")

	return s.startLoad(field, specs)
}

func (s InputScreen) loadTyped(field shared.Field) (tea.Model, tea.Cmd) {
	specs := imagefile.SplitDropped(s.fieldFor(field).input.Value())
	if len(specs) == 0 {
		return s, nil
	}

	return s.startLoad(field, specs)
}

func (s InputScreen) startLoad(field shared.Field, specs []string) (tea.Model, tea.Cmd) {
	state := s.fieldFor(field)
	state.loads++
	state.err = nil
	state.more = 0
	state.input.SetValue("")

	return s, s.session.LoadCmd(field, specs...)
}

func (s InputScreen) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch s.focusIndex {
	case focusDescription:
		s.description, cmd = s.description.Update(msg)
	case focusSubject:
		s.subject.input, cmd = s.subject.input.Update(msg)
	default:
		s.events.input, cmd = s.events.input.Update(msg)
	}

	return s, cmd
}

// ============================================================================
// Message Handlers
// ============================================================================

func (s InputScreen) handleImagesLoaded(msg shared.ImagesLoadedMsg) InputScreen {
	state := s.fieldFor(msg.Field)
	state.loads = max(state.loads-1, 0)

	if msg.Field == shared.FieldSubject {
		for _, img := range msg.Images {
			s.session.Flow.UploadSubjectPhoto(img)
		}
	} else {
		s.session.Flow.AddEventPhotos(msg.Images)
	}

	state.err = nil
	state.more = 0
	if failures := msg.Batch.Failures; len(failures) > 0 {
		state.err = failures[0]
		state.more = len(failures) - 1
	}

	return s
}

func (s InputScreen) handlePicked(msg shared.PickedMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Err == nil:
		return s.startLoad(msg.Field, msg.Paths)
	case shared.PickCanceled(msg.Err):
		return s, nil
	case errors.Is(msg.Err, picker.ErrUnavailable):
		s.session.Log.Debug().Str("field", msg.Field.String()).Msg("file dialog disabled")
	default:
		s.session.Log.Warn().Err(msg.Err).Str("field", msg.Field.String()).Msg("file dialog failed")
	}

	s.fieldFor(msg.Field).err = msg.Err

	return s, nil
}

func (s InputScreen) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	s.width = msg.Width

	const frame = 8 // box border and padding plus field border and padding
	inputWidth := max(msg.Width-frame, shared.MinContentWidth-frame)
	s.description.SetWidth(inputWidth)
	s.subject.input.Width = inputWidth
	s.events.input.Width = inputWidth
	s.help.Width = inputWidth

	return s, nil
}

// ============================================================================
// Field Navigation
// ============================================================================

func (s InputScreen) moveToNextField() InputScreen {
	return s.focus(min(s.focusIndex+1, focusCount-1))
}

func (s InputScreen) moveToPreviousField() InputScreen {
	return s.focus(max(s.focusIndex-1, focusDescription))
}

func (s InputScreen) focus(index int) InputScreen {
	s.focusIndex = index

	s.description.Blur()
	s.subject.input.Blur()
	s.subject.input.Prompt = "  "
	s.subject.comp = completion{}
	s.events.input.Blur()
	s.events.input.Prompt = "  "
	s.events.comp = completion{}

	switch index {
	case focusDescription:
		s.description.Focus()
	case focusSubject:
		s.subject.input.Focus()
		s.subject.input.Prompt = shared.PromptArrow()
	default:
		s.events.input.Focus()
		s.events.input.Prompt = shared.PromptArrow()
	}

	return s
}

func (s *InputScreen) focusedField() shared.Field {
	if s.focusIndex == focusSubject {
		return shared.FieldSubject
	}

	return shared.FieldEvents
}

func (s *InputScreen) fieldFor(field shared.Field) *fieldState {
	if field == shared.FieldSubject {
		return &s.subject
	}

	return &s.events
}

// ============================================================================
// Rendering
// ============================================================================

func (s InputScreen) renderInputView() string {
	flow := s.session.Flow

	var builder strings.Builder

	builder.WriteString(shared.RenderTitle(shared.SparkleSymbol() + " " + HeroTitle))
	builder.WriteString("\n")
	builder.WriteString(shared.RenderSubtitle(HeroSubtitle))
	builder.WriteString("\n\n")

	builder.WriteString(shared.RenderLabel("Describe the event"))
	builder.WriteString("\n")
	builder.WriteString(s.description.View())
	builder.WriteString("\n\n")

	subject, ok := flow.Subject()
	builder.WriteString(shared.RenderLabel("Your photo"))
	builder.WriteString("\n")
	builder.WriteString(s.renderField(s.subject, s.focusIndex == focusSubject,
		widgets.NewSubjectWidget(s.session.Previews, subject, ok)))
	builder.WriteString("\n\n")

	builder.WriteString(shared.RenderLabel("Event photos"))
	builder.WriteString("\n")
	builder.WriteString(s.renderField(s.events, s.focusIndex == focusEvents,
		widgets.NewPhotoStripWidget(s.session.Previews, flow.EventPhotos())))
	builder.WriteString("\n\n")

	builder.WriteString(shared.RenderAction("ctrl+g", GenerateLabel, flow.CanGenerate()))
	builder.WriteString("\n\n")

	bindings := s.keys.photoHelp()
	if s.focusIndex == focusDescription {
		bindings = s.keys.descriptionHelp()
	}
	builder.WriteString(s.help.ShortHelpView(bindings))

	return shared.RenderBox(builder.String(), s.width)
}

func (s InputScreen) renderField(state fieldState, focused bool, preview func() string) string {
	dropping := state.loads > 0

	parts := []string{state.input.View()}
	if focused {
		if list := state.comp.view(); list != "" {
			parts = append(parts, list)
		}
	}

	if dropping {
		parts = append(parts, shared.RenderWarning("Adding photos..."))
	}
	parts = append(parts, preview())

	field := shared.FieldStyle(focused, dropping).Render(strings.Join(parts, "\n"))
	if state.err != nil {
		field += "\n" + shared.RenderLoadError(state.err, state.more, s.width)
	}

	return field
}
