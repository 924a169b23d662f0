package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/event-recreator/internal/tui/shared"
)

// Copy of the script review screen
const (
	ScriptTitle    = "Script Review"
	ScriptSubtitle = "Review or edit the generated script before creating your video."
	ScriptDraft    = "Draft based on your inputs"
)

// ScriptScreen shows the generated script and lets the user edit, regenerate
// or approve it
type ScriptScreen struct {
	session *shared.Session
	editor  textarea.Model
	keys    scriptKeys
	status  string
	failed  bool
	width   int
}

// NewScriptScreen creates the review screen for the session's script
func NewScriptScreen(session *shared.Session) *ScriptScreen {
	editor := textarea.New()
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.SetHeight(8) //nolint:mnd // Room for the five script lines and edits

	screen := &ScriptScreen{
		session: session,
		editor:  editor,
		keys:    newScriptKeys(),
	}
	if session.Flow.Editing() {
		screen.editor.SetValue(session.Flow.Script())
		screen.editor.Focus()
	}

	return screen
}

// Init implements tea.Model
func (s ScriptScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s ScriptScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.editor.SetWidth(max(msg.Width-shared.DefaultPadding*4, shared.MinContentWidth)) //nolint:mnd // Box frame

		return s, nil
	case tea.KeyMsg:
		if s.session.Flow.Editing() {
			return s.handleEditingKey(msg)
		}

		return s.handleKeyMsg(msg)
	case shared.CopiedMsg:
		if msg.Err != nil {
			s.session.Log.Warn().Err(msg.Err).Msg("copy to clipboard failed")
			s.status = "Could not copy: " + msg.Err.Error()
			s.failed = true
		} else {
			s.status = "Script copied to clipboard"
			s.failed = false
		}

		return s, nil
	}

	if s.session.Flow.Editing() {
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)

		return s, cmd
	}

	return s, nil
}

// View implements tea.Model
func (s ScriptScreen) View() string {
	flow := s.session.Flow

	var builder strings.Builder

	builder.WriteString(shared.RenderTitle(ScriptTitle))
	builder.WriteString("\n")
	builder.WriteString(shared.RenderSubtitle(ScriptSubtitle))
	builder.WriteString("\n\n")
	builder.WriteString(shared.RenderLabel(ScriptDraft))
	builder.WriteString("\n")

	if flow.Editing() {
		builder.WriteString(s.editor.View())
	} else {
		builder.WriteString(flow.Script())
	}
	builder.WriteString("\n\n")

	editLabel := "Edit Script"
	if flow.Editing() {
		editLabel = "Done Editing"
	}

	actions := []string{
		shared.RenderAction(s.editKey(), editLabel, true),
		shared.RenderAction("r", "Generate Another", !flow.Editing()),
		shared.RenderAction("b", "Go Back", !flow.Editing()),
		shared.RenderAction("enter", "Approve & Generate Video", !flow.Editing()),
		shared.RenderAction("y", "Copy", !flow.Editing()),
	}
	builder.WriteString(strings.Join(actions, "  "))

	if s.status != "" {
		builder.WriteString("\n\n")
		if s.failed {
			builder.WriteString(shared.RenderError(s.status))
		} else {
			builder.WriteString(shared.RenderSuccess(shared.SuccessSymbol() + " " + s.status))
		}
	}

	return shared.RenderBox(builder.String(), s.width)
}

// Status returns the last clipboard status line (for testing)
func (s ScriptScreen) Status() string {
	return s.status
}

func (s ScriptScreen) editKey() string {
	if s.session.Flow.Editing() {
		return "esc"
	}

	return "e"
}

func (s ScriptScreen) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	flow := s.session.Flow

	switch {
	case key.Matches(msg, s.keys.Edit):
		flow.ToggleEditMode()
		s.editor.SetValue(flow.Script())
		s.editor.Focus()
		s.status = ""

		return s, textarea.Blink
	case key.Matches(msg, s.keys.Regenerate):
		flow.RegenerateScript()
		s.status = ""

		return s, nil
	case key.Matches(msg, s.keys.Back):
		return s, func() tea.Msg { return shared.RestartMsg{} }
	case key.Matches(msg, s.keys.Approve):
		return s, func() tea.Msg { return shared.ApproveScriptMsg{} }
	case key.Matches(msg, s.keys.Copy):
		return s, s.session.CopyCmd(flow.Script())
	}

	return s, nil
}

func (s ScriptScreen) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	flow := s.session.Flow

	if key.Matches(msg, s.keys.DoneEdit) {
		flow.ToggleEditMode()
		s.editor.Blur()

		return s, nil
	}

	var cmd tea.Cmd
	s.editor, cmd = s.editor.Update(msg)

	if err := flow.EditScript(s.editor.Value()); err != nil {
		s.session.Log.Error().Err(err).Msg("script edit rejected")
	}

	return s, cmd
}
