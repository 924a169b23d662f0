//nolint:varnamelen // Test files use idiomatic short variable names
package screens_test

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/event-recreator/internal/clipboard"
	"github.com/joe/event-recreator/internal/recreate"
	"github.com/joe/event-recreator/internal/tui/screens"
	"github.com/joe/event-recreator/internal/tui/shared"
)

type failingCopier struct{}

func (failingCopier) Copy(string) error { return errors.New("no clipboard") }

func updateScript(s screens.ScriptScreen, msg tea.Msg) (screens.ScriptScreen, tea.Cmd) {
	model, cmd := s.Update(msg)

	return model.(screens.ScriptScreen), cmd //nolint:forcetypeassert // Update always returns ScriptScreen
}

func runes(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func TestScriptScreen_ShowsScriptAndActions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	session := reviewSession()
	view := screens.NewScriptScreen(session).View()

	g.Expect(view).Should(ContainSubstring(screens.ScriptTitle))
	g.Expect(view).Should(ContainSubstring(screens.ScriptSubtitle))
	g.Expect(view).Should(ContainSubstring(screens.ScriptDraft))
	g.Expect(view).Should(ContainSubstring("Recreating: Beach day."))
	g.Expect(view).Should(ContainSubstring("Edit Script"))
	g.Expect(view).Should(ContainSubstring("Approve & Generate Video"))
}

func TestScriptScreen_EditMode(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	session := reviewSession()
	s := *screens.NewScriptScreen(session)

	s, _ = updateScript(s, runes("e"))
	g.Expect(session.Flow.Editing()).Should(BeTrue())
	g.Expect(s.View()).Should(ContainSubstring("Done Editing"))

	// Keys that are actions outside edit mode now edit the text
	s, _ = updateScript(s, runes("r"))
	g.Expect(session.Flow.Script()).Should(HaveSuffix("r"))

	s, _ = updateScript(s, tea.KeyMsg{Type: tea.KeyEsc})
	g.Expect(session.Flow.Editing()).Should(BeFalse())
	g.Expect(session.Flow.Script()).Should(HaveSuffix("r"), "Finishing editing keeps the edits")
	g.Expect(s.View()).Should(ContainSubstring("Edit Script"))
}

func TestScriptScreen_CtrlEFinishesEditing(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	session := reviewSession()
	s, _ := updateScript(*screens.NewScriptScreen(session), runes("e"))
	_, _ = updateScript(s, tea.KeyMsg{Type: tea.KeyCtrlE})

	g.Expect(session.Flow.Editing()).Should(BeFalse())
}

func TestScriptScreen_RegenerateRestoresTemplate(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	session := reviewSession()
	s, _ := updateScript(*screens.NewScriptScreen(session), runes("e"))
	s, _ = updateScript(s, runes("!"))
	s, _ = updateScript(s, tea.KeyMsg{Type: tea.KeyEsc})

	_, cmd := updateScript(s, runes("r"))

	g.Expect(cmd).Should(BeNil())
	g.Expect(session.Flow.Script()).Should(Equal(recreate.GenerateScript("Beach day", 2)))
}

func TestScriptScreen_BackRestarts(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, cmd := updateScript(*screens.NewScriptScreen(reviewSession()), runes("b"))

	g.Expect(cmd).ShouldNot(BeNil())
	g.Expect(cmd()).Should(Equal(shared.RestartMsg{}))
}

func TestScriptScreen_ApproveKeys(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEnter}, runes("a")} {
		_, cmd := updateScript(*screens.NewScriptScreen(reviewSession()), msg)

		g.Expect(cmd).ShouldNot(BeNil())
		g.Expect(cmd()).Should(Equal(shared.ApproveScriptMsg{}))
	}
}

func TestScriptScreen_CopyScript(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	session := reviewSession()
	copier := &clipboard.Memory{}
	session.Copier = copier

	s, cmd := updateScript(*screens.NewScriptScreen(session), runes("y"))
	g.Expect(cmd).ShouldNot(BeNil())

	s, _ = updateScript(s, cmd())

	g.Expect(copier.Text()).Should(Equal(session.Flow.Script()))
	g.Expect(s.Status()).Should(Equal("Script copied to clipboard"))
}

func TestScriptScreen_CopyFailureShown(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	session := reviewSession()
	session.Copier = failingCopier{}

	s, cmd := updateScript(*screens.NewScriptScreen(session), runes("y"))
	s, _ = updateScript(s, cmd())

	g.Expect(s.Status()).Should(ContainSubstring("no clipboard"))
	g.Expect(s.View()).Should(ContainSubstring("Could not copy"))
}
