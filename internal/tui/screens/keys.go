package screens

import "github.com/charmbracelet/bubbles/key"

// inputKeys are the bindings of the input screen
type inputKeys struct {
	Next     key.Binding
	Prev     key.Binding
	Load     key.Binding
	Clear    key.Binding
	Complete key.Binding
	Browse   key.Binding
	Generate key.Binding
	Newline  key.Binding
}

func newInputKeys() inputKeys {
	return inputKeys{
		Next:     key.NewBinding(key.WithKeys("ctrl+n", "down"), key.WithHelp("↓/ctrl+n", "next field")),
		Prev:     key.NewBinding(key.WithKeys("ctrl+p", "up"), key.WithHelp("↑/ctrl+p", "previous field")),
		Load:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add photos")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear field")),
		Complete: key.NewBinding(key.WithKeys("tab", "shift+tab", "right"), key.WithHelp("tab", "complete path")),
		Browse:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "browse")),
		Generate: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate")),
		Newline:  key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"), key.WithHelp("alt+enter", "new line")),
	}
}

func (k inputKeys) descriptionHelp() []key.Binding {
	return []key.Binding{k.Next, k.Newline, k.Generate, sidebarKey}
}

func (k inputKeys) photoHelp() []key.Binding {
	return []key.Binding{k.Load, k.Complete, k.Browse, k.Clear, k.Prev, k.Next, k.Generate}
}

// scriptKeys are the bindings of the script review screen
type scriptKeys struct {
	Edit       key.Binding
	DoneEdit   key.Binding
	Regenerate key.Binding
	Back       key.Binding
	Approve    key.Binding
	Copy       key.Binding
}

func newScriptKeys() scriptKeys {
	return scriptKeys{
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit script")),
		DoneEdit:   key.NewBinding(key.WithKeys("esc", "ctrl+e"), key.WithHelp("esc", "done editing")),
		Regenerate: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "generate another")),
		Back:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "go back")),
		Approve:    key.NewBinding(key.WithKeys("enter", "a"), key.WithHelp("enter", "approve")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
	}
}

// resultKeys are the bindings of the results screen
type resultKeys struct {
	Restart  key.Binding
	Download key.Binding
	Quit     key.Binding
}

func newResultKeys() resultKeys {
	return resultKeys{
		Restart:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "create another")),
		// Nothing is rendered, so there is nothing to download
		Download: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download video"), key.WithDisabled()),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

//nolint:gochecknoglobals // help-only binding, handled by the app model
var sidebarKey = key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "sessions"))
