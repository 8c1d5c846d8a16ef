package tui

import "charm.land/bubbles/v2/key"

// keyMap holds the demo key bindings. It satisfies help.KeyMap.
type keyMap struct {
	Success    key.Binding
	Error      key.Binding
	Dismiss    key.Binding
	DismissAll key.Binding
	Hold       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Success: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "success"),
		),
		Error: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "error"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "dismiss newest"),
		),
		DismissAll: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "dismiss all"),
		),
		Hold: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "hold/release newest"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Success, k.Error, k.Dismiss, k.Hold, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Success, k.Error},
		{k.Dismiss, k.DismissAll, k.Hold},
		{k.Quit},
	}
}
