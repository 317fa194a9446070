package keyboard

import "github.com/charmbracelet/bubbles/key"

// Keys holds all keyboard bindings for quill
type Keys struct {
	// Palette navigation (only while the palette is open)
	PaletteUp   key.Binding
	PaletteDown key.Binding
	Accept      key.Binding // Tab commits the active suggestion
	Dismiss     key.Binding

	// Composing
	Send          key.Binding
	NewLine       key.Binding // Enter with the line-break modifier
	TogglePalette key.Binding
	Attach        key.Binding
	RemoveLast    key.Binding // Remove the most recent attachment
	HistoryPrev   key.Binding
	HistoryNext   key.Binding

	// Global
	CopyLast key.Binding
	Quit     key.Binding
}

// Default returns the default keyboard configuration
func Default() *Keys {
	return &Keys{
		PaletteUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "prev command"),
		),
		PaletteDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next command"),
		),
		Accept: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),

		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		// Most terminals can't report shift+enter; alt+enter and ctrl+j can
		NewLine: key.NewBinding(
			key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
			key.WithHelp("alt+enter", "new line"),
		),
		TogglePalette: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "commands"),
		),
		Attach: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "attach"),
		),
		RemoveLast: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "detach"),
		),
		HistoryPrev: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p/n", "history"),
		),
		HistoryNext: key.NewBinding(
			key.WithKeys("ctrl+n"),
		),

		CopyLast: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy last"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// GetKeys returns the current keyboard configuration
func GetKeys() *Keys {
	return Default()
}

// ComposeHelp returns the bindings shown while the palette is closed.
func (k *Keys) ComposeHelp() []key.Binding {
	return []key.Binding{k.Send, k.NewLine, k.TogglePalette, k.Attach, k.RemoveLast, k.HistoryPrev}
}

// PaletteHelp returns the bindings shown while the palette is open.
func (k *Keys) PaletteHelp() []key.Binding {
	return []key.Binding{k.PaletteUp, k.PaletteDown, k.Accept, k.Dismiss}
}
