package composer

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/quill/internal/components/notifier"
	"github.com/renato0307/quill/internal/keyboard"
	"github.com/renato0307/quill/internal/ui"
)

// Model binds a Controller to a Bubble Tea textarea. The textarea owns
// cursor movement and character insertion; the controller owns everything
// else and gets the first look at every key.
type Model struct {
	ctrl     *Controller
	textarea textarea.Model
	keys     *keyboard.Keys
	help     help.Model
	theme    *ui.Theme
	width    int
}

// New creates the composer view for ctrl.
func New(ctrl *Controller, theme *ui.Theme, keys *keyboard.Keys) *Model {
	ta := textarea.New()
	ta.Placeholder = ctrl.Placeholder()
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetHeight(3)
	ta.KeyMap.InsertNewline = keys.NewLine
	ta.Focus()

	m := &Model{
		ctrl:     ctrl,
		textarea: ta,
		keys:     keys,
		help:     help.New(),
		theme:    theme,
	}
	m.SetWidth(DefaultWidth)
	return m
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Controller returns the underlying controller.
func (m *Model) Controller() *Controller {
	return m.ctrl
}

// SetWidth resizes the composer.
func (m *Model) SetWidth(width int) {
	m.width = width
	// Border (2) + padding (2)
	m.textarea.SetWidth(max(width-4, 10))
	m.help.Width = width
}

// Value returns the text in the textarea.
func (m *Model) Value() string {
	return m.textarea.Value()
}

// Update handles messages for the composer.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notifier.ClearMsg:
		m.ctrl.Update(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// handleKeyMsg gives the controller the first look at a key, then falls
// back to the textarea.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (*Model, tea.Cmd) {
	if handled := m.handleComposerBinding(msg); handled {
		m.syncTextarea()
		return m, nil
	}

	k, mods := translateKey(msg, m.keys)
	if k != KeyOther {
		consumed, cmd := m.ctrl.HandleKey(k, mods)
		if consumed {
			m.syncTextarea()
			return m, cmd
		}
	}

	before := m.textarea.Value()
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	if after := m.textarea.Value(); after != before {
		m.ctrl.EditText(after)
	}
	return m, cmd
}

// handleComposerBinding handles shortcuts that sit outside the key router.
func (m *Model) handleComposerBinding(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.TogglePalette):
		m.ctrl.TogglePalette()
	case key.Matches(msg, m.keys.Attach):
		m.ctrl.AttachFile()
	case key.Matches(msg, m.keys.RemoveLast):
		m.ctrl.RemoveAttachment(len(m.ctrl.Attachments()) - 1)
	case key.Matches(msg, m.keys.HistoryPrev):
		return m.ctrl.HistoryPrev()
	case key.Matches(msg, m.keys.HistoryNext):
		return m.ctrl.HistoryNext()
	default:
		return false
	}
	return true
}

// syncTextarea copies the controller buffer into the textarea when they
// differ. Leaving an equal value alone keeps the cursor where it is.
func (m *Model) syncTextarea() {
	if m.textarea.Value() != m.ctrl.Text() {
		m.textarea.SetValue(m.ctrl.Text())
	}
}

// translateKey maps a terminal key to the router's key categories.
func translateKey(msg tea.KeyMsg, keys *keyboard.Keys) (Key, Modifiers) {
	switch {
	case key.Matches(msg, keys.PaletteUp):
		return KeyArrowUp, Modifiers{}
	case key.Matches(msg, keys.PaletteDown):
		return KeyArrowDown, Modifiers{}
	case key.Matches(msg, keys.Accept):
		return KeyTab, Modifiers{}
	case key.Matches(msg, keys.Dismiss):
		return KeyEscape, Modifiers{}
	case key.Matches(msg, keys.NewLine):
		return KeyEnter, Modifiers{Shift: true}
	case key.Matches(msg, keys.Send):
		return KeyEnter, Modifiers{}
	}
	return KeyOther, Modifiers{}
}
