package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/quill/internal/components/notifier"
	"github.com/renato0307/quill/internal/types"
	"github.com/renato0307/quill/internal/ui"
)

// StatusBar displays status messages (success, errors, info) that clear
// themselves after StatusBarDisplayDuration.
type StatusBar struct {
	current *notifier.Notifier[types.StatusMsg]
	width   int
	theme   *ui.Theme
}

// NewStatusBar creates a new status bar
func NewStatusBar(theme *ui.Theme, opts ...notifier.Option) *StatusBar {
	return &StatusBar{
		current: notifier.New[types.StatusMsg](StatusBarNotifierID, StatusBarDisplayDuration, opts...),
		theme:   theme,
	}
}

// SetMessage shows msg and returns the command that clears it later.
func (sb *StatusBar) SetMessage(msg string, msgType types.MessageType) tea.Cmd {
	return sb.current.Post(types.StatusMsg{Message: msg, Type: msgType})
}

// Message returns the message on display, if any.
func (sb *StatusBar) Message() (types.StatusMsg, bool) {
	return sb.current.Value()
}

// Update handles status and clear messages.
func (sb *StatusBar) Update(msg tea.Msg) (*StatusBar, tea.Cmd) {
	switch msg := msg.(type) {
	case types.StatusMsg:
		return sb, sb.SetMessage(msg.Message, msg.Type)
	case notifier.ClearMsg:
		sb.current.Update(msg)
	}
	return sb, nil
}

// SetWidth sets the status bar width
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// GetHeight returns the height (always 1 line to reserve space)
func (sb *StatusBar) GetHeight() int {
	return 1
}

// View renders the status bar
func (sb *StatusBar) View() string {
	baseStyle := sb.theme.StatusBar.Width(sb.width)

	msg, ok := sb.current.Value()
	if !ok {
		// Render empty line to reserve space
		return baseStyle.Render("")
	}

	return baseStyle.Bold(true).Render(ui.RenderMessage(msg.Message, msg.Type, sb.theme, sb.width))
}
