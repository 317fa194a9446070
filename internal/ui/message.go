package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/quill/internal/types"
)

// RenderMessage renders a status message with styling based on its type.
// Long messages are truncated to fit the terminal width.
func RenderMessage(text string, msgType types.MessageType, theme *Theme, width int) string {
	if text == "" {
		return ""
	}

	// Max length = terminal width - prefix (2) - margin (5)
	maxMessageLength := width - 7
	if maxMessageLength < 20 {
		maxMessageLength = 20
	}
	if runes := []rune(text); len(runes) > maxMessageLength {
		text = string(runes[:maxMessageLength-1]) + "…"
	}

	var messageColor lipgloss.AdaptiveColor
	var prefix string

	switch msgType {
	case types.MessageTypeSuccess:
		messageColor = theme.Success
		prefix = "✓ "
	case types.MessageTypeError:
		messageColor = theme.Error
		prefix = "✗ "
	default:
		messageColor = theme.Primary
		prefix = "ℹ "
	}

	return lipgloss.NewStyle().Foreground(messageColor).Render(prefix + text)
}
