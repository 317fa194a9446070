package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/quill/internal/ui"
)

// Header shows the app name, message count and time since the last send.
type Header struct {
	appName      string
	messageCount int
	lastSent     time.Time
	width        int
	theme        *ui.Theme
	now          func() time.Time
}

func NewHeader(theme *ui.Theme, appName string) *Header {
	return &Header{
		appName: appName,
		theme:   theme,
		now:     time.Now,
	}
}

func (h *Header) SetMessageCount(count int) {
	h.messageCount = count
}

func (h *Header) SetLastSent(t time.Time) {
	h.lastSent = t
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) GetHeight() int {
	return 1
}

func (h *Header) View() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(h.theme.Primary)

	timingStyle := lipgloss.NewStyle().
		Foreground(h.theme.Muted).
		Padding(0, 1)

	// "quill • theme: charm • 3 messages"
	leftParts := []string{h.appName, fmt.Sprintf("theme: %s", h.theme.Name)}
	if h.messageCount == 1 {
		leftParts = append(leftParts, "1 message")
	} else if h.messageCount > 1 {
		leftParts = append(leftParts, fmt.Sprintf("%d messages", h.messageCount))
	}
	left := headerStyle.Render(strings.Join(leftParts, " • "))

	var right string
	if !h.lastSent.IsZero() {
		right = timingStyle.Render(fmt.Sprintf("Last sent: %s", formatElapsed(h.now().Sub(h.lastSent))))
	}

	// Push timing to the right
	spacing := max(h.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	spacer := lipgloss.NewStyle().
		Width(spacing).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right)
}

func formatElapsed(elapsed time.Duration) string {
	switch {
	case elapsed < time.Minute:
		return fmt.Sprintf("%ds ago", int(elapsed.Seconds()))
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	}
}
