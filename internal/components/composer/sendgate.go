package composer

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/quill/internal/commands"
)

// CanSend returns true if the trimmed buffer is non-empty.
// Attachments alone are not enough.
func (c *Controller) CanSend() bool {
	return strings.TrimSpace(c.text) != ""
}

// Submit sends the buffer if it can: the consumer is called once with the
// trimmed text, then the buffer is cleared and the typing pulse starts.
// Attachments stay in place. Returns nil when nothing was sent.
func (c *Controller) Submit() tea.Cmd {
	if !c.CanSend() {
		return nil
	}

	sub := Submission{
		Text:        strings.TrimSpace(c.text),
		Attachments: c.attachments.Items(),
	}
	sub.Command = ParseCommand(sub.Text, c.catalog)

	c.log.Info("Message sent",
		"length", len(sub.Text),
		"command", sub.Command,
		"attachments", len(sub.Attachments))

	if c.onSend != nil {
		c.log.Time("emit submission", func() {
			c.onSend(sub)
		})
	}

	// Cleared after the consumer ran, so it sees the buffer it was sent from
	c.history.Add(sub.Text)
	c.SetText("")
	return c.pulse.Post(true)
}

// ParseCommand returns the leading whitespace-delimited token of text when
// it is exactly a catalog prefix, and "" otherwise.
func ParseCommand(text string, catalog *commands.Catalog) string {
	fields := strings.Fields(text)
	if len(fields) == 0 || catalog == nil {
		return ""
	}
	if _, ok := catalog.Get(fields[0]); !ok {
		return ""
	}
	return fields[0]
}
