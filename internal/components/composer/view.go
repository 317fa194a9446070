package composer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/quill/internal/commands"
)

// View renders the palette (when open), the input box, the attachment
// chips and the status line.
func (m *Model) View() string {
	sections := []string{}

	if m.ctrl.PaletteOpen() {
		sections = append(sections, m.viewPalette())
	}

	sections = append(sections, m.theme.Input.Width(max(m.width-2, 10)).Render(m.textarea.View()))

	if chips := m.viewAttachments(); chips != "" {
		sections = append(sections, chips)
	}

	sections = append(sections, m.viewStatusLine())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewPalette renders the visible window of suggestions, keeping the active
// row in view.
func (m *Model) viewPalette() string {
	catalog := m.ctrl.Catalog()
	if catalog.IsEmpty() {
		return m.theme.PaletteHint.Render("  No commands available")
	}

	start, end := paletteWindow(catalog.Len(), m.ctrl.ActiveIndex(), MaxPaletteItems)
	span := m.ctrl.log.Start("render palette")
	defer span.End("rows", end-start)

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		s, _ := catalog.At(i)
		rows = append(rows, m.viewSuggestion(s, i == m.ctrl.ActiveIndex()))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) viewSuggestion(s commands.Suggestion, active bool) string {
	marker := "  "
	style := m.theme.Palette
	if active {
		marker = "▶ "
		style = m.theme.PaletteSelected
	}

	label := s.Label
	if glyph := s.Icon.Glyph(); glyph != "" {
		label = glyph + " " + label
	}

	row := marker + label + " " + m.theme.PaletteHint.Render(s.Prefix)
	if s.Description != "" {
		row += m.theme.PaletteHint.Render("  " + s.Description)
	}
	return style.Width(max(m.width, 10)).Render(row)
}

// paletteWindow returns the [start, end) range of rows to show.
func paletteWindow(total, active, size int) (int, int) {
	if total <= size {
		return 0, total
	}
	start := 0
	if active >= size {
		start = active - size + 1
	}
	return start, start + size
}

func (m *Model) viewAttachments() string {
	items := m.ctrl.Attachments()
	if len(items) == 0 {
		return ""
	}
	chips := make([]string, len(items))
	for i, a := range items {
		chips[i] = m.theme.Chip.Render(fmt.Sprintf("%d %s", i+1, a.Name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// viewStatusLine renders the recent-command badge, the typing pulse, the
// send hint and the key help.
func (m *Model) viewStatusLine() string {
	parts := []string{}

	if label, ok := m.ctrl.RecentCommand(); ok {
		parts = append(parts, m.theme.Badge.Render(label))
	}
	if m.ctrl.TypingPulse() {
		parts = append(parts, m.theme.Pulse.Render("●"))
	}

	if m.ctrl.CanSend() {
		parts = append(parts, m.theme.SendReady.Render("⏎ send"))
	} else {
		parts = append(parts, m.theme.SendDisabled.Render("⏎ send"))
	}

	bindings := m.keys.ComposeHelp()
	if m.ctrl.PaletteOpen() {
		bindings = m.keys.PaletteHelp()
	}
	parts = append(parts, m.help.ShortHelpView(bindings))

	return strings.Join(parts, " ")
}
