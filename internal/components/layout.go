package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout splits the terminal between header, transcript, composer and
// status bar.
type Layout struct {
	width  int
	height int
}

func NewLayout(width, height int) *Layout {
	return &Layout{
		width:  width,
		height: height,
	}
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// CalculateBodyHeight returns the height left for the transcript once the
// other sections took theirs.
func (l *Layout) CalculateBodyHeight(headerHeight, composerHeight, statusHeight int) int {
	// One empty line after the header
	reserved := headerHeight + 1 + composerHeight + statusHeight
	return max(l.height-reserved, MinTranscriptHeight)
}

// Render builds the full layout
func (l *Layout) Render(header, body, composer, status string) string {
	sections := []string{}

	if header != "" {
		sections = append(sections, header, "")
	}
	sections = append(sections, body, composer, status)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
