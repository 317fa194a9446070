package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/quill/internal/types"
	"github.com/renato0307/quill/internal/ui"
)

// Transcript keeps the messages sent during the session, oldest first.
type Transcript struct {
	mu      sync.RWMutex
	entries []types.TranscriptEntry
}

// NewTranscript creates an empty transcript
func NewTranscript() *Transcript {
	return &Transcript{
		entries: make([]types.TranscriptEntry, 0, MaxTranscriptEntries),
	}
}

// Add appends entry (bounded slice pattern)
func (t *Transcript) Add(entry types.TranscriptEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, entry)
	if len(t.entries) > MaxTranscriptEntries {
		t.entries = t.entries[len(t.entries)-MaxTranscriptEntries:]
	}
}

// All returns a copy of the entries, oldest first
func (t *Transcript) All() []types.TranscriptEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]types.TranscriptEntry, len(t.entries))
	copy(result, t.entries)
	return result
}

// Last returns the newest entry
func (t *Transcript) Last() (types.TranscriptEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.entries) == 0 {
		return types.TranscriptEntry{}, false
	}
	return t.entries[len(t.entries)-1], true
}

// Clear removes all entries
func (t *Transcript) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make([]types.TranscriptEntry, 0, MaxTranscriptEntries)
}

// Count returns number of entries
func (t *Transcript) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Render formats the transcript for a viewport of the given width.
func (t *Transcript) Render(theme *ui.Theme, width int) string {
	entries := t.All()
	if len(entries) == 0 {
		return theme.PaletteHint.Render("No messages yet. Type / for commands.")
	}

	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = renderEntry(e, theme, width)
	}
	return strings.Join(blocks, "\n\n")
}

func renderEntry(e types.TranscriptEntry, theme *ui.Theme, width int) string {
	header := theme.PaletteHint.Render(e.SentAt.Format("15:04:05"))
	if e.Command != "" {
		header += " " + theme.TranscriptCmd.Render(e.Command)
	}

	body := strings.TrimSpace(strings.TrimPrefix(e.Text, e.Command))
	lines := []string{header}
	if body != "" {
		lines = append(lines, theme.Transcript.Width(max(width, 10)).Render(body))
	}
	if len(e.Attachments) > 0 {
		lines = append(lines, theme.PaletteHint.Render(
			fmt.Sprintf("attached: %s", strings.Join(e.Attachments, ", "))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
