package composer

// History keeps sent messages for recall, newest last.
type History struct {
	entries []string
	index   int // Position while recalling (-1 means not recalling)
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{
		entries: []string{},
		index:   -1,
	}
}

// Add records a sent message, skipping blanks and repeats of the newest entry.
func (h *History) Add(text string) {
	if len(text) == 0 {
		return
	}

	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == text {
		h.index = -1
		return
	}

	h.entries = append(h.entries, text)
	if len(h.entries) > MaxHistory {
		h.entries = h.entries[len(h.entries)-MaxHistory:]
	}

	h.index = -1
}

// Prev moves to an older entry, stopping at the oldest.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}

	if h.index == -1 {
		h.index = len(h.entries) - 1
	} else if h.index > 0 {
		h.index--
	}

	return h.entries[h.index], true
}

// Next moves to a newer entry. Moving past the newest leaves recall mode and
// returns "", false so the caller can clear the buffer.
func (h *History) Next() (string, bool) {
	if len(h.entries) == 0 || h.index == -1 {
		return "", false
	}

	if h.index < len(h.entries)-1 {
		h.index++
		return h.entries[h.index], true
	}

	h.index = -1
	return "", false
}

// Recalling returns true while an entry is being recalled.
func (h *History) Recalling() bool {
	return h.index != -1
}

// Reset leaves recall mode.
func (h *History) Reset() {
	h.index = -1
}

// IsEmpty returns true if nothing was sent yet.
func (h *History) IsEmpty() bool {
	return len(h.entries) == 0
}

// Size returns the number of entries.
func (h *History) Size() int {
	return len(h.entries)
}
