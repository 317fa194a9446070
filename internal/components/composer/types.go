package composer

import "github.com/renato0307/quill/internal/commands"

// Key is the category of a key event as seen by the router.
type Key int

const (
	KeyOther Key = iota // Anything the router does not handle
	KeyArrowUp
	KeyArrowDown
	KeyTab
	KeyEnter
	KeyEscape
)

// String returns the key name, mostly for logs.
func (k Key) String() string {
	switch k {
	case KeyArrowUp:
		return "up"
	case KeyArrowDown:
		return "down"
	case KeyTab:
		return "tab"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	default:
		return "other"
	}
}

// Modifiers carries the modifier state of a key event.
// Shift is the line-break modifier: Enter+Shift inserts a new line.
type Modifiers struct {
	Shift bool
}

// Attachment is a file-like reference attached to the message.
type Attachment struct {
	Name string
}

// Submission is what the composer hands to its consumer on send.
type Submission struct {
	Text        string       // Trimmed buffer
	Command     string       // Leading catalog prefix, empty when absent
	Attachments []Attachment // Snapshot at send time
}

// HasCommand returns true if the message starts with a catalog prefix.
func (s Submission) HasCommand() bool {
	return s.Command != ""
}

// SendFunc receives each valid submission exactly once, synchronously.
type SendFunc func(Submission)

// State is a read-only snapshot of the composer.
type State struct {
	Text          string
	PaletteOpen   bool
	ActiveIndex   int // -1 when nothing is active
	Attachments   []Attachment
	RecentCommand string // Label of the last committed suggestion, while visible
	HasRecent     bool
	RecentGen     uint64
	TypingPulse   bool
}

// ActiveSuggestion returns the active suggestion of s in catalog, if any.
func (s State) ActiveSuggestion(catalog *commands.Catalog) (commands.Suggestion, bool) {
	if !s.PaletteOpen || catalog == nil {
		return commands.Suggestion{}, false
	}
	return catalog.At(s.ActiveIndex)
}
