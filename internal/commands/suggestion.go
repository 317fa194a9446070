package commands

// Icon is a presentation token for a suggestion. The core never interprets it.
type Icon string

const (
	IconNone    Icon = ""
	IconMonitor Icon = "monitor"
	IconBrain   Icon = "brain"
	IconCommand Icon = "command"
)

// glyphs maps icon tokens to terminal-safe glyphs
var glyphs = map[Icon]string{
	IconMonitor: "▣",
	IconBrain:   "✺",
	IconCommand: "⌘",
}

// Glyph returns the character used to render the icon, or "" for unknown tokens.
func (i Icon) Glyph() string {
	return glyphs[i]
}

// Suggestion is a selectable command in the palette.
type Suggestion struct {
	Label       string `json:"label"`                 // Shown in the palette and the recent-command badge
	Prefix      string `json:"prefix"`                // Command token, always starts with "/"
	Icon        Icon   `json:"icon,omitempty"`        // Presentation token
	Description string `json:"description,omitempty"` // Optional one-line help
}
