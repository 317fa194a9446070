package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme and styles for the TUI
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	// UI element colors
	Border     lipgloss.AdaptiveColor // Separator lines, borders
	Dimmed     lipgloss.AdaptiveColor // Very subtle text (prefix hints, placeholder)
	Subtle     lipgloss.AdaptiveColor // Selected palette row background
	Background lipgloss.AdaptiveColor // Background for overlays

	// Component styles, derived from the colors by applyStyles
	Palette         lipgloss.Style // Unselected palette row
	PaletteSelected lipgloss.Style // Active palette row
	PaletteHint     lipgloss.Style // Prefix shown next to the label
	Input           lipgloss.Style // Border around the textarea
	Chip            lipgloss.Style // Attachment chip
	Badge           lipgloss.Style // Recent-command badge
	Pulse           lipgloss.Style // Typing pulse indicator
	SendReady       lipgloss.Style // Send hint when the buffer can be sent
	SendDisabled    lipgloss.Style // Send hint when the buffer is blank
	Transcript      lipgloss.Style // Sent message text
	TranscriptCmd   lipgloss.Style // Command token of a sent message
	StatusBar       lipgloss.Style
}

// applyStyles derives component styles from the theme colors.
func (t *Theme) applyStyles() *Theme {
	t.Palette = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Padding(0, 1)

	t.PaletteSelected = lipgloss.NewStyle().
		Foreground(t.Primary).
		Background(t.Subtle).
		Padding(0, 1).
		Bold(true)

	t.PaletteHint = lipgloss.NewStyle().
		Foreground(t.Dimmed)

	t.Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.Chip = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Background(t.Subtle).
		Padding(0, 1)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1).
		Bold(true)

	t.Pulse = lipgloss.NewStyle().
		Foreground(t.Secondary).
		Bold(true)

	t.SendReady = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Primary).
		Padding(0, 1).
		Bold(true)

	t.SendDisabled = lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1)

	t.Transcript = lipgloss.NewStyle().
		Foreground(t.Foreground)

	t.TranscriptCmd = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1)

	return t
}

// ThemeCharm returns the default Charm theme
func ThemeCharm() *Theme {
	t := &Theme{Name: "charm"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#F780E2", Dark: "#F780E2"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
	t.Muted = lipgloss.AdaptiveColor{Light: "243", Dark: "243"}
	t.Error = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
	t.Success = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFAA00"}

	t.Border = lipgloss.AdaptiveColor{Light: "240", Dark: "240"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "243", Dark: "243"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "254", Dark: "237"}
	t.Background = lipgloss.AdaptiveColor{Light: "254", Dark: "235"}

	return t.applyStyles()
}

// ThemeDracula returns a Dracula-inspired theme
func ThemeDracula() *Theme {
	t := &Theme{Name: "dracula"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#bd93f9", Dark: "#bd93f9"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#8be9fd", Dark: "#8be9fd"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#ff79c6", Dark: "#ff79c6"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "#282a36", Dark: "#f8f8f2"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"}
	t.Error = lipgloss.AdaptiveColor{Light: "#ff5555", Dark: "#ff5555"}
	t.Success = lipgloss.AdaptiveColor{Light: "#50fa7b", Dark: "#50fa7b"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#f1fa8c", Dark: "#f1fa8c"}

	t.Border = lipgloss.AdaptiveColor{Light: "61", Dark: "61"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "#44475a", Dark: "#44475a"}
	t.Background = lipgloss.AdaptiveColor{Light: "#f8f8f2", Dark: "#282a36"}

	return t.applyStyles()
}

// ThemeCatppuccin returns a Catppuccin-inspired theme (Mocha variant)
func ThemeCatppuccin() *Theme {
	t := &Theme{Name: "catppuccin"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#8839ef", Dark: "#cba6f7"}   // Mauve
	t.Secondary = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#89dceb"} // Sky
	t.Accent = lipgloss.AdaptiveColor{Light: "#ea76cb", Dark: "#f5c2e7"}    // Pink
	t.Foreground = lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#7f849c"}
	t.Error = lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"}
	t.Success = lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"}

	t.Border = lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#45475a"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#7f849c"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "#ccd0da", Dark: "#313244"}
	t.Background = lipgloss.AdaptiveColor{Light: "#eff1f5", Dark: "#1e1e2e"}

	return t.applyStyles()
}

// ThemeNord returns a Nord-inspired theme
func ThemeNord() *Theme {
	t := &Theme{Name: "nord"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"}   // Frost blue
	t.Secondary = lipgloss.AdaptiveColor{Light: "#81a1c1", Dark: "#81a1c1"} // Frost lighter blue
	t.Accent = lipgloss.AdaptiveColor{Light: "#b48ead", Dark: "#b48ead"}    // Aurora purple
	t.Foreground = lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#eceff4"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"}
	t.Error = lipgloss.AdaptiveColor{Light: "#bf616a", Dark: "#bf616a"}
	t.Success = lipgloss.AdaptiveColor{Light: "#a3be8c", Dark: "#a3be8c"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#ebcb8b", Dark: "#ebcb8b"}

	t.Border = lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#3b4252"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "#e5e9f0", Dark: "#434c5e"}
	t.Background = lipgloss.AdaptiveColor{Light: "#eceff4", Dark: "#2e3440"}

	return t.applyStyles()
}

// DefaultThemeName is used when no theme is configured
const DefaultThemeName = "charm"

// GetTheme returns a theme by name, defaulting to Charm
func GetTheme(name string) *Theme {
	switch name {
	case "dracula":
		return ThemeDracula()
	case "catppuccin":
		return ThemeCatppuccin()
	case "nord":
		return ThemeNord()
	default:
		return ThemeCharm()
	}
}

// AvailableThemes returns a list of available theme names
func AvailableThemes() []string {
	return []string{"charm", "dracula", "catppuccin", "nord"}
}
