package composer

import "time"

const (
	// RecentCommandDuration is how long the label of a committed suggestion
	// stays visible.
	RecentCommandDuration = 2 * time.Second

	// TypingPulseDuration is the length of the feedback pulse after a send.
	TypingPulseDuration = 300 * time.Millisecond

	// MaxPaletteItems is the maximum number of palette rows shown at once.
	MaxPaletteItems = 8

	// MaxHistory is the number of sent messages kept for recall.
	MaxHistory = 100

	// DefaultWidth is used until the host reports a window size.
	DefaultWidth = 80
)
