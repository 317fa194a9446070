package components

import "time"

// UI component constants
const (
	// MaxTranscriptEntries is the number of sent messages kept on screen.
	// Older ones are dropped from the top.
	MaxTranscriptEntries = 200

	// StatusBarDisplayDuration is how long status messages (success, error,
	// info) are displayed before automatically clearing.
	StatusBarDisplayDuration = 5 * time.Second

	// StatusBarNotifierID scopes the status bar clear messages.
	StatusBarNotifierID = "statusbar"

	// MinTranscriptHeight keeps the transcript visible on tiny terminals.
	MinTranscriptHeight = 3
)
