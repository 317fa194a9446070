// Package messages defines message handling conventions for quill: errors,
// success and info messages.
//
// # Message Handling Patterns by Layer
//
// ## Loading Layer (internal/config, internal/commands)
//
// Return standard Go errors wrapped with context. These packages never depend
// on UI concerns.
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return nil, messages.WrapError(err, "failed to read catalog %s", path)
//	}
//
// Sentinel errors (commands.ErrInvalidSuggestion) are wrapped with %w so
// callers can match them with errors.Is.
//
// ## Composer Layer (internal/components/composer)
//
// The composer has no error states. Out-of-range indices, empty submits,
// unknown keys and stale timer clears are silent no-ops, logged at debug
// level at most.
//
// ## UI Layer (internal/app)
//
// Outcomes of user actions that can fail (copying to the clipboard) are
// reported as a tea.Cmd producing a types.StatusMsg:
//
//	if err := clipboard.WriteAll(text); err != nil {
//	    return messages.ErrorCmd("Copy failed: %v", err)
//	}
//	return messages.SuccessCmd("Copied last message")
//
// The status bar shows the message and clears it after
// components.StatusBarDisplayDuration, generation-tagged so a newer message
// is never cleared by an older timer.
//
// # Error Message Guidelines
//
//  1. Be specific: "Copy failed: clipboard unavailable" not "Error"
//  2. Start with the operation that failed
//  3. Keep UI messages short; details go to the log file
package messages
