package types

import "time"

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
)

// StatusMsg asks the status bar to show a message.
type StatusMsg struct {
	Message string
	Type    MessageType
}

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}

// TranscriptEntry is one submitted message as shown in the app transcript.
type TranscriptEntry struct {
	Text        string
	Command     string
	Attachments []string
	SentAt      time.Time
}

// AppState holds shared application state
type AppState struct {
	Width  int
	Height int
}
