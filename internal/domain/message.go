package domain

import (
	"time"

	"github.com/google/uuid"
)

// SystemUsername authors join/leave announcements.
const SystemUsername = "System"

// timestampLayout is ISO-8601 with millisecond precision, matching what
// browser clients produce and expect.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Message is one chat entry as it travels over the wire. Voice messages
// carry their audio as a base64 payload the server relays but never
// inspects.
type Message struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Message       string  `json:"message"`
	Timestamp     string  `json:"timestamp"`
	UserID        UserID  `json:"userId,omitempty"`
	IsSystem      bool    `json:"isSystem,omitempty"`
	IsVoice       bool    `json:"isVoice,omitempty"`
	VoiceData     string  `json:"voiceData,omitempty"`
	VoiceDuration float64 `json:"voiceDuration,omitempty"`
}

// NewMessage stamps a user-authored chat entry with a fresh id and the
// current server time.
func NewMessage(from User, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Username:  from.Username,
		Message:   text,
		Timestamp: Now(),
		UserID:    from.ID,
	}
}

// NewSystemMessage builds a server-authored announcement.
func NewSystemMessage(text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Username:  SystemUsername,
		Message:   text,
		Timestamp: Now(),
		IsSystem:  true,
	}
}

// Now returns the current UTC time in the wire timestamp format.
func Now() string {
	return time.Now().UTC().Format(timestampLayout)
}
