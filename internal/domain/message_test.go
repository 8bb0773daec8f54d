package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewMessageStampsIDAndTimestamp(t *testing.T) {
	from := User{ID: "u1", Username: "alice"}
	m := NewMessage(from, "hi")

	if m.ID == "" {
		t.Error("message id not set")
	}
	if m.Username != "alice" || m.UserID != "u1" || m.Message != "hi" {
		t.Errorf("unexpected message fields: %+v", m)
	}
	if m.IsSystem {
		t.Error("user message flagged as system")
	}
	if _, err := time.Parse("2006-01-02T15:04:05.000Z07:00", m.Timestamp); err != nil {
		t.Errorf("timestamp %q is not ISO-8601: %v", m.Timestamp, err)
	}
}

func TestNewSystemMessage(t *testing.T) {
	m := NewSystemMessage("alice joined the chat")
	if m.Username != SystemUsername || !m.IsSystem {
		t.Errorf("unexpected system message: %+v", m)
	}
	if m.UserID != "" {
		t.Error("system message carries a userId")
	}
}

func TestMessageOmitsEmptyVoiceFields(t *testing.T) {
	m := NewMessage(User{ID: "u1", Username: "alice"}, "text only")
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"voiceData", "voiceDuration", "isVoice", "isSystem"} {
		if strings.Contains(string(b), key) {
			t.Errorf("serialized text message contains %q: %s", key, b)
		}
	}
}

func TestMessageIDsAreUnique(t *testing.T) {
	from := User{ID: "u1", Username: "alice"}
	a := NewMessage(from, "one")
	b := NewMessage(from, "two")
	if a.ID == b.ID {
		t.Error("two messages share an id")
	}
}
