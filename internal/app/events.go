package app

import "github.com/yasiralifreelance/realtime-chat-app/internal/domain"

// Outbound wire events. Every frame the server emits carries a type
// discriminator the client routes on; the set below is closed.

type userListEvent struct {
	Type  string        `json:"type"`
	Users []domain.User `json:"users"`
}

type userJoinedEvent struct {
	Type string      `json:"type"`
	User domain.User `json:"user"`
}

type userLeftEvent struct {
	Type   string        `json:"type"`
	UserID domain.UserID `json:"userId"`
}

type voiceActivityEvent struct {
	Type     string        `json:"type"`
	UserID   domain.UserID `json:"userId"`
	IsActive bool          `json:"isActive"`
}

type messageEvent struct {
	Type string `json:"type"`
	domain.Message
}
