package core

import "github.com/yasiralifreelance/realtime-chat-app/internal/domain"

// Frame is one serialized wire message.
type Frame []byte

type SessionID string

// SignalConnection abstracts the duplex transport of one client.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// Session is the registry-owned state of one connected client. A zero
// Room means the client has connected but not joined anywhere yet.
type Session struct {
	ID       SessionID
	Username string
	Room     domain.RoomName
	Speaking bool
	Conn     SignalConnection
}

// Joined reports whether the session currently belongs to a room.
func (s *Session) Joined() bool { return s.Room != "" }

// User is the room-facing snapshot of the session.
func (s *Session) User() domain.User {
	return domain.User{
		ID:       domain.UserID(s.ID),
		Username: s.Username,
		IsActive: s.Speaking,
	}
}

// RoomInfo is a read-only view for APIs (no transport fields).
type RoomInfo struct {
	Name        domain.RoomName `json:"name"`
	MemberCount int             `json:"client_count"`
}
