package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/yasiralifreelance/realtime-chat-app/internal/core"
	"github.com/yasiralifreelance/realtime-chat-app/internal/domain"
)

// Presence coordinates session lifecycle and room membership. A single
// mutex guards the registry and the room index together so that joins,
// leaves and broadcasts are serialized with respect to each other and
// the one-session-per-(username, room) invariant never observes a torn
// state. Transport writes under the lock are non-blocking TrySend
// calls, so a slow client cannot stall the lock.
type Presence struct {
	mu    sync.Mutex
	reg   *registry
	rooms *roomIndex
}

func NewPresence() *Presence {
	return &Presence{
		reg:   newRegistry(),
		rooms: newRoomIndex(),
	}
}

// ChatInput is an inbound chat payload. Voice fields pass through to
// the room untouched.
type ChatInput struct {
	Text          string
	IsVoice       bool
	VoiceData     string
	VoiceDuration float64
}

// Connect registers an unjoined session for a freshly opened transport
// and returns its id.
func (p *Presence) Connect(conn core.SignalConnection) core.SessionID {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.reg.register(conn)
	log.Info().Str("module", "app.presence").Str("sid", string(s.ID)).Msg("session connected")
	return s.ID
}

// Join admits the session to a room. If another live session already
// holds the same (username, room) pair it is evicted first, exactly as
// if that client had left; last writer wins. The joiner receives a
// user_list snapshot before the rest of the room hears about it, so its
// own list render never races its join events.
func (p *Presence) Join(sid core.SessionID, username string, room domain.RoomName) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.reg.get(sid)
	if !ok || s.Joined() {
		return
	}

	if prev, ok := p.reg.find(username, room); ok && prev != sid {
		log.Info().Str("module", "app.presence").
			Str("sid", string(prev)).Str("username", username).Str("room", string(room)).
			Msg("evicting stale session")
		p.leaveLocked(prev)
	}

	s.Username = username
	s.Room = room
	s.Speaking = false
	p.rooms.add(room, sid)

	p.sendTo(s, userListEvent{Type: "user_list", Users: p.roomUsersLocked(room)})
	p.broadcastLocked(room, userJoinedEvent{Type: "user_joined", User: s.User()}, sid)
	p.broadcastLocked(room, messageEvent{
		Type:    "message",
		Message: domain.NewSystemMessage(username + " joined the chat"),
	}, "")

	log.Info().Str("module", "app.presence").
		Str("sid", string(sid)).Str("username", username).Str("room", string(room)).
		Msg("joined room")
}

// Leave runs the leave transition for a joined session. Stale or
// unjoined ids are a no-op, which makes the explicit-leave/transport-
// close race idempotent.
func (p *Presence) Leave(sid core.SessionID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.leaveLocked(sid)
}

// Disconnect handles transport close: a joined session goes through the
// full leave transition, an unjoined one is simply dropped from the
// registry.
func (p *Presence) Disconnect(sid core.SessionID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.reg.get(sid); ok && !s.Joined() {
		p.reg.remove(sid)
		log.Info().Str("module", "app.presence").Str("sid", string(sid)).Msg("unjoined session disconnected")
		return
	}
	p.leaveLocked(sid)
}

// VoiceActivity updates the speaking flag and tells the rest of the
// room. The originator already has the state locally and is excluded.
func (p *Presence) VoiceActivity(sid core.SessionID, isActive bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.reg.get(sid)
	if !ok || !s.Joined() {
		return
	}
	s.Speaking = isActive
	p.broadcastLocked(s.Room, voiceActivityEvent{
		Type:     "voice_activity",
		UserID:   domain.UserID(sid),
		IsActive: isActive,
	}, sid)
}

// ChatMessage stamps the payload with a fresh id and timestamp and fans
// it out to the whole room, sender included, so every viewer sees the
// one canonical ordering.
func (p *Presence) ChatMessage(sid core.SessionID, in ChatInput) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.reg.get(sid)
	if !ok || !s.Joined() {
		return
	}
	msg := domain.NewMessage(s.User(), in.Text)
	msg.IsVoice = in.IsVoice
	msg.VoiceData = in.VoiceData
	msg.VoiceDuration = in.VoiceDuration
	p.broadcastLocked(s.Room, messageEvent{Type: "message", Message: msg}, "")
}

// Rooms lists the live rooms with member counts.
func (p *Presence) Rooms() []core.RoomInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rooms.list()
}

// leaveLocked removes the session from its room and the registry, then
// notifies the remaining members. Callers hold p.mu.
func (p *Presence) leaveLocked(sid core.SessionID) {
	s, ok := p.reg.get(sid)
	if !ok || !s.Joined() {
		return
	}
	room, username := s.Room, s.Username
	p.rooms.remove(room, sid)
	p.reg.remove(sid)

	p.broadcastLocked(room, userLeftEvent{Type: "user_left", UserID: domain.UserID(sid)}, "")
	p.broadcastLocked(room, messageEvent{
		Type:    "message",
		Message: domain.NewSystemMessage(username + " left the chat"),
	}, "")

	log.Info().Str("module", "app.presence").
		Str("sid", string(sid)).Str("username", username).Str("room", string(room)).
		Msg("left room")
}

// roomUsersLocked snapshots the current members of a room. Callers hold
// p.mu.
func (p *Presence) roomUsersLocked(room domain.RoomName) []domain.User {
	ids := p.rooms.members(room)
	users := make([]domain.User, 0, len(ids))
	for _, sid := range ids {
		if s, ok := p.reg.get(sid); ok {
			users = append(users, s.User())
		}
	}
	return users
}
