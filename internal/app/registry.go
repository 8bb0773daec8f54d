package app

import (
	"github.com/google/uuid"

	"github.com/yasiralifreelance/realtime-chat-app/internal/core"
	"github.com/yasiralifreelance/realtime-chat-app/internal/domain"
)

// registry owns every live Session, keyed by session id. It is not safe
// for concurrent use on its own; Presence serializes all access to it
// and to the room index under one lock.
type registry struct {
	sessions map[core.SessionID]*core.Session
}

func newRegistry() *registry {
	return &registry{sessions: make(map[core.SessionID]*core.Session)}
}

// register allocates a fresh id and stores an unjoined session for the
// given transport.
func (r *registry) register(conn core.SignalConnection) *core.Session {
	s := &core.Session{
		ID:   core.SessionID(uuid.NewString()),
		Conn: conn,
	}
	r.sessions[s.ID] = s
	return s
}

func (r *registry) get(sid core.SessionID) (*core.Session, bool) {
	s, ok := r.sessions[sid]
	return s, ok
}

func (r *registry) remove(sid core.SessionID) {
	delete(r.sessions, sid)
}

// find scans for a live session already holding the (username, room)
// pair. Linear, but rooms are human-sized.
func (r *registry) find(username string, room domain.RoomName) (core.SessionID, bool) {
	for sid, s := range r.sessions {
		if s.Username == username && s.Room == room {
			return sid, true
		}
	}
	return "", false
}
