package app

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/yasiralifreelance/realtime-chat-app/internal/core"
	"github.com/yasiralifreelance/realtime-chat-app/internal/domain"
)

// broadcastLocked serializes the event once and hands the identical
// byte sequence to every member of the room except exclude. Delivery is
// fire-and-forget: a transport that is closed or saturated drops the
// frame and will be reaped by its own read side. Callers hold p.mu.
func (p *Presence) broadcastLocked(room domain.RoomName, event any, exclude core.SessionID) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("module", "app.fanout").Msg("marshal event")
		return
	}
	for _, sid := range p.rooms.members(room) {
		if sid == exclude {
			continue
		}
		s, ok := p.reg.get(sid)
		if !ok {
			continue
		}
		if err := s.Conn.TrySend(core.Frame(payload)); err != nil {
			log.Debug().Err(err).Str("module", "app.fanout").
				Str("sid", string(sid)).Str("room", string(room)).
				Msg("dropped frame")
		}
	}
}

// sendTo delivers one event to a single session.
func (p *Presence) sendTo(s *core.Session, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("module", "app.fanout").Msg("marshal event")
		return
	}
	if err := s.Conn.TrySend(core.Frame(payload)); err != nil {
		log.Debug().Err(err).Str("module", "app.fanout").
			Str("sid", string(s.ID)).Msg("dropped frame")
	}
}
