package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/yasiralifreelance/realtime-chat-app/internal/app"
	"github.com/yasiralifreelance/realtime-chat-app/internal/core"
	"github.com/yasiralifreelance/realtime-chat-app/internal/domain"
)

// handleFrame dispatches an inbound frame on its type discriminator.
// Unknown or malformed frames are dropped; the connection stays open
// and nothing is echoed back.
func (ctl *Controller) handleFrame(sid core.SessionID, data []byte) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad json")
		return
	}

	switch env.Type {
	case "join":
		ctl.handleJoin(sid, data)
	case "message":
		ctl.handleMessage(sid, data)
	case "voice_activity":
		ctl.handleVoiceActivity(sid, data)
	case "leave":
		ctl.handleLeave(sid)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown frame type")
	}
}

func (ctl *Controller) handleJoin(sid core.SessionID, data []byte) {
	type joinPayload struct {
		Type     string `json:"type"`
		Username string `json:"username" validate:"required"`
		Room     string `json:"room" validate:"required"`
	}
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad join payload")
		return
	}
	if err := ctl.validate.Struct(p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("join payload missing fields")
		return
	}
	ctl.Presence.Join(sid, p.Username, domain.RoomName(p.Room))
}

func (ctl *Controller) handleMessage(sid core.SessionID, data []byte) {
	type messagePayload struct {
		Type          string  `json:"type"`
		Message       string  `json:"message" validate:"required"`
		IsVoice       bool    `json:"isVoice"`
		VoiceData     string  `json:"voiceData"`
		VoiceDuration float64 `json:"voiceDuration"`
	}
	var p messagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad message payload")
		return
	}
	if err := ctl.validate.Struct(p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("message payload missing fields")
		return
	}
	ctl.Presence.ChatMessage(sid, app.ChatInput{
		Text:          p.Message,
		IsVoice:       p.IsVoice,
		VoiceData:     p.VoiceData,
		VoiceDuration: p.VoiceDuration,
	})
}

func (ctl *Controller) handleVoiceActivity(sid core.SessionID, data []byte) {
	type voicePayload struct {
		Type     string `json:"type"`
		IsActive *bool  `json:"isActive" validate:"required"`
	}
	var p voicePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad voice_activity payload")
		return
	}
	if err := ctl.validate.Struct(p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("voice_activity payload missing fields")
		return
	}
	ctl.Presence.VoiceActivity(sid, *p.IsActive)
}

func (ctl *Controller) handleLeave(sid core.SessionID) {
	log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("leave")
	ctl.Presence.Leave(sid)
}
