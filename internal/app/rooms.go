package app

import (
	"github.com/yasiralifreelance/realtime-chat-app/internal/core"
	"github.com/yasiralifreelance/realtime-chat-app/internal/domain"
)

// roomIndex is the secondary index from room name to member session
// ids. It stores ids only; the registry owns the Session values. A room
// exists in the index iff its member set is non-empty. Guarded by the
// Presence lock, same as the registry.
type roomIndex struct {
	rooms map[domain.RoomName]map[core.SessionID]struct{}
}

func newRoomIndex() *roomIndex {
	return &roomIndex{rooms: make(map[domain.RoomName]map[core.SessionID]struct{})}
}

// add creates the room entry lazily and inserts the id.
func (x *roomIndex) add(room domain.RoomName, sid core.SessionID) {
	members, ok := x.rooms[room]
	if !ok {
		members = make(map[core.SessionID]struct{})
		x.rooms[room] = members
	}
	members[sid] = struct{}{}
}

// remove deletes the id from the room; the room entry itself is deleted
// once the last member is gone.
func (x *roomIndex) remove(room domain.RoomName, sid core.SessionID) {
	members, ok := x.rooms[room]
	if !ok {
		return
	}
	delete(members, sid)
	if len(members) == 0 {
		delete(x.rooms, room)
	}
}

func (x *roomIndex) members(room domain.RoomName) []core.SessionID {
	members := x.rooms[room]
	out := make([]core.SessionID, 0, len(members))
	for sid := range members {
		out = append(out, sid)
	}
	return out
}

func (x *roomIndex) list() []core.RoomInfo {
	out := make([]core.RoomInfo, 0, len(x.rooms))
	for name, members := range x.rooms {
		out = append(out, core.RoomInfo{Name: name, MemberCount: len(members)})
	}
	return out
}
