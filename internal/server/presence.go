package server

import (
	"sync"
)

// PresenceTable maps a room id to the set of distinct display names active
// in that room. Two connections sharing a name collapse into one entry, so
// counts reflect distinct users. A room has an entry iff its set is
// non-empty; empty sets are removed immediately.
type PresenceTable struct {
	mu    sync.Mutex
	rooms map[int]map[string]struct{}
}

func NewPresenceTable() *PresenceTable {
	return &PresenceTable{
		rooms: make(map[int]map[string]struct{}),
	}
}

// Join adds name to the room's set and returns the resulting distinct-member
// count. Adding an already present name does not change cardinality.
func (p *PresenceTable) Join(roomId int, name string) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	names, ok := p.rooms[roomId]
	if !ok {
		names = make(map[string]struct{})
		p.rooms[roomId] = names
	}
	names[name] = struct{}{}

	return len(names)
}

// Leave removes name from the room's set, deleting the room's entry when the
// set empties, and returns the resulting count.
func (p *PresenceTable) Leave(roomId int, name string) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	names, ok := p.rooms[roomId]
	if !ok {
		return 0
	}

	delete(names, name)
	if len(names) == 0 {
		delete(p.rooms, roomId)
		return 0
	}

	return len(names)
}

// Count returns the room's current distinct-member count, 0 when the room
// has no entry.
func (p *PresenceTable) Count(roomId int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.rooms[roomId])
}

// OccupiedRooms returns the number of rooms with at least one member.
func (p *PresenceTable) OccupiedRooms() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.rooms)
}
