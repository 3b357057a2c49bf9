package server

import (
	"strings"

	"github.com/ndelorenzo/roomcast/internal/database"
	"github.com/ndelorenzo/roomcast/internal/stats"
)

// Session event handlers. Each connection moves through three states:
// no name and no room, named but roomless, and named in a room. Stale or
// invalid client events (unknown room, missing name, leave for a room the
// connection is not in) are dropped without surfacing an error to anyone;
// real-time clients are expected to send duplicates and stragglers.

// HandleJoin places the connection in roomId, leaving its previous room
// first when switching. The target room must exist in the store.
func (cs *ChatServer) HandleJoin(c *Client, roomId int) {
	name, _, ok := cs.registry.State(c)
	if !ok || name == "" {
		cs.log.Printf("join: connection %s has no name, dropping", c.id)
		return
	}

	// Room lookup happens before taking the session lock so a slow or
	// failing store never stalls other rooms' events.
	room, err := cs.db.GetRoomById(roomId)
	if err != nil {
		cs.log.Printf("join: room %d not found, dropping: %v", roomId, err)
		return
	}

	cs.sessionLock.Lock()
	defer cs.sessionLock.Unlock()

	name, current, ok := cs.registry.State(c)
	if !ok || name == "" {
		// Disconnected while we were looking up the room.
		return
	}

	if current != 0 && current != room.Id {
		cs.leaveRoomLocked(c, name, current, name+" has left the room")
	}

	cs.registry.SetRoom(c, room.Id)
	wasEmpty := cs.presence.Count(room.Id) == 0
	count := cs.presence.Join(room.Id, name)
	if wasEmpty {
		cs.stats.Incr(stats.NumOccupiedRooms)
	}
	cs.stats.Incr(stats.NumJoins)

	cs.broadcastLocked(room.Id,
		StatusMessage(name+" has joined the room", Now()),
		UserCountMessage(count),
	)
}

// HandleLeave removes the connection from roomId. Only valid when the
// connection is currently in that room.
func (cs *ChatServer) HandleLeave(c *Client, roomId int) {
	cs.sessionLock.Lock()
	defer cs.sessionLock.Unlock()

	name, current, ok := cs.registry.State(c)
	if !ok || name == "" || current != roomId {
		cs.log.Printf("leave: connection %s not in room %d, dropping", c.id, roomId)
		return
	}

	cs.leaveRoomLocked(c, name, roomId, name+" has left the room")
}

// leaveRoomLocked performs the shared leave bookkeeping: presence removal,
// clearing the registry's room pointer, and notifying the room. The
// departing connection's pointer is cleared before the broadcast snapshot,
// so it never receives its own leave events. Callers hold the session lock.
func (cs *ChatServer) leaveRoomLocked(c *Client, name string, roomId int, statusMsg string) {
	cs.registry.SetRoom(c, 0)

	count := cs.presence.Leave(roomId, name)
	if count < 0 {
		// Unreachable given serialized access; drop the event rather
		// than broadcast a bogus count.
		cs.log.Printf("leave: negative presence count for room %d", roomId)
		return
	}

	if count == 0 {
		cs.stats.Decr(stats.NumOccupiedRooms)
	}

	cs.broadcastLocked(roomId,
		StatusMessage(statusMsg, Now()),
		UserCountMessage(count),
	)
}

// HandleMessage persists a chat message and broadcasts it to the room the
// connection is in. Whitespace-only content is dropped. A store failure is
// reported to the sender alone; presence is unaffected either way.
func (cs *ChatServer) HandleMessage(c *Client, roomId int, content string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}

	name, current, ok := cs.registry.State(c)
	if !ok || name == "" || current != roomId {
		cs.log.Printf("message: connection %s not in room %d, dropping", c.id, roomId)
		return
	}

	// Persist without holding the session lock; the store may stall.
	msg, err := cs.db.CreateMessage(database.CreateMessageParams{
		Content:  content,
		Username: name,
		RoomId:   roomId,
	})
	if err != nil {
		cs.log.Printf("message: create message: %v", err)
		c.queueMessage(ErrInternalError())
		return
	}
	cs.stats.Incr(stats.NumMessagesPublished)

	cs.sessionLock.Lock()
	defer cs.sessionLock.Unlock()

	cs.broadcastLocked(roomId, PublishedMessage(msg.Content, name, msg.CreatedAt))
}

// HandleDisconnect tears down the connection. If it was in a room and other
// members remain, they are told; when the disconnecting user was the last
// member the presence entry is removed silently. Safe to call more than
// once.
func (cs *ChatServer) HandleDisconnect(c *Client) {
	cs.sessionLock.Lock()

	name, roomId, ok := cs.registry.Unregister(c)
	if ok && roomId != 0 && name != "" {
		count := cs.presence.Leave(roomId, name)
		if count > 0 {
			cs.broadcastLocked(roomId,
				StatusMessage(name+" has disconnected", Now()),
				UserCountMessage(count),
			)
		} else {
			cs.stats.Decr(stats.NumOccupiedRooms)
		}
	}

	cs.sessionLock.Unlock()

	if ok {
		cs.stats.Decr(stats.NumConnections)
		cs.log.Printf("connection %s disconnected", c.id)
	}
}
