package server

// broadcastLocked delivers msgs, in order, to every connection currently in
// roomId. Callers must hold the session lock so the membership snapshot is
// consistent with the mutation that produced msgs. Delivery uses each
// client's buffered send queue and never blocks; a connection that is
// tearing down simply misses the event.
func (cs *ChatServer) broadcastLocked(roomId int, msgs ...*ServerMessage) {
	clients := cs.registry.InRoom(roomId)
	for _, msg := range msgs {
		for _, c := range clients {
			c.queueMessage(msg)
		}
	}
}
