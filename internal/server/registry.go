package server

import (
	"sync"
)

// connState is the registry's record for one live connection. A zero roomId
// means the connection is not in any room.
type connState struct {
	name   string
	roomId int
}

// Registry tracks every live connection along with its display name and
// current room. It performs no broadcasting; disconnect cleanup learns what
// to remove from Unregister's return values.
type Registry struct {
	mu    sync.Mutex
	conns map[*Client]*connState
}

func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[*Client]*connState),
	}
}

func (r *Registry) Register(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conns[c]; !ok {
		r.conns[c] = &connState{}
	}
}

func (r *Registry) SetName(c *Client, name string) {
	if name == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if state, ok := r.conns[c]; ok {
		state.name = name
	}
}

// SetRoom updates the connection's current room pointer. A roomId of zero
// clears it.
func (r *Registry) SetRoom(c *Client, roomId int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if state, ok := r.conns[c]; ok {
		state.roomId = roomId
	}
}

// State returns the connection's display name and current room id.
func (r *Registry) State(c *Client) (string, int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.conns[c]
	if !ok {
		return "", 0, false
	}
	return state.name, state.roomId, true
}

// Unregister removes the connection and returns its last known name and
// room id. Safe to call for an already removed connection.
func (r *Registry) Unregister(c *Client) (string, int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.conns[c]
	if !ok {
		return "", 0, false
	}

	delete(r.conns, c)
	return state.name, state.roomId, true
}

// InRoom returns a snapshot of the connections currently in roomId.
func (r *Registry) InRoom(roomId int) []*Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	var clients []*Client
	for c, state := range r.conns {
		if state.roomId == roomId {
			clients = append(clients, c)
		}
	}
	return clients
}

// All returns a snapshot of every registered connection.
func (r *Registry) All() []*Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients := make([]*Client, 0, len(r.conns))
	for c := range r.conns {
		clients = append(clients, c)
	}
	return clients
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.conns)
}
