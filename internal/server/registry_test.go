package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryRegisterAndState(t *testing.T) {
	r := NewRegistry()
	c := &Client{id: "c1"}

	r.Register(c)
	name, roomId, ok := r.State(c)
	assert.True(t, ok, "expected registered connection to have a state")
	assert.Empty(t, name, "expected new connection to have no name")
	assert.Zero(t, roomId, "expected new connection to have no room")

	r.SetName(c, "alice")
	r.SetRoom(c, 3)

	name, roomId, ok = r.State(c)
	assert.True(t, ok)
	assert.Equal(t, "alice", name)
	assert.Equal(t, 3, roomId)
}

func TestRegistrySetNameIgnoresEmpty(t *testing.T) {
	r := NewRegistry()
	c := &Client{id: "c1"}

	r.Register(c)
	r.SetName(c, "alice")
	r.SetName(c, "")

	name, _, _ := r.State(c)
	assert.Equal(t, "alice", name, "expected empty name to be ignored")
}

func TestRegistryUnregisterReturnsLastKnownState(t *testing.T) {
	r := NewRegistry()
	c := &Client{id: "c1"}

	r.Register(c)
	r.SetName(c, "alice")
	r.SetRoom(c, 2)

	name, roomId, ok := r.Unregister(c)
	assert.True(t, ok, "expected first unregister to report the connection")
	assert.Equal(t, "alice", name)
	assert.Equal(t, 2, roomId)

	_, _, ok = r.Unregister(c)
	assert.False(t, ok, "expected second unregister to be a no-op")
	assert.Equal(t, 0, r.Len())
}

func TestRegistryInRoom(t *testing.T) {
	r := NewRegistry()
	a := &Client{id: "a"}
	b := &Client{id: "b"}
	c := &Client{id: "c"}

	for _, cl := range []*Client{a, b, c} {
		r.Register(cl)
	}
	r.SetRoom(a, 1)
	r.SetRoom(b, 1)
	r.SetRoom(c, 2)

	inRoom := r.InRoom(1)
	assert.Len(t, inRoom, 2)
	assert.ElementsMatch(t, []*Client{a, b}, inRoom)

	r.SetRoom(b, 0)
	assert.Len(t, r.InRoom(1), 1, "expected cleared room pointer to drop the connection from the snapshot")

	assert.Len(t, r.All(), 3)
	assert.Equal(t, 3, r.Len())
}
