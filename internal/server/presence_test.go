package server

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresenceJoinIsIdempotent(t *testing.T) {
	p := NewPresenceTable()

	assert.Equal(t, 1, p.Join(1, "alice"), "expected count 1 after first join")
	assert.Equal(t, 1, p.Join(1, "alice"), "expected count unchanged after duplicate join")
	assert.Equal(t, 1, p.Count(1))
}

func TestPresenceSharedNameCollapses(t *testing.T) {
	p := NewPresenceTable()

	// two connections sharing a display name count once
	p.Join(1, "alice")
	count := p.Join(1, "alice")
	assert.Equal(t, 1, count, "expected shared name to collapse into one entry")

	assert.Equal(t, 2, p.Join(1, "bob"))
}

func TestPresenceLeaveRemovesEmptyEntry(t *testing.T) {
	p := NewPresenceTable()

	p.Join(1, "alice")
	p.Join(1, "bob")

	assert.Equal(t, 1, p.Leave(1, "alice"))
	assert.Equal(t, 0, p.Leave(1, "bob"), "expected count 0 after last member leaves")
	assert.Equal(t, 0, p.Count(1), "expected count 0 for removed entry")
	assert.Equal(t, 0, p.OccupiedRooms(), "expected no room entries to remain")
}

func TestPresenceLeaveUnknownRoom(t *testing.T) {
	p := NewPresenceTable()

	assert.Equal(t, 0, p.Leave(42, "alice"), "expected leave on unknown room to be a no-op")
	assert.Equal(t, 0, p.OccupiedRooms())
}

func TestPresenceNoLeakAfterJoinsAndLeaves(t *testing.T) {
	p := NewPresenceTable()

	const n = 25
	for i := 0; i < n; i++ {
		p.Join(7, fmt.Sprintf("user-%d", i))
	}
	assert.Equal(t, n, p.Count(7))

	// leave in an arbitrary order
	for i := n - 1; i >= 0; i-- {
		p.Leave(7, fmt.Sprintf("user-%d", i))
	}
	assert.Equal(t, 0, p.Count(7), "expected count 0 after all members left")
	assert.Equal(t, 0, p.OccupiedRooms(), "expected presence entry to be removed")
}

func TestPresenceConcurrentJoinLeave(t *testing.T) {
	p := NewPresenceTable()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("user-%d", i)
			roomId := i % 3
			p.Join(roomId, name)
			p.Leave(roomId, name)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, p.OccupiedRooms(), "expected all presence entries removed after churn")
}
