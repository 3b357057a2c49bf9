package server

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ndelorenzo/roomcast/internal/database"
	"github.com/ndelorenzo/roomcast/internal/stats"
)

// ChatServer owns the live session state: the connection registry, the room
// presence table, and broadcast fan-out. Inbound client events are handled
// by the session methods in session.go; the sessionLock serializes
// membership mutation together with the broadcast snapshot so counts always
// reflect post-mutation state.
type ChatServer struct {
	log      *log.Logger
	db       database.ChatRepository
	stats    stats.StatsProvider
	registry *Registry
	presence *PresenceTable

	sessionLock sync.Mutex
}

func NewChatServer(logger *log.Logger, db database.ChatRepository, su stats.StatsProvider) (*ChatServer, error) {
	if db == nil {
		return nil, fmt.Errorf("database repository is required")
	}

	cs := &ChatServer{
		log:      logger,
		db:       db,
		stats:    su,
		registry: NewRegistry(),
		presence: NewPresenceTable(),
	}

	su.RegisterMetric(stats.NumConnections)
	su.RegisterMetric(stats.NumOccupiedRooms)
	su.RegisterMetric(stats.NumMessagesPublished)
	su.RegisterMetric(stats.NumJoins)

	return cs, nil
}

// Register adds a new connection and associates the display name assigned
// by the naming collaborator. The connection starts in no room.
func (cs *ChatServer) Register(c *Client, name string) {
	cs.registry.Register(c)
	cs.registry.SetName(c, name)
	cs.stats.Incr(stats.NumConnections)
	cs.log.Printf("registered connection %s for %q", c.id, name)
}

// Shutdown stops every live connection and waits for their disconnect
// cleanup to drain the registry.
func (cs *ChatServer) Shutdown(ctx context.Context) error {
	cs.log.Println("shutting down chat server")
	for _, c := range cs.registry.All() {
		c.stopClient()
	}

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for cs.registry.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
