package types

import (
	"time"
)

type Room struct {
	Id         int       `json:"id"`
	ExternalId string    `json:"external_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

type Message struct {
	Id        int       `json:"id"`
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	RoomId    int       `json:"room_id"`
	Timestamp time.Time `json:"timestamp"`
}
