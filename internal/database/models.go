package database

import "time"

type Room struct {
	Id         int
	ExternalId string
	Name       string
	CreatedAt  time.Time
}

type Message struct {
	Id        int
	Content   string
	Username  string
	RoomId    int
	CreatedAt time.Time
}

type CreateRoomParams struct {
	Name       string `json:"name"`
	ExternalId string `json:"external_id"`
}

type CreateMessageParams struct {
	Content  string
	Username string
	RoomId   int
}
