package database

type ChatRepository interface {
	Ping() error
	CreateRoom(params CreateRoomParams) (Room, error)
	GetRoomById(id int) (Room, error)
	GetRoomByName(name string) (Room, error)
	ListRooms() ([]Room, error)
	CreateMessage(params CreateMessageParams) (Message, error)
	GetRecentMessages(roomId, limit int) ([]Message, error)
}
