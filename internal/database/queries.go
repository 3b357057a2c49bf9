package database

import (
	"time"
)

func (db *PgChatRepository) CreateRoom(params CreateRoomParams) (Room, error) {
	res := db.conn.QueryRow(
		"INSERT INTO rooms (external_id, name, created_at) "+
			"VALUES ($1, $2, $3) RETURNING id, external_id, name, created_at",
		params.ExternalId,
		params.Name,
		time.Now().UTC(),
	)

	var room Room
	err := res.Scan(
		&room.Id,
		&room.ExternalId,
		&room.Name,
		&room.CreatedAt,
	)

	return room, err
}

func (db *PgChatRepository) GetRoomById(id int) (Room, error) {
	row := db.conn.QueryRow(
		"SELECT id, external_id, name, created_at FROM rooms "+
			"WHERE id = $1 LIMIT 1",
		id,
	)

	var room Room
	err := row.Scan(
		&room.Id,
		&room.ExternalId,
		&room.Name,
		&room.CreatedAt,
	)

	return room, err
}

func (db *PgChatRepository) GetRoomByName(name string) (Room, error) {
	row := db.conn.QueryRow(
		"SELECT id, external_id, name, created_at FROM rooms "+
			"WHERE name = $1 LIMIT 1",
		name,
	)

	var room Room
	err := row.Scan(
		&room.Id,
		&room.ExternalId,
		&room.Name,
		&room.CreatedAt,
	)

	return room, err
}

func (db *PgChatRepository) ListRooms() ([]Room, error) {
	rows, err := db.conn.Query(
		"SELECT id, external_id, name, created_at FROM rooms " +
			"ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []Room
	for rows.Next() {
		var room Room
		if err := rows.Scan(
			&room.Id,
			&room.ExternalId,
			&room.Name,
			&room.CreatedAt,
		); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (db *PgChatRepository) CreateMessage(params CreateMessageParams) (Message, error) {
	res := db.conn.QueryRow(
		"INSERT INTO messages (content, username, room_id, created_at) "+
			"VALUES ($1, $2, $3, $4) RETURNING id, content, username, room_id, created_at",
		params.Content,
		params.Username,
		params.RoomId,
		time.Now().UTC(),
	)

	var msg Message
	err := res.Scan(
		&msg.Id,
		&msg.Content,
		&msg.Username,
		&msg.RoomId,
		&msg.CreatedAt,
	)

	return msg, err
}

// GetRecentMessages returns up to limit of the newest messages in a room,
// oldest first.
func (db *PgChatRepository) GetRecentMessages(roomId, limit int) ([]Message, error) {
	rows, err := db.conn.Query(
		"SELECT id, content, username, room_id, created_at FROM ("+
			"SELECT id, content, username, room_id, created_at FROM messages "+
			"WHERE room_id = $1 ORDER BY created_at DESC LIMIT $2"+
			") recent ORDER BY created_at ASC",
		roomId,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var msg Message
		if err := rows.Scan(
			&msg.Id,
			&msg.Content,
			&msg.Username,
			&msg.RoomId,
			&msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}
