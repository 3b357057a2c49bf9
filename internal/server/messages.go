package server

import (
	"net/http"
	"time"
)

// clockLayout is the wall-clock format used on broadcast events. Persisted
// message timestamps keep the full date-time.
const clockLayout = "15:04:05"

type ClientMessage struct {
	Join    *JoinRequest    `json:"join,omitempty"`
	Leave   *LeaveRequest   `json:"leave,omitempty"`
	Publish *PublishRequest `json:"message,omitempty"`
}

type JoinRequest struct {
	RoomId int `json:"room_id"`
}

type LeaveRequest struct {
	RoomId int `json:"room_id"`
}

type PublishRequest struct {
	RoomId  int    `json:"room_id"`
	Content string `json:"message"`
}

type ServerMessage struct {
	Status    *Status      `json:"status,omitempty"`
	UserCount *UserCount   `json:"user_count,omitempty"`
	Message   *ChatMessage `json:"message,omitempty"`
	Response  *Response    `json:"response,omitempty"`
}

type Status struct {
	Msg       string `json:"msg"`
	Timestamp string `json:"timestamp"`
}

type UserCount struct {
	Count int `json:"count"`
}

type ChatMessage struct {
	Message   string `json:"message"`
	Username  string `json:"username"`
	Timestamp string `json:"timestamp"`
}

type Response struct {
	ResponseCode int    `json:"response_code"`
	Error        string `json:"error,omitempty"`
}

func StatusMessage(msg string, t time.Time) *ServerMessage {
	return &ServerMessage{
		Status: &Status{
			Msg:       msg,
			Timestamp: t.Format(clockLayout),
		},
	}
}

func UserCountMessage(count int) *ServerMessage {
	return &ServerMessage{
		UserCount: &UserCount{Count: count},
	}
}

func PublishedMessage(content, username string, t time.Time) *ServerMessage {
	return &ServerMessage{
		Message: &ChatMessage{
			Message:   content,
			Username:  username,
			Timestamp: t.Format(clockLayout),
		},
	}
}

func ErrInternalError() *ServerMessage {
	return &ServerMessage{
		Response: &Response{
			ResponseCode: http.StatusInternalServerError,
			Error:        "internal server error",
		},
	}
}

func ErrInvalidMessage() *ServerMessage {
	return &ServerMessage{
		Response: &Response{
			ResponseCode: http.StatusBadRequest,
			Error:        "invalid message format",
		},
	}
}

func Now() time.Time {
	return time.Now().UTC().Round(time.Millisecond)
}
