package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ndelorenzo/roomcast/internal/database"
	"github.com/ndelorenzo/roomcast/internal/server"
	"github.com/ndelorenzo/roomcast/internal/types"
	"github.com/teris-io/shortid"
)

// defaultRecentWindow bounds the message history returned for a room.
const defaultRecentWindow = 50

type SessionRequest struct {
	Username string `json:"username"`
}

type SessionResponse struct {
	Username string `json:"username"`
}

type CreateRoomRequest struct {
	Name string `json:"name"`
}

func (s *RoomcastApp) healthCheck(w http.ResponseWriter, _ *http.Request) {
	if err := s.db.Ping(); err != nil {
		s.log.Println("health check:", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Write([]byte("OK"))
}

func (s *RoomcastApp) writeJson(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("json encode: %v", err)
	}
}

// createSession assigns a display name to the browser session. This is the
// only identity the service knows; every later request carries it in the
// signed cookie.
func (s *RoomcastApp) createSession(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	token, err := s.createNameToken(username, defaultTokenExpiration)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	http.SetCookie(w, createNameCookie(token, defaultTokenExpiration))

	s.writeJson(w, http.StatusOK, SessionResponse{Username: username})
}

func (s *RoomcastApp) session(w http.ResponseWriter, r *http.Request) {
	username, ok := Username(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, SessionResponse{Username: username})
}

func (s *RoomcastApp) logout(w http.ResponseWriter, _ *http.Request) {
	// instruct browser to delete cookie by overwriting it with an expired token
	http.SetCookie(w, createNameCookie("", time.Duration(time.Unix(0, 0).Unix())))
	w.WriteHeader(http.StatusNoContent)
}

func (s *RoomcastApp) createRoom(w http.ResponseWriter, r *http.Request) {
	var createRoomReq CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&createRoomReq); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	name := strings.TrimSpace(createRoomReq.Name)
	if name == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	sid, err := shortid.Generate()
	if err != nil {
		s.log.Print("generate short id:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	newRoom, err := s.db.CreateRoom(database.CreateRoomParams{
		Name:       name,
		ExternalId: sid,
	})
	if err != nil {
		// room names are unique; a duplicate surfaces here
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusCreated, types.Room{
		Id:         newRoom.Id,
		ExternalId: newRoom.ExternalId,
		Name:       newRoom.Name,
		CreatedAt:  newRoom.CreatedAt,
	})
}

func (s *RoomcastApp) listRooms(w http.ResponseWriter, r *http.Request) {
	dbRooms, err := s.db.ListRooms()
	if err != nil {
		s.log.Println("list rooms:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	rooms := make([]types.Room, 0, len(dbRooms))
	for _, dbRoom := range dbRooms {
		rooms = append(rooms, types.Room{
			Id:         dbRoom.Id,
			ExternalId: dbRoom.ExternalId,
			Name:       dbRoom.Name,
			CreatedAt:  dbRoom.CreatedAt,
		})
	}

	s.writeJson(w, http.StatusOK, rooms)
}

func (s *RoomcastApp) getMessages(w http.ResponseWriter, r *http.Request) {
	roomIdStr := r.URL.Query().Get("room_id")
	if roomIdStr == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	roomId, err := strconv.Atoi(roomIdStr)
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	room, err := s.db.GetRoomById(roomId)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	limit := defaultRecentWindow
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > defaultRecentWindow {
			errResp := NewBadRequestError()
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}
	}

	dbMessages, err := s.db.GetRecentMessages(room.Id, limit)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	messages := make([]types.Message, 0, len(dbMessages))
	for _, msg := range dbMessages {
		messages = append(messages, types.Message{
			Id:        msg.Id,
			Content:   msg.Content,
			Username:  msg.Username,
			RoomId:    msg.RoomId,
			Timestamp: msg.CreatedAt,
		})
	}

	s.writeJson(w, http.StatusOK, messages)
}

func (s *RoomcastApp) serveWs(w http.ResponseWriter, r *http.Request) {
	username, ok := Username(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}

			return slices.Contains(s.allowedOrigins, origin)
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Println("error upgrading connection:", err)
		return
	}

	client := server.NewClient(conn, s.cs, s.log)
	s.cs.Register(client, username)

	go client.Write()
	go client.Read()
}
