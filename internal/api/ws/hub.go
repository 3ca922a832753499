package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"nine-mens-morris/internal/shared"
)

// Hub fans room events out to the websocket clients watching each room and
// feeds their taps back into the room manager.
type Hub struct {
	mu          sync.Mutex
	rooms       map[string]map[*websocket.Conn]struct{}
	roomManager RoomManager
}

func NewHub(roomManager RoomManager) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*websocket.Conn]struct{}),
		roomManager: roomManager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // the web client is served from another origin
	},
}

type inbound struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type outbound struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	room, ok := h.roomManager.Get(roomCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("room", roomCode).Msg("websocket upgrade failed")
		return
	}
	log.Info().Str("room", roomCode).Str("remote", conn.RemoteAddr().String()).Msg("websocket connected")

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.remove(roomCode, conn)
		log.Info().Str("room", roomCode).Msg("websocket disconnected")
	}()

	h.send(conn, "state", h.roomManager.View(room))

	for {
		var msg inbound
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("room", roomCode).Msg("websocket read failed")
			}
			return
		}

		switch msg.Action {
		case "human_move":
			h.handleHumanMove(conn, room, msg.Data)
		case "bot_move":
			h.handleBotMove(conn, room, msg.Data)
		case "sync":
			h.send(conn, "state", h.roomManager.View(room))
		default:
			h.send(conn, "error", gin.H{"error": "unknown action " + msg.Action})
		}
	}
}

func (h *Hub) handleHumanMove(conn *websocket.Conn, room *shared.Room, data json.RawMessage) {
	var move shared.Move
	if err := json.Unmarshal(data, &move); err != nil {
		h.send(conn, "error", gin.H{"error": "invalid move data"})
		return
	}
	// the manager broadcasts the applied move itself
	if _, err := h.roomManager.ApplyMove(room, move.PlayerID, move.X, move.Y); err != nil {
		h.send(conn, "error", gin.H{"error": err.Error(), "x": move.X, "y": move.Y})
	}
}

func (h *Hub) handleBotMove(conn *websocket.Conn, room *shared.Room, data json.RawMessage) {
	var req struct {
		BotID string `json:"bot_id"`
	}
	if err := json.Unmarshal(data, &req); err != nil || req.BotID == "" {
		h.send(conn, "error", gin.H{"error": "missing bot_id"})
		return
	}
	// searching can take the whole time budget
	go func() {
		if _, err := h.roomManager.BotMove(room, req.BotID); err != nil {
			h.send(conn, "error", gin.H{"error": err.Error()})
		}
	}()
}

// Broadcast sends one event to every client of roomCode. Clients that fail
// a write are dropped.
func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}
	msg := outbound{Action: action, Data: data}
	for conn := range clients {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warn().Err(err).Str("room", roomCode).Str("action", action).Msg("websocket write failed")
			_ = conn.Close()
			delete(clients, conn)
		}
	}
	if len(clients) == 0 {
		delete(h.rooms, roomCode)
	}
}

// send writes to a single client under the hub lock, gorilla connections
// allow one writer at a time.
func (h *Hub) send(conn *websocket.Conn, action string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := conn.WriteJSON(outbound{Action: action, Data: data}); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("websocket write failed")
	}
}

func (h *Hub) remove(roomCode string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.rooms[roomCode]; ok {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(h.rooms, roomCode)
		}
	}
	_ = conn.Close()
}

// Clients counts the open connections of roomCode.
func (h *Hub) Clients(roomCode string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[roomCode])
}
