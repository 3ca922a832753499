package ws_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"nine-mens-morris/internal/api/ws"
	"nine-mens-morris/internal/config"
	"nine-mens-morris/internal/game"
	"nine-mens-morris/internal/room"
	"nine-mens-morris/internal/store"
)

type message struct {
	Action string                 `json:"action"`
	Data   map[string]interface{} `json:"data"`
}

func readMessage(t *testing.T, conn *websocket.Conn) message {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func TestHubRelaysMoves(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Load()
	cfg.AutoBotMove = false
	mgr := room.NewManager(store.NewMemoryStore(), cfg, nil)
	hub := ws.NewHub(mgr)
	mgr.SetHub(hub)

	r := mgr.CreateRoom("alice", game.PlayerA)
	if _, err := mgr.Seat(r, "bob", false); err != nil {
		t.Fatal(err)
	}
	alice := r.Players[0].ID

	router := gin.New()
	router.GET("/ws", hub.HandleWS)
	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?room_code=" + r.Code
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	if msg := readMessage(t, conn); msg.Action != "state" || msg.Data["code"] != r.Code {
		t.Fatalf("first message = %+v", msg)
	}

	move := map[string]interface{}{
		"action": "human_move",
		"data":   map[string]interface{}{"player_id": alice, "x": 0, "y": 0},
	}
	if err := conn.WriteJSON(move); err != nil {
		t.Fatal(err)
	}
	msg := readMessage(t, conn)
	if msg.Action != "move" || msg.Data["result"] != "FINISHED_TURN" || msg.Data["next_turn"] != "GREEN" {
		t.Fatalf("move broadcast = %+v", msg)
	}

	// same player again: rejected only to this client
	if err := conn.WriteJSON(move); err != nil {
		t.Fatal(err)
	}
	if msg := readMessage(t, conn); msg.Action != "error" {
		t.Fatalf("expected error, got %+v", msg)
	}
	if hub.Clients(r.Code) != 1 {
		t.Errorf("clients = %d, want 1", hub.Clients(r.Code))
	}
}

func TestHubRejectsUnknownRoom(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mgr := room.NewManager(store.NewMemoryStore(), config.Load(), nil)
	hub := ws.NewHub(mgr)
	router := gin.New()
	router.GET("/ws", hub.HandleWS)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ws?room_code=NOPE", nil))
	if w.Code != 404 {
		t.Errorf("status = %d, want 404", w.Code)
	}
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ws", nil))
	if w.Code != 400 {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
