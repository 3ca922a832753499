package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"nine-mens-morris/internal/api/ws"
	"nine-mens-morris/internal/config"
	"nine-mens-morris/internal/room"
	"nine-mens-morris/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *room.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Load()
	cfg.AutoBotMove = false
	cfg.Search.TimeBudget = 100 * time.Millisecond
	cfg.Search.MaxPlies = 1
	rm := room.NewManager(store.NewMemoryStore(), cfg, nil)
	hub := ws.NewHub(rm)
	rm.SetHub(hub)
	return SetupRouter(rm, hub, cfg), rm
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	out := map[string]interface{}{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("%s %s: invalid json %q", method, path, w.Body.String())
		}
	}
	return w.Code, out
}

func createGame(t *testing.T, r *gin.Engine) (code, player string) {
	t.Helper()
	status, body := do(t, r, "POST", "/create-room", gin.H{"player_name": "alice"})
	if status != http.StatusOK {
		t.Fatalf("create-room = %d %v", status, body)
	}
	code = body["room_code"].(string)
	player = body["player_id"].(string)
	if status, body := do(t, r, "POST", "/play", gin.H{"room_code": code}); status != http.StatusOK {
		t.Fatalf("play = %d %v", status, body)
	}
	return code, player
}

func TestCreateAndPlay(t *testing.T) {
	r, _ := newTestRouter(t)
	code, _ := createGame(t, r)

	status, body := do(t, r, "GET", "/room?room_code="+code, nil)
	if status != http.StatusOK || body["status"] != "playing" {
		t.Fatalf("room = %d %v", status, body)
	}
	if players := body["players"].([]interface{}); len(players) != 2 {
		t.Errorf("players = %v", players)
	}

	if status, _ := do(t, r, "POST", "/create-room", gin.H{"color": "BLUE"}); status != http.StatusBadRequest {
		t.Errorf("bad color = %d", status)
	}
	if status, _ := do(t, r, "GET", "/room?room_code=NOPE", nil); status != http.StatusNotFound {
		t.Errorf("unknown room = %d", status)
	}
}

func TestMoveHandler(t *testing.T) {
	r, _ := newTestRouter(t)
	code, player := createGame(t, r)

	status, body := do(t, r, "POST", "/move", gin.H{"room_code": code, "player_id": player, "x": 0, "y": 0})
	if status != http.StatusOK || body["result"] != "FINISHED_TURN" {
		t.Fatalf("move = %d %v", status, body)
	}

	status, _ = do(t, r, "POST", "/move", gin.H{"room_code": code, "player_id": player, "x": 3, "y": 0})
	if status != http.StatusConflict {
		t.Errorf("out of turn = %d, want 409", status)
	}
	status, _ = do(t, r, "POST", "/move", gin.H{"room_code": code, "player_id": player})
	if status != http.StatusBadRequest {
		t.Errorf("missing coordinates = %d, want 400", status)
	}
	status, _ = do(t, r, "POST", "/move", gin.H{"room_code": code, "player_id": "ghost", "x": 0, "y": 3})
	if status != http.StatusNotFound {
		t.Errorf("unknown player = %d, want 404", status)
	}
}

func TestMoveBotHandler(t *testing.T) {
	r, rm := newTestRouter(t)
	code, player := createGame(t, r)
	rx, _ := rm.Get(code)
	bot := rm.View(rx).Players[1].ID

	if status, _ := do(t, r, "POST", "/move-bot", gin.H{"room_code": code, "bot_id": bot}); status != http.StatusConflict {
		t.Errorf("bot out of turn = %d, want 409", status)
	}
	do(t, r, "POST", "/move", gin.H{"room_code": code, "player_id": player, "x": 0, "y": 0})
	status, body := do(t, r, "POST", "/move-bot", gin.H{"room_code": code, "bot_id": bot})
	if status != http.StatusOK {
		t.Fatalf("move-bot = %d %v", status, body)
	}
	if moves := body["moves"].([]interface{}); len(moves) != 1 {
		t.Errorf("moves = %v", moves)
	}

	status, body = do(t, r, "GET", "/score?room_code="+code, nil)
	if status != http.StatusOK || len(body["score"].([]interface{})) != 2 {
		t.Errorf("score = %d %v", status, body)
	}
}

func TestPossibleMovesHandler(t *testing.T) {
	r, _ := newTestRouter(t)
	code, _ := createGame(t, r)
	status, body := do(t, r, "GET", "/possible-moves?room_code="+code, nil)
	if status != http.StatusOK {
		t.Fatalf("possible-moves = %d", status)
	}
	if allowed := body["allowed_moves"].([]interface{}); len(allowed) != 24 {
		t.Errorf("allowed = %d, want 24", len(allowed))
	}
	if body["move_type"] != "NORMAL" {
		t.Errorf("move_type = %v", body["move_type"])
	}
}

func TestRoomSearchConfig(t *testing.T) {
	r, _ := newTestRouter(t)
	code, _ := createGame(t, r)

	status, body := do(t, r, "POST", "/config/search/room", gin.H{
		"room_code":  code,
		"color":      "GREEN",
		"algorithm":  "minimax",
		"heuristics": "naive",
	})
	if status != http.StatusOK {
		t.Fatalf("update = %d %v", status, body)
	}
	status, body = do(t, r, "GET", "/config/search/room?room_code="+code, nil)
	if status != http.StatusOK {
		t.Fatalf("get = %d", status)
	}
	green := body["green"].(map[string]interface{})
	if green["algorithm"] != "minimax" || body["is_customized"] != true {
		t.Errorf("room config = %v", body)
	}

	status, _ = do(t, r, "POST", "/config/search/room", gin.H{"room_code": code, "color": "GREEN", "algorithm": "mcts"})
	if status != http.StatusBadRequest {
		t.Errorf("unknown algorithm = %d, want 400", status)
	}
	if status, _ := do(t, r, "GET", "/config/search", nil); status != http.StatusOK {
		t.Errorf("defaults = %d", status)
	}
}

func TestRestartHandler(t *testing.T) {
	r, _ := newTestRouter(t)
	code, player := createGame(t, r)
	do(t, r, "POST", "/move", gin.H{"room_code": code, "player_id": player, "x": 0, "y": 0})
	status, body := do(t, r, "POST", "/restart", gin.H{"room_code": code})
	if status != http.StatusOK {
		t.Fatalf("restart = %d %v", status, body)
	}
	if board := body["board"].(map[string]interface{}); board["moveCount"].(float64) != 0 {
		t.Errorf("moveCount = %v", board["moveCount"])
	}
}
