package shared

import (
	"sync"
	"time"

	"nine-mens-morris/internal/config"
	"nine-mens-morris/internal/game"
)

const (
	StatusLobby    = "lobby"
	StatusPlaying  = "playing"
	StatusFinished = "finished"
)

// Room is one game session. Fields are guarded by the room lock; read them
// through room.Manager.View from outside the room package.
type Room struct {
	mu sync.Mutex

	ID         string
	Code       string
	State      *game.GameState
	Players    []Player
	Status     string
	CreatedAt  time.Time
	StartedAt  time.Time
	Endgame    *game.EndgameData
	RoomConfig *config.RoomConfig

	// Thinking is set while a computer search for this room runs.
	Thinking bool
}

func (r *Room) Lock()   { r.mu.Lock() }
func (r *Room) Unlock() { r.mu.Unlock() }

// PlayerByID returns the seated player with id, nil when absent.
func (r *Room) PlayerByID(id string) *Player {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i]
		}
	}
	return nil
}

func (r *Room) PlayerByColor(c game.Color) *Player {
	for i := range r.Players {
		if r.Players[i].Color == c {
			return &r.Players[i]
		}
	}
	return nil
}

type Player struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	IsBot bool       `json:"isBot"`
	Color game.Color `json:"color"`
}

// Move is one tap on the board by a seated player.
type Move struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	PlayerID string `json:"player_id"`
}

// RoomView is a consistent copy of a room, safe to serialize.
type RoomView struct {
	ID         string             `json:"id"`
	Code       string             `json:"code"`
	Status     string             `json:"status"`
	Players    []Player           `json:"players"`
	Board      game.Snapshot      `json:"board"`
	Moves      []game.MoveRecord  `json:"moves"`
	Thinking   bool               `json:"thinking"`
	Endgame    *game.EndgameData  `json:"endgame,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	RoomConfig *config.RoomConfig `json:"room_config,omitempty"`
}
