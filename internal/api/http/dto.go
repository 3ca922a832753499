package http

import "nine-mens-morris/internal/config"

// CreateRoomRequest represents the payload for /create-room.
type CreateRoomRequest struct {
	PlayerName string `json:"player_name"`
	Color      string `json:"color"` // RED (default) or GREEN
}

// PlayRequest represents the payload for /play. NumberBot 0 seats a second
// local player instead of the computer.
type PlayRequest struct {
	RoomCode   string `json:"room_code" binding:"required"`
	NumberBot  *int   `json:"number_bot"`
	PlayerName string `json:"player_name"`
}

// MoveRequest is one tap of a human player. Coordinates are pointers so
// that zero passes the required check.
type MoveRequest struct {
	RoomCode string `json:"room_code" binding:"required"`
	PlayerID string `json:"player_id" binding:"required"`
	X        *int   `json:"x" binding:"required"`
	Y        *int   `json:"y" binding:"required"`
}

// MoveBotRequest asks the computer player to take its turn now.
type MoveBotRequest struct {
	RoomCode string `json:"room_code" binding:"required"`
	BotID    string `json:"bot_id" binding:"required"`
}

type RoomRequest struct {
	RoomCode string `json:"room_code" binding:"required"`
}

// UpdateRoomSearchRequest overrides the engine of one color in a room.
// Zero fields keep the room defaults.
type UpdateRoomSearchRequest struct {
	RoomCode     string          `json:"room_code" binding:"required"`
	Color        string          `json:"color" binding:"required"`
	Algorithm    string          `json:"algorithm"`
	Heuristics   string          `json:"heuristics"`
	TimeBudgetMs int             `json:"time_budget_ms"`
	MaxPlies     int             `json:"max_plies"`
	MaxNodes     int             `json:"max_nodes"`
	TieBreak     float64         `json:"tie_break"`
	Weights      *config.Weights `json:"weights"`
}
