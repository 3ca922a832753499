package ws

import (
	"nine-mens-morris/internal/game"
	"nine-mens-morris/internal/shared"
)

type RoomManager interface {
	Get(roomCode string) (*shared.Room, bool)
	View(room *shared.Room) shared.RoomView
	ApplyMove(room *shared.Room, playerID string, x, y int) (game.MoveResult, error)
	BotMove(room *shared.Room, botID string) ([]game.MoveRecord, error)
}
