package room

import "errors"

var (
	ErrNotYourTurn    = errors.New("not your turn")
	ErrPlayerNotFound = errors.New("player not found")
	ErrMoveNotAllowed = errors.New("move not allowed")
	ErrGameOver       = errors.New("game is over")
	ErrNotStarted     = errors.New("game has not started")
	ErrNotBotTurn     = errors.New("not bot's turn")
	ErrColorTaken     = errors.New("color already taken")
	ErrStaleSearch    = errors.New("state changed during search")
)
