package game

import "time"

// Loser is the turn holder of a finished game, Empty while it runs.
func Loser(gs *GameState) Color {
	if gs.MoveType != EndGame {
		return Empty
	}
	return gs.Turn
}

func Winner(gs *GameState) Color {
	return Opponent(Loser(gs))
}

// EndgameData summarizes a finished game. LosingPlayer is Empty for a game
// stopped before either side lost.
type EndgameData struct {
	LosingPlayer  Color         `json:"losingPlayer"`
	MoveCount     int           `json:"moveCount"`
	Duration      time.Duration `json:"duration"`
	TimeInMinutes float64       `json:"timeInMinutes"`
}

func NewEndgameData(gs *GameState, d time.Duration) EndgameData {
	return EndgameData{
		LosingPlayer:  Loser(gs),
		MoveCount:     gs.MoveCount,
		Duration:      d,
		TimeInMinutes: d.Minutes(),
	}
}
