package game

// AllPossibleNextMoveResults returns one state per complete legal turn of
// the turn holder: a placement or shift plus every removal it earns.
// Selections that only advance the turn (choosing a piece, owing a removal)
// are followed on clones until the turn finishes or the game ends.
func AllPossibleNextMoveResults(gs *GameState) []*GameState {
	if gs.MoveType == EndGame {
		return nil
	}
	var out []*GameState
	collectTurns(gs, gs.AllowedMoves, &out)
	return out
}

func collectTurns(gs *GameState, selections []Position, out *[]*GameState) {
	for _, p := range selections {
		next := gs.Clone()
		switch PerformMove(next, p) {
		case FinishedTurn, GameEnded:
			*out = append(*out, next)
		case ChangedStateToRemove:
			collectTurns(next, next.AllowedMoves, out)
		case SelectedToShift:
			collectTurns(next, next.ShiftDestinations, out)
		}
	}
}

// Mobility counts the legal destinations color c would have if it were to
// move now: empty cells while placing or flying, adjacent empty cells
// otherwise.
func Mobility(gs *GameState, c Color) int {
	p := gs.Player(c)
	empties := len(gs.EmptyPositions())
	if p.PiecesInDrawer > 0 || p.PiecesOnBoard == 3 {
		return empties
	}
	n := 0
	for _, piece := range gs.PiecesOf(c) {
		for _, nb := range Neighbors(piece) {
			if gs.ColorAt(nb) == Empty {
				n++
			}
		}
	}
	return n
}

// OpenTwos counts the mill lines holding two pieces of c and one empty cell.
func OpenTwos(gs *GameState, c Color) int {
	n := 0
	for _, line := range millLines {
		own, empty := 0, 0
		for _, p := range line {
			switch gs.ColorAt(p) {
			case c:
				own++
			case Empty:
				empty++
			}
		}
		if own == 2 && empty == 1 {
			n++
		}
	}
	return n
}
