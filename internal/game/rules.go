package game

// PerformMove applies one selection to gs. Illegal selections return
// MoveNotAllowed and leave gs untouched. Callers running hypothetical moves
// must pass a clone.
func PerformMove(gs *GameState, selected Position) MoveResult {
	if gs.MoveType == EndGame {
		return GameEnded
	}
	if !IsValidPosition(selected.X, selected.Y) {
		return MoveNotAllowed
	}

	var result MoveResult
	switch gs.MoveType {
	case Normal:
		result = performNormalMove(gs, selected)
	case RemoveOpponent, RemoveOpponent2:
		result = performRemoveMove(gs, selected)
	case MoveNearby, MoveAnywhere:
		result = performShift(gs, selected)
	default:
		result = MoveNotAllowed
	}

	if result == FinishedTurn {
		return initNewTurn(gs)
	}
	return result
}

// CheckForMill counts the mills (0, 1 or 2) that justPlaced completes for
// the owner of pieces. pieces must include justPlaced.
func CheckForMill(pieces []Position, justPlaced Position) int {
	result := 0
	for _, line := range MillLinesContaining(justPlaced) {
		complete := true
		for _, p := range line {
			if !containsPosition(pieces, p) {
				complete = false
				break
			}
		}
		if complete {
			result++
		}
	}
	return result
}

// IsShiftToAllowed reports whether the turn holder may shift from -> to in
// the current phase.
func IsShiftToAllowed(gs *GameState, from, to Position) bool {
	if gs.ColorAt(from) != gs.Turn {
		return false
	}
	switch gs.MoveType {
	case MoveNearby, MoveAnywhere:
		return containsPosition(shiftDestinationsFor(gs, from), to)
	}
	return false
}

func isMoveAllowed(gs *GameState, selected Position) bool {
	return containsPosition(gs.AllowedMoves, selected)
}

func performNormalMove(gs *GameState, selected Position) MoveResult {
	if !isMoveAllowed(gs, selected) || gs.ColorAt(selected) != Empty {
		return MoveNotAllowed
	}
	if gs.CurrentPlayer().PiecesInDrawer <= 0 {
		return MoveNotAllowed
	}
	gs.MoveCount++
	gs.Moves = append(gs.Moves, NewBasicMove(gs.MoveCount, gs.Turn, gs.MoveType, selected))
	return putPieceOnBoard(gs, selected, false)
}

func performRemoveMove(gs *GameState, selected Position) MoveResult {
	if !isMoveAllowed(gs, selected) || gs.ColorAt(selected) != Opponent(gs.Turn) {
		return MoveNotAllowed
	}
	gs.cell(selected).Color = Empty
	gs.CurrentPlayer().Points++
	opponent := gs.OpponentPlayer()
	opponent.PiecesOnBoard--
	if opponent.HasLastMove && opponent.LastMovedPiece == selected {
		opponent.HasLastMove = false
	}
	gs.Moves = append(gs.Moves, NewBasicMove(gs.MoveCount, gs.Turn, gs.MoveType, selected))

	if gs.MoveType == RemoveOpponent2 {
		gs.MoveType = RemoveOpponent
		gs.AllowedMoves = findDestinationsForOpponentRemove(gs)
		if len(gs.AllowedMoves) > 0 {
			return ChangedStateToRemove
		}
	}
	return FinishedTurn
}

func performShift(gs *GameState, selected Position) MoveResult {
	if isMoveAllowed(gs, selected) {
		p := selected
		gs.ChosenForShift = &p
		gs.ShiftDestinations = shiftDestinationsFor(gs, selected)
		return SelectedToShift
	}
	if gs.ChosenForShift == nil || !IsShiftToAllowed(gs, *gs.ChosenForShift, selected) {
		return MoveNotAllowed
	}

	from := *gs.ChosenForShift
	gs.ChosenForShift = nil
	gs.ShiftDestinations = nil

	cur := gs.CurrentPlayer()
	cur.HasLastMove = true
	cur.LastMovedPiece = selected
	cur.PreviousPosition = from

	gs.cell(from).Color = Empty
	gs.MoveCount++
	gs.Moves = append(gs.Moves, NewShiftMove(gs.MoveCount, gs.Turn, gs.MoveType, from, selected))
	return putPieceOnBoard(gs, selected, true)
}

func putPieceOnBoard(gs *GameState, dest Position, shifting bool) MoveResult {
	cur := gs.CurrentPlayer()
	if !shifting {
		cur.PiecesInDrawer--
		cur.PiecesOnBoard++
	}
	gs.cell(dest).Color = gs.Turn

	mills := CheckForMill(gs.PiecesOf(gs.Turn), dest)
	targets := findDestinationsForOpponentRemove(gs)
	if mills > len(targets) {
		mills = len(targets)
	}

	switch mills {
	case 1:
		gs.MoveType = RemoveOpponent
		gs.AllowedMoves = targets
		return ChangedStateToRemove
	case 2:
		gs.MoveType = RemoveOpponent2
		gs.AllowedMoves = targets
		return ChangedStateToRemove
	}
	return FinishedTurn
}

// initNewTurn hands the turn to the opponent and resolves its phase.
func initNewTurn(gs *GameState) MoveResult {
	gs.Turn = Opponent(gs.Turn)
	gs.resetTurn()
	if gs.MoveType == EndGame {
		return GameEnded
	}
	return FinishedTurn
}

// resetTurn derives MoveType and AllowedMoves for the turn holder from its
// counters and the board.
func (gs *GameState) resetTurn() {
	gs.ChosenForShift = nil
	gs.ShiftDestinations = nil

	cur := gs.CurrentPlayer()
	switch {
	case cur.TotalPieces() < 3:
		gs.MoveType = EndGame
	case cur.PiecesInDrawer > 0:
		gs.MoveType = Normal
	case cur.PiecesOnBoard == 3:
		// flying reaches every empty cell, so only a full board blocks it
		if len(gs.EmptyPositions()) > 0 {
			gs.MoveType = MoveAnywhere
		} else {
			gs.MoveType = EndGame
		}
	default:
		if canMoveNearby(gs) {
			gs.MoveType = MoveNearby
		} else {
			gs.MoveType = EndGame
		}
	}

	switch gs.MoveType {
	case Normal:
		gs.AllowedMoves = findDestinationsForNormalMove(gs)
	case MoveNearby, MoveAnywhere:
		gs.AllowedMoves = findShiftSources(gs)
	default:
		gs.AllowedMoves = nil
	}
}

func canMoveNearby(gs *GameState) bool {
	for _, p := range gs.PiecesOf(gs.Turn) {
		if len(findDestinationsForNearbyMove(gs, p)) > 0 {
			return true
		}
	}
	return false
}

func findDestinationsForNormalMove(gs *GameState) []Position {
	empties := gs.EmptyPositions()
	cur := gs.CurrentPlayer()
	if !cur.HasLastMove {
		return empties
	}
	return without(empties, cur.PreviousPosition)
}

func findDestinationsForOpponentRemove(gs *GameState) []Position {
	return gs.PiecesOf(Opponent(gs.Turn))
}

func findShiftSources(gs *GameState) []Position {
	return gs.PiecesOf(gs.Turn)
}

func shiftDestinationsFor(gs *GameState, from Position) []Position {
	switch gs.MoveType {
	case MoveNearby:
		return findDestinationsForNearbyMove(gs, from)
	case MoveAnywhere:
		return findDestinationsForAnywhereMove(gs, from)
	}
	return nil
}

func findDestinationsForNearbyMove(gs *GameState, from Position) []Position {
	var result []Position
	for _, n := range Neighbors(from) {
		if gs.ColorAt(n) == Empty {
			result = append(result, n)
		}
	}
	return filterReturnMove(gs, from, result)
}

func findDestinationsForAnywhereMove(gs *GameState, from Position) []Position {
	return filterReturnMove(gs, from, gs.EmptyPositions())
}

// filterReturnMove drops the square the piece just came from.
func filterReturnMove(gs *GameState, from Position, dests []Position) []Position {
	cur := gs.CurrentPlayer()
	if cur.HasLastMove && cur.LastMovedPiece == from {
		return without(dests, cur.PreviousPosition)
	}
	return dests
}

func without(list []Position, p Position) []Position {
	out := list[:0:0]
	for _, q := range list {
		if q != p {
			out = append(out, q)
		}
	}
	return out
}
