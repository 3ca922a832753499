package game

import "fmt"

// GameState is a full snapshot of a game. The search works on clones of it,
// so every field must be copied by Clone.
type GameState struct {
	Turn              Color           `json:"turn"`
	MoveType          MoveType        `json:"moveType"`
	Cells             [CellCount]Cell `json:"cells"`
	AllowedMoves      []Position      `json:"allowedMoves"`
	ShiftDestinations []Position      `json:"shiftDestinations"`
	ChosenForShift    *Position       `json:"chosenForShift,omitempty"`
	Players           [2]PlayerState  `json:"players"`
	MoveCount         int             `json:"moveCount"`
	Moves             []MoveRecord    `json:"moves"`
}

// NewGameState returns the opening position: RED to place, 9 pieces each.
func NewGameState() *GameState {
	gs := &GameState{
		Turn:     PlayerA,
		MoveType: Normal,
		Players:  [2]PlayerState{newPlayerState(PlayerA), newPlayerState(PlayerB)},
	}
	for i, p := range positions {
		gs.Cells[i] = Cell{Pos: p, Color: Empty, Kind: BoardCell}
	}
	gs.AllowedMoves = findDestinationsForNormalMove(gs)
	return gs
}

// Clone returns a deep copy sharing no memory with gs.
func (gs *GameState) Clone() *GameState {
	c := &GameState{
		Turn:      gs.Turn,
		MoveType:  gs.MoveType,
		Cells:     gs.Cells,
		Players:   gs.Players,
		MoveCount: gs.MoveCount,
	}
	if gs.AllowedMoves != nil {
		c.AllowedMoves = make([]Position, len(gs.AllowedMoves))
		copy(c.AllowedMoves, gs.AllowedMoves)
	}
	if gs.ShiftDestinations != nil {
		c.ShiftDestinations = make([]Position, len(gs.ShiftDestinations))
		copy(c.ShiftDestinations, gs.ShiftDestinations)
	}
	if gs.ChosenForShift != nil {
		p := *gs.ChosenForShift
		c.ChosenForShift = &p
	}
	if gs.Moves != nil {
		c.Moves = make([]MoveRecord, len(gs.Moves))
		copy(c.Moves, gs.Moves)
	}
	return c
}

// Player returns the mutable state of color c. It panics for Empty.
func (gs *GameState) Player(c Color) *PlayerState {
	switch c {
	case PlayerA:
		return &gs.Players[0]
	case PlayerB:
		return &gs.Players[1]
	}
	panic(fmt.Sprintf("game: no player for color %v", c))
}

func (gs *GameState) CurrentPlayer() *PlayerState {
	return gs.Player(gs.Turn)
}

func (gs *GameState) OpponentPlayer() *PlayerState {
	return gs.Player(Opponent(gs.Turn))
}

func (gs *GameState) cell(p Position) *Cell {
	idx, ok := indexOf(p)
	if !ok {
		return nil
	}
	return &gs.Cells[idx]
}

// ColorAt returns the occupant of p, Empty for invalid positions.
func (gs *GameState) ColorAt(p Position) Color {
	c := gs.cell(p)
	if c == nil {
		return Empty
	}
	return c.Color
}

// PiecesOf lists the positions occupied by color c.
func (gs *GameState) PiecesOf(c Color) []Position {
	var out []Position
	for _, cell := range gs.Cells {
		if cell.Color == c {
			out = append(out, cell.Pos)
		}
	}
	return out
}

func (gs *GameState) EmptyPositions() []Position {
	return gs.PiecesOf(Empty)
}

func (gs *GameState) IsOver() bool {
	return gs.MoveType == EndGame
}

// Validate checks the structural invariants of the state.
func (gs *GameState) Validate() error {
	counts := map[Color]int{}
	for i, cell := range gs.Cells {
		if cell.Pos != positions[i] {
			return fmt.Errorf("cell %d at %v, want %v", i, cell.Pos, positions[i])
		}
		if cell.Kind != BoardCell {
			return fmt.Errorf("cell %v is not a board cell", cell.Pos)
		}
		switch cell.Color {
		case Empty, PlayerA, PlayerB:
			counts[cell.Color]++
		default:
			return fmt.Errorf("cell %v has invalid color %v", cell.Pos, cell.Color)
		}
	}
	for _, c := range []Color{PlayerA, PlayerB} {
		p := gs.Player(c)
		if p.PiecesOnBoard != counts[c] {
			return fmt.Errorf("%v reports %d pieces on board, found %d", c, p.PiecesOnBoard, counts[c])
		}
		if p.PiecesInDrawer < 0 || p.PiecesInDrawer > PiecesPerPlayer {
			return fmt.Errorf("%v has %d pieces in drawer", c, p.PiecesInDrawer)
		}
	}
	return nil
}

func containsPosition(list []Position, p Position) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}
