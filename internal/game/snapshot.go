package game

// Snapshot is what a renderer needs after each state change. Highlight
// markers are appended after the board cells and never count as pieces.
type Snapshot struct {
	Turn           Color          `json:"turn"`
	MoveType       MoveType       `json:"moveType"`
	Cells          []Cell         `json:"cells"`
	Highlights     []Position     `json:"highlights"`
	ChosenForShift *Position      `json:"chosenForShift,omitempty"`
	Players        [2]PlayerState `json:"players"`
	MoveCount      int            `json:"moveCount"`
	LastMove       *MoveRecord    `json:"lastMove,omitempty"`
}

// Highlights returns the positions to mark: shift destinations once a piece
// is chosen, the allowed selections otherwise.
func Highlights(gs *GameState) []Position {
	if gs.ChosenForShift != nil {
		return append([]Position(nil), gs.ShiftDestinations...)
	}
	return append([]Position(nil), gs.AllowedMoves...)
}

func NewSnapshot(gs *GameState) Snapshot {
	hl := Highlights(gs)
	cells := make([]Cell, 0, CellCount+len(hl))
	for _, c := range gs.Cells {
		c.Highlighted = containsPosition(hl, c.Pos)
		cells = append(cells, c)
	}
	for _, p := range hl {
		cells = append(cells, Cell{Pos: p, Color: Empty, Kind: HighlightMarker, Highlighted: true})
	}

	s := Snapshot{
		Turn:       gs.Turn,
		MoveType:   gs.MoveType,
		Cells:      cells,
		Highlights: hl,
		Players:    gs.Players,
		MoveCount:  gs.MoveCount,
	}
	if gs.ChosenForShift != nil {
		p := *gs.ChosenForShift
		s.ChosenForShift = &p
	}
	if n := len(gs.Moves); n > 0 {
		m := gs.Moves[n-1]
		s.LastMove = &m
	}
	return s
}

// Pieces counts the board cells of color c, ignoring highlight markers.
func (s Snapshot) Pieces(c Color) int {
	n := 0
	for _, cell := range s.Cells {
		if cell.Kind == BoardCell && cell.Color == c {
			n++
		}
	}
	return n
}
