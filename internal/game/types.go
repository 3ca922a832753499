package game

import "fmt"

// Color is the occupancy of a board cell and the identity of a player.
type Color int

const (
	Empty Color = iota
	PlayerA
	PlayerB
)

func (c Color) String() string {
	switch c {
	case Empty:
		return "EMPTY"
	case PlayerA:
		return "RED"
	case PlayerB:
		return "GREEN"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor accepts the wire names (RED, GREEN, EMPTY) and the A/B aliases.
func ParseColor(s string) (Color, error) {
	switch s {
	case "EMPTY", "empty", "":
		return Empty, nil
	case "RED", "red", "A", "a":
		return PlayerA, nil
	case "GREEN", "green", "B", "b":
		return PlayerB, nil
	}
	return Empty, fmt.Errorf("unknown color %q", s)
}

// Opponent returns the other player's color, Empty for Empty.
func Opponent(c Color) Color {
	switch c {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	return Empty
}

// Position is a coordinate on the 7x7 logical grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("[%d;%d]", p.X, p.Y)
}

// CellKind separates real board slots from render-only highlight markers.
type CellKind int

const (
	BoardCell CellKind = iota
	HighlightMarker
)

func (k CellKind) MarshalText() ([]byte, error) {
	if k == HighlightMarker {
		return []byte("highlight"), nil
	}
	return []byte("board"), nil
}

type Cell struct {
	Pos         Position `json:"pos"`
	Color       Color    `json:"color"`       // EMPTY, RED or GREEN
	Kind        CellKind `json:"kind"`        // board slot or highlight marker
	Highlighted bool     `json:"highlighted"` // legal destination, render only
}

// SamePosition compares two cells by coordinate only.
func (c Cell) SamePosition(o Cell) bool {
	return c.Pos == o.Pos
}

// MoveType is the active phase of the turn holder.
type MoveType int

const (
	Normal MoveType = iota
	RemoveOpponent
	RemoveOpponent2
	MoveNearby
	MoveAnywhere
	EndGame
)

var moveTypeNames = [...]string{"NORMAL", "REMOVE_OPPONENT", "REMOVE_OPPONENT_2", "MOVE_NEARBY", "MOVE_ANYWHERE", "END_GAME"}

func (m MoveType) String() string {
	if m < 0 || int(m) >= len(moveTypeNames) {
		return fmt.Sprintf("MoveType(%d)", int(m))
	}
	return moveTypeNames[m]
}

func (m MoveType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// MoveResult reports what a single selection did to the state.
type MoveResult int

const (
	FinishedTurn MoveResult = iota
	ChangedStateToRemove
	SelectedToShift
	MoveNotAllowed
	GameEnded
)

var moveResultNames = [...]string{"FINISHED_TURN", "CHANGED_STATE_TO_REMOVE", "SELECTED_TO_SHIFT", "MOVE_NOT_ALLOWED", "END_GAME"}

func (r MoveResult) String() string {
	if r < 0 || int(r) >= len(moveResultNames) {
		return fmt.Sprintf("MoveResult(%d)", int(r))
	}
	return moveResultNames[r]
}

func (r MoveResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// PlayerState holds the per-player counters. HasLastMove guards
// LastMovedPiece/PreviousPosition, which are only set by a shift.
type PlayerState struct {
	Color            Color    `json:"color"`
	PiecesInDrawer   int      `json:"piecesInDrawer"`
	PiecesOnBoard    int      `json:"piecesOnBoard"`
	Points           int      `json:"points"`
	Computer         bool     `json:"computer"`
	HasLastMove      bool     `json:"hasLastMove"`
	LastMovedPiece   Position `json:"lastMovedPiece"`
	PreviousPosition Position `json:"previousPosition"`
}

func newPlayerState(c Color) PlayerState {
	return PlayerState{Color: c, PiecesInDrawer: PiecesPerPlayer}
}

// TotalPieces is what the player still has in play.
func (p PlayerState) TotalPieces() int {
	return p.PiecesInDrawer + p.PiecesOnBoard
}
