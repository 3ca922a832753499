package game

import "fmt"

type MoveKind int

const (
	BasicMove MoveKind = iota // placement or removal, destination only
	ShiftMove                 // source and destination
)

func (k MoveKind) MarshalText() ([]byte, error) {
	if k == ShiftMove {
		return []byte("shift"), nil
	}
	return []byte("basic"), nil
}

// MoveRecord is one entry of the move log. Removals share the Count of the
// placement or shift that earned them.
type MoveRecord struct {
	Count       int      `json:"count"`
	Color       Color    `json:"color"`
	MoveType    MoveType `json:"moveType"`
	Kind        MoveKind `json:"kind"`
	From        Position `json:"from"`
	To          Position `json:"to"`
	Description string   `json:"description"`
}

func NewBasicMove(count int, color Color, mt MoveType, dest Position) MoveRecord {
	return MoveRecord{
		Count:       count,
		Color:       color,
		MoveType:    mt,
		Kind:        BasicMove,
		To:          dest,
		Description: dest.String(),
	}
}

func NewShiftMove(count int, color Color, mt MoveType, from, to Position) MoveRecord {
	return MoveRecord{
		Count:       count,
		Color:       color,
		MoveType:    mt,
		Kind:        ShiftMove,
		From:        from,
		To:          to,
		Description: from.String() + " - " + to.String(),
	}
}

func (m MoveRecord) String() string {
	return fmt.Sprintf("%d. %s %s", m.Count, m.Color, m.Description)
}
