package game

import (
	"fmt"
	"strings"

	"nine-mens-morris/internal/config"
)

// Maximizer is the color whose advantage raises the score. The other color
// minimizes.
const Maximizer = PlayerB

type HeuristicsType int

const (
	Naive HeuristicsType = iota
	Positional
)

func (h HeuristicsType) String() string {
	if h == Positional {
		return "positional"
	}
	return "naive"
}

func (h HeuristicsType) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func ParseHeuristics(s string) (HeuristicsType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "naive", "points":
		return Naive, nil
	case "positional", "":
		return Positional, nil
	}
	return Naive, fmt.Errorf("unknown heuristics %q", s)
}

// Value scores gs from the maximizer's side. Every term is a bounded
// difference, so more of anything for the maximizer scores higher.
func Value(gs *GameState, h HeuristicsType, w config.Weights) float64 {
	maxP, minP := gs.Player(Maximizer), gs.Player(Opponent(Maximizer))
	if h == Naive {
		return ratio(maxP.Points, minP.Points)
	}

	score := w.Points*ratio(maxP.Points, minP.Points) +
		w.Pieces*ratio(maxP.TotalPieces(), minP.TotalPieces()) +
		w.Mobility*ratio(Mobility(gs, Maximizer), Mobility(gs, Opponent(Maximizer))) +
		w.TwoInLine*ratio(OpenTwos(gs, Maximizer), OpenTwos(gs, Opponent(Maximizer)))

	// the turn holder of a finished game is the one who could not move
	if gs.MoveType == EndGame {
		if gs.Turn == Maximizer {
			score -= w.Win
		} else {
			score += w.Win
		}
	}
	return score
}

func ratio(a, b int) float64 {
	return float64(a-b) / float64(a+b+1)
}
