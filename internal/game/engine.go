package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"nine-mens-morris/internal/config"
)

type Algorithm int

const (
	Minimax Algorithm = iota
	AlphaBeta
)

func (a Algorithm) String() string {
	if a == AlphaBeta {
		return "alpha-beta"
	}
	return "minimax"
}

func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimax", "min-max":
		return Minimax, nil
	case "alpha-beta", "alphabeta", "alpha_beta", "":
		return AlphaBeta, nil
	}
	return Minimax, fmt.Errorf("unknown algorithm %q", s)
}

// Engine chooses complete turns for a computer player.
type Engine struct {
	Algorithm  Algorithm
	Heuristics HeuristicsType
	Weights    config.Weights
	TimeBudget time.Duration
	MaxPlies   int // 0 means only the time budget limits depth
	MaxNodes   int // 0 means no node cap
	TieBreak   float64

	// Rand draws in [0,1) for tie breaking.
	Rand func() float64
}

func NewEngine(sc config.SearchConfig, w config.Weights) (*Engine, error) {
	alg, err := ParseAlgorithm(sc.Algorithm)
	if err != nil {
		return nil, err
	}
	h, err := ParseHeuristics(sc.Heuristics)
	if err != nil {
		return nil, err
	}
	if sc.TimeBudget <= 0 {
		sc.TimeBudget = config.DefaultSearch().TimeBudget
	}
	return &Engine{
		Algorithm:  alg,
		Heuristics: h,
		Weights:    w,
		TimeBudget: sc.TimeBudget,
		MaxPlies:   sc.MaxPlies,
		MaxNodes:   sc.MaxNodes,
		TieBreak:   sc.TieBreak,
		Rand:       frand.Float64,
	}, nil
}

type SearchResult struct {
	State   *GameState
	Plies   int
	Nodes   int
	Value   float64
	Elapsed time.Duration
}

func (e *Engine) evaluator() Evaluator {
	return func(gs *GameState) float64 {
		return Value(gs, e.Heuristics, e.Weights)
	}
}

// Search expands the tree from gs one ply at a time while the projected
// cost of the next ply fits the budget, then evaluates it and picks the
// best child. A state without legal turns comes back unchanged.
func (e *Engine) Search(gs *GameState) SearchResult {
	start := time.Now()
	eval := e.evaluator()
	root := NewGameStateNode(gs, gs.Turn == Maximizer)

	frontier := []*GameStateNode{root}
	nodes, plies, prevLen := 1, 0, 1
	var last time.Duration
	for len(frontier) > 0 && e.affordable(time.Since(start), last) {
		if e.MaxPlies > 0 && plies >= e.MaxPlies {
			break
		}
		if e.MaxNodes > 0 && plies > 0 && nodes+len(frontier)*len(frontier)/prevLen > e.MaxNodes {
			break
		}

		iterStart := time.Now()
		var next []*GameStateNode
		for _, n := range frontier {
			next = append(next, n.Expand()...)
		}
		last = time.Since(iterStart)
		if len(next) == 0 {
			break
		}
		plies++
		nodes += len(next)
		prevLen = len(frontier)
		frontier = next
		log.Debug().Int("ply", plies).Int("frontier", len(frontier)).Dur("iteration", last).Msg("search ply expanded")
	}

	res := SearchResult{State: gs, Plies: plies, Nodes: nodes}
	if len(root.Children) == 0 {
		res.Elapsed = time.Since(start)
		return res
	}

	switch e.Algorithm {
	case AlphaBeta:
		root.CalcValueAlphaBeta(negInf, posInf, eval)
	default:
		root.CalcValue(eval)
	}
	res.Value = root.Value

	draw := e.Rand
	if draw == nil {
		draw = frand.Float64
	}
	best := root.BestChild(eval, draw, e.TieBreak)
	if best == nil {
		panic("game: evaluated root has no child carrying its value")
	}
	res.State = best.State
	res.Elapsed = time.Since(start)

	log.Info().
		Str("turn", gs.Turn.String()).
		Str("algorithm", e.Algorithm.String()).
		Str("heuristics", e.Heuristics.String()).
		Int("plies", res.Plies).
		Int("nodes", res.Nodes).
		Float64("value", res.Value).
		Dur("elapsed", res.Elapsed).
		Msg("engine chose turn")
	return res
}

// affordable reports whether one more ply is projected to fit: the last
// ply's cost in milliseconds is squared as the estimate for the next.
func (e *Engine) affordable(elapsed, last time.Duration) bool {
	el := float64(elapsed) / float64(time.Millisecond)
	it := float64(last) / float64(time.Millisecond)
	budget := float64(e.TimeBudget) / float64(time.Millisecond)
	return el+it*it < budget
}

// ChooseNextState returns the state after the engine's turn.
func (e *Engine) ChooseNextState(gs *GameState) *GameState {
	return e.Search(gs).State
}
