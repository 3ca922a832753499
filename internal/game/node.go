package game

import "math"

// Evaluator scores a state from the maximizer's side.
type Evaluator func(*GameState) float64

// GameStateNode is one vertex of the search tree. Children are complete
// turns of the node's turn holder and always have the opposite
// IsMaximizing flag.
type GameStateNode struct {
	State        *GameState
	IsMaximizing bool
	Children     []*GameStateNode

	// Value is meaningful only when Resolved is set. Alpha-beta leaves
	// cut nodes unresolved.
	Value    float64
	Resolved bool

	imminent    float64
	hasImminent bool
}

func NewGameStateNode(gs *GameState, maximizing bool) *GameStateNode {
	return &GameStateNode{State: gs, IsMaximizing: maximizing}
}

// Expand creates the children of n and returns them.
func (n *GameStateNode) Expand() []*GameStateNode {
	next := AllPossibleNextMoveResults(n.State)
	n.Children = make([]*GameStateNode, 0, len(next))
	for _, gs := range next {
		n.Children = append(n.Children, NewGameStateNode(gs, !n.IsMaximizing))
	}
	return n.Children
}

// ImminentValue is the heuristic score of the node's own state, computed
// once.
func (n *GameStateNode) ImminentValue(eval Evaluator) float64 {
	if !n.hasImminent {
		n.imminent = eval(n.State)
		n.hasImminent = true
	}
	return n.imminent
}

// CalcValue propagates plain minimax values from the leaves up.
func (n *GameStateNode) CalcValue(eval Evaluator) float64 {
	if len(n.Children) == 0 {
		n.Value = n.ImminentValue(eval)
		n.Resolved = true
		return n.Value
	}
	best := math.Inf(-1)
	if !n.IsMaximizing {
		best = math.Inf(1)
	}
	for _, c := range n.Children {
		v := c.CalcValue(eval)
		if (n.IsMaximizing && v > best) || (!n.IsMaximizing && v < best) {
			best = v
		}
	}
	n.Value = best
	n.Resolved = true
	return best
}

// CalcValueAlphaBeta propagates values with alpha-beta pruning. The
// returned number is the node's value, or a bound on it when the node was
// cut; in that case the node stays unresolved and its remaining children
// are not visited.
func (n *GameStateNode) CalcValueAlphaBeta(alpha, beta float64, eval Evaluator) float64 {
	n.Resolved = false
	if len(n.Children) == 0 {
		n.Value = n.ImminentValue(eval)
		n.Resolved = true
		return n.Value
	}

	best := math.Inf(-1)
	if !n.IsMaximizing {
		best = math.Inf(1)
	}
	for _, c := range n.Children {
		v := c.CalcValueAlphaBeta(alpha, beta, eval)
		if n.IsMaximizing {
			best = math.Max(best, v)
			alpha = math.Max(alpha, best)
		} else {
			best = math.Min(best, v)
			beta = math.Min(beta, best)
		}
		if alpha > beta {
			return best
		}
	}
	n.Value = best
	n.Resolved = true
	return best
}

// BestChild picks among the resolved children that carry the node's value
// the one whose own state looks best right now. Equal candidates replace
// the current pick when draw() exceeds threshold, so play is not fully
// predictable. Nil when no child qualifies.
func (n *GameStateNode) BestChild(eval Evaluator, draw func() float64, threshold float64) *GameStateNode {
	var best *GameStateNode
	for _, c := range n.Children {
		if !c.Resolved || c.Value != n.Value {
			continue
		}
		if best == nil {
			best = c
			continue
		}
		ci, bi := c.ImminentValue(eval), best.ImminentValue(eval)
		switch {
		case n.IsMaximizing && ci > bi, !n.IsMaximizing && ci < bi:
			best = c
		case ci == bi && draw() > threshold:
			best = c
		}
	}
	return best
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *GameStateNode) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)
