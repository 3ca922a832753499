package game

import "testing"

// leaf values are carried in MoveCount so the tree needs no real positions
func valueLeaf(v int) *GameStateNode {
	return &GameStateNode{State: &GameState{MoveCount: v}}
}

func inner(maximizing bool, children ...*GameStateNode) *GameStateNode {
	n := &GameStateNode{State: &GameState{}, IsMaximizing: maximizing}
	for _, c := range children {
		c.IsMaximizing = !maximizing
		n.Children = append(n.Children, c)
	}
	return n
}

func countingEval(calls *int) Evaluator {
	return func(gs *GameState) float64 {
		*calls++
		return float64(gs.MoveCount)
	}
}

func TestCalcValueMinimax(t *testing.T) {
	root := inner(true,
		inner(false, valueLeaf(3), valueLeaf(5)),
		inner(false, valueLeaf(2), valueLeaf(9)),
	)
	var calls int
	if got := root.CalcValue(countingEval(&calls)); got != 3 {
		t.Fatalf("minimax value = %v, want 3", got)
	}
	if calls != 4 {
		t.Errorf("evaluated %d leaves, want 4", calls)
	}
	if !root.Children[1].Resolved || root.Children[1].Value != 2 {
		t.Errorf("second child = %v/%v", root.Children[1].Resolved, root.Children[1].Value)
	}
}

func TestCalcValueAlphaBetaPrunes(t *testing.T) {
	root := inner(true,
		inner(false, valueLeaf(3), valueLeaf(5)),
		inner(false, valueLeaf(2), valueLeaf(9)),
	)
	var calls int
	eval := countingEval(&calls)
	if got := root.CalcValueAlphaBeta(negInf, posInf, eval); got != 3 {
		t.Fatalf("alpha-beta value = %v, want 3", got)
	}
	if calls != 3 {
		t.Errorf("evaluated %d leaves, want 3", calls)
	}
	if root.Children[1].Resolved {
		t.Errorf("cut node marked resolved")
	}
	if root.Children[1].Children[1].Resolved {
		t.Errorf("pruned leaf was visited")
	}
	if best := root.BestChild(eval, func() float64 { return 0.99 }, 0.7); best != root.Children[0] {
		t.Errorf("best child is not the resolved one")
	}
}

func TestBestChildTieBreak(t *testing.T) {
	zero := func(*GameState) float64 { return 0 }
	build := func() *GameStateNode {
		root := inner(true, valueLeaf(0), valueLeaf(0), valueLeaf(0))
		root.CalcValue(zero)
		return root
	}

	root := build()
	if best := root.BestChild(zero, func() float64 { return 0.1 }, 0.7); best != root.Children[0] {
		t.Errorf("low draws must keep the first candidate")
	}
	root = build()
	if best := root.BestChild(zero, func() float64 { return 0.9 }, 0.7); best != root.Children[2] {
		t.Errorf("high draws must move to the last candidate")
	}
}

func TestBestChildPrefersImminentValue(t *testing.T) {
	// equal propagated values, different one-ply scores
	a := inner(false, valueLeaf(1))
	b := inner(false, valueLeaf(1))
	a.State.MoveCount, b.State.MoveCount = 0, 5
	root := inner(true, a, b)
	eval := func(gs *GameState) float64 { return float64(gs.MoveCount) }
	root.CalcValue(eval)
	if best := root.BestChild(eval, func() float64 { return 0 }, 0.7); best != b {
		t.Errorf("maximizer picked the weaker imminent value")
	}

	root.IsMaximizing = false
	if best := root.BestChild(eval, func() float64 { return 0 }, 0.7); best != a {
		t.Errorf("minimizer picked the stronger imminent value")
	}
}
