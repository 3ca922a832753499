package game

import (
	"testing"

	"nine-mens-morris/internal/config"
)

func TestNaiveValue(t *testing.T) {
	gs := NewGameState()
	if got := Value(gs, Naive, config.DefaultWeights()); got != 0 {
		t.Fatalf("opening value = %v, want 0", got)
	}
	gs.Player(PlayerB).Points = 2
	gs.Player(PlayerA).Points = 1
	if got := Value(gs, Naive, config.DefaultWeights()); got != 0.25 {
		t.Errorf("value = %v, want 0.25", got)
	}
}

func TestPositionalValueIsMonotonic(t *testing.T) {
	w := config.DefaultWeights()
	base := setup(PlayerA, []Position{pos(0, 0), pos(3, 0)}, []Position{pos(1, 1), pos(2, 2)}, 7, 7)
	v0 := Value(base, Positional, w)

	better := base.Clone()
	better.Player(Maximizer).Points++
	if v := Value(better, Positional, w); v <= v0 {
		t.Errorf("extra maximizer point: %v <= %v", v, v0)
	}

	worse := base.Clone()
	worse.Player(Opponent(Maximizer)).Points++
	if v := Value(worse, Positional, w); v >= v0 {
		t.Errorf("extra minimizer point: %v >= %v", v, v0)
	}

	// RED holds an open two on the top row
	if v0 >= 0 {
		t.Errorf("value with a RED threat = %v, want negative", v0)
	}
}

func TestPositionalValueEndGame(t *testing.T) {
	w := config.DefaultWeights()
	redStuck := setup(PlayerA,
		[]Position{pos(0, 0), pos(0, 6), pos(6, 0), pos(6, 6)},
		[]Position{pos(3, 0), pos(0, 3), pos(6, 3), pos(3, 6)}, 0, 0)
	if v := Value(redStuck, Positional, w); v < w.Win/2 {
		t.Errorf("GREEN win scored %v", v)
	}
	greenStuck := setup(PlayerB,
		[]Position{pos(3, 0), pos(0, 3), pos(6, 3), pos(3, 6)},
		[]Position{pos(0, 0), pos(0, 6), pos(6, 0), pos(6, 6)}, 0, 0)
	if v := Value(greenStuck, Positional, w); v > -w.Win/2 {
		t.Errorf("GREEN loss scored %v", v)
	}
}

func TestOpenTwosAndMobility(t *testing.T) {
	gs := setup(PlayerA, []Position{pos(0, 0), pos(3, 0)}, []Position{pos(6, 0)}, 7, 8)
	if got := OpenTwos(gs, PlayerA); got != 0 {
		t.Errorf("blocked row counted: %d", got)
	}
	gs = setup(PlayerA, []Position{pos(0, 0), pos(3, 0)}, nil, 7, 9)
	if got := OpenTwos(gs, PlayerA); got != 1 {
		t.Errorf("open twos = %d, want 1", got)
	}
	if got := Mobility(gs, PlayerA); got != CellCount-2 {
		t.Errorf("placing mobility = %d, want %d", got, CellCount-2)
	}

	stuck := setup(PlayerA,
		[]Position{pos(0, 0), pos(0, 6), pos(6, 0), pos(6, 6)},
		[]Position{pos(3, 0), pos(0, 3), pos(6, 3), pos(3, 6)}, 0, 0)
	if got := Mobility(stuck, PlayerA); got != 0 {
		t.Errorf("stuck mobility = %d, want 0", got)
	}
}

func TestParseNames(t *testing.T) {
	if h, err := ParseHeuristics("naive"); err != nil || h != Naive {
		t.Errorf("ParseHeuristics(naive) = %v, %v", h, err)
	}
	if h, err := ParseHeuristics("POSITIONAL"); err != nil || h != Positional {
		t.Errorf("ParseHeuristics(POSITIONAL) = %v, %v", h, err)
	}
	if _, err := ParseHeuristics("neural"); err == nil {
		t.Errorf("unknown heuristics accepted")
	}
	if a, err := ParseAlgorithm("minimax"); err != nil || a != Minimax {
		t.Errorf("ParseAlgorithm(minimax) = %v, %v", a, err)
	}
	if a, err := ParseAlgorithm("alpha-beta"); err != nil || a != AlphaBeta {
		t.Errorf("ParseAlgorithm(alpha-beta) = %v, %v", a, err)
	}
	if _, err := ParseAlgorithm("mcts"); err == nil {
		t.Errorf("unknown algorithm accepted")
	}
	if c, err := ParseColor("GREEN"); err != nil || c != PlayerB {
		t.Errorf("ParseColor(GREEN) = %v, %v", c, err)
	}
}
