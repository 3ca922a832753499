package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"nine-mens-morris/internal/config"
	"nine-mens-morris/internal/game"
)

func fastOptions() Options {
	return Options{
		TimeBudget: time.Second,
		MaxPlies:   1,
		TieBreak:   0.7,
		Weights:    config.DefaultWeights(),
		MaxTurns:   40,
		Rand:       func() float64 { return 0 },
	}
}

func TestGenerateDefinitions(t *testing.T) {
	defs := GenerateDefinitions()
	if len(defs) != 16 {
		t.Fatalf("definitions = %d, want 16", len(defs))
	}
	seen := map[Definition]bool{}
	for _, d := range defs {
		if seen[d] {
			t.Errorf("duplicate %v", d)
		}
		seen[d] = true
	}
}

func TestPlay(t *testing.T) {
	def := Definition{
		GreenAlgorithm:  game.AlphaBeta,
		RedAlgorithm:    game.Minimax,
		GreenHeuristics: game.Positional,
		RedHeuristics:   game.Naive,
	}
	res, err := Play(context.Background(), def, fastOptions())
	if err != nil {
		t.Fatal(err)
	}
	if res.Definition != def {
		t.Errorf("definition = %v", res.Definition)
	}
	if res.Draw != (res.Endgame.LosingPlayer == game.Empty) {
		t.Errorf("draw %v with loser %v", res.Draw, res.Endgame.LosingPlayer)
	}
	if res.Endgame.MoveCount == 0 || res.Endgame.MoveCount > 40 {
		t.Errorf("moves = %d", res.Endgame.MoveCount)
	}
}

func TestPlayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Play(ctx, GenerateDefinitions()[0], fastOptions()); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRunAllAndSummarize(t *testing.T) {
	defs := GenerateDefinitions()[:3]
	opts := fastOptions()
	opts.MaxTurns = 10
	results, err := RunAll(context.Background(), defs, 2, 3, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 6 {
		t.Fatalf("results = %d, want 6", len(results))
	}
	if results[0].Definition != defs[0] || results[0].Round != 0 || results[1].Round != 1 {
		t.Errorf("results out of order: %+v", results[:2])
	}

	summary := Summarize(results)
	if len(summary) != 3 {
		t.Fatalf("summary rows = %d", len(summary))
	}
	for _, s := range summary {
		if s.Games != 2 || s.RedWins+s.GreenWins+s.Draws != 2 {
			t.Errorf("summary %+v", s)
		}
	}
}
