// Package match plays the engine against itself over the grid of
// algorithm and heuristics combinations.
package match

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"nine-mens-morris/internal/config"
	"nine-mens-morris/internal/game"
)

// Definition fixes the engine setup of both colors for one game.
type Definition struct {
	GreenAlgorithm  game.Algorithm      `json:"green_algorithm"`
	RedAlgorithm    game.Algorithm      `json:"red_algorithm"`
	GreenHeuristics game.HeuristicsType `json:"green_heuristics"`
	RedHeuristics   game.HeuristicsType `json:"red_heuristics"`
}

func (d Definition) String() string {
	return fmt.Sprintf("GREEN %s/%s vs RED %s/%s",
		d.GreenAlgorithm, d.GreenHeuristics, d.RedAlgorithm, d.RedHeuristics)
}

// GenerateDefinitions returns every combination of algorithm and heuristics
// for both colors.
func GenerateDefinitions() []Definition {
	algorithms := []game.Algorithm{game.Minimax, game.AlphaBeta}
	heuristics := []game.HeuristicsType{game.Naive, game.Positional}
	var out []Definition
	for _, ga := range algorithms {
		for _, ra := range algorithms {
			for _, gh := range heuristics {
				for _, rh := range heuristics {
					out = append(out, Definition{
						GreenAlgorithm:  ga,
						RedAlgorithm:    ra,
						GreenHeuristics: gh,
						RedHeuristics:   rh,
					})
				}
			}
		}
	}
	return out
}

type Options struct {
	TimeBudget time.Duration
	MaxPlies   int
	MaxNodes   int
	TieBreak   float64
	Weights    config.Weights

	// MaxTurns ends the game as a draw once reached. Zero means 200.
	MaxTurns int

	// Rand overrides the engines' tie-break source.
	Rand func() float64
}

// OptionsFromConfig takes the engine settings of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		TimeBudget: cfg.Search.TimeBudget,
		MaxPlies:   cfg.Search.MaxPlies,
		MaxNodes:   cfg.Search.MaxNodes,
		TieBreak:   cfg.Search.TieBreak,
		Weights:    cfg.DefaultWeights,
	}
}

type Result struct {
	Definition Definition       `json:"definition"`
	Round      int              `json:"round"`
	Endgame    game.EndgameData `json:"endgame"`
	Draw       bool             `json:"draw"`
}

func (o Options) engine(alg game.Algorithm, h game.HeuristicsType) *game.Engine {
	e := &game.Engine{
		Algorithm:  alg,
		Heuristics: h,
		Weights:    o.Weights,
		TimeBudget: o.TimeBudget,
		MaxPlies:   o.MaxPlies,
		MaxNodes:   o.MaxNodes,
		TieBreak:   o.TieBreak,
		Rand:       o.Rand,
	}
	if e.TimeBudget <= 0 {
		e.TimeBudget = config.DefaultSearch().TimeBudget
	}
	return e
}

// Play runs one complete game between the two engines of def.
func Play(ctx context.Context, def Definition, opts Options) (Result, error) {
	maxTurns := opts.MaxTurns
	if maxTurns <= 0 {
		maxTurns = 200
	}
	engines := map[game.Color]*game.Engine{
		game.PlayerA: opts.engine(def.RedAlgorithm, def.RedHeuristics),
		game.PlayerB: opts.engine(def.GreenAlgorithm, def.GreenHeuristics),
	}

	start := time.Now()
	gs := game.NewGameState()
	gs.Player(game.PlayerA).Computer = true
	gs.Player(game.PlayerB).Computer = true

	for turn := 0; turn < maxTurns && !gs.IsOver(); turn++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		next := engines[gs.Turn].ChooseNextState(gs)
		if next == gs {
			break
		}
		gs = next
	}

	res := Result{
		Definition: def,
		Endgame:    game.NewEndgameData(gs, time.Since(start)),
		Draw:       !gs.IsOver(),
	}
	log.Info().
		Str("definition", def.String()).
		Str("loser", res.Endgame.LosingPlayer.String()).
		Int("moves", res.Endgame.MoveCount).
		Bool("draw", res.Draw).
		Msg("match finished")
	return res, nil
}

type job struct {
	def   Definition
	round int
}

// RunAll plays every definition rounds times, at most parallel games at
// once, in random order. Results come back in definition order.
func RunAll(ctx context.Context, defs []Definition, rounds, parallel int, opts Options) ([]Result, error) {
	if rounds <= 0 {
		rounds = 1
	}
	if parallel <= 0 {
		parallel = 1
	}
	var jobs []job
	for r := 0; r < rounds; r++ {
		for _, d := range defs {
			jobs = append(jobs, job{def: d, round: r})
		}
	}
	frand.Shuffle(len(jobs), func(i, j int) {
		jobs[i], jobs[j] = jobs[j], jobs[i]
	})

	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, jb := range jobs {
		i, jb := i, jb
		g.Go(func() error {
			res, err := Play(ctx, jb.def, opts)
			if err != nil {
				return err
			}
			res.Round = jb.round
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	index := make(map[Definition]int, len(defs))
	for i, d := range defs {
		index[d] = i
	}
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if index[a.Definition] != index[b.Definition] {
			return index[a.Definition] < index[b.Definition]
		}
		return a.Round < b.Round
	})
	return results, nil
}

// Summary aggregates the results of one definition.
type Summary struct {
	Definition Definition `json:"definition"`
	Games      int        `json:"games"`
	RedWins    int        `json:"red_wins"`
	GreenWins  int        `json:"green_wins"`
	Draws      int        `json:"draws"`
	AvgMoves   float64    `json:"avg_moves"`
	AvgMinutes float64    `json:"avg_minutes"`
}

func Summarize(results []Result) []Summary {
	var out []Summary
	pos := map[Definition]int{}
	for _, r := range results {
		i, ok := pos[r.Definition]
		if !ok {
			i = len(out)
			pos[r.Definition] = i
			out = append(out, Summary{Definition: r.Definition})
		}
		s := &out[i]
		s.Games++
		switch {
		case r.Draw:
			s.Draws++
		case r.Endgame.LosingPlayer == game.PlayerA:
			s.GreenWins++
		case r.Endgame.LosingPlayer == game.PlayerB:
			s.RedWins++
		}
		s.AvgMoves += float64(r.Endgame.MoveCount)
		s.AvgMinutes += r.Endgame.TimeInMinutes
	}
	for i := range out {
		out[i].AvgMoves /= float64(out[i].Games)
		out[i].AvgMinutes /= float64(out[i].Games)
	}
	return out
}
