package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"nine-mens-morris/internal/config"
	"nine-mens-morris/internal/game"
	"nine-mens-morris/internal/match"
)

func main() {
	app := &cli.App{
		Name:  "tournament",
		Usage: "play the engine against itself over every algorithm and heuristics combination",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "rounds", Value: 1, Usage: "games per combination"},
			&cli.IntFlag{Name: "parallel", Value: runtime.NumCPU(), Usage: "games played at once"},
			&cli.DurationFlag{Name: "budget", Usage: "search time budget per turn (default from AI_TIME_BUDGET_MS)"},
			&cli.IntFlag{Name: "max-plies", Value: -1, Usage: "search depth cap (default from AI_MAX_PLIES)"},
			&cli.IntFlag{Name: "max-turns", Value: 200, Usage: "turns before a game is scored as a draw"},
			&cli.StringFlag{Name: "only", Usage: "restrict both colors to one algorithm (minimax or alpha-beta)"},
			&cli.BoolFlag{Name: "json", Usage: "print the summary as JSON"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}
}

func run(c *cli.Context) error {
	cfg := config.Get()
	config.SetupLogger(cfg)

	opts := match.OptionsFromConfig(cfg)
	if c.IsSet("budget") {
		opts.TimeBudget = c.Duration("budget")
	}
	if n := c.Int("max-plies"); n >= 0 {
		opts.MaxPlies = n
	}
	opts.MaxTurns = c.Int("max-turns")

	defs := match.GenerateDefinitions()
	if only := c.String("only"); only != "" {
		alg, err := game.ParseAlgorithm(only)
		if err != nil {
			return err
		}
		var kept []match.Definition
		for _, d := range defs {
			if d.GreenAlgorithm == alg && d.RedAlgorithm == alg {
				kept = append(kept, d)
			}
		}
		defs = kept
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := match.RunAll(ctx, defs, c.Int("rounds"), c.Int("parallel"), opts)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("interrupted after %s", time.Since(start).Round(time.Second))
		}
		return err
	}
	summary := match.Summarize(results)

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	fmt.Printf("%-52s %5s %5s %5s %5s %8s %8s\n", "definition", "games", "red", "green", "draw", "moves", "minutes")
	for _, s := range summary {
		fmt.Printf("%-52s %5d %5d %5d %5d %8.1f %8.2f\n",
			s.Definition, s.Games, s.RedWins, s.GreenWins, s.Draws, s.AvgMoves, s.AvgMinutes)
	}
	fmt.Printf("%d games in %s\n", len(results), time.Since(start).Round(time.Millisecond))
	return nil
}
