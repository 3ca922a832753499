package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"nine-mens-morris/internal/config"
	"nine-mens-morris/internal/game"
)

// Console game against the engine. Pass "green" to play second.
func main() {
	cfg := config.Get()
	config.SetupLogger(cfg)

	human := game.PlayerA
	if len(os.Args) > 1 {
		c, err := game.ParseColor(os.Args[1])
		if err != nil || c == game.Empty {
			fmt.Println("usage: nine-mens-morris [red|green]")
			os.Exit(2)
		}
		human = c
	}
	eng, err := game.NewEngine(cfg.Search, cfg.DefaultWeights)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid engine settings")
	}

	gs := game.NewGameState()
	gs.Player(game.Opponent(human)).Computer = true
	start := time.Now()
	reader := bufio.NewReader(os.Stdin)

	for !gs.IsOver() {
		fmt.Printf("\nTurn %d: %s (%s)\n", gs.MoveCount+1, gs.Turn, gs.MoveType)
		printBoard(gs)

		if gs.Turn != human {
			before := len(gs.Moves)
			next := eng.ChooseNextState(gs)
			if next == gs {
				break
			}
			gs = next
			for _, m := range gs.Moves[before:] {
				fmt.Println("Computer:", m)
			}
			continue
		}

		fmt.Println("Enter a position as: x y")
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nbye")
			return
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			fmt.Println("Wrong format, try again.")
			continue
		}
		x, errX := strconv.Atoi(parts[0])
		y, errY := strconv.Atoi(parts[1])
		if errX != nil || errY != nil {
			fmt.Println("Wrong format, try again.")
			continue
		}
		switch res := game.PerformMove(gs, game.Position{X: x, Y: y}); res {
		case game.MoveNotAllowed:
			fmt.Println("Move not allowed.")
		case game.ChangedStateToRemove:
			fmt.Println("Mill! Choose an opponent piece to remove.")
		case game.SelectedToShift:
			fmt.Println("Piece selected, choose its destination.")
		}
	}

	fmt.Println()
	printBoard(gs)
	fmt.Printf("Game over, %s wins.\n", game.Winner(gs))
	js, _ := json.MarshalIndent(game.NewEndgameData(gs, time.Since(start)), "", "  ")
	fmt.Println(string(js))
}

func printBoard(gs *game.GameState) {
	marks := map[game.Position]bool{}
	for _, p := range game.Highlights(gs) {
		marks[p] = true
	}
	fmt.Print("   ")
	for x := 0; x < game.BoardSize; x++ {
		fmt.Printf("%d ", x)
	}
	fmt.Println()
	for y := 0; y < game.BoardSize; y++ {
		fmt.Printf("%d  ", y)
		for x := 0; x < game.BoardSize; x++ {
			p := game.Position{X: x, Y: y}
			switch {
			case !game.IsValidPosition(x, y):
				fmt.Print("  ")
			case gs.ColorAt(p) == game.PlayerA:
				fmt.Print("R ")
			case gs.ColorAt(p) == game.PlayerB:
				fmt.Print("G ")
			case marks[p]:
				fmt.Print("* ")
			default:
				fmt.Print(". ")
			}
		}
		fmt.Println()
	}
	a, b := gs.Player(game.PlayerA), gs.Player(game.PlayerB)
	fmt.Printf("RED   drawer %d board %d points %d\n", a.PiecesInDrawer, a.PiecesOnBoard, a.Points)
	fmt.Printf("GREEN drawer %d board %d points %d\n", b.PiecesInDrawer, b.PiecesOnBoard, b.Points)
}
