// Command abalone-solve is a batch/offline solver: it reads the §6
// input-file format (a mover line and a board-string line) and writes
// the engine's chosen move as one move-tuple line followed by the
// resulting board-string line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hailam/abalone/internal/engine"
	"github.com/hailam/abalone/internal/iofmt"
)

func main() {
	inputPath := flag.String("input", "", "path to a scenario input file (mover line + board-string line)")
	depth := flag.Int("depth", 2, "search depth")
	budget := flag.Float64("budget", 5, "time budget in seconds")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("abalone-solve: -input is required")
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		log.Fatalf("abalone-solve: %v", err)
	}
	defer f.Close()

	scenario, err := iofmt.ReadScenario(f)
	if err != nil {
		log.Fatalf("abalone-solve: %v", err)
	}

	tt := engine.NewTranspositionTable()
	move, ok := engine.FindBestMove(scenario.Board, scenario.Mover, *depth, *budget, tt)
	if !ok {
		fmt.Println("no legal move")
		os.Exit(1)
	}

	if err := iofmt.WriteMoveTupleLine(os.Stdout, move); err != nil {
		log.Fatalf("abalone-solve: %v", err)
	}

	result := scenario.Board.Copy()
	if _, err := result.MovePieces(move.Cells, move.Dir, move.Mover); err != nil {
		log.Fatalf("abalone-solve: chosen move failed to apply: %v", err)
	}
	if err := iofmt.WriteBoardLine(os.Stdout, result); err != nil {
		log.Fatalf("abalone-solve: %v", err)
	}
}
