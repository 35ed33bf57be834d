package engine

import (
	"testing"

	"github.com/hailam/abalone/internal/board"
)

func TestNewEngineDefaultDifficulty(t *testing.T) {
	e := NewEngine()
	if e.Difficulty() != Medium {
		t.Errorf("Difficulty() = %v, want Medium", e.Difficulty())
	}
}

func TestEngineBestMoveOpeningSuggestionForBlack(t *testing.T) {
	e := NewEngine()
	b := board.NewBoard(board.LayoutDefault)

	move, ok := e.BestMove(b, board.Black)
	if !ok {
		t.Fatal("BestMove reported no move")
	}
	if len(move.Cells) != 3 {
		t.Errorf("BestMove on a fresh board for Black returned a %d-cell move, want the 3-marble opening suggestion", len(move.Cells))
	}
}

func TestEngineBestMoveUsesSearchOnceBoardHasMoved(t *testing.T) {
	e := NewEngine()
	e.SetDifficulty(Easy)
	b := board.NewBoard(board.LayoutDefault)

	// Play one White move so the board is no longer fresh.
	cells := []board.Coord{}
	moves := board.LegalMoves(b, board.White)
	if len(moves) == 0 {
		t.Fatal("no legal White moves on the default opening")
	}
	cells = moves[0].Cells
	if _, err := b.MovePieces(cells, moves[0].Dir, board.White); err != nil {
		t.Fatalf("MovePieces: %v", err)
	}

	move, ok := e.BestMove(b, board.Black)
	if !ok {
		t.Fatal("BestMove reported no move")
	}
	trial := b.Copy()
	if _, err := trial.MovePieces(move.Cells, move.Dir, move.Mover); err != nil {
		t.Errorf("BestMove returned an illegal move: %v", err)
	}
}

func TestEngineClearTranspositionTable(t *testing.T) {
	e := NewEngine()
	e.tt.Store("b A1b", 1)
	e.ClearTranspositionTable()
	if e.tt.Size() != 0 {
		t.Errorf("Size() after ClearTranspositionTable() = %d, want 0", e.tt.Size())
	}
}
