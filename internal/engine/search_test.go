package engine

import (
	"testing"

	"github.com/hailam/abalone/internal/board"
)

func TestMinimaxDepthZeroReturnsStaticEval(t *testing.T) {
	b := board.NewBoard(board.LayoutDefault)
	tt := NewTranspositionTable()
	s := NewSearcher(tt)

	got := s.Minimax(b, 0, -Infinity, Infinity, board.Black, board.Black)
	want := Evaluate(b, board.Black)
	if got != want {
		t.Errorf("Minimax(depth=0) = %d, want %d (the static eval)", got, want)
	}
}

func TestFindBestMoveReturnsLegalMove(t *testing.T) {
	b := board.NewBoard(board.LayoutDefault)
	tt := NewTranspositionTable()

	move, ok := FindBestMove(b, board.Black, 1, 2.0, tt)
	if !ok {
		t.Fatal("FindBestMove reported no move on the default opening")
	}

	trial := b.Copy()
	if _, err := trial.MovePieces(move.Cells, move.Dir, move.Mover); err != nil {
		t.Errorf("FindBestMove returned an illegal move %v: %v", move, err)
	}
}

func TestFindBestMoveNoLegalMoves(t *testing.T) {
	b := board.NewEmptyBoard()
	tt := NewTranspositionTable()

	_, ok := FindBestMove(b, board.Black, 1, 2.0, tt)
	if ok {
		t.Error("FindBestMove on an empty board should report no move")
	}
}

func TestSuggestOpeningReturnsTripleMove(t *testing.T) {
	b := board.NewBoard(board.LayoutDefault)
	move, ok := SuggestOpening(b, board.Black)
	if !ok {
		t.Fatal("SuggestOpening found no 3-marble move on the default opening")
	}
	if len(move.Cells) != 3 {
		t.Errorf("SuggestOpening move has %d cells, want 3", len(move.Cells))
	}
}
