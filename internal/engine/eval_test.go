package engine

import (
	"testing"

	"github.com/hailam/abalone/internal/board"
)

func TestEvaluateWinThresholdAt8OrFewerMarbles(t *testing.T) {
	b := board.NewEmptyBoard()
	placeMarbles(t, b, board.White, 8)
	placeMarbles(t, b, board.Black, 14)

	score := Evaluate(b, board.Black)
	if score != WinWeight {
		t.Errorf("Evaluate() = %d, want WinWeight (%d) when opponent has 8 marbles", score, WinWeight)
	}
}

func TestMaterialTermTenXAsymmetry(t *testing.T) {
	b := board.NewEmptyBoard()
	placeMarbles(t, b, board.Black, 13) // one Black marble already lost
	placeMarbles(t, b, board.White, 14)

	got := materialTerm(b, board.Black)
	want := (14-14)*PieceWeight - (14-13)*10*PieceWeight
	if got != want {
		t.Errorf("materialTerm() = %d, want %d", got, want)
	}
}

func TestEvaluateFromRootMoverPerspective(t *testing.T) {
	b := board.NewBoard(board.LayoutDefault)
	white := Evaluate(b, board.White)
	black := Evaluate(b, board.Black)
	if white != black {
		t.Errorf("symmetric default layout: Evaluate(White)=%d, Evaluate(Black)=%d, want equal", white, black)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// placeMarbles fills the first n cells of row A (and onward if needed)
// with color, for evaluator tests that only care about marble counts.
func placeMarbles(t *testing.T, b *board.Board, color board.PieceColor, n int) {
	t.Helper()
	placed := 0
	for letter := byte('A'); letter <= 'I' && placed < n; letter++ {
		for digit := 1; digit <= 9 && placed < n; digit++ {
			pos := board.Position{Letter: letter, Digit: digit}
			if _, _, err := board.ToIndex(pos); err != nil {
				continue
			}
			if existing, _ := b.Get(pos); existing != board.Empty {
				continue
			}
			if err := b.Set(pos, color); err != nil {
				continue
			}
			placed++
		}
	}
}
