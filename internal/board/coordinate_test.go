package board

import "testing"

func TestToIndexRoundTrip(t *testing.T) {
	for row := 0; row < 9; row++ {
		for col := 0; col < RowLength(row); col++ {
			pos := ToPosition(row, col)
			gotRow, gotCol, err := ToIndex(pos)
			if err != nil {
				t.Fatalf("ToIndex(%v) from (row=%d,col=%d): %v", pos, row, col, err)
			}
			if gotRow != row || gotCol != col {
				t.Errorf("round trip (row=%d,col=%d) -> %v -> (row=%d,col=%d)", row, col, pos, gotRow, gotCol)
			}
		}
	}
}

func TestToIndexKnownPositions(t *testing.T) {
	cases := []struct {
		pos      Position
		row, col int
	}{
		{Position{'I', 5}, 0, 0},
		{Position{'A', 1}, 8, 0},
		{Position{'E', 5}, 4, 4},
		{Position{'C', 3}, 6, 2},
	}
	for _, tc := range cases {
		row, col, err := ToIndex(tc.pos)
		if err != nil {
			t.Fatalf("ToIndex(%v): %v", tc.pos, err)
		}
		if row != tc.row || col != tc.col {
			t.Errorf("ToIndex(%v) = (%d,%d), want (%d,%d)", tc.pos, row, col, tc.row, tc.col)
		}
	}
}

func TestToIndexRejectsOutOfBounds(t *testing.T) {
	cases := []Position{
		{'I', 1}, // row I only has digits 5-9
		{'A', 9}, // row A only has digits 1-5
		{'Z', 1},
		{'A', 0},
	}
	for _, p := range cases {
		if _, _, err := ToIndex(p); err == nil {
			t.Errorf("ToIndex(%v) = nil error, want ErrInvalidParameter", p)
		}
	}
}
