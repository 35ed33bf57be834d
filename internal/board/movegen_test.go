package board

import "testing"

func TestLegalMovesDefaultOpeningCount(t *testing.T) {
	b := NewBoard(LayoutDefault)
	moves := LegalMoves(b, Black)
	if len(moves) == 0 {
		t.Fatal("expected legal moves from the default opening position")
	}
	if len(moves) != 44 {
		t.Errorf("LegalMoves on the default opening = %d moves, want 44", len(moves))
	}
	for _, m := range moves {
		if m.Mover != Black {
			t.Errorf("move %v has mover %v, want Black", m, m.Mover)
		}
	}
}

func TestLegalMovesOrderTriplesSinglesDoubles(t *testing.T) {
	b := NewBoard(LayoutDefault)
	moves := LegalMoves(b, Black)

	sizeAt := func(i int) int { return len(moves[i].Cells) }

	lastTriple, firstSingle, lastSingle, firstDouble := -1, -1, -1, -1
	for i, m := range moves {
		switch len(m.Cells) {
		case 3:
			lastTriple = i
		case 1:
			if firstSingle == -1 {
				firstSingle = i
			}
			lastSingle = i
		case 2:
			if firstDouble == -1 {
				firstDouble = i
			}
		}
	}
	if lastTriple != -1 && firstSingle != -1 && lastTriple > firstSingle {
		t.Errorf("a triple move (index %d) appears after a single move (index %d)", lastTriple, firstSingle)
	}
	if lastSingle != -1 && firstDouble != -1 && lastSingle > firstDouble {
		t.Errorf("a single move (index %d) appears after a double move (index %d)", lastSingle, firstDouble)
	}
	_ = sizeAt
}

func TestLegalMovesNoEnemyMarblesMoved(t *testing.T) {
	b := NewBoard(LayoutDefault)
	moves := LegalMoves(b, White)
	for _, m := range moves {
		for _, cell := range m.Cells {
			if b.GetRaw(cell.Row, cell.Col) != White {
				t.Errorf("move %v references a non-White cell", m)
			}
		}
	}
}

func TestSumitoRequiresNumericalSuperiority(t *testing.T) {
	b := NewEmptyBoard()
	// Two Black marbles push into two White marbles: equal numbers, illegal.
	must(t, b.Set(Position{'E', 3}, Black))
	must(t, b.Set(Position{'E', 4}, Black))
	must(t, b.Set(Position{'E', 5}, White))
	must(t, b.Set(Position{'E', 6}, White))

	cells := []Coord{mustIndex(t, Position{'E', 3}), mustIndex(t, Position{'E', 4})}
	if _, err := b.MovePieces(cells, Right, Black); err == nil {
		t.Error("2-vs-2 sumito should be illegal, got no error")
	}
}

func TestSumitoPushesOffBoard(t *testing.T) {
	b := NewEmptyBoard()
	must(t, b.Set(Position{'A', 1}, White))
	must(t, b.Set(Position{'A', 2}, Black))
	must(t, b.Set(Position{'A', 3}, Black))
	must(t, b.Set(Position{'A', 4}, Black))

	cells := []Coord{
		mustIndex(t, Position{'A', 2}),
		mustIndex(t, Position{'A', 3}),
		mustIndex(t, Position{'A', 4}),
	}
	pushed, err := b.MovePieces(cells, Left, Black)
	if err != nil {
		t.Fatalf("MovePieces: %v", err)
	}
	if pushed != White {
		t.Errorf("pushed = %v, want White", pushed)
	}
	if b.MarblesLost(White) != 1 {
		t.Errorf("MarblesLost(White) = %d, want 1", b.MarblesLost(White))
	}
	if b.Winner() != Empty {
		t.Errorf("Winner() = %v after a single loss, want Empty", b.Winner())
	}
}

func TestSidestepRequiresAllDestinationsEmpty(t *testing.T) {
	b := NewEmptyBoard()
	must(t, b.Set(Position{'E', 4}, Black))
	must(t, b.Set(Position{'E', 5}, Black))
	must(t, b.Set(Position{'D', 4}, White)) // blocks one sidestep destination

	cells := []Coord{mustIndex(t, Position{'E', 4}), mustIndex(t, Position{'E', 5})}
	if _, err := b.MovePieces(cells, DownLeft, Black); err == nil {
		t.Error("sidestep onto an occupied cell should be illegal")
	}
}

func TestWinnerAfterSixLosses(t *testing.T) {
	b := NewEmptyBoard()
	for i := 0; i < 6; i++ {
		b.whiteLosses++
	}
	if b.Winner() != Black {
		t.Errorf("Winner() = %v, want Black after 6 White losses", b.Winner())
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func mustIndex(t *testing.T, p Position) Coord {
	t.Helper()
	row, col, err := ToIndex(p)
	if err != nil {
		t.Fatal(err)
	}
	return Coord{row, col}
}
