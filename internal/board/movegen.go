package board

// axis pairs the two opposite directions that make up one of the
// board's three lines of play. A group of 2 or 3 marbles is only a
// legal group if it lies along one of these axes.
type axis struct {
	fwd, back Direction
}

var axes = [3]axis{
	{UpLeft, DownRight},
	{UpRight, DownLeft},
	{Left, Right},
}

// LegalMoves returns every legal move for mover on b, in the fixed
// order triples, then singles, then doubles.
func LegalMoves(b *Board, mover PieceColor) []Move {
	var moves []Move
	moves = append(moves, movesForGroups(b, tripleGroups(b, mover), mover)...)
	moves = append(moves, movesForGroups(b, singleGroups(b, mover), mover)...)
	moves = append(moves, movesForGroups(b, doubleGroups(b, mover), mover)...)
	return moves
}

// InlineGroups returns every inline group of exactly size same-colored
// marbles belonging to mover (1, 2, or 3), used by the evaluator's
// group-bonus term as well as by move generation.
func InlineGroups(b *Board, mover PieceColor, size int) [][]Coord {
	switch size {
	case 1:
		return singleGroups(b, mover)
	case 2:
		return doubleGroups(b, mover)
	case 3:
		return tripleGroups(b, mover)
	default:
		return nil
	}
}

func movesForGroups(b *Board, groups [][]Coord, mover PieceColor) []Move {
	var moves []Move
	for _, cells := range groups {
		for _, d := range AllDirections {
			trial := b.Copy()
			if _, err := trial.MovePieces(cells, d, mover); err == nil {
				moves = append(moves, Move{Cells: cells, Dir: d, Mover: mover})
			}
		}
	}
	return moves
}

// singleGroups lists every mover-occupied cell as its own one-marble group.
func singleGroups(b *Board, mover PieceColor) [][]Coord {
	var groups [][]Coord
	for r := 0; r < 9; r++ {
		for c := 0; c < RowLength(r); c++ {
			if b.GetRaw(r, c) == mover {
				groups = append(groups, []Coord{{r, c}})
			}
		}
	}
	return groups
}

// doubleGroups lists every inline pair of adjacent mover marbles, one
// entry per axis per starting cell, generated only along each axis's
// canonical forward direction so each pair appears once.
func doubleGroups(b *Board, mover PieceColor) [][]Coord {
	var groups [][]Coord
	for r := 0; r < 9; r++ {
		for c := 0; c < RowLength(r); c++ {
			if b.GetRaw(r, c) != mover {
				continue
			}
			for _, ax := range axes {
				nr, nc := ApplyDirection(r, c, ax.fwd)
				if InBounds(nr, nc) && b.GetRaw(nr, nc) == mover {
					groups = append(groups, []Coord{{r, c}, {nr, nc}})
				}
			}
		}
	}
	return groups
}

// tripleGroups lists every inline run of three adjacent mover marbles,
// generated only along each axis's canonical forward direction.
func tripleGroups(b *Board, mover PieceColor) [][]Coord {
	var groups [][]Coord
	for r := 0; r < 9; r++ {
		for c := 0; c < RowLength(r); c++ {
			if b.GetRaw(r, c) != mover {
				continue
			}
			for _, ax := range axes {
				r1, c1 := ApplyDirection(r, c, ax.fwd)
				if !InBounds(r1, c1) || b.GetRaw(r1, c1) != mover {
					continue
				}
				r2, c2 := ApplyDirection(r1, c1, ax.fwd)
				if !InBounds(r2, c2) || b.GetRaw(r2, c2) != mover {
					continue
				}
				groups = append(groups, []Coord{{r, c}, {r1, c1}, {r2, c2}})
			}
		}
	}
	return groups
}
