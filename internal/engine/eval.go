// Package engine implements the Abalone search engine: static
// evaluation, alpha-beta minimax, the transposition table, and
// time-bounded best-move selection.
package engine

import "github.com/hailam/abalone/internal/board"

// Heuristic weight constants.
const (
	WinWeight   = 4096
	PieceWeight = 150
)

// groupWeight is indexed by group size minus 1: a lone marble earns
// nothing, a pair earns 1, a triple earns 2.
var groupWeight = [3]int{0, 1, 2}

// distanceWeight[0] is the innermost tile's weight (the center, E5)
// and distanceWeight[4] is the outermost ring's.
var distanceWeight = [5]int{4, 3, 2, 1, 0}

// distanceTileArray gives each cell's own-centrality weight, a 9-row
// jagged board indexed [row][col] with row 0 the I row and row 8 the A
// row, transcribed from enums.py's DISTANCE_TILE_ARRAY.
var distanceTileArray = [9][]int{
	{0, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 0},
	{0, 1, 2, 2, 2, 1, 0},
	{0, 1, 2, 3, 3, 2, 1, 0},
	{0, 1, 2, 3, 4, 3, 2, 1, 0},
	{0, 1, 2, 3, 3, 2, 1, 0},
	{0, 1, 2, 2, 2, 1, 0},
	{0, 1, 1, 1, 1, 0},
	{0, 0, 0, 0, 0},
}

// enemyDistanceTileArray gives each cell's enemy-edge weight. It
// follows the same ring structure as distanceTileArray, with the
// outermost ring worth distanceWeight[0]*2 (=8) to reward pushing the
// opponent toward the edge. The true center cell (E5) is 0 rather than
// enums.py's literal 4 — see DESIGN.md's Open Question decisions for
// why this repository departs from the source array at that one cell.
var enemyDistanceTileArray = [9][]int{
	{8, 8, 8, 8, 8},
	{8, 3, 3, 3, 3, 8},
	{8, 3, 2, 2, 2, 3, 8},
	{8, 3, 2, 3, 3, 2, 3, 8},
	{8, 3, 2, 3, 0, 3, 2, 3, 8},
	{8, 3, 2, 3, 3, 2, 3, 8},
	{8, 3, 2, 2, 2, 3, 8},
	{8, 3, 3, 3, 3, 8},
	{8, 8, 8, 8, 8},
}

// Evaluate scores b from side's perspective: positive favors side,
// negative favors its opponent. Once the opponent is down to 8 or fewer
// marbles the score is WinWeight alone, with no positional terms added.
func Evaluate(b *board.Board, side board.PieceColor) int {
	if b.MarbleCount(side.Other()) <= 8 {
		return WinWeight
	}
	return materialTerm(b, side) + centralityTerm(b, side) + enemyEdgeTerm(b, side) + groupTerm(b, side)
}

func materialTerm(b *board.Board, side board.PieceColor) int {
	opp := side.Other()
	ownCount := b.MarbleCount(side)
	oppCount := b.MarbleCount(opp)

	if oppCount <= 8 {
		return WinWeight
	}
	return (14-oppCount)*PieceWeight - (14-ownCount)*10*PieceWeight
}

func centralityTerm(b *board.Board, side board.PieceColor) int {
	return sumTileWeights(b, side, distanceTileArray)
}

func enemyEdgeTerm(b *board.Board, side board.PieceColor) int {
	return sumTileWeights(b, side.Other(), enemyDistanceTileArray)
}

func sumTileWeights(b *board.Board, color board.PieceColor, weights [9][]int) int {
	total := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < board.RowLength(r); c++ {
			if b.GetRaw(r, c) == color {
				total += weights[r][c]
			}
		}
	}
	return total
}

func groupTerm(b *board.Board, side board.PieceColor) int {
	triples := len(tripleGroupsForColor(b, side))
	doubles := len(doubleGroupsForColor(b, side))
	return triples*groupWeight[2] + doubles*groupWeight[1]
}

// tripleGroupsForColor and doubleGroupsForColor reuse board's own
// group-finding logic via its exported move generator rather than
// re-walking axes here; group counting only needs the group shapes,
// not the legal moves they produce.
func tripleGroupsForColor(b *board.Board, side board.PieceColor) [][]board.Coord {
	return board.InlineGroups(b, side, 3)
}

func doubleGroupsForColor(b *board.Board, side board.PieceColor) [][]board.Coord {
	return board.InlineGroups(b, side, 2)
}
