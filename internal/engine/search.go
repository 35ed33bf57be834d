package engine

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/hailam/abalone/internal/board"
)

// Infinity bounds the initial alpha-beta window.
const Infinity = math.MaxInt32

// Searcher performs alpha-beta minimax search over Abalone positions,
// backed by a shared transposition table.
type Searcher struct {
	tt        *TranspositionTable
	rootMover board.PieceColor
	nodes     uint64
}

// NewSearcher creates a searcher backed by tt.
func NewSearcher(tt *TranspositionTable) *Searcher {
	return &Searcher{tt: tt}
}

// Nodes returns the number of nodes visited by the most recent search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Minimax scores b, depth plies deep, for rootMover's perspective.
// mover is the side to move at this node; maximizing is true when mover
// is still the root mover's side (the MAX branch), false for the
// opponent (the MIN branch). This mirrors the specification's explicit
// separate-branches formulation rather than a negamax sign flip.
func (s *Searcher) Minimax(b *board.Board, depth int, alpha, beta int, mover board.PieceColor, rootMover board.PieceColor) int {
	s.nodes++
	if depth == 0 {
		return Evaluate(b, rootMover)
	}

	moves := board.LegalMoves(b, mover)
	maximizing := mover == rootMover

	best := Infinity
	if maximizing {
		best = -Infinity
	}

	for _, m := range moves {
		child := b.Copy()
		if _, err := child.MovePieces(m.Cells, m.Dir, m.Mover); err != nil {
			continue
		}
		next := mover.Other()
		key := fmt.Sprintf("%c %s", next.Char(), child.Encode())

		score, ok := s.tt.Probe(key)
		if !ok {
			score = s.Minimax(child, depth-1, alpha, beta, next, rootMover)
			s.tt.Store(key, score)
		}

		if maximizing {
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
		}
		if beta <= alpha {
			break
		}
	}

	return best
}

// FindBestMove enumerates side's legal moves at the root, scores each
// with Minimax at the given depth, and returns the highest-scoring
// move found within timeBudgetSeconds (minus the fixed safety margin).
// Cancellation is checked only between root moves: once a recursive
// call starts, it runs to completion.
func FindBestMove(b *board.Board, side board.PieceColor, depth int, timeBudgetSeconds float64, tt *TranspositionTable) (board.Move, bool) {
	moves := board.LegalMoves(b, side)
	if len(moves) == 0 {
		return board.Move{}, false
	}

	tm := NewTimeManager(timeBudgetSeconds)
	tm.Start()

	s := NewSearcher(tt)
	best := moves[0]
	bestScore := -Infinity
	found := false

	for _, m := range moves {
		child := b.Copy()
		if _, err := child.MovePieces(m.Cells, m.Dir, m.Mover); err != nil {
			continue
		}
		score := s.Minimax(child, depth, -Infinity, Infinity, side.Other(), side)
		if !found || score > bestScore {
			bestScore = score
			best = m
			found = true
		}
		if tm.Expired() {
			break
		}
	}

	return best, true
}

// SuggestOpening returns a random 3-marble legal move for side, for use
// on a fresh board to avoid predictable openings. It bypasses
// evaluation entirely.
func SuggestOpening(b *board.Board, side board.PieceColor) (board.Move, bool) {
	moves := board.LegalMoves(b, side)
	var triples []board.Move
	for _, m := range moves {
		if len(m.Cells) == 3 {
			triples = append(triples, m)
		}
	}
	if len(triples) == 0 {
		return board.Move{}, false
	}
	return triples[rand.Intn(len(triples))], true
}
