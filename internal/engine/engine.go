package engine

import (
	"log"
	"time"

	"github.com/hailam/abalone/internal/board"
)

// Difficulty represents the AI difficulty level.
type Difficulty int

const (
	Easy   Difficulty = iota // depth 1, 2s budget
	Medium                   // depth 2, 5s budget
	Hard                     // depth 3, 10s budget
)

// DifficultySettings maps difficulty to search depth and time budget.
// The specification's visible call uses depth 1; Medium and Hard raise
// it while still honoring the time budget, as the spec allows.
var DifficultySettings = map[Difficulty]struct {
	Depth             int
	TimeBudgetSeconds float64
}{
	Easy:   {Depth: 1, TimeBudgetSeconds: 2},
	Medium: {Depth: 2, TimeBudgetSeconds: 5},
	Hard:   {Depth: 3, TimeBudgetSeconds: 10},
}

// Engine is the Abalone AI engine: a transposition table shared across
// searches plus the difficulty-to-depth/budget mapping used by
// FindBestMove.
type Engine struct {
	tt         *TranspositionTable
	difficulty Difficulty
}

// NewEngine creates an engine with a fresh transposition table.
func NewEngine() *Engine {
	log.Printf("[Engine] Creating Abalone engine")
	return &Engine{
		tt:         NewTranspositionTable(),
		difficulty: Medium,
	}
}

// SetDifficulty sets the engine's difficulty.
func (e *Engine) SetDifficulty(d Difficulty) {
	e.difficulty = d
}

// Difficulty returns the engine's current difficulty.
func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

// ClearTranspositionTable drops all cached scores, for use between games.
func (e *Engine) ClearTranspositionTable() {
	e.tt.Clear()
}

// BestMove finds the best move for side on b at the engine's current
// difficulty. On a fresh board with Black to move, it instead returns a
// random 3-marble opening move, per the specification's opening
// suggestion rule.
func (e *Engine) BestMove(b *board.Board, side board.PieceColor) (board.Move, bool) {
	if isFreshBoard(b) && side == board.Black {
		if m, ok := SuggestOpening(b, side); ok {
			return m, true
		}
	}

	settings := DifficultySettings[e.difficulty]
	start := time.Now()
	move, ok := FindBestMove(b, side, settings.Depth, settings.TimeBudgetSeconds, e.tt)
	log.Printf("[Engine] BestMove depth=%d budget=%.1fs elapsed=%s tt_size=%d hit_rate=%.1f%%",
		settings.Depth, settings.TimeBudgetSeconds, time.Since(start), e.tt.Size(), e.tt.HitRate())
	return move, ok
}

// defaultOpeningEncoding is computed once and compared against by
// isFreshBoard; a plain move never changes marble counts, so counting
// marbles cannot tell a fresh board from one several moves in.
var defaultOpeningEncoding = board.NewBoard(board.LayoutDefault).Encode()

// isFreshBoard reports whether b is exactly the Default starting layout.
func isFreshBoard(b *board.Board) bool {
	return b.Encode() == defaultOpeningEncoding
}
