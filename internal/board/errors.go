package board

import "errors"

// ErrCannotMove is returned when an attempted move violates a rule: an
// ally blocks the destination, a sumito is overpowered or sandwiched, a
// single marble would move out of bounds or onto an occupied cell, or a
// sidestep destination is occupied. The search never propagates it: a
// generated move that returns it is skipped, and the generator only
// emits moves that apply cleanly.
var ErrCannotMove = errors.New("board: cannot move")

// ErrInvalidParameter is returned for a malformed coordinate or a marble
// selection of the wrong length (not 1-3 cells). MovePieces does not
// check that a 2- or 3-marble selection forms a column, so a non-column
// selection does not produce this error. It indicates a programming
// error in the caller, not an illegal-but-well-formed move.
var ErrInvalidParameter = errors.New("board: invalid parameter")
