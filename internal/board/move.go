package board

import "strings"

// Move is a candidate move produced by the generator: a group of 1 to 3
// same-colored marbles (by internal coordinate) advancing one step in
// Dir. Cells is not required to be in any particular order; MovePieces
// works it out from Dir.
type Move struct {
	Cells []Coord
	Dir   Direction
	Mover PieceColor
}

// Positions returns the external-notation source cells of the move.
func (m Move) Positions() []Position {
	out := make([]Position, len(m.Cells))
	for i, c := range m.Cells {
		out[i] = ToPosition(c.Row, c.Col)
	}
	return out
}

// String renders a move as its source cells followed by the direction,
// e.g. "C3 C4 C5 UpRight".
func (m Move) String() string {
	parts := make([]string, 0, len(m.Cells)+1)
	for _, p := range m.Positions() {
		parts = append(parts, p.String())
	}
	parts = append(parts, m.Dir.String())
	return strings.Join(parts, " ")
}

// MoveRecord is one entry in a game's move history: the move that was
// played, the color that played it, and the color (if any) pushed off
// the board as a result.
type MoveRecord struct {
	Move      Move
	PushedOff PieceColor
}

// String renders a move record for display, e.g. "Black: C3 C4 C5 UpRight".
func (r MoveRecord) String() string {
	s := r.Move.Mover.String() + ": " + r.Move.String()
	if r.PushedOff != Empty {
		s += " (pushes off " + r.PushedOff.String() + ")"
	}
	return s
}
