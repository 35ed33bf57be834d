package board

// Direction is one of the six hex-grid movement vectors.
type Direction uint8

const (
	UpLeft Direction = iota
	UpRight
	Left
	Right
	DownLeft
	DownRight
)

// AllDirections lists every direction, in generation order.
var AllDirections = [6]Direction{UpLeft, UpRight, Left, Right, DownLeft, DownRight}

// letterDelta and colDelta give each direction's movement vector in
// (ΔLetter, ΔDigit) terms, per spec: UpLeft(+1,0), UpRight(+1,+1),
// Left(0,-1), Right(0,+1), DownLeft(-1,-1), DownRight(-1,0).
var letterDelta = [6]int{+1, +1, 0, 0, -1, -1}
var colDelta = [6]int{0, +1, -1, +1, -1, 0}

// String names the direction.
func (d Direction) String() string {
	switch d {
	case UpLeft:
		return "UpLeft"
	case UpRight:
		return "UpRight"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case DownLeft:
		return "DownLeft"
	case DownRight:
		return "DownRight"
	default:
		return "Invalid"
	}
}

// Opposite returns the direction pointing the other way along the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case UpLeft:
		return DownRight
	case UpRight:
		return DownLeft
	case Left:
		return Right
	case Right:
		return Left
	case DownLeft:
		return UpRight
	default: // DownRight
		return UpLeft
	}
}

// ApplyDirection steps an internal (row, col) one cell in the given
// direction. It is not bounds-checked; callers must test InBounds on the
// result before using it.
//
// The row step is the direction's Letter delta negated (internal rows
// run opposite to Letter order). The column step additionally corrects
// for the diagonal numbering shift that occurs crossing the board's
// middle row: ordinarily the correction (-ΔLetter) applies whenever the
// destination row is above the middle (row < 4, Letters F..I), but the
// single step from row 3 into row 4 needs the same correction even
// though row 4 is the middle row itself — this is the board's one genuinely
// irregular case, verified against the reference implementation.
func ApplyDirection(row, col int, d Direction) (int, int) {
	dLetter := letterDelta[d]
	dCol := colDelta[d]

	newRow := row - dLetter

	var newCol int
	switch {
	case row == 3 && newRow == 4:
		newCol = col + dCol - dLetter
	case newRow >= 4:
		newCol = col + dCol
	default:
		newCol = col + dCol - dLetter
	}

	return newRow, newCol
}

// IsInline reports whether the displacement from a to b is a positive or
// negative multiple of dir's unit vector, i.e. whether a and b lie on
// the same line through dir's axis. The row component compares raw
// internal-row deltas (not Letter deltas) against the direction's Letter
// delta directly and the column component compares Digit deltas — this
// mirrors the reference implementation's position_difference/is_inline
// pairing exactly, including its a-minus-b column convention.
func IsInline(aRow, aCol, bRow, bCol int, d Direction) bool {
	rowDiff := bRow - aRow
	aPos := ToPosition(aRow, aCol)
	bPos := ToPosition(bRow, bCol)
	colDiff := aPos.Digit - bPos.Digit

	if rowDiff*colDelta[d] != colDiff*letterDelta[d] {
		return false
	}

	unitRow := normalizeStep(rowDiff)
	unitCol := normalizeStep(colDiff)

	forwards := unitRow == letterDelta[d] && unitCol == colDelta[d]
	backwards := -unitRow == letterDelta[d] && -unitCol == colDelta[d]

	return forwards || backwards
}

func normalizeStep(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
