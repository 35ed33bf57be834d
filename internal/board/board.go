package board

import "fmt"

// Board represents a complete Abalone position: the marbles on all 61
// cells plus running counts of each color's surviving marbles.
type Board struct {
	cells       [9][]PieceColor
	whiteCount  int
	blackCount  int
	whiteLosses int
	blackLosses int
}

// NewBoard builds a board in the given starting layout.
func NewBoard(l Layout) *Board {
	b := &Board{cells: layoutFor(l)}
	b.recount()
	return b
}

// NewEmptyBoard builds a board with no marbles placed.
func NewEmptyBoard() *Board {
	return NewBoard(LayoutEmpty)
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	cp := &Board{
		cells:       cloneLayout(b.cells),
		whiteCount:  b.whiteCount,
		blackCount:  b.blackCount,
		whiteLosses: b.whiteLosses,
		blackLosses: b.blackLosses,
	}
	return cp
}

// Get returns the color occupying an external Position.
func (b *Board) Get(p Position) (PieceColor, error) {
	row, col, err := ToIndex(p)
	if err != nil {
		return Empty, err
	}
	return b.GetRaw(row, col), nil
}

// GetRaw returns the color at an internal (row, col); out-of-bounds
// coordinates return Empty rather than panicking, since move generation
// probes neighbors that may fall off the board.
func (b *Board) GetRaw(row, col int) PieceColor {
	if !InBounds(row, col) {
		return Empty
	}
	return b.cells[row][col]
}

// Set places a color (including Empty, to clear a cell) at an external
// Position.
func (b *Board) Set(p Position, c PieceColor) error {
	row, col, err := ToIndex(p)
	if err != nil {
		return err
	}
	b.setRaw(row, col, c)
	return nil
}

func (b *Board) setRaw(row, col int, c PieceColor) {
	old := b.cells[row][col]
	b.cells[row][col] = c
	b.adjustCount(old, -1)
	b.adjustCount(c, +1)
}

func (b *Board) adjustCount(c PieceColor, delta int) {
	switch c {
	case White:
		b.whiteCount += delta
	case Black:
		b.blackCount += delta
	}
}

func (b *Board) recount() {
	b.whiteCount, b.blackCount = 0, 0
	for r := range b.cells {
		for _, c := range b.cells[r] {
			b.adjustCount(c, +1)
		}
	}
}

// MarbleCount returns the number of marbles of the given color remaining
// on the board.
func (b *Board) MarbleCount(c PieceColor) int {
	switch c {
	case White:
		return b.whiteCount
	case Black:
		return b.blackCount
	default:
		return 0
	}
}

// MarblesLost returns how many of the given color's marbles have been
// pushed off the board.
func (b *Board) MarblesLost(c PieceColor) int {
	switch c {
	case White:
		return b.whiteLosses
	case Black:
		return b.blackLosses
	default:
		return 0
	}
}

// Winner returns the color that has pushed 6 or more of the opponent's
// marbles off the board, or Empty if the game is undecided.
func (b *Board) Winner() PieceColor {
	if b.whiteLosses >= 6 {
		return Black
	}
	if b.blackLosses >= 6 {
		return White
	}
	return Empty
}

// marblesAt returns the colors at a contiguous run of (row, col) cells
// starting at (row, col) and stepping in direction d, for n cells. It
// returns false if any cell along the run is off the board.
func (b *Board) marblesAt(row, col int, d Direction, n int) ([]PieceColor, bool) {
	out := make([]PieceColor, 0, n)
	r, c := row, col
	for i := 0; i < n; i++ {
		if !InBounds(r, c) {
			return nil, false
		}
		out = append(out, b.cells[r][c])
		if i < n-1 {
			r, c = ApplyDirection(r, c, d)
		}
	}
	return out, true
}

// MovePieces applies a move: the n marbles in cells (n is 1, 2, or 3,
// in any order) belonging to mover, advancing one step in direction d.
// It checks the group size and that every cell holds a mover marble,
// but not that a 2- or 3-marble group is contiguous along one axis. If the marbles are arranged inline with d (the group's
// own axis is d or its opposite) this may be a sumito push against an
// inline run of enemy marbles; otherwise it is a broadside sidestep and
// every destination cell must be empty.
//
// It returns the color of any marble pushed off the board (Empty if
// none), and ErrCannotMove if the move is illegal.
func (b *Board) MovePieces(cells []Coord, d Direction, mover PieceColor) (PieceColor, error) {
	n := len(cells)
	if n < 1 || n > 3 {
		return Empty, fmt.Errorf("%w: group size %d out of range 1-3", ErrInvalidParameter, n)
	}
	for _, cell := range cells {
		if b.GetRaw(cell.Row, cell.Col) != mover {
			return Empty, fmt.Errorf("%w: %s is not occupied by %s", ErrCannotMove, ToPosition(cell.Row, cell.Col), mover)
		}
	}

	if n == 1 {
		return b.moveSingle(cells[0], d, mover)
	}

	if isInlineGroup(cells, d) {
		ordered := orderedInlineCells(cells, d)
		return b.moveSumito(ordered, d, mover)
	}
	return b.moveSidestep(cells, d, mover)
}

// orderedInlineCells returns an inline group ordered from front (the
// cell leading the advance along d) to back, regardless of the order
// the caller passed them in. Callers must already have confirmed the
// group is inline along d.
func orderedInlineCells(cells []Coord, d Direction) []Coord {
	lead := leadingCell(cells, d)
	ordered := make([]Coord, len(cells))
	r, c := lead.Row, lead.Col
	back := d.Opposite()
	for i := range ordered {
		ordered[i] = Coord{r, c}
		r, c = ApplyDirection(r, c, back)
	}
	return ordered
}

// Coord is an internal (row, col) board address.
type Coord struct {
	Row, Col int
}

func isInlineGroup(cells []Coord, d Direction) bool {
	a, b := cells[0], cells[len(cells)-1]
	return IsInline(a.Row, a.Col, b.Row, b.Col, d)
}

func (b *Board) moveSingle(cell Coord, d Direction, mover PieceColor) (PieceColor, error) {
	nr, nc := ApplyDirection(cell.Row, cell.Col, d)
	if !InBounds(nr, nc) {
		return Empty, fmt.Errorf("%w: single move off the board", ErrCannotMove)
	}
	if b.GetRaw(nr, nc) != Empty {
		return Empty, fmt.Errorf("%w: destination %s occupied", ErrCannotMove, ToPosition(nr, nc))
	}
	b.setRaw(cell.Row, cell.Col, Empty)
	b.setRaw(nr, nc, mover)
	return Empty, nil
}

// moveSidestep shifts a 2- or 3-marble broadside group one step; every
// destination cell must be empty.
func (b *Board) moveSidestep(cells []Coord, d Direction, mover PieceColor) (PieceColor, error) {
	dests := make([]Coord, len(cells))
	for i, cell := range cells {
		nr, nc := ApplyDirection(cell.Row, cell.Col, d)
		if !InBounds(nr, nc) || b.GetRaw(nr, nc) != Empty {
			return Empty, fmt.Errorf("%w: sidestep destination blocked", ErrCannotMove)
		}
		dests[i] = Coord{nr, nc}
	}
	for _, cell := range cells {
		b.setRaw(cell.Row, cell.Col, Empty)
	}
	for _, dest := range dests {
		b.setRaw(dest.Row, dest.Col, mover)
	}
	return Empty, nil
}

// moveSumito advances an inline group of n marbles along its own axis.
// It walks past the leading marble counting opposing marbles (at most
// n-1, since a sumito needs strict numerical superiority) and then any
// trailing empty or off-board cell. A blocking ally, or an opposing run
// too long to overpower, makes the move illegal.
func (b *Board) moveSumito(cells []Coord, d Direction, mover PieceColor) (PieceColor, error) {
	lead := leadingCell(cells, d)
	enemy := mover.Other()

	r, c := ApplyDirection(lead.Row, lead.Col, d)
	var enemyRun []Coord
	for InBounds(r, c) && b.GetRaw(r, c) == enemy {
		enemyRun = append(enemyRun, Coord{r, c})
		r, c = ApplyDirection(r, c, d)
	}

	if len(enemyRun) == 0 {
		return b.moveUnopposedInline(cells, d, mover)
	}
	if len(enemyRun) >= len(cells) {
		return Empty, fmt.Errorf("%w: sumito outnumbered", ErrCannotMove)
	}
	if InBounds(r, c) && b.GetRaw(r, c) == mover {
		return Empty, fmt.Errorf("%w: sumito blocked by own marble", ErrCannotMove)
	}

	pushedOff := Empty
	if !InBounds(r, c) {
		pushedOff = enemy
		if enemy == White {
			b.whiteLosses++
		} else {
			b.blackLosses++
		}
	}

	// Shift from the front of the push to the back so no cell is
	// overwritten before it has been read.
	if InBounds(r, c) {
		b.setRaw(r, c, enemy)
	}
	for i := len(enemyRun) - 1; i > 0; i-- {
		b.setRaw(enemyRun[i].Row, enemyRun[i].Col, enemy)
	}
	if len(enemyRun) > 0 {
		b.setRaw(enemyRun[0].Row, enemyRun[0].Col, mover)
	}
	for i := len(cells) - 1; i >= 1; i-- {
		dr, dc := ApplyDirection(cells[i].Row, cells[i].Col, d)
		b.setRaw(dr, dc, mover)
	}
	b.setRaw(cells[len(cells)-1].Row, cells[len(cells)-1].Col, Empty)

	return pushedOff, nil
}

// moveUnopposedInline advances an inline group with nothing ahead of it:
// equivalent to a single-marble move but for the whole line.
func (b *Board) moveUnopposedInline(cells []Coord, d Direction, mover PieceColor) (PieceColor, error) {
	lead := leadingCell(cells, d)
	nr, nc := ApplyDirection(lead.Row, lead.Col, d)
	if !InBounds(nr, nc) {
		return Empty, fmt.Errorf("%w: inline move off the board", ErrCannotMove)
	}
	if b.GetRaw(nr, nc) != Empty {
		return Empty, fmt.Errorf("%w: inline destination occupied", ErrCannotMove)
	}
	for i := len(cells) - 1; i >= 0; i-- {
		dr, dc := ApplyDirection(cells[i].Row, cells[i].Col, d)
		b.setRaw(dr, dc, mover)
	}
	b.setRaw(cells[len(cells)-1].Row, cells[len(cells)-1].Col, Empty)
	return Empty, nil
}

// leadingCell returns the cell in cells furthest along direction d: the
// one whose next cell along d is not itself part of the group.
func leadingCell(cells []Coord, d Direction) Coord {
	for _, cell := range cells {
		nr, nc := ApplyDirection(cell.Row, cell.Col, d)
		ahead := false
		for _, other := range cells {
			if other.Row == nr && other.Col == nc {
				ahead = true
				break
			}
		}
		if !ahead {
			return cell
		}
	}
	return cells[0]
}

// String renders the board as a human-readable 9-row hex grid, widest
// row (E, the middle) centered, for debugging and CLI output.
func (b *Board) String() string {
	s := ""
	for r := 0; r < 9; r++ {
		pad := 4 - r
		if r > 4 {
			pad = r - 4
		}
		for i := 0; i < pad; i++ {
			s += " "
		}
		for _, c := range b.cells[r] {
			switch c {
			case White:
				s += "w "
			case Black:
				s += "b "
			default:
				s += ". "
			}
		}
		s += "\n"
	}
	return s
}
