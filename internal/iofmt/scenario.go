// Package iofmt implements the optional offline file interface: reading
// a two-line scenario file (mover plus board-string) and writing the
// board-string or move-tuple output lines the batch solver emits.
package iofmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hailam/abalone/internal/board"
)

// Scenario is a parsed input file: which side is to move and the board
// position to move from.
type Scenario struct {
	Mover board.PieceColor
	Board *board.Board
}

// ReadScenario parses the two-line input format: line 1 is "b" or "w"
// naming the mover, line 2 is the board-string encoding.
func ReadScenario(r io.Reader) (*Scenario, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("iofmt: missing mover line")
	}
	moverLine := strings.TrimSpace(scanner.Text())

	var mover board.PieceColor
	switch moverLine {
	case "b":
		mover = board.Black
	case "w":
		mover = board.White
	default:
		return nil, fmt.Errorf("iofmt: mover line must be \"b\" or \"w\", got %q", moverLine)
	}

	if !scanner.Scan() {
		return nil, fmt.Errorf("iofmt: missing board-string line")
	}
	boardLine := strings.TrimSpace(scanner.Text())

	b, err := board.Decode(boardLine)
	if err != nil {
		return nil, fmt.Errorf("iofmt: %w", err)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Scenario{Mover: mover, Board: b}, nil
}

// WriteBoardLine writes one board-string line, the format used for
// board-configuration output files.
func WriteBoardLine(w io.Writer, b *board.Board) error {
	_, err := fmt.Fprintln(w, b.Encode())
	return err
}

// WriteMoveTupleLine writes one move-tuple output line: the move's
// source positions followed by the direction vector (Δrow, Δcol),
// computed relative to the move's first listed source cell.
func WriteMoveTupleLine(w io.Writer, m board.Move) error {
	parts := make([]string, 0, len(m.Cells)+1)
	for _, p := range m.Positions() {
		parts = append(parts, p.String())
	}

	dRow, dCol := moveDelta(m)
	parts = append(parts, fmt.Sprintf("(%d,%d)", dRow, dCol))

	_, err := fmt.Fprintln(w, strings.Join(parts, ","))
	return err
}

// moveDelta returns the (Δrow, Δcol) internal-coordinate step Dir takes
// from the move's first listed cell. The column step of a hex direction
// is not translation-invariant across the board's middle row, so the
// vector is only meaningful anchored to a specific source cell; the
// move's first cell is used as that anchor.
func moveDelta(m board.Move) (int, int) {
	anchor := m.Cells[0]
	newRow, newCol := board.ApplyDirection(anchor.Row, anchor.Col, m.Dir)
	return newRow - anchor.Row, newCol - anchor.Col
}
