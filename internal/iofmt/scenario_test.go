package iofmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hailam/abalone/internal/board"
)

func TestReadScenarioParsesMoverAndBoard(t *testing.T) {
	b := board.NewBoard(board.LayoutDefault)
	input := "b\n" + b.Encode() + "\n"

	scn, err := ReadScenario(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadScenario: %v", err)
	}
	if scn.Mover != board.Black {
		t.Errorf("Mover = %v, want Black", scn.Mover)
	}
	if scn.Board.Encode() != b.Encode() {
		t.Errorf("Board.Encode() = %q, want %q", scn.Board.Encode(), b.Encode())
	}
}

func TestReadScenarioRejectsBadMoverLine(t *testing.T) {
	_, err := ReadScenario(strings.NewReader("x\nA1b\n"))
	if err == nil {
		t.Fatal("expected an error for an invalid mover line")
	}
}

func TestReadScenarioRejectsMissingLines(t *testing.T) {
	_, err := ReadScenario(strings.NewReader("b\n"))
	if err == nil {
		t.Fatal("expected an error for a missing board-string line")
	}
}

func TestWriteBoardLineRoundTrip(t *testing.T) {
	b := board.NewBoard(board.LayoutDefault)
	var buf bytes.Buffer
	if err := WriteBoardLine(&buf, b); err != nil {
		t.Fatalf("WriteBoardLine: %v", err)
	}
	if strings.TrimSpace(buf.String()) != b.Encode() {
		t.Errorf("WriteBoardLine output = %q, want %q", buf.String(), b.Encode())
	}
}

func TestWriteMoveTupleLineFormat(t *testing.T) {
	b := board.NewBoard(board.LayoutDefault)
	moves := board.LegalMoves(b, board.White)
	if len(moves) == 0 {
		t.Fatal("no legal White moves on the default opening")
	}

	var buf bytes.Buffer
	if err := WriteMoveTupleLine(&buf, moves[0]); err != nil {
		t.Fatalf("WriteMoveTupleLine: %v", err)
	}

	line := strings.TrimSpace(buf.String())
	// The "(Δrow,Δcol)" delta itself contains one comma, so it spans the
	// last two comma-separated fields.
	fields := strings.Split(line, ",")
	if len(fields) != len(moves[0].Cells)+2 {
		t.Errorf("got %d comma-separated fields, want %d", len(fields), len(moves[0].Cells)+2)
	}
	last := strings.Join(fields[len(fields)-2:], ",")
	if !strings.HasPrefix(last, "(") || !strings.HasSuffix(last, ")") {
		t.Errorf("last field %q is not a parenthesized delta", last)
	}
}
