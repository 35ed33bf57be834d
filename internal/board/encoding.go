package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode renders the board as the canonical board-string: black pieces
// then white pieces, each as "<Letter><Digit><c>" (c is 'b' or 'w'),
// comma-separated with no trailing comma, rows enumerated from I down
// to A (internal row 0 to 8) and columns left to right within a row.
// Only occupied cells appear. This is the format used by transposition
// keys and the offline scenario file interface.
func (b *Board) Encode() string {
	var black, white []string
	for r := 0; r < 9; r++ {
		for c := 0; c < RowLength(r); c++ {
			color := b.GetRaw(r, c)
			if color == Empty {
				continue
			}
			pos := ToPosition(r, c)
			entry := fmt.Sprintf("%c%d%c", pos.Letter, pos.Digit, color.Char())
			if color == Black {
				black = append(black, entry)
			} else {
				white = append(white, entry)
			}
		}
	}
	return strings.Join(append(black, white...), ",")
}

// Decode parses a board-string (as produced by Encode) into a fresh
// Board. Unlike Encode, entry order does not matter on input.
func Decode(s string) (*Board, error) {
	b := NewEmptyBoard()
	s = strings.TrimSpace(s)
	if s == "" {
		return b, nil
	}
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if len(entry) < 3 {
			return nil, fmt.Errorf("%w: malformed board-string entry %q", ErrInvalidParameter, entry)
		}
		letter := entry[0]
		colorChar := entry[len(entry)-1]
		digitStr := entry[1 : len(entry)-1]
		digit, err := strconv.Atoi(digitStr)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed digit in entry %q", ErrInvalidParameter, entry)
		}
		var color PieceColor
		switch colorChar {
		case 'b':
			color = Black
		case 'w':
			color = White
		default:
			return nil, fmt.Errorf("%w: unknown color letter %q in entry %q", ErrInvalidParameter, colorChar, entry)
		}
		if err := b.Set(Position{Letter: letter, Digit: digit}, color); err != nil {
			return nil, err
		}
	}
	return b, nil
}
