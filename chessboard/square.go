package chessboard

import "fmt"

// Square is a board square index in [0, 64): a1=0, h1=7, a2=8, h8=63.
type Square uint8

// Named squares of the first rank, used by the castling logic.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// File numbers.
const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank (row) numbers.
const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// NewSquare builds a square from 0-based row (bottom to top) and column
// (left to right).
func NewSquare(row, col int) Square { return Square(row*8 + col) }

// Row returns the 0-based rank of the square, bottom to top.
func (s Square) Row() int { return int(s) / 8 }

// Col returns the 0-based file of the square, left to right.
func (s Square) Col() int { return int(s) % 8 }

// Board returns the single-bit bitboard for the square.
func (s Square) Board() BitBoard { return BitBoard(1) << s }

// Mirror flips the square's row (a1 <-> a8). The column is unchanged.
func (s *Square) Mirror() { *s ^= 0b111000 }

// String returns the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	return string([]byte{'a' + byte(s.Col()), '1' + byte(s.Row())})
}

// validCoord reports whether a single row or column coordinate is on the
// board.
func validCoord(x int) bool { return x >= 0 && x < 8 }

// validSquare reports whether (row, col) is on the board.
func validSquare(row, col int) bool { return validCoord(row) && validCoord(col) }

// ParseSquare parses algebraic notation like "e4". If black is true the row
// is mirrored, so the caller can pass coordinates as seen from black's side
// of a flipped board.
func ParseSquare(s string, black bool) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("chessboard: bad square %q", s)
	}
	row := int(s[1] - '1')
	if black {
		row = 7 - row
	}
	return NewSquare(row, int(s[0]-'a')), nil
}
