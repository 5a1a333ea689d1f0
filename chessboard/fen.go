package chessboard

import (
	"fmt"
	"strconv"
	"strings"
)

// StartposFEN is the standard chess starting position.
const StartposFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN parses a FEN string into a new board. Only the piece
// placement field is mandatory; missing trailing fields default to white to
// move, no castling, no en passant, zeroed clocks.
func NewBoardFromFEN(fen string) (Board, error) {
	var b Board
	b.Clear()

	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return Board{}, fmt.Errorf("bad fen string: %q", fen)
	}
	placement := fields[0]
	sideToMove, castlings, enPassant := "w", "-", "-"
	if len(fields) > 1 {
		sideToMove = fields[1]
	}
	if len(fields) > 2 {
		castlings = fields[2]
	}
	if len(fields) > 3 {
		enPassant = fields[3]
	}
	var err error
	if len(fields) > 4 {
		if b.Rule50, err = strconv.Atoi(fields[4]); err != nil {
			return Board{}, fmt.Errorf("bad fen string (rule50 %q): %q", fields[4], fen)
		}
	}
	if len(fields) > 5 {
		if b.MoveCount, err = strconv.Atoi(fields[5]); err != nil {
			return Board{}, fmt.Errorf("bad fen string (move number %q): %q", fields[5], fen)
		}
	}

	if err := b.parsePlacement(placement); err != nil {
		return Board{}, fmt.Errorf("%w: %q", err, fen)
	}
	if castlings != "-" {
		if err := b.parseCastlings(castlings); err != nil {
			return Board{}, fmt.Errorf("%w: %q", err, fen)
		}
	}
	if enPassant != "-" {
		sq, err := ParseSquare(enPassant, false)
		if err != nil {
			return Board{}, fmt.Errorf("bad fen string (en passant): %q", fen)
		}
		switch sq.Row() {
		case Rank3:
			b.pawns.SetRC(0, sq.Col())
		case Rank6:
			b.pawns.SetRC(7, sq.Col())
		default:
			return Board{}, fmt.Errorf("bad fen string (en passant rank): %q", fen)
		}
	}

	switch sideToMove {
	case "w", "W":
	case "b", "B":
		b.Mirror()
	default:
		return Board{}, fmt.Errorf("bad fen string (side to move): %q", fen)
	}
	return b, nil
}

func (b *Board) parsePlacement(placement string) error {
	row, col := 7, 0
	for _, c := range placement {
		if c == '/' {
			row--
			if row < 0 {
				return fmt.Errorf("bad fen string (too many rows)")
			}
			col = 0
			continue
		}
		if c >= '1' && c <= '8' {
			col += int(c - '0')
			continue
		}
		if col >= 8 {
			return fmt.Errorf("bad fen string (too many columns)")
		}
		sq := NewSquare(row, col)
		ours := c >= 'A' && c <= 'Z'
		if ours {
			b.ourPieces.Set(sq)
		} else {
			b.theirPieces.Set(sq)
		}
		switch c {
		case 'K':
			b.ourKing = sq
		case 'k':
			b.theirKing = sq
		case 'R', 'r':
			b.rooks.Set(sq)
		case 'B', 'b':
			b.bishops.Set(sq)
		case 'Q', 'q':
			b.rooks.Set(sq)
			b.bishops.Set(sq)
		case 'P', 'p':
			if row == 0 || row == 7 {
				return fmt.Errorf("bad fen string (pawn in first/last row)")
			}
			b.pawns.Set(sq)
		case 'N', 'n':
		default:
			return fmt.Errorf("bad fen string (unknown piece %q)", c)
		}
		col++
	}
	return nil
}

// parseCastlings handles KQkq shorthand, which binds to the outermost rook
// on the king's side of the back rank, as well as Shredder-style file
// letters for Chess960.
func (b *Board) parseCastlings(castlings string) error {
	leftRook, rightRook := FileA, FileH
	for _, c := range castlings {
		isBlack := c >= 'a' && c <= 'z'
		kingCol := b.ourKing.Col()
		homeRow := Rank1
		pieces := b.ourPieces
		if isBlack {
			kingCol = b.theirKing.Col()
			homeRow = Rank8
			pieces = b.theirPieces
		} else if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		rooks := pieces & b.Rooks()
		switch {
		case c == 'k':
			rightRook = FileH
			for ; rightRook > kingCol; rightRook-- {
				if rooks.GetRC(homeRow, rightRook) {
					break
				}
			}
			if rightRook == kingCol {
				return fmt.Errorf("bad fen string (no kingside rook)")
			}
			if isBlack {
				b.castlings.SetTheirKingside()
			} else {
				b.castlings.SetOurKingside()
			}
		case c == 'q':
			leftRook = FileA
			for ; leftRook < kingCol; leftRook++ {
				if rooks.GetRC(homeRow, leftRook) {
					break
				}
			}
			if leftRook == kingCol {
				return fmt.Errorf("bad fen string (no queenside rook)")
			}
			if isBlack {
				b.castlings.SetTheirQueenside()
			} else {
				b.castlings.SetOurQueenside()
			}
		case c >= 'a' && c <= 'h':
			rookCol := int(c - 'a')
			if rookCol < kingCol {
				leftRook = rookCol
				if isBlack {
					b.castlings.SetTheirQueenside()
				} else {
					b.castlings.SetOurQueenside()
				}
			} else {
				rightRook = rookCol
				if isBlack {
					b.castlings.SetTheirKingside()
				} else {
					b.castlings.SetOurKingside()
				}
			}
		default:
			return fmt.Errorf("bad fen string (unexpected castling symbol %q)", c)
		}
	}
	b.castlings.SetRookPositions(leftRook, rightRook)
	return nil
}

// SetFromFEN replaces the board with the parsed position. On error the
// board is left unchanged.
func (b *Board) SetFromFEN(fen string) error {
	parsed, err := NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// StartingBoard returns the standard starting position.
func StartingBoard() Board {
	b, err := NewBoardFromFEN(StartposFEN)
	if err != nil {
		panic(err)
	}
	return b
}

// FEN renders the position as a FEN string, always from white's point of
// view. Non-standard castling rook files come out as file letters.
func (b *Board) FEN() string {
	board := *b
	if board.flipped {
		board.Mirror()
	}
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		empty := 0
		for col := 0; col < 8; col++ {
			sq := NewSquare(row, col)
			c := board.pieceLetter(sq)
			if c == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(c)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	if b.flipped {
		sb.WriteString(" b ")
	} else {
		sb.WriteString(" w ")
	}
	sb.WriteString(board.castlings.String())

	sb.WriteByte(' ')
	if ep := board.EnPassant(); ep != 0 {
		marker := ep
		sq := marker.Pop()
		if sq.Row() == 0 {
			sb.WriteString(NewSquare(Rank3, sq.Col()).String())
		} else {
			sb.WriteString(NewSquare(Rank6, sq.Col()).String())
		}
	} else {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " %d %d", b.Rule50, b.MoveCount)
	return sb.String()
}

func (b *Board) pieceLetter(sq Square) byte {
	if !b.ourPieces.Get(sq) && !b.theirPieces.Get(sq) {
		return 0
	}
	var c byte
	switch {
	case sq == b.ourKing || sq == b.theirKing:
		c = 'k'
	case b.Pawns().Get(sq):
		c = 'p'
	case b.Queens().Get(sq):
		c = 'q'
	case b.bishops.Get(sq):
		c = 'b'
	case b.rooks.Get(sq):
		c = 'r'
	default:
		c = 'n'
	}
	if b.ourPieces.Get(sq) {
		c -= 'a' - 'A'
	}
	return c
}
