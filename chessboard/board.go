package chessboard

import (
	"fmt"
	"strings"
)

// pawnMask covers the squares a pawn can legally stand on. Bits of the pawn
// bitboard outside it (rows 1 and 8) carry the en-passant file markers.
const pawnMask BitBoard = 0x00FFFFFFFFFFFF00

// Board is a chess position stored from the side to move's point of view:
// our pieces always move towards higher rows, regardless of color. After
// applying a move the caller must Mirror the board (or use Play, which does
// both). Queens live in both the rook and bishop sets.
//
// Board is a plain comparable value: copy it to branch a line of play. A
// single Board must not be mutated concurrently.
type Board struct {
	ourPieces   BitBoard
	theirPieces BitBoard
	// Rooks and queens.
	rooks BitBoard
	// Bishops and queens.
	bishops BitBoard
	// Pawns, plus en-passant markers outside pawnMask. A bit on row 1 flags
	// our just-made double push on that file, a bit on row 8 theirs.
	pawns     BitBoard
	ourKing   Square
	theirKing Square
	castlings CastlingRights
	// True when "our side" is black, i.e. the stored orientation differs
	// from the true one.
	flipped bool

	// Halfmoves since the last capture or pawn move.
	Rule50 int
	// Full move number, starting from 1.
	MoveCount int
}

// Clear resets the board to an empty position with white to move.
func (b *Board) Clear() {
	*b = Board{castlings: NewCastlingRights(), MoveCount: 1}
}

// Mirror flips the board to the other side's point of view: every bitboard
// is byte-reversed and ours/theirs swap roles.
func (b *Board) Mirror() {
	b.ourPieces.Mirror()
	b.theirPieces.Mirror()
	b.ourPieces, b.theirPieces = b.theirPieces, b.ourPieces
	b.rooks.Mirror()
	b.bishops.Mirror()
	b.pawns.Mirror()
	b.ourKing.Mirror()
	b.theirKing.Mirror()
	b.ourKing, b.theirKing = b.theirKing, b.ourKing
	b.castlings.Mirror()
	b.flipped = !b.flipped
}

// Ours returns the side to move's pieces.
func (b *Board) Ours() BitBoard { return b.ourPieces }

// Theirs returns the opponent's pieces.
func (b *Board) Theirs() BitBoard { return b.theirPieces }

// Pawns returns all pawns, with the en-passant markers stripped.
func (b *Board) Pawns() BitBoard { return b.pawns & pawnMask }

// EnPassant returns only the en-passant marker bits (rows 1 and 8).
func (b *Board) EnPassant() BitBoard { return b.pawns &^ pawnMask }

// Queens returns all queens of both sides.
func (b *Board) Queens() BitBoard { return b.rooks & b.bishops }

// Bishops returns all bishops of both sides, queens excluded.
func (b *Board) Bishops() BitBoard { return b.bishops &^ b.rooks }

// Rooks returns all rooks of both sides, queens excluded.
func (b *Board) Rooks() BitBoard { return b.rooks &^ b.bishops }

// BishopsOrQueens returns all diagonal sliders of both sides.
func (b *Board) BishopsOrQueens() BitBoard { return b.bishops }

// RooksOrQueens returns all straight-line sliders of both sides.
func (b *Board) RooksOrQueens() BitBoard { return b.rooks }

// Knights returns all knights of both sides.
func (b *Board) Knights() BitBoard {
	return (b.ourPieces | b.theirPieces) &^ b.Pawns() &^ b.rooks &^ b.bishops &^
		b.Kings()
}

// Kings returns both kings.
func (b *Board) Kings() BitBoard {
	return b.ourKing.Board() | b.theirKing.Board()
}

// OurKing returns the square of the side to move's king.
func (b *Board) OurKing() Square { return b.ourKing }

// TheirKing returns the square of the opponent's king.
func (b *Board) TheirKing() Square { return b.theirKing }

// Castlings returns the castling rights.
func (b *Board) Castlings() CastlingRights { return b.castlings }

// Flipped reports whether the stored orientation is black's, i.e. black is
// to move.
func (b *Board) Flipped() bool { return b.flipped }

// HasMatingMaterial reports whether either side could in principle still
// deliver mate. Lone kings, a single minor piece, or same-colored bishops
// only cannot.
func (b *Board) HasMatingMaterial() bool {
	if b.rooks != 0 || b.Pawns() != 0 {
		return true
	}
	if (b.ourPieces | b.theirPieces).Count() < 4 {
		// Kings plus at most one minor piece.
		return false
	}
	if b.Knights() != 0 {
		return true
	}
	// Kings and bishops only. Opposite-colored bishops can mate.
	const lightSquares = BitBoard(0x55AA55AA55AA55AA)
	const darkSquares = BitBoard(0xAA55AA55AA55AA55)
	return b.bishops.Intersects(lightSquares) && b.bishops.Intersects(darkSquares)
}

// DebugString renders the board as eight rank lines, our pieces uppercase,
// en-passant markers drawn as '*' on the capture squares.
func (b *Board) DebugString() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		for col := 0; col < 8; col++ {
			sq := NewSquare(row, col)
			if !b.ourPieces.Get(sq) && !b.theirPieces.Get(sq) {
				if row == 2 && b.pawns.GetRC(0, col) ||
					row == 5 && b.pawns.GetRC(7, col) {
					sb.WriteByte('*')
				} else {
					sb.WriteByte('.')
				}
				continue
			}
			if sq == b.ourKing {
				sb.WriteByte('K')
				continue
			}
			if sq == b.theirKing {
				sb.WriteByte('k')
				continue
			}
			var c byte
			switch {
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
			sb.WriteByte(c)
		}
		if row == 0 {
			sb.WriteString(" [" + b.castlings.String() + "]")
			if b.flipped {
				sb.WriteString(" (from black's eyes)")
			} else {
				sb.WriteString(" (from white's eyes)")
			}
			fmt.Fprintf(&sb, " Hash: %d", b.Hash())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
