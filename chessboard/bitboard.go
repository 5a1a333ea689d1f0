// Package chessboard implements the chess rules core: a bit-packed board
// representation stored from the side-to-move's perspective, pseudo-legal and
// legal move generation backed by magic bitboard attack tables, in-place move
// application with a perspective flip, and FEN (de)serialization including
// Chess960 castling.
//
// A Board always represents the position from the point of view of the side
// to move ("our" pieces move up the board). Advancing a ply is therefore a
// two-step contract: call ApplyMove, then Mirror — or use Play, which does
// both and maintains the move clocks.
package chessboard

import "math/bits"

// BitBoard is a 64-bit set of board squares. Bit i corresponds to square i,
// enumerated bottom to top, left to right: a1 is bit 0, h1 is bit 7,
// a2 is bit 8, h8 is bit 63.
type BitBoard uint64

// Set sets the bit for the given square.
func (b *BitBoard) Set(sq Square) { *b |= BitBoard(1) << sq }

// SetRC sets the bit at (row, col).
func (b *BitBoard) SetRC(row, col int) { b.Set(NewSquare(row, col)) }

// SetIf sets the bit for the square if cond is true. It never resets.
func (b *BitBoard) SetIf(sq Square, cond bool) {
	if cond {
		b.Set(sq)
	}
}

// Reset clears the bit for the given square.
func (b *BitBoard) Reset(sq Square) { *b &^= BitBoard(1) << sq }

// ResetRC clears the bit at (row, col).
func (b *BitBoard) ResetRC(row, col int) { b.Reset(NewSquare(row, col)) }

// Get reports whether the bit for the square is set.
func (b BitBoard) Get(sq Square) bool { return b&(BitBoard(1)<<sq) != 0 }

// GetRC reports whether the bit at (row, col) is set.
func (b BitBoard) GetRC(row, col int) bool { return b.Get(NewSquare(row, col)) }

// Count returns the number of set bits.
func (b BitBoard) Count() int { return bits.OnesCount64(uint64(b)) }

// Empty reports whether no bits are set.
func (b BitBoard) Empty() bool { return b == 0 }

// Intersects reports whether two bitboards have any common bits.
func (b BitBoard) Intersects(other BitBoard) bool { return b&other != 0 }

// Pop removes the lowest set bit and returns its square.
// The receiver must be non-empty.
func (b *BitBoard) Pop() Square {
	sq := Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}

// Mirror flips the board top to bottom (rank 1 becomes rank 8), which is a
// byte reversal of the underlying word. Used to switch perspective between
// the two sides.
func (b *BitBoard) Mirror() { *b = BitBoard(bits.ReverseBytes64(uint64(*b))) }

// Mirrored returns the top-to-bottom flipped copy of the bitboard.
func (b BitBoard) Mirrored() BitBoard { return BitBoard(bits.ReverseBytes64(uint64(b))) }

// FlipFiles reverses the bit order within every byte, mirroring the board
// left to right (file a becomes file h).
func (b BitBoard) FlipFiles() BitBoard {
	v := uint64(b)
	v = ((v >> 1) & 0x5555555555555555) | ((v & 0x5555555555555555) << 1)
	v = ((v >> 2) & 0x3333333333333333) | ((v & 0x3333333333333333) << 2)
	v = ((v >> 4) & 0x0F0F0F0F0F0F0F0F) | ((v & 0x0F0F0F0F0F0F0F0F) << 4)
	return BitBoard(v)
}

// Transpose reflects the board about the a1-h8 diagonal (row and column
// swap), using delta swaps. Used by the policy-index symmetry transforms.
func (b BitBoard) Transpose() BitBoard {
	v := uint64(b)
	t := (v ^ (v >> 7)) & 0x00AA00AA00AA00AA
	v = v ^ t ^ (t << 7)
	t = (v ^ (v >> 14)) & 0x0000CCCC0000CCCC
	v = v ^ t ^ (t << 14)
	t = (v ^ (v >> 28)) & 0x00000000F0F0F0F0
	v = v ^ t ^ (t << 28)
	return BitBoard(v)
}

// DebugString renders the bitboard as an 8x8 grid of '#' and '.', top rank
// first.
func (b BitBoard) DebugString() string {
	buf := make([]byte, 0, 72)
	for row := 7; row >= 0; row-- {
		for col := 0; col < 8; col++ {
			if b.GetRC(row, col) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
