package chessboard

import (
	"fmt"
	"sync"
)

// We use so-called "fancy" magic bitboards: per square, the relevant blocker
// occupancy is hashed with a multiply-shift into a slice of a shared attack
// table sized to the exact number of distinct occupancy subsets.

// magicParams holds the magic parameters for one square.
type magicParams struct {
	// Relevant occupancy mask.
	mask uint64
	// Magic multiplier.
	magic uint64
	// Number of bits to shift the product right.
	shift uint8
	// Slice into the shared attack table for this square.
	attacks []BitBoard
}

var (
	rookMagicParams   [64]magicParams
	bishopMagicParams [64]magicParams

	// Shared attack tables. The sizes are the total number of distinct
	// relevant-occupancy subsets over all 64 squares.
	rookAttacksTable   [102400]BitBoard
	bishopAttacksTable [5248]BitBoard

	magicOnce sync.Once
)

var rookDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirections = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

// InitializeMagicBitboards builds the sliding-piece attack tables. It must
// complete before the first attack query; afterwards queries are reentrant
// and lock-free. Repeated calls are no-ops.
func InitializeMagicBitboards() {
	magicOnce.Do(func() {
		for sq := 0; sq < 64; sq++ {
			rookMagicParams[sq].magic = rookMagicNumbers[sq]
			bishopMagicParams[sq].magic = bishopMagicNumbers[sq]
		}
		buildAttacksTable(&rookMagicParams, rookAttacksTable[:], rookDirections)
		buildAttacksTable(&bishopMagicParams, bishopAttacksTable[:], bishopDirections)
	})
}

// buildAttacksTable fills the magic parameters and the attack table for one
// slider type. A destructive collision (two occupancy subsets mapping to the
// same index with different attack sets) means a broken magic constant and
// panics: that class of error must never reach query time.
func buildAttacksTable(params *[64]magicParams, table []BitBoard, directions [4][2]int) {
	offset := 0
	for sq := Square(0); sq < 64; sq++ {
		// Relevant occupancy mask: walk each direction but stop one short
		// of the board edge, since a blocker on the edge square cannot be
		// jumped over anyway.
		var mask BitBoard
		for _, dir := range directions {
			row, col := sq.Row(), sq.Col()
			for {
				row += dir[0]
				col += dir[1]
				if !validSquare(row+dir[0], col+dir[1]) {
					break
				}
				mask.SetRC(row, col)
			}
		}
		params[sq].mask = uint64(mask)
		params[sq].shift = uint8(64 - mask.Count())

		// Cache the mask's squares so subsets can be enumerated by index.
		occupancySquares := make([]Square, 0, mask.Count())
		for m := mask; m != 0; {
			occupancySquares = append(occupancySquares, m.Pop())
		}

		size := 1 << len(occupancySquares)
		params[sq].attacks = table[offset : offset+size]

		for i := 0; i < size; i++ {
			var occupancy BitBoard
			for bit, osq := range occupancySquares {
				occupancy.SetIf(osq, i&(1<<bit) != 0)
			}

			// True attack set for this occupancy: walk each direction up to
			// and including the first occupied square.
			var attacks BitBoard
			for _, dir := range directions {
				row, col := sq.Row(), sq.Col()
				for {
					row += dir[0]
					col += dir[1]
					if !validSquare(row, col) {
						break
					}
					dst := NewSquare(row, col)
					attacks.Set(dst)
					if occupancy.Get(dst) {
						break
					}
				}
			}

			index := (uint64(occupancy) * params[sq].magic) >> params[sq].shift
			if params[sq].attacks[index] != 0 && params[sq].attacks[index] != attacks {
				panic(fmt.Sprintf("chessboard: destructive magic collision on square %v", sq))
			}
			params[sq].attacks[index] = attacks
		}
		offset += size
	}
	if offset != len(table) {
		panic(fmt.Sprintf("chessboard: attack table size mismatch: %d != %d", offset, len(table)))
	}
}

// GetRookAttacks returns the rook attack set from sq given the full
// occupancy of the board.
func GetRookAttacks(sq Square, occupancy BitBoard) BitBoard {
	p := &rookMagicParams[sq]
	return p.attacks[(uint64(occupancy)&p.mask)*p.magic>>p.shift]
}

// GetBishopAttacks returns the bishop attack set from sq given the full
// occupancy of the board.
func GetBishopAttacks(sq Square, occupancy BitBoard) BitBoard {
	p := &bishopMagicParams[sq]
	return p.attacks[(uint64(occupancy)&p.mask)*p.magic>>p.shift]
}
