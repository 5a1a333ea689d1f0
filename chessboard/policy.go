package chessboard

import "fmt"

// The policy head of a network scores moves through a flat index in
// [0, 1858): one slot per from-to pair reachable by a queen or knight on an
// empty board, plus one per underpromotion (queen, rook, bishop; promotion
// to knight shares the plain from-to slot). The table is filled once at
// package load in a fixed order: plain moves by (from, to), then
// promotions by (from, to, piece).

// PolicyMoves is the number of distinct policy-index slots.
const PolicyMoves = 1858

// Symmetry transforms accepted by PolicyIndex, combinable by OR-ing.
const (
	// FlipTransform mirrors files, a-file onto h-file.
	FlipTransform = 1
	// MirrorTransform mirrors rows, rank 1 onto rank 8.
	MirrorTransform = 2
	// TransposeTransform reflects across the a1-h8 diagonal.
	TransposeTransform = 4
)

// moveToPolicy maps PackedInt values onto policy indices. 0xFFFF marks a
// move with no slot.
var moveToPolicy [4 * 64 * 64]uint16

// policyToMove is the inverse table.
var policyToMove [PolicyMoves]Move

func init() {
	for i := range moveToPolicy {
		moveToPolicy[i] = 0xFFFF
	}
	index := uint16(0)
	add := func(m Move) {
		moveToPolicy[m.PackedInt()] = index
		policyToMove[index] = m
		index++
	}
	for from := Square(0); from < 64; from++ {
		row, col := from.Row(), from.Col()
		var dsts BitBoard
		for _, dir := range rookDirections {
			for r, c := row+dir[0], col+dir[1]; validSquare(r, c); r, c = r+dir[0], c+dir[1] {
				dsts.SetRC(r, c)
			}
		}
		for _, dir := range bishopDirections {
			for r, c := row+dir[0], col+dir[1]; validSquare(r, c); r, c = r+dir[0], c+dir[1] {
				dsts.SetRC(r, c)
			}
		}
		dsts |= knightMovesFrom(from)
		for dsts != 0 {
			add(NewMove(from, dsts.Pop()))
		}
	}
	for from := Square(0); from < 64; from++ {
		if from.Row() != Rank7 {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if !validCoord(from.Col() + dc) {
				continue
			}
			to := NewSquare(Rank8, from.Col()+dc)
			for _, p := range []Promotion{PromoQueen, PromoRook, PromoBishop} {
				add(NewPromotionMove(from, to, p))
			}
		}
	}
	if index != PolicyMoves {
		panic(fmt.Sprintf("chessboard: policy table has %d slots, want %d",
			index, PolicyMoves))
	}
}

// knightMovesFrom builds the knight destination set without the attack
// tables, which may not be initialized yet while this package loads.
func knightMovesFrom(from Square) BitBoard {
	var dsts BitBoard
	row, col := from.Row(), from.Col()
	for _, d := range knightDeltas {
		if validSquare(row+d[0], col+d[1]) {
			dsts.SetRC(row+d[0], col+d[1])
		}
	}
	return dsts
}

// PackedInt packs the move into a dense integer in [0, 16384) suitable for
// array indexing. Promotion to knight encodes the same as no promotion.
func (m Move) PackedInt() int {
	if m.Promotion() == PromoKnight {
		return NewMove(m.From(), m.To()).PackedInt()
	}
	return int(m.Promotion())<<12 | int(m.From())<<6 | int(m.To())
}

// transformSquare applies the symmetry transform bits to a square, files
// first, then rows, then the diagonal.
func transformSquare(sq Square, transform int) Square {
	if transform&FlipTransform != 0 {
		sq ^= 0b000111
	}
	if transform&MirrorTransform != 0 {
		sq ^= 0b111000
	}
	if transform&TransposeTransform != 0 {
		sq = NewSquare(sq.Col(), sq.Row())
	}
	return sq
}

// PolicyIndex returns the move's policy slot after applying the symmetry
// transform. A move with no slot, which no legal move generation can
// produce, panics.
func (m Move) PolicyIndex(transform int) int {
	if transform != 0 {
		t := m
		t.SetFrom(transformSquare(m.From(), transform))
		t.SetTo(transformSquare(m.To(), transform))
		m = t
	}
	idx := moveToPolicy[m.PackedInt()]
	if idx == 0xFFFF {
		panic(fmt.Sprintf("chessboard: move %v has no policy index", m))
	}
	return int(idx)
}

// MoveFromPolicyIndex returns the canonical move stored at a policy slot.
func MoveFromPolicyIndex(index int) Move {
	return policyToMove[index]
}
