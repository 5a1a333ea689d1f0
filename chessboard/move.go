package chessboard

import "fmt"

// Promotion identifies the piece a pawn promotes to. PromoNone is the
// sentinel for non-promoting moves.
type Promotion uint8

const (
	PromoNone Promotion = iota
	PromoQueen
	PromoRook
	PromoBishop
	PromoKnight
)

// Move is a packed move value:
//
//	bits 0..5   destination square
//	bits 6..11  source square
//	bits 12..14 promotion
//
// The all-zero value is the null move. Legal move generation never produces
// a1-a1, so zero is safely reserved.
type Move uint16

const (
	moveToMask    Move = 0b0000000000111111
	moveFromMask  Move = 0b0000111111000000
	movePromoMask Move = 0b0111000000000000
)

// NewMove builds a non-promoting move.
func NewMove(from, to Square) Move { return Move(to) | Move(from)<<6 }

// NewPromotionMove builds a move with a promotion.
func NewPromotionMove(from, to Square, promo Promotion) Move {
	return Move(to) | Move(from)<<6 | Move(promo)<<12
}

// To returns the destination square.
func (m Move) To() Square { return Square(m & moveToMask) }

// From returns the source square.
func (m Move) From() Square { return Square((m & moveFromMask) >> 6) }

// Promotion returns the promotion piece, or PromoNone.
func (m Move) Promotion() Promotion { return Promotion((m & movePromoMask) >> 12) }

// SetTo replaces the destination square.
func (m *Move) SetTo(to Square) { *m = (*m &^ moveToMask) | Move(to) }

// SetFrom replaces the source square.
func (m *Move) SetFrom(from Square) { *m = (*m &^ moveFromMask) | Move(from)<<6 }

// SetPromotion replaces the promotion field.
func (m *Move) SetPromotion(p Promotion) { *m = (*m &^ movePromoMask) | Move(p)<<12 }

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool { return m == 0 }

// Mirror flips the rows of both squares, converting between the two sides'
// perspectives. Promotion is unchanged.
func (m *Move) Mirror() { *m ^= 0b111000111000 }

// String returns the long algebraic form, e.g. "e2e4" or "e7e8q".
// The null move renders as "0000".
func (m Move) String() string {
	if m == 0 {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	switch m.Promotion() {
	case PromoQueen:
		s += "q"
	case PromoRook:
		s += "r"
	case PromoBishop:
		s += "b"
	case PromoKnight:
		s += "n"
	}
	return s
}

// ParseMove parses long algebraic notation ("e2e4", "e7e8q"). If black is
// true both squares are row-mirrored, so coordinates can be given as
// board-absolute for a flipped (black to move) position.
func ParseMove(s string, black bool) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return 0, fmt.Errorf("chessboard: bad move %q", s)
	}
	from, err := ParseSquare(s[0:2], black)
	if err != nil {
		return 0, fmt.Errorf("chessboard: bad move %q", s)
	}
	to, err := ParseSquare(s[2:4], black)
	if err != nil {
		return 0, fmt.Errorf("chessboard: bad move %q", s)
	}
	promo := PromoNone
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = PromoQueen
		case 'r':
			promo = PromoRook
		case 'b':
			promo = PromoBishop
		case 'n':
			promo = PromoKnight
		default:
			return 0, fmt.Errorf("chessboard: bad promotion in move %q", s)
		}
	}
	return NewPromotionMove(from, to, promo), nil
}

// MoveList is a list of moves. Callers must not depend on ordering.
type MoveList []Move
