package chessboard

// CastlingRights tracks which of the four castlings are still available,
// together with the starting files of the castling rooks. The rook files
// are needed for Chess960 positions where the rooks do not start on a and h.
//
// Like the rest of the board state, rights are kept from the point of view
// of the side to move: "our" rights refer to the player whose turn it is.
type CastlingRights struct {
	data uint8

	// Starting files of the rooks that may castle. Same for both sides:
	// a valid chess game cannot have them differ.
	queensideRook int
	kingsideRook  int
}

const (
	ourKingside uint8 = 1 << iota
	ourQueenside
	theirKingside
	theirQueenside
)

// NewCastlingRights returns rights with no castling available and the rooks
// on their standard files.
func NewCastlingRights() CastlingRights {
	return CastlingRights{queensideRook: FileA, kingsideRook: FileH}
}

func (c *CastlingRights) SetOurKingside()      { c.data |= ourKingside }
func (c *CastlingRights) SetOurQueenside()     { c.data |= ourQueenside }
func (c *CastlingRights) SetTheirKingside()    { c.data |= theirKingside }
func (c *CastlingRights) SetTheirQueenside()   { c.data |= theirQueenside }
func (c *CastlingRights) ResetOurKingside()    { c.data &^= ourKingside }
func (c *CastlingRights) ResetOurQueenside()   { c.data &^= ourQueenside }
func (c *CastlingRights) ResetTheirKingside()  { c.data &^= theirKingside }
func (c *CastlingRights) ResetTheirQueenside() { c.data &^= theirQueenside }

// ResetOurs removes both of our castling rights, e.g. after a king move.
func (c *CastlingRights) ResetOurs() { c.data &^= ourKingside | ourQueenside }

func (c CastlingRights) OurKingside() bool    { return c.data&ourKingside != 0 }
func (c CastlingRights) OurQueenside() bool   { return c.data&ourQueenside != 0 }
func (c CastlingRights) TheirKingside() bool  { return c.data&theirKingside != 0 }
func (c CastlingRights) TheirQueenside() bool { return c.data&theirQueenside != 0 }
func (c CastlingRights) OurAnyCastling() bool { return c.data&(ourKingside|ourQueenside) != 0 }
func (c CastlingRights) AnyCastling() bool    { return c.data != 0 }

// Mirror swaps our rights with theirs.
func (c *CastlingRights) Mirror() {
	c.data = c.data<<2&0b1100 | c.data>>2
}

// SetRookPositions records the starting files of the castling rooks.
func (c *CastlingRights) SetRookPositions(queenside, kingside int) {
	c.queensideRook = queenside
	c.kingsideRook = kingside
}

// QueensideRook returns the starting file of the queenside castling rook.
func (c CastlingRights) QueensideRook() int { return c.queensideRook }

// KingsideRook returns the starting file of the kingside castling rook.
func (c CastlingRights) KingsideRook() int { return c.kingsideRook }

// String renders the rights in FEN style assuming white is to move, using
// file letters instead of KQkq when the rooks are not on their standard
// files. Returns "-" if no castling is possible.
func (c CastlingRights) String() string {
	if c.data == 0 {
		return "-"
	}
	shredder := c.queensideRook != FileA || c.kingsideRook != FileH
	var s []byte
	appendRight := func(file int, upper bool) {
		ch := byte('a' + file)
		if upper {
			ch -= 'a' - 'A'
		}
		s = append(s, ch)
	}
	if c.OurKingside() {
		if shredder {
			appendRight(c.kingsideRook, true)
		} else {
			s = append(s, 'K')
		}
	}
	if c.OurQueenside() {
		if shredder {
			appendRight(c.queensideRook, true)
		} else {
			s = append(s, 'Q')
		}
	}
	if c.TheirKingside() {
		if shredder {
			appendRight(c.kingsideRook, false)
		} else {
			s = append(s, 'k')
		}
	}
	if c.TheirQueenside() {
		if shredder {
			appendRight(c.queensideRook, false)
		} else {
			s = append(s, 'q')
		}
	}
	return string(s)
}
