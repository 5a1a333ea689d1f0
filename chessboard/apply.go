package chessboard

// ApplyMove plays a move for the side to move, leaving the board in the
// opponent's half-turn but still in our orientation: the caller must Mirror
// afterwards (or use Play). The move must be legal; no checking is done.
//
// The return value reports whether the fifty-move counter resets, i.e. the
// move was a capture or a pawn move.
func (b *Board) ApplyMove(move Move) bool {
	from, to := move.From(), move.To()
	fromRow, fromCol := from.Row(), from.Col()
	toRow, toCol := to.Row(), to.Col()

	// Castlings first: king-takes-own-rook, plus the legacy e1g1/e1c1 forms.
	if from == b.ourKing {
		b.castlings.ResetOurs()
		if fromRow == Rank1 && toRow == Rank1 {
			switch {
			case (b.Rooks() & b.ourPieces).Get(to):
				if toCol > fromCol {
					b.doCastling(G1, to, F1)
				} else {
					b.doCastling(C1, to, D1)
				}
				return false
			case fromCol == FileE && toCol == FileG:
				b.doCastling(G1, H1, F1)
				return false
			case fromCol == FileE && toCol == FileC:
				b.doCastling(C1, A1, D1)
				return false
			}
		}
	}

	// Move within our pieces.
	b.ourPieces.Reset(from)
	b.ourPieces.Set(to)

	// Remove a captured piece. Capturing a castling rook on its home square
	// takes that right with it.
	reset50Moves := b.theirPieces.Get(to)
	b.theirPieces.Reset(to)
	b.rooks.Reset(to)
	b.bishops.Reset(to)
	b.pawns.Reset(to)
	if int(to) == 56+b.castlings.KingsideRook() {
		b.castlings.ResetTheirKingside()
	}
	if int(to) == 56+b.castlings.QueensideRook() {
		b.castlings.ResetTheirQueenside()
	}

	// En passant: the captured pawn is one row behind the arrival square.
	if fromRow == Rank5 && b.pawns.Get(from) && fromCol != toCol &&
		b.pawns.GetRC(Rank8, toCol) {
		b.pawns.ResetRC(Rank5, toCol)
		b.theirPieces.ResetRC(Rank5, toCol)
	}

	// En-passant markers expire after one half-turn.
	b.pawns &= pawnMask

	reset50Moves = reset50Moves || b.pawns.Get(from)

	// Non-castling king move.
	if from == b.ourKing {
		b.ourKing = to
		return reset50Moves
	}

	// Promotion.
	if toRow == Rank8 && b.pawns.Get(from) {
		switch move.Promotion() {
		case PromoRook:
			b.rooks.Set(to)
		case PromoBishop:
			b.bishops.Set(to)
		case PromoQueen:
			b.rooks.Set(to)
			b.bishops.Set(to)
		}
		b.pawns.Reset(from)
		return true
	}

	// Our rook leaving its home square loses the right.
	if fromRow == Rank1 && b.rooks.Get(from) {
		if fromCol == b.castlings.QueensideRook() {
			b.castlings.ResetOurQueenside()
		}
		if fromCol == b.castlings.KingsideRook() {
			b.castlings.ResetOurKingside()
		}
	}

	// Ordinary move.
	b.rooks.SetIf(to, b.rooks.Get(from))
	b.bishops.SetIf(to, b.bishops.Get(from))
	b.pawns.SetIf(to, b.pawns.Get(from))
	b.rooks.Reset(from)
	b.bishops.Reset(from)
	b.pawns.Reset(from)

	// A double pawn push leaves a marker, but only when one of their pawns
	// could actually capture en passant.
	if toRow-fromRow == 2 && b.pawns.Get(to) {
		if pawnAttacks[NewSquare(toRow-1, toCol)].Intersects(b.theirPieces & b.pawns) {
			b.pawns.SetRC(0, toCol)
		}
	}
	return reset50Moves
}

func (b *Board) doCastling(kingDst, rookSrc, rookDst Square) {
	b.pawns &= pawnMask
	b.ourPieces.Reset(b.ourKing)
	b.ourPieces.Reset(rookSrc)
	b.rooks.Reset(rookSrc)
	b.ourPieces.Set(kingDst)
	b.ourPieces.Set(rookDst)
	b.rooks.Set(rookDst)
	b.ourKing = kingDst
}

// Play applies a legal move and mirrors the board into the opponent's
// perspective, maintaining the Rule50 and MoveCount clocks. This is the
// full make-move a game loop wants; ApplyMove alone leaves the mirroring
// and clocks to the caller.
func (b *Board) Play(move Move) {
	reset := b.ApplyMove(move)
	if reset {
		b.Rule50 = 0
	} else {
		b.Rule50++
	}
	if b.flipped {
		b.MoveCount++
	}
	b.Mirror()
}
