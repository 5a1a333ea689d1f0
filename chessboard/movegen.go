package chessboard

// KingAttackInfo is a summary of checks and pins against our king, computed
// once per position and consulted when filtering pseudolegal moves.
type KingAttackInfo struct {
	// Attack lines of the checking pieces, including the attackers' squares.
	// A non-king move resolves a single check only by landing here.
	attackLines BitBoard
	// Our pieces that are pinned against our king.
	pinnedPieces BitBoard
	doubleCheck  bool
}

// InCheck reports whether our king is in check.
func (k *KingAttackInfo) InCheck() bool { return k.attackLines != 0 }

// InDoubleCheck reports whether two pieces give check at once.
func (k *KingAttackInfo) InDoubleCheck() bool { return k.doubleCheck }

// IsPinned reports whether the piece on sq is pinned against our king.
func (k *KingAttackInfo) IsPinned(sq Square) bool { return k.pinnedPieces.Get(sq) }

// IsOnAttackLine reports whether sq blocks or captures a checking piece.
func (k *KingAttackInfo) IsOnAttackLine(sq Square) bool { return k.attackLines.Get(sq) }

// IsUnderAttack reports whether sq is attacked by any of their pieces.
func (b *Board) IsUnderAttack(sq Square) bool {
	if kingMoves[sq].Get(b.theirKing) {
		return true
	}
	occupied := b.ourPieces | b.theirPieces
	if GetRookAttacks(sq, occupied).Intersects(b.theirPieces & b.rooks) {
		return true
	}
	if GetBishopAttacks(sq, occupied).Intersects(b.theirPieces & b.bishops) {
		return true
	}
	if pawnAttacks[sq].Intersects(b.theirPieces & b.pawns) {
		return true
	}
	theirKnights := b.theirPieces &^ b.theirKing.Board() &^ b.rooks &^
		b.bishops &^ b.Pawns()
	return knightMoves[sq].Intersects(theirKnights)
}

// IsUnderCheck reports whether our king is attacked.
func (b *Board) IsUnderCheck() bool { return b.IsUnderAttack(b.ourKing) }

// GeneratePseudolegalMoves generates all moves that obey piece movement
// rules, ignoring checks against our own king except for plain king steps,
// which are pre-filtered here because it is cheap. Castling is emitted as
// king-takes-own-rook so that Chess960 positions need no special casing.
func (b *Board) GeneratePseudolegalMoves() MoveList {
	result := make(MoveList, 0, 60)
	occupied := b.ourPieces | b.theirPieces
	for source := b.ourPieces; source != 0; {
		from := source.Pop()
		if from == b.ourKing {
			for dsts := kingMoves[from] &^ b.ourPieces; dsts != 0; {
				to := dsts.Pop()
				if b.IsUnderAttack(to) {
					continue
				}
				result = append(result, NewMove(from, to))
			}
			result = b.appendCastlings(result)
			continue
		}
		processed := false
		if b.rooks.Get(from) {
			processed = true
			for dsts := GetRookAttacks(from, occupied) &^ b.ourPieces; dsts != 0; {
				result = append(result, NewMove(from, dsts.Pop()))
			}
		}
		if b.bishops.Get(from) {
			processed = true
			for dsts := GetBishopAttacks(from, occupied) &^ b.ourPieces; dsts != 0; {
				result = append(result, NewMove(from, dsts.Pop()))
			}
		}
		if processed {
			continue
		}
		if b.Pawns().Get(from) {
			result = b.appendPawnMoves(result, from)
			continue
		}
		for dsts := knightMoves[from] &^ b.ourPieces; dsts != 0; {
			result = append(result, NewMove(from, dsts.Pop()))
		}
	}
	return result
}

func (b *Board) appendPawnMoves(result MoveList, from Square) MoveList {
	row, col := from.Row(), from.Col()
	// Forward pushes.
	forward := NewSquare(row+1, col)
	if !b.ourPieces.Get(forward) && !b.theirPieces.Get(forward) {
		if row+1 != Rank8 {
			result = append(result, NewMove(from, forward))
			if row+1 == Rank3 && !b.ourPieces.GetRC(Rank4, col) &&
				!b.theirPieces.GetRC(Rank4, col) {
				result = append(result, NewMove(from, NewSquare(Rank4, col)))
			}
		} else {
			result = appendPromotions(result, from, forward)
		}
	}
	// Captures, en passant included.
	for _, dc := range []int{-1, 1} {
		if !validCoord(col + dc) {
			continue
		}
		to := NewSquare(row+1, col+dc)
		if b.theirPieces.Get(to) {
			if row+1 == Rank8 {
				result = appendPromotions(result, from, to)
			} else {
				result = append(result, NewMove(from, to))
			}
		} else if row+1 == Rank6 && b.pawns.GetRC(Rank8, col+dc) {
			// Their marker on row 8 flags a just-made double push, so the
			// capture square behind it is free.
			result = append(result, NewMove(from, to))
		}
	}
	return result
}

func appendPromotions(result MoveList, from, to Square) MoveList {
	for _, p := range []Promotion{PromoQueen, PromoRook, PromoBishop, PromoKnight} {
		result = append(result, NewPromotionMove(from, to, p))
	}
	return result
}

// appendCastlings emits available castlings for our king. The king's
// destination square is not checked for attacks here, the legality filter
// does that with a hypothetical apply.
func (b *Board) appendCastlings(result MoveList) MoveList {
	if !b.castlings.OurAnyCastling() {
		return result
	}
	// All squares strictly traversed by king and rook must be empty, the
	// rook and king themselves excepted.
	walkFree := func(from, to, rook, king int) bool {
		for i := from; i <= to; i++ {
			if i == rook || i == king {
				continue
			}
			if b.ourPieces.Get(Square(i)) || b.theirPieces.Get(Square(i)) {
				return false
			}
		}
		return true
	}
	// Reports whether any square in [from, to) is attacked. The destination
	// square itself is only checked when the king does not move.
	rangeAttacked := func(from, to int) bool {
		if from == to {
			return b.IsUnderAttack(Square(from))
		}
		increment := 1
		if from > to {
			increment = -1
		}
		for ; from != to; from += increment {
			if b.IsUnderAttack(Square(from)) {
				return true
			}
		}
		return false
	}
	king := b.ourKing.Col()
	if b.castlings.OurQueenside() {
		qrook := b.castlings.QueensideRook()
		if walkFree(min(FileC, qrook), max(FileD, king), qrook, king) &&
			!rangeAttacked(king, FileC) {
			result = append(result, NewMove(b.ourKing, NewSquare(Rank1, qrook)))
		}
	}
	if b.castlings.OurKingside() {
		krook := b.castlings.KingsideRook()
		if walkFree(min(FileF, king), max(FileG, krook), krook, king) &&
			!rangeAttacked(king, FileG) {
			result = append(result, NewMove(b.ourKing, NewSquare(Rank1, krook)))
		}
	}
	return result
}

// GenerateKingAttackInfo computes checking lines, pinned pieces and the
// double-check flag for our king. More than two simultaneous attackers is
// impossible on a reachable position and panics.
func (b *Board) GenerateKingAttackInfo() KingAttackInfo {
	var info KingAttackInfo
	attackers := 0

	row, col := b.ourKing.Row(), b.ourKing.Col()
	if emptyRookAttacks[b.ourKing].Intersects(b.theirPieces & b.rooks) {
		attackers += b.sliderKingAttacks(&info, row, col, rookDirections, b.rooks)
	}
	if emptyBishopAttacks[b.ourKing].Intersects(b.theirPieces & b.bishops) {
		attackers += b.sliderKingAttacks(&info, row, col, bishopDirections, b.bishops)
	}

	if attackingPawns := pawnAttacks[b.ourKing] & b.theirPieces & b.pawns; attackingPawns != 0 {
		info.attackLines |= attackingPawns
		attackers++
	}
	theirKnights := b.theirPieces &^ b.theirKing.Board() &^ b.rooks &^
		b.bishops &^ b.Pawns()
	if attackingKnights := knightMoves[b.ourKing] & theirKnights; attackingKnights != 0 {
		info.attackLines |= attackingKnights
		attackers++
	}

	if attackers > 2 {
		panic("chessboard: king attacked by more than two pieces")
	}
	info.doubleCheck = attackers == 2
	return info
}

// sliderKingAttacks walks each of the given directions away from our king,
// collecting attack lines and pins from their sliders of the given kind.
// Returns the number of checking sliders found.
func (b *Board) sliderKingAttacks(info *KingAttackInfo, row, col int,
	directions [4][2]int, sliders BitBoard) int {
	attackers := 0
	for _, dir := range directions {
		var attackLine BitBoard
		var pinned Square
		pinnedFound := false
		for r, c := row+dir[0], col+dir[1]; validSquare(r, c); r, c = r+dir[0], c+dir[1] {
			dst := NewSquare(r, c)
			if b.ourPieces.Get(dst) {
				if pinnedFound {
					// A second own piece shields the first. No pin.
					break
				}
				pinnedFound = true
				pinned = dst
			}
			if !pinnedFound {
				attackLine.Set(dst)
			}
			if b.theirPieces.Get(dst) {
				if sliders.Get(dst) {
					if pinnedFound {
						info.pinnedPieces.Set(pinned)
					} else {
						info.attackLines |= attackLine
						attackers++
					}
				}
				break
			}
		}
	}
	return attackers
}

// IsLegalMove reports whether a pseudolegal move leaves our king safe. The
// rare hard cases, en passant and castling and any king move while in
// check, are settled by applying the move to a copy.
func (b *Board) IsLegalMove(move Move, info KingAttackInfo) bool {
	from, to := move.From(), move.To()

	if from.Row() == Rank5 && b.pawns.Get(from) && from.Col() != to.Col() &&
		b.pawns.GetRC(Rank8, to.Col()) {
		// En passant.
		board := *b
		board.ApplyMove(move)
		return !board.IsUnderCheck()
	}

	if info.InCheck() {
		if from == b.ourKing {
			board := *b
			board.ApplyMove(move)
			return !board.IsUnderCheck()
		}
		// A pinned piece can never resolve a check.
		if info.IsPinned(from) {
			return false
		}
		if info.InDoubleCheck() {
			// Only the king can resolve a double check.
			return false
		}
		// Single check by a free piece: must capture or interpose.
		return info.IsOnAttackLine(to)
	}

	if from == b.ourKing {
		if from.Row() != Rank1 || to.Row() != Rank1 ||
			(abs(from.Col()-to.Col()) == 1 && !b.ourPieces.Get(to)) {
			// Plain king step, already vetted during generation.
			return true
		}
		// Castling: verify the king's destination with a real apply.
		board := *b
		board.ApplyMove(move)
		return !board.IsUnderCheck()
	}

	if !info.IsPinned(from) {
		return true
	}
	// Pinned piece: it must stay on the line through our king, which the
	// cross product of the two king-relative offsets detects.
	dxFrom := from.Col() - b.ourKing.Col()
	dyFrom := from.Row() - b.ourKing.Row()
	dxTo := to.Col() - b.ourKing.Col()
	dyTo := to.Row() - b.ourKing.Row()
	if dxFrom == 0 || dxTo == 0 {
		return dxFrom == dxTo
	}
	return dxFrom*dyTo == dxTo*dyFrom
}

// GenerateLegalMoves returns all strictly legal moves in the position.
func (b *Board) GenerateLegalMoves() MoveList {
	info := b.GenerateKingAttackInfo()
	moves := b.GeneratePseudolegalMoves()
	legal := moves[:0]
	for _, m := range moves {
		if b.IsLegalMove(m, info) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsSameMove reports whether two moves denote the same action, treating
// legacy (e1g1) and modern (e1h1) castling notation as equal.
func (b *Board) IsSameMove(move1, move2 Move) bool {
	if move1 == move2 {
		return true
	}
	// Only king moves from e1 can be the same move under different names.
	if move1.From() != move2.From() || move1.From() != E1 ||
		b.ourKing != move1.From() {
		return false
	}
	to1, to2 := move1.To(), move2.To()
	return to1 == A1 && to2 == C1 || to1 == C1 && to2 == A1 ||
		to1 == G1 && to2 == H1 || to1 == H1 && to2 == G1
}

// GetLegacyMove converts a king-takes-rook castling move into the legacy
// king-two-steps notation. Other moves pass through unchanged.
func (b *Board) GetLegacyMove(move Move) Move {
	if b.ourKing != move.From() || !b.ourPieces.Get(move.To()) {
		return move
	}
	if move == NewMove(E1, H1) {
		return NewMove(E1, G1)
	}
	if move == NewMove(E1, A1) {
		return NewMove(E1, C1)
	}
	return move
}

// GetModernMove converts a legacy castling move into king-takes-rook form.
// Other moves pass through unchanged.
func (b *Board) GetModernMove(move Move) Move {
	if b.ourKing != E1 || move.From() != E1 {
		return move
	}
	if move == NewMove(E1, G1) && !b.ourPieces.Get(G1) {
		return NewMove(E1, H1)
	}
	if move == NewMove(E1, C1) && !b.ourPieces.Get(C1) {
		return NewMove(E1, A1)
	}
	return move
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
