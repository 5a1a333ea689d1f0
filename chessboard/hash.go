package chessboard

// mixHash scrambles a single 64-bit value.
func mixHash(val uint64) uint64 {
	return 0xFAD0D7F2FBB059F1*(val+0xBAAD41CDCB839961) +
		0x7ACEC0050BF82F43*((val>>31)+0xD571B3A92B1B2755)
}

// hashCat folds a sequence of values into one hash, order-sensitively.
func hashCat(values ...uint64) uint64 {
	var hash uint64
	for _, x := range values {
		hash = mixHash(mixHash(hash) + mixHash(x))
	}
	return hash
}

// Hash returns a hash of the stored position. It is a pure function of the
// board state as stored, so the en-passant markers, castling rights and
// orientation all contribute; the clocks do not.
func (b *Board) Hash() uint64 {
	var flipped uint64
	if b.flipped {
		flipped = 1
	}
	return hashCat(
		uint64(b.ourPieces),
		uint64(b.theirPieces),
		uint64(b.rooks),
		uint64(b.bishops),
		uint64(b.pawns),
		uint64(b.ourKing)<<24|uint64(b.theirKing)<<16|
			uint64(b.castlings.data)<<8|flipped,
	)
}
