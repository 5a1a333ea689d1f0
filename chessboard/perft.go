package chessboard

// Perft counts the leaf positions reachable from the board in exactly depth
// plies of legal play. The standard movegen correctness check: published
// counts exist for many positions.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := *b
		child.Play(m)
		nodes += Perft(&child, depth-1)
	}
	return nodes
}

// DivideEntry is one root move with its subtree leaf count.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// PerftDivide returns the perft count split per root move, in generation
// order. Useful for diffing against another engine when counts disagree.
func PerftDivide(b *Board, depth int) []DivideEntry {
	moves := b.GenerateLegalMoves()
	result := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		child := *b
		child.Play(m)
		result = append(result, DivideEntry{Move: m, Nodes: Perft(&child, depth-1)})
	}
	return result
}
