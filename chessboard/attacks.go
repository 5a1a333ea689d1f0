package chessboard

// Precomputed attack sets for non-sliding pieces, plus empty-board slider
// masks used to prefilter candidate attackers before consulting the magic
// tables. All are filled in init and never written afterwards.
var (
	kingMoves   [64]BitBoard
	knightMoves [64]BitBoard

	// pawnAttacks[sq] is the set of squares from which one of their pawns
	// attacks sq, i.e. the two squares diagonally ahead of sq.
	pawnAttacks [64]BitBoard

	// Empty-board rays, superset of any occupied-board attack set.
	emptyRookAttacks   [64]BitBoard
	emptyBishopAttacks [64]BitBoard
)

var kingDeltas = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
}

var knightDeltas = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
}

func init() {
	for sq := Square(0); sq < 64; sq++ {
		row, col := sq.Row(), sq.Col()
		for _, d := range kingDeltas {
			kingMoves[sq].SetIf(NewSquare(row+d[0], col+d[1]),
				validSquare(row+d[0], col+d[1]))
		}
		for _, d := range knightDeltas {
			knightMoves[sq].SetIf(NewSquare(row+d[0], col+d[1]),
				validSquare(row+d[0], col+d[1]))
		}
		for _, dc := range []int{-1, 1} {
			if validSquare(row+1, col+dc) {
				pawnAttacks[sq].SetRC(row+1, col+dc)
			}
		}
		for _, dir := range rookDirections {
			for r, c := row+dir[0], col+dir[1]; validSquare(r, c); r, c = r+dir[0], c+dir[1] {
				emptyRookAttacks[sq].SetRC(r, c)
			}
		}
		for _, dir := range bishopDirections {
			for r, c := row+dir[0], col+dir[1]; validSquare(r, c); r, c = r+dir[0], c+dir[1] {
				emptyBishopAttacks[sq].SetRC(r, c)
			}
		}
	}
}
