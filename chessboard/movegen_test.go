package chessboard

import (
	"testing"

	"golang.org/x/exp/slices"
)

func moveStrings(moves MoveList) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	slices.Sort(out)
	return out
}

func TestStartingPositionHasTwentyMoves(t *testing.T) {
	b := StartingBoard()
	moves := b.GenerateLegalMoves()
	if len(moves) != 20 {
		t.Fatalf("start position: got %d moves %v, want 20", len(moves), moveStrings(moves))
	}
}

func TestCheckmateHasNoMoves(t *testing.T) {
	// Fool's mate, white to move and mated.
	b, err := NewBoardFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !b.IsUnderCheck() {
		t.Fatalf("mated side should be in check")
	}
	if moves := b.GenerateLegalMoves(); len(moves) != 0 {
		t.Fatalf("checkmate: got moves %v", moveStrings(moves))
	}
}

func TestStalemateHasNoMoves(t *testing.T) {
	b, err := NewBoardFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.IsUnderCheck() {
		t.Fatalf("stalemated side must not be in check")
	}
	if moves := b.GenerateLegalMoves(); len(moves) != 0 {
		t.Fatalf("stalemate: got moves %v", moveStrings(moves))
	}
}

func TestPinnedPieceStaysOnLine(t *testing.T) {
	// White pawn d2 is pinned by the bishop on b4 along b4-e1.
	b, err := NewBoardFromFEN("4k3/8/8/8/1b6/8/3P4/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	info := b.GenerateKingAttackInfo()
	if info.InCheck() {
		t.Fatalf("king should not be in check")
	}
	d2, _ := ParseSquare("d2", false)
	if !info.IsPinned(d2) {
		t.Fatalf("d2 pawn should be pinned")
	}
	for _, m := range b.GenerateLegalMoves() {
		if m.From() == d2 {
			t.Fatalf("pinned pawn moved off the pin line: %v", m)
		}
	}
}

func TestPinnedSliderMovesAlongLine(t *testing.T) {
	// White rook e2 is pinned on the e-file but may slide along it.
	b, err := NewBoardFromFEN("4k3/8/4r3/8/8/8/4R3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	e2, _ := ParseSquare("e2", false)
	var rookMoves []string
	for _, m := range b.GenerateLegalMoves() {
		if m.From() == e2 {
			rookMoves = append(rookMoves, m.String())
		}
	}
	slices.Sort(rookMoves)
	want := []string{"e2e3", "e2e4", "e2e5", "e2e6"}
	if !slices.Equal(rookMoves, want) {
		t.Fatalf("pinned rook moves: got %v want %v", rookMoves, want)
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// Rook on e8 and bishop on h4 both check the e1 king.
	b, err := NewBoardFromFEN("4r2k/8/8/8/7b/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	info := b.GenerateKingAttackInfo()
	if !info.InDoubleCheck() {
		t.Fatalf("expected double check")
	}
	for _, m := range b.GenerateLegalMoves() {
		if m.From() != b.OurKing() {
			t.Fatalf("non-king move in double check: %v", m)
		}
	}
}

func TestCheckEvasions(t *testing.T) {
	// Rook check on the e-file: block, capture or step aside.
	b, err := NewBoardFromFEN("4r2k/8/8/8/8/8/3Q4/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := moveStrings(b.GenerateLegalMoves())
	want := []string{"d2e2", "d2e3", "e1d1", "e1f1", "e1f2"}
	if !slices.Equal(got, want) {
		t.Fatalf("evasions: got %v want %v", got, want)
	}
}

func TestCastlingGeneration(t *testing.T) {
	b, err := NewBoardFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	moves := moveStrings(b.GenerateLegalMoves())
	// Castling is generated as king takes own rook.
	for _, want := range []string{"e1a1", "e1h1"} {
		if !slices.Contains(moves, want) {
			t.Fatalf("missing castling %s in %v", want, moves)
		}
	}
}

func TestCastlingBlockedByAttack(t *testing.T) {
	// Black rook on f8 attacks f1: kingside castling is illegal, queenside
	// stays available.
	b, err := NewBoardFromFEN("5rk1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	moves := moveStrings(b.GenerateLegalMoves())
	if slices.Contains(moves, "e1h1") {
		t.Fatalf("castling through an attacked square generated: %v", moves)
	}
	if !slices.Contains(moves, "e1a1") {
		t.Fatalf("queenside castling missing: %v", moves)
	}
}

func TestKingCannotStepIntoCheck(t *testing.T) {
	b, err := NewBoardFromFEN("4r2k/8/8/8/8/8/8/3K4 w - - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, m := range b.GenerateLegalMoves() {
		if m.To().Col() == FileE {
			t.Fatalf("king stepped onto the attacked e-file: %v", m)
		}
	}
}

func TestLegacyModernCastlingTranslation(t *testing.T) {
	b, err := NewBoardFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	modern, _ := ParseMove("e1h1", false)
	legacy, _ := ParseMove("e1g1", false)
	if got := b.GetLegacyMove(modern); got != legacy {
		t.Fatalf("GetLegacyMove: got %v want %v", got, legacy)
	}
	if got := b.GetModernMove(legacy); got != modern {
		t.Fatalf("GetModernMove: got %v want %v", got, modern)
	}
	if !b.IsSameMove(modern, legacy) {
		t.Fatalf("IsSameMove should equate e1h1 and e1g1 here")
	}
	ordinary, _ := ParseMove("e1f1", false)
	if b.GetLegacyMove(ordinary) != ordinary || b.GetModernMove(ordinary) != ordinary {
		t.Fatalf("ordinary king move must pass through translation")
	}
	// With a rook on g1 the legacy e1g1 is a real capture, not castling.
	b2, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/4K1R1 w - - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := b2.GetModernMove(legacy); got != legacy {
		t.Fatalf("e1g1 onto own rook square: got %v want %v", got, legacy)
	}
}

func TestChess960CastlingRoundTrip(t *testing.T) {
	// King d1, rooks b1 and g1.
	b, err := NewBoardFromFEN("1r1k2r1/pppppppp/8/8/8/8/PPPPPPPP/1R1K2R1 w GBgb - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	moves := moveStrings(b.GenerateLegalMoves())
	if !slices.Contains(moves, "d1b1") || !slices.Contains(moves, "d1g1") {
		t.Fatalf("Chess960 castlings missing: %v", moves)
	}
	// King not on e1: the legacy translation must leave these alone.
	m, _ := ParseMove("d1g1", false)
	if got := b.GetLegacyMove(m); got != m {
		t.Fatalf("GetLegacyMove rewrote a Chess960 castling: %v", got)
	}
	child := b
	child.Play(m)
	// King castles to g-file's standard destination g1, rook to f1.
	if !child.Theirs().GetRC(7, 6) || !child.Theirs().GetRC(7, 5) {
		t.Fatalf("castled king/rook misplaced:\n%s", child.DebugString())
	}
}
