package chessboard

import (
	"strings"
	"testing"
)

func TestMirrorInvolution(t *testing.T) {
	b, err := NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := b
	m.Mirror()
	if m == b {
		t.Fatalf("mirror should change the stored position")
	}
	if !m.Flipped() {
		t.Fatalf("mirror should toggle orientation")
	}
	m.Mirror()
	if m != b {
		t.Fatalf("double mirror should restore the position")
	}
}

func TestHashDistinguishesState(t *testing.T) {
	withEP, err := NewBoardFromFEN("rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR w KQkq e6 0 2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	withoutEP, err := NewBoardFromFEN("rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if withEP.Hash() == withoutEP.Hash() {
		t.Fatalf("hash must see the en-passant marker")
	}
	copyBoard := withEP
	if copyBoard.Hash() != withEP.Hash() {
		t.Fatalf("equal boards must hash equally")
	}
	// Clocks are not part of the hash.
	copyBoard.Rule50 = 40
	if copyBoard.Hash() != withEP.Hash() {
		t.Fatalf("clocks must not affect the hash")
	}
	mirrored := withEP
	mirrored.Mirror()
	if mirrored.Hash() == withEP.Hash() {
		t.Fatalf("orientation must affect the hash")
	}
}

func TestHasMatingMaterial(t *testing.T) {
	for _, tc := range []struct {
		fen  string
		want bool
	}{
		{StartposFEN, true},
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", false},                // bare kings
		{"4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", false},              // lone bishop
		{"4k3/8/8/8/8/8/8/2N1K3 w - - 0 1", false},              // lone knight
		{"4k3/8/8/8/8/8/8/2R1K3 w - - 0 1", true},               // rook mates
		{"4k3/7p/8/8/8/8/8/4K3 w - - 0 1", true},                // pawn promotes
		{"2b1k3/8/8/8/8/8/8/2B1K3 w - - 0 1", false},            // same-color bishops
		{"1b2k3/8/8/8/8/8/8/2B1K3 w - - 0 1", true},             // opposite bishops
		{"4k3/8/8/8/8/8/8/1NN1K3 w - - 0 1", true},              // two knights
	} {
		b, err := NewBoardFromFEN(tc.fen)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.fen, err)
		}
		if got := b.HasMatingMaterial(); got != tc.want {
			t.Errorf("%q: HasMatingMaterial = %v, want %v", tc.fen, got, tc.want)
		}
	}
}

func TestDebugString(t *testing.T) {
	b := StartingBoard()
	s := b.DebugString()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("debug rendering has %d lines:\n%s", len(lines), s)
	}
	if lines[0] != "rnbqkbnr" {
		t.Fatalf("top rank: got %q", lines[0])
	}
	if !strings.HasPrefix(lines[7], "RNBQKBNR") {
		t.Fatalf("bottom rank: got %q", lines[7])
	}
	if !strings.Contains(lines[7], "[KQkq]") || !strings.Contains(lines[7], "white's eyes") {
		t.Fatalf("missing castling or orientation summary: %q", lines[7])
	}

	// The en-passant marker renders as '*' on the capture square.
	ep, err := NewBoardFromFEN("rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR w KQkq e6 0 2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	epLines := strings.Split(ep.DebugString(), "\n")
	if epLines[2] != "....*..." {
		t.Fatalf("e6 marker line: got %q", epLines[2])
	}
}

func TestClearResetsEverything(t *testing.T) {
	b := StartingBoard()
	b.Clear()
	if b.Ours() != 0 || b.Theirs() != 0 || b.Pawns() != 0 {
		t.Fatalf("Clear left pieces on the board")
	}
	if b.Castlings().AnyCastling() {
		t.Fatalf("Clear left castling rights")
	}
	if b.MoveCount != 1 || b.Rule50 != 0 {
		t.Fatalf("Clear left clocks: %d %d", b.Rule50, b.MoveCount)
	}
}
