package chessboard

import "testing"

func TestBitBoardSetResetIndependence(t *testing.T) {
	for sq := Square(0); sq < 64; sq++ {
		var b BitBoard
		b.Set(sq)
		if !b.Get(sq) {
			t.Fatalf("square %v not set after Set", sq)
		}
		for other := Square(0); other < 64; other++ {
			if other != sq && b.Get(other) {
				t.Fatalf("Set(%v) also set %v", sq, other)
			}
		}
		b.Reset(sq)
		if b != 0 {
			t.Fatalf("board not empty after Reset(%v): %x", sq, uint64(b))
		}
	}
}

func TestBitBoardPop(t *testing.T) {
	var b BitBoard
	b.Set(A1)
	b.Set(E1)
	b.SetRC(7, 7)
	want := []Square{A1, E1, NewSquare(7, 7)}
	var got []Square
	for b != 0 {
		got = append(got, b.Pop())
	}
	if len(got) != len(want) {
		t.Fatalf("popped %d squares, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pop %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestBitBoardMirror(t *testing.T) {
	var b BitBoard
	b.SetRC(0, 3) // d1
	b.SetRC(6, 7) // h7
	m := b.Mirrored()
	if !m.GetRC(7, 3) || !m.GetRC(1, 7) {
		t.Fatalf("mirror misplaced bits:\n%s", m.DebugString())
	}
	if m.Count() != 2 {
		t.Fatalf("mirror changed popcount: %d", m.Count())
	}
	if m.Mirrored() != b {
		t.Fatalf("mirror not an involution")
	}
}

func TestBitBoardFlipFiles(t *testing.T) {
	var b BitBoard
	b.SetRC(2, 0) // a3
	f := b.FlipFiles()
	if !f.GetRC(2, 7) || f.Count() != 1 {
		t.Fatalf("a3 should flip to h3:\n%s", f.DebugString())
	}
	if f.FlipFiles() != b {
		t.Fatalf("file flip not an involution")
	}
}

func TestBitBoardTranspose(t *testing.T) {
	var b BitBoard
	b.SetRC(1, 4) // e2
	b.SetRC(0, 0) // a1, on the diagonal
	tr := b.Transpose()
	if !tr.GetRC(4, 1) || !tr.GetRC(0, 0) || tr.Count() != 2 {
		t.Fatalf("transpose misplaced bits:\n%s", tr.DebugString())
	}
	if tr.Transpose() != b {
		t.Fatalf("transpose not an involution")
	}
}

func TestSquareParseAndString(t *testing.T) {
	sq, err := ParseSquare("e4", false)
	if err != nil {
		t.Fatalf("ParseSquare: %v", err)
	}
	if sq != NewSquare(3, 4) {
		t.Fatalf("e4: got %v", sq)
	}
	if sq.String() != "e4" {
		t.Fatalf("String: got %q", sq.String())
	}
	// Black-relative coordinates mirror the row.
	sq, err = ParseSquare("e4", true)
	if err != nil {
		t.Fatalf("ParseSquare black: %v", err)
	}
	if sq != NewSquare(4, 4) {
		t.Fatalf("e4 from black: got %v", sq)
	}
	if _, err := ParseSquare("i9", false); err == nil {
		t.Fatalf("expected error for i9")
	}
}
