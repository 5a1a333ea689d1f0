package chessboard

import (
	"strings"
	"testing"
)

func TestWriteSVG(t *testing.T) {
	b := StartingBoard()
	var sb strings.Builder
	b.WriteSVG(&sb)
	out := sb.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	// 32 pieces, each as its own text element.
	if got := strings.Count(out, "<text"); got != 32 {
		t.Fatalf("piece glyphs: got %d want 32", got)
	}
	// White king glyph present exactly once.
	if got := strings.Count(out, "♔"); got != 1 {
		t.Fatalf("white king glyphs: got %d want 1", got)
	}
}

func TestWriteSVGAlwaysWhiteOnBottom(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var sb strings.Builder
	b.WriteSVG(&sb)
	out := sb.String()
	if strings.Count(out, "♔") != 1 || strings.Count(out, "♚") != 1 {
		t.Fatalf("both kings should render:\n%s", out)
	}
}
