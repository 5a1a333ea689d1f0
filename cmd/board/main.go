// Command board inspects a position: it prints the board, its FEN and the
// legal moves, and can render an SVG diagram.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/CSCI5622-DeeperBlue/lc0/chessboard"
)

func main() {
	fen := flag.String("fen", chessboard.StartposFEN, "FEN string (defaults to initial position)")
	movesFlag := flag.String("moves", "", "Space-separated moves to play from the given position")
	svgPath := flag.String("svg", "", "Write an SVG diagram of the final position to this file")
	flag.Parse()

	chessboard.InitializeMagicBitboards()
	board, err := chessboard.NewBoardFromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse FEN: %v\n", err)
		os.Exit(2)
	}

	for _, s := range strings.Fields(*movesFlag) {
		parsed, err := chessboard.ParseMove(s, board.Flipped())
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse move %q: %v\n", s, err)
			os.Exit(2)
		}
		var played bool
		for _, m := range board.GenerateLegalMoves() {
			if board.IsSameMove(parsed, m) {
				board.Play(m)
				played = true
				break
			}
		}
		if !played {
			fmt.Fprintf(os.Stderr, "illegal move %q in position %s\n", s, board.FEN())
			os.Exit(2)
		}
	}

	fmt.Print(board.DebugString())
	fmt.Printf("FEN: %s\n", board.FEN())
	if board.IsUnderCheck() {
		fmt.Println("Side to move is in check.")
	}

	moves := board.GenerateLegalMoves()
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		lm := board.GetLegacyMove(m)
		if board.Flipped() {
			lm.Mirror()
		}
		names = append(names, lm.String())
	}
	slices.Sort(names)
	fmt.Printf("Legal moves (%d): %s\n", len(names), strings.Join(names, " "))

	if *svgPath != "" {
		f, err := os.Create(*svgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating svg: %v\n", err)
			os.Exit(2)
		}
		board.WriteSVG(f)
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "writing svg: %v\n", err)
			os.Exit(2)
		}
	}
}
