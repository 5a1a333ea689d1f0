package chessboard

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

const svgSquareSize = 45

var svgGlyphs = map[byte]string{
	'K': "♔", 'Q': "♕", 'R': "♖",
	'B': "♗", 'N': "♘", 'P': "♙",
	'k': "♚", 'q': "♛", 'r': "♜",
	'b': "♝", 'n': "♞", 'p': "♟",
}

// WriteSVG draws the board as an SVG diagram, always from white's point of
// view with white at the bottom.
func (b *Board) WriteSVG(w io.Writer) {
	board := *b
	if board.flipped {
		board.Mirror()
	}

	const size = 8 * svgSquareSize
	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:#b58863")
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			x := col * svgSquareSize
			y := (7 - row) * svgSquareSize
			if (row+col)%2 == 1 {
				canvas.Rect(x, y, svgSquareSize, svgSquareSize, "fill:#f0d9b5")
			}
			c := board.pieceLetter(NewSquare(row, col))
			if c == 0 {
				continue
			}
			canvas.Text(x+svgSquareSize/2, y+svgSquareSize*3/4, svgGlyphs[c],
				"font-size:36px;text-anchor:middle")
		}
	}
	canvas.End()
}
