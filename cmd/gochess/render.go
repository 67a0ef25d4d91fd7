package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
)

// Terminal color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorBlue  = "\033[34m"
	colorCyan  = "\033[36m"
	colorCheck = "\033[41m" // red background
)

// renderBoard writes the board with rank 8 at the top. Pieces are shown by
// their letter, uppercase for White, and empty squares as dots. With color
// set, pieces are coloured by side and a king in check is highlighted.
func renderBoard(w io.Writer, board *chess.Board, toMove chess.Player, color bool) {
	var checked chess.Position
	inCheck := false
	if engine.IsInCheck(board, toMove) {
		checked, inCheck = engine.FindKing(board, toMove)
	}

	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		sb.WriteString(paint(color, colorCyan, fmt.Sprintf("%d", chess.BoardSize-row)))
		for col := 0; col < chess.BoardSize; col++ {
			pos := chess.NewPosition(row, col)
			sb.WriteByte(' ')
			sb.WriteString(squareText(board.Get(pos), color, inCheck && pos == checked))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for col := 0; col < chess.BoardSize; col++ {
		sb.WriteByte(' ')
		sb.WriteString(paint(color, colorCyan, string(rune('a'+col))))
	}
	sb.WriteByte('\n')

	io.WriteString(w, sb.String()) //nolint:errcheck // terminal output
}

// squareText returns the symbol of one square.
func squareText(p chess.Piece, color, highlight bool) string {
	if p.IsEmpty() {
		return "."
	}
	text := string(p.Letter())
	if !color {
		return text
	}
	if highlight {
		return colorCheck + text + colorReset
	}
	if p.Color == chess.White {
		return paint(true, colorBlue, text)
	}
	return paint(true, colorRed, text)
}

// paint wraps text in an escape code when color is set.
func paint(color bool, code, text string) string {
	if !color {
		return text
	}
	return code + text + colorReset
}
