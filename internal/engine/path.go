package engine

import "github.com/lgbarn/gochess/internal/chess"

// slideMoves yields moves along each direction until the path is blocked.
// An enemy blocker is included as a capture; a friendly one is not.
func slideMoves(board *chess.Board, from chess.Position, colour chess.Player, dirs []chess.Direction, yield func(chess.Move) bool) bool {
	for _, dir := range dirs {
		for to := from.Add(dir); to.IsInside(); to = to.Add(dir) {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Color != colour {
					if !yield(chess.NewNormalMove(from, to)) {
						return false
					}
				}
				break // Blocked
			}
			if !yield(chess.NewNormalMove(from, to)) {
				return false
			}
		}
	}
	return true
}

// isRowClear checks that every square strictly between the two columns on
// the given row is empty.
func isRowClear(board *chess.Board, row, fromCol, toCol int) bool {
	if fromCol > toCol {
		fromCol, toCol = toCol, fromCol
	}
	for col := fromCol + 1; col < toCol; col++ {
		if !board.IsEmpty(chess.NewPosition(row, col)) {
			return false
		}
	}
	return true
}
