package engine

import "github.com/lgbarn/gochess/internal/chess"

// IsInCheck returns true if any opposing piece can capture the player's
// king on the current layout. A player without a king is never in check.
func IsInCheck(board *chess.Board, player chess.Player) bool {
	for pos := range board.PiecePositionsFor(player.Opponent()) {
		if CanCaptureOpponentKing(board, pos) {
			return true
		}
	}
	return false
}

// FindKing returns the square of the player's king.
func FindKing(board *chess.Board, player chess.Player) (chess.Position, bool) {
	for pos := range board.PiecePositionsFor(player) {
		if board.Get(pos).Type == chess.King {
			return pos, true
		}
	}
	return chess.Position{}, false
}
