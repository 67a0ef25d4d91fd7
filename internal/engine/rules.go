// Package engine implements the rules of chess on top of the board model:
// piece geometry, check detection, move legality and execution, draw rules,
// position fingerprints and the GameState that drives a game.
package engine

import (
	"github.com/lgbarn/gochess/internal/chess"
)

// Draw rule thresholds.
const (
	// FiftyMoveThreshold is the number of half-moves without a capture or
	// pawn move that ends the game.
	FiftyMoveThreshold = 100

	// RepetitionThreshold is the number of occurrences of one position that
	// ends the game.
	RepetitionThreshold = 3
)

// InsufficientMaterial returns true if neither side can mate.
// Insufficient material is exactly:
// - K vs K
// - K+B vs K
// - K+N vs K
func InsufficientMaterial(board *chess.Board) bool {
	counting := board.CountPieces()

	if counting.Count(chess.White, chess.King) != 1 || counting.Count(chess.Black, chess.King) != 1 {
		return false
	}

	switch counting.Total() {
	case 2:
		return true
	case 3:
		minors := counting.Count(chess.White, chess.Bishop) + counting.Count(chess.Black, chess.Bishop) +
			counting.Count(chess.White, chess.Knight) + counting.Count(chess.Black, chess.Knight)
		return minors == 1
	}
	return false
}

// IsCheckmate returns true if the player is in check and has no legal move.
func IsCheckmate(board *chess.Board, player chess.Player) bool {
	return IsInCheck(board, player) && !HasLegalMoves(board, player)
}

// IsStalemate returns true if the player is not in check and has no legal
// move.
func IsStalemate(board *chess.Board, player chess.Player) bool {
	return !IsInCheck(board, player) && !HasLegalMoves(board, player)
}
