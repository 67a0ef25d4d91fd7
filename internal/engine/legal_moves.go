package engine

import (
	"iter"

	"github.com/lgbarn/gochess/internal/chess"
)

// IsLegal reports whether a pseudo-legal move may be played on the board.
// The move is executed on a copy and must not leave the mover's king in
// check; castles, en passant and promotions add their own preconditions.
// IsLegal does not re-derive piece geometry: callers pass moves produced by
// PieceMoves.
func IsLegal(board *chess.Board, move chess.Move) bool {
	if !move.From.IsInside() || !move.To.IsInside() {
		return false
	}
	piece := board.Get(move.From)
	if piece.IsEmpty() {
		return false
	}
	colour := piece.Color

	switch move.Type {
	case chess.CastleKingSide, chess.CastleQueenSide:
		if piece.Type != chess.King {
			return false
		}
		return isCastleLegal(board, move, colour)

	case chess.EnPassant:
		if !isEnPassantAvailable(board, move, colour) {
			return false
		}

	case chess.PawnPromotion:
		if !IsPromotionType(move.Promotion) {
			return false
		}
	}

	return tryMove(board, move, colour)
}

// isEnPassantAvailable checks that the destination is the opponent's skip
// square and that an enemy pawn stands on the captured square.
func isEnPassantAvailable(board *chess.Board, move chess.Move, colour chess.Player) bool {
	opponent := colour.Opponent()
	skip, ok := board.PawnSkipPosition(opponent)
	if !ok || skip != move.To || !move.Captured.IsInside() {
		return false
	}
	return board.Get(move.Captured).Is(opponent, chess.Pawn)
}

// tryMove makes a move on a copied board and checks it does not leave the
// player's king in check.
func tryMove(board *chess.Board, move chess.Move, colour chess.Player) bool {
	testBoard := board.Copy()
	Execute(testBoard, move)
	return !IsInCheck(testBoard, colour)
}

// LegalMovesFrom yields the legal moves of the piece on pos, in generation
// order.
func LegalMovesFrom(board *chess.Board, pos chess.Position) iter.Seq[chess.Move] {
	return func(yield func(chess.Move) bool) {
		for move := range PieceMoves(board, pos) {
			if !IsLegal(board, move) {
				continue
			}
			if !yield(move) {
				return
			}
		}
	}
}

// HasLegalMoves returns true if the player has at least one legal move.
func HasLegalMoves(board *chess.Board, player chess.Player) bool {
	for pos := range board.PiecePositionsFor(player) {
		for range LegalMovesFrom(board, pos) {
			return true
		}
	}
	return false
}
