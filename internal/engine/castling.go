package engine

import "github.com/lgbarn/gochess/internal/chess"

// homeKingPosition returns the square a player's king starts on.
func homeKingPosition(colour chess.Player) chess.Position {
	return chess.NewPosition(chess.HomeRow(colour), chess.KingColumn)
}

// castleRight reports whether the player keeps the right for this castle.
func castleRight(board *chess.Board, colour chess.Player, t chess.MoveType) bool {
	if t == chess.CastleKingSide {
		return board.CastleRightShort(colour)
	}
	return board.CastleRightLong(colour)
}

// castleMoves yields the castles available to the king on kingPos: the
// rights hold and the squares between king and rook are empty. Check
// conditions are left to IsLegal.
func castleMoves(board *chess.Board, kingPos chess.Position, colour chess.Player, yield func(chess.Move) bool) bool {
	if kingPos != homeKingPosition(colour) {
		return true
	}
	for _, t := range []chess.MoveType{chess.CastleKingSide, chess.CastleQueenSide} {
		move := chess.NewCastleMove(t, kingPos)
		if !castleRight(board, colour, t) || !isRowClear(board, kingPos.Row, kingPos.Column, move.RookFrom.Column) {
			continue
		}
		if !yield(move) {
			return false
		}
	}
	return true
}

// isCastleLegal checks the castle-specific rules: unmoved king and rook on
// their home squares, an empty path between them, and a king that is not in
// check, does not cross an attacked square and does not land on one.
func isCastleLegal(board *chess.Board, move chess.Move, colour chess.Player) bool {
	kingPos := homeKingPosition(colour)
	if move != chess.NewCastleMove(move.Type, kingPos) {
		return false
	}
	if !castleRight(board, colour, move.Type) {
		return false
	}
	if !isRowClear(board, kingPos.Row, kingPos.Column, move.RookFrom.Column) {
		return false
	}
	if IsInCheck(board, colour) {
		return false
	}

	// The king's transit square is the rook's destination.
	if !tryMove(board, chess.NewNormalMove(kingPos, move.RookTo), colour) {
		return false
	}
	return tryMove(board, move, colour)
}

// applyCastle moves both king and rook.
func applyCastle(board *chess.Board, move chess.Move) Effect {
	movePiece(board, move.From, move.To)
	movePiece(board, move.RookFrom, move.RookTo)
	return Effect{}
}
