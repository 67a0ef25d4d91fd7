package engine

import (
	"strings"

	"github.com/lgbarn/gochess/internal/chess"
)

// InitialFingerprint is the fingerprint of the standard starting position
// with White to move.
const InitialFingerprint = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

// Fingerprint encodes a position for repetition counting. It has the first
// four fields of FEN: piece placement, side to move, castling rights and the
// en passant target. The target is written only when the side to move can
// actually capture en passant, so positions that differ only by an unusable
// skip square compare equal.
func Fingerprint(board *chess.Board, toMove chess.Player) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, toMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board, toMove)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.NewPosition(row, col))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, toMove chess.Player) {
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	if board.CastleRightShort(chess.White) {
		sb.WriteByte('K')
		hasCastling = true
	}
	if board.CastleRightLong(chess.White) {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if board.CastleRightShort(chess.Black) {
		sb.WriteByte('k')
		hasCastling = true
	}
	if board.CastleRightLong(chess.Black) {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board, toMove chess.Player) {
	if !CanCaptureEnPassant(board, toMove) {
		sb.WriteByte('-')
		return
	}
	skip, _ := board.PawnSkipPosition(toMove.Opponent())
	sb.WriteString(skip.Square())
}
