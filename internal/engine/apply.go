package engine

import (
	"fmt"

	"github.com/lgbarn/gochess/internal/chess"
)

// Effect describes what executing a move did beyond relocating pieces.
type Effect struct {
	// CaptureOrPawn is true if the move captured a piece or moved a pawn.
	// It resets the fifty-move counter.
	CaptureOrPawn bool

	// PawnSkip is true if the move was a double pawn advance and set the
	// mover's skip marker.
	PawnSkip bool
}

// Execute applies a move to the board, marks the moved pieces as moved and
// reports the move's effect. It does not check legality and does not clear
// skip markers left by earlier moves; GameState does that before each move.
// Executing a promotion to anything but a knight, bishop, rook or queen
// panics.
func Execute(board *chess.Board, move chess.Move) Effect {
	switch move.Type {
	case chess.CastleKingSide, chess.CastleQueenSide:
		return applyCastle(board, move)

	case chess.DoublePawn:
		colour := board.Get(move.From).Color
		movePiece(board, move.From, move.To)
		board.SetPawnSkipPosition(colour, move.SkippedPosition())
		return Effect{CaptureOrPawn: true, PawnSkip: true}

	case chess.EnPassant:
		board.Clear(move.Captured)
		movePiece(board, move.From, move.To)
		return Effect{CaptureOrPawn: true}

	case chess.PawnPromotion:
		return applyPromotion(board, move)

	default:
		return applyNormal(board, move)
	}
}

// applyNormal applies a plain move or capture.
func applyNormal(board *chess.Board, move chess.Move) Effect {
	captured := !board.IsEmpty(move.To)
	moved := movePiece(board, move.From, move.To)
	return Effect{CaptureOrPawn: captured || moved.Type == chess.Pawn}
}

// applyPromotion replaces the pawn with a new piece of the requested type.
func applyPromotion(board *chess.Board, move chess.Move) Effect {
	if !IsPromotionType(move.Promotion) {
		panic(fmt.Sprintf("engine: promotion to %v", move.Promotion))
	}
	colour := board.Get(move.From).Color
	board.Clear(move.From)
	board.Set(move.To, chess.Piece{Type: move.Promotion, Color: colour, HasMoved: true})
	return Effect{CaptureOrPawn: true}
}

// movePiece copies the piece to its destination, marks it as moved and
// clears the source square. It returns the moved piece.
func movePiece(board *chess.Board, from, to chess.Position) chess.Piece {
	piece := board.Get(from)
	piece.HasMoved = true
	board.Clear(from)
	board.Set(to, piece)
	return piece
}
