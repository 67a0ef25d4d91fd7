package engine

import (
	"iter"

	"github.com/lgbarn/gochess/internal/chess"
)

var (
	straightDirections = []chess.Direction{chess.North, chess.South, chess.East, chess.West}
	diagonalDirections = []chess.Direction{chess.NorthEast, chess.NorthWest, chess.SouthEast, chess.SouthWest}
	allDirections      = []chess.Direction{
		chess.North, chess.South, chess.East, chess.West,
		chess.NorthEast, chess.NorthWest, chess.SouthEast, chess.SouthWest,
	}

	knightOffsets = []chess.Direction{
		chess.North.Times(2).Add(chess.East),
		chess.North.Times(2).Add(chess.West),
		chess.South.Times(2).Add(chess.East),
		chess.South.Times(2).Add(chess.West),
		chess.East.Times(2).Add(chess.North),
		chess.East.Times(2).Add(chess.South),
		chess.West.Times(2).Add(chess.North),
		chess.West.Times(2).Add(chess.South),
	}
)

// PieceMoves yields the pseudo-legal moves of the piece standing on pos.
// The moves follow piece geometry only; they may leave the mover's own king
// in check. An empty square yields nothing.
func PieceMoves(board *chess.Board, pos chess.Position) iter.Seq[chess.Move] {
	return func(yield func(chess.Move) bool) {
		piece := board.Get(pos)
		if piece.IsEmpty() {
			return
		}
		pieceMoves(board, pos, piece, yield)
	}
}

// pieceMoves dispatches on the piece type. It returns false once yield has
// asked to stop.
func pieceMoves(board *chess.Board, from chess.Position, piece chess.Piece, yield func(chess.Move) bool) bool {
	switch piece.Type {
	case chess.Pawn:
		return pawnMoves(board, from, piece.Color, yield)

	case chess.Knight:
		return stepMoves(board, from, piece.Color, knightOffsets, yield)

	case chess.Bishop:
		return slideMoves(board, from, piece.Color, diagonalDirections, yield)

	case chess.Rook:
		return slideMoves(board, from, piece.Color, straightDirections, yield)

	case chess.Queen:
		return slideMoves(board, from, piece.Color, allDirections, yield)

	case chess.King:
		if !stepMoves(board, from, piece.Color, allDirections, yield) {
			return false
		}
		return castleMoves(board, from, piece.Color, yield)
	}

	return true
}

// CanCaptureOpponentKing returns true if the piece on pos attacks the
// opposing king. Castles are never considered and no check filtering is
// applied, so it is safe to call from check detection.
func CanCaptureOpponentKing(board *chess.Board, pos chess.Position) bool {
	piece := board.Get(pos)
	if piece.IsEmpty() {
		return false
	}

	enemyKing := piece.Color.Opponent()
	found := false
	visit := func(m chess.Move) bool {
		if board.Get(m.To).Is(enemyKing, chess.King) {
			found = true
			return false
		}
		return true
	}

	switch piece.Type {
	case chess.Pawn:
		pawnAttacks(pos, piece.Color, visit)
	case chess.King:
		stepMoves(board, pos, piece.Color, allDirections, visit)
	default:
		pieceMoves(board, pos, piece, visit)
	}
	return found
}

// stepMoves yields single-step moves to each on-board offset that is not
// occupied by a friendly piece.
func stepMoves(board *chess.Board, from chess.Position, colour chess.Player, offsets []chess.Direction, yield func(chess.Move) bool) bool {
	for _, offset := range offsets {
		to := from.Add(offset)
		if !to.IsInside() {
			continue
		}
		if target := board.Get(to); !target.IsEmpty() && target.Color == colour {
			continue
		}
		if !yield(chess.NewNormalMove(from, to)) {
			return false
		}
	}
	return true
}
