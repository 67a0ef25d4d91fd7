package engine

import "github.com/lgbarn/gochess/internal/chess"

// Promotion targets in the order they are generated.
var promotionTypes = []chess.PieceType{chess.Knight, chess.Bishop, chess.Rook, chess.Queen}

// IsPromotionType returns true if a pawn may promote to t.
func IsPromotionType(t chess.PieceType) bool {
	switch t {
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		return true
	}
	return false
}

// pawnStartRow returns the row a player's pawns start on.
func pawnStartRow(colour chess.Player) int {
	if colour == chess.White {
		return chess.BoardSize - 2
	}
	return 1
}

// promotionRow returns the row on which a player's pawns promote.
func promotionRow(colour chess.Player) int {
	return chess.HomeRow(colour.Opponent())
}

// pawnMoves yields pawn advances, captures, en passant captures and
// promotions.
func pawnMoves(board *chess.Board, from chess.Position, colour chess.Player, yield func(chess.Move) bool) bool {
	forward := chess.Forward(colour)
	one := from.Add(forward)

	if one.IsInside() && board.IsEmpty(one) {
		if !pawnStep(from, one, colour, yield) {
			return false
		}
		// Double push from starting row
		two := one.Add(forward)
		if from.Row == pawnStartRow(colour) && board.IsEmpty(two) {
			if !yield(chess.NewDoublePawnMove(from, two)) {
				return false
			}
		}
	}

	skip, hasSkip := board.PawnSkipPosition(colour.Opponent())
	for _, side := range []chess.Direction{chess.East, chess.West} {
		to := one.Add(side)
		if !to.IsInside() {
			continue
		}
		target := board.Get(to)
		switch {
		case !target.IsEmpty() && target.Color != colour:
			if !pawnStep(from, to, colour, yield) {
				return false
			}
		case target.IsEmpty() && hasSkip && to == skip:
			if !yield(chess.NewEnPassantMove(from, to)) {
				return false
			}
		}
	}
	return true
}

// pawnStep yields a single pawn step or capture, expanded into the four
// promotions when it reaches the last row.
func pawnStep(from, to chess.Position, colour chess.Player, yield func(chess.Move) bool) bool {
	if to.Row != promotionRow(colour) {
		return yield(chess.NewNormalMove(from, to))
	}
	for _, t := range promotionTypes {
		if !yield(chess.NewPromotionMove(from, to, t)) {
			return false
		}
	}
	return true
}

// pawnAttacks yields the two diagonal squares a pawn attacks, whatever
// stands on them.
func pawnAttacks(from chess.Position, colour chess.Player, yield func(chess.Move) bool) bool {
	one := from.Add(chess.Forward(colour))
	for _, side := range []chess.Direction{chess.East, chess.West} {
		to := one.Add(side)
		if !to.IsInside() {
			continue
		}
		if !yield(chess.NewNormalMove(from, to)) {
			return false
		}
	}
	return true
}

// CanCaptureEnPassant returns true if the player can legally capture the
// pawn the opponent just advanced two squares. Each candidate capture is
// built from the squares diagonally behind the skip square and checked for
// legality.
func CanCaptureEnPassant(board *chess.Board, player chess.Player) bool {
	skip, ok := board.PawnSkipPosition(player.Opponent())
	if !ok {
		return false
	}

	behind := skip.Add(chess.Forward(player).Times(-1))
	for _, side := range []chess.Direction{chess.East, chess.West} {
		from := behind.Add(side)
		if !from.IsInside() || !board.Get(from).Is(player, chess.Pawn) {
			continue
		}
		if IsLegal(board, chess.NewEnPassantMove(from, skip)) {
			return true
		}
	}
	return false
}
