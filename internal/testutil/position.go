package testutil

import (
	"iter"
	"slices"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/gochess/internal/chess"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MustSquare parses a square name such as "e4". It calls t.Fatal on error.
func MustSquare(t testing.TB, s string) chess.Position {
	t.Helper()
	pos, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", s, err)
	}
	return pos
}

// referenceGame parses fen with the reference implementation.
func referenceGame(t testing.TB, fen string) *nchess.Game {
	t.Helper()
	opt, err := nchess.FEN(fen)
	if err != nil {
		t.Fatalf("FEN(%q) error: %v", fen, err)
	}
	return nchess.NewGame(opt)
}

// BoardFromFEN builds a board and the side to move from a FEN string.
// Castling rights are expressed through HasMoved: a king without rights
// and a corner rook whose right is missing are marked as moved, as are
// pawns off their starting row. The en passant target becomes the skip
// square of the side that just moved.
func BoardFromFEN(t testing.TB, fen string) (*chess.Board, chess.Player) {
	t.Helper()
	pos := referenceGame(t, fen).Position()
	rights := pos.CastleRights()
	ref := pos.Board()

	board := chess.NewBoard()
	for sq := nchess.A1; sq <= nchess.H8; sq++ {
		p := ref.Piece(sq)
		if p == nchess.NoPiece {
			continue
		}
		at := chess.NewPosition(chess.BoardSize-1-int(sq.Rank()), int(sq.File()))
		colour := fromColor(p.Color())
		piece := chess.NewPiece(colour, fromPieceType(p.Type()))
		piece.HasMoved = inferHasMoved(piece, at, rights)
		board.Set(at, piece)
	}

	toMove := fromColor(pos.Turn())
	if ep := pos.EnPassantSquare(); ep != nchess.NoSquare {
		skip := chess.NewPosition(chess.BoardSize-1-int(ep.Rank()), int(ep.File()))
		board.SetPawnSkipPosition(toMove.Opponent(), skip)
	}
	return board, toMove
}

// inferHasMoved derives the HasMoved flag FEN does not carry.
func inferHasMoved(piece chess.Piece, at chess.Position, rights nchess.CastleRights) bool {
	home := chess.HomeRow(piece.Color)
	colour := toColor(piece.Color)
	kingSide := rights.CanCastle(colour, nchess.KingSide)
	queenSide := rights.CanCastle(colour, nchess.QueenSide)

	switch piece.Type {
	case chess.King:
		return at != chess.NewPosition(home, chess.KingColumn) || (!kingSide && !queenSide)
	case chess.Rook:
		switch at {
		case chess.NewPosition(home, chess.KingSideRookColumn):
			return !kingSide
		case chess.NewPosition(home, chess.QueenSideRookColumn):
			return !queenSide
		}
		return true
	case chess.Pawn:
		start := 1
		if piece.Color == chess.White {
			start = chess.BoardSize - 2
		}
		return at.Row != start
	}
	return false
}

// ReferenceMoves returns the legal moves of the side to move in fen as
// sorted coordinate strings, computed by the reference implementation.
func ReferenceMoves(t testing.TB, fen string) []string {
	t.Helper()
	var moves []string
	for _, m := range referenceGame(t, fen).ValidMoves() {
		moves = append(moves, m.String())
	}
	slices.Sort(moves)
	return moves
}

// MoveStrings collects the coordinate form of each move, sorted.
func MoveStrings(seq iter.Seq[chess.Move]) []string {
	var moves []string
	for m := range seq {
		moves = append(moves, m.String())
	}
	slices.Sort(moves)
	return moves
}

func fromColor(c nchess.Color) chess.Player {
	switch c {
	case nchess.White:
		return chess.White
	case nchess.Black:
		return chess.Black
	}
	return chess.NoPlayer
}

func toColor(p chess.Player) nchess.Color {
	if p == chess.White {
		return nchess.White
	}
	return nchess.Black
}

func fromPieceType(t nchess.PieceType) chess.PieceType {
	switch t {
	case nchess.King:
		return chess.King
	case nchess.Queen:
		return chess.Queen
	case nchess.Rook:
		return chess.Rook
	case nchess.Bishop:
		return chess.Bishop
	case nchess.Knight:
		return chess.Knight
	case nchess.Pawn:
		return chess.Pawn
	}
	return chess.NoPiece
}
