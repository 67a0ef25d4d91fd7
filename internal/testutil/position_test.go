package testutil

import (
	"slices"
	"testing"

	"github.com/lgbarn/gochess/internal/chess"
)

func TestBoardFromFEN_Initial(t *testing.T) {
	board, toMove := BoardFromFEN(t, InitialFEN)

	if toMove != chess.White {
		t.Errorf("side to move = %v, want White", toMove)
	}
	if *board != *chess.NewInitialBoard() {
		t.Error("BoardFromFEN(InitialFEN) differs from NewInitialBoard()")
	}
}

func TestBoardFromFEN_CastlingRights(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		player    chess.Player
		wantShort bool
		wantLong  bool
	}{
		{"all rights", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", chess.White, true, true},
		{"white king side only", "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1", chess.White, true, false},
		{"black queen side only", "r3k2r/8/8/8/8/8/8/R3K2R w KQq - 0 1", chess.Black, false, true},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", chess.Black, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := BoardFromFEN(t, tt.fen)
			AssertEqual(t, board.CastleRightShort(tt.player), tt.wantShort, "CastleRightShort(%v)", tt.player)
			AssertEqual(t, board.CastleRightLong(tt.player), tt.wantLong, "CastleRightLong(%v)", tt.player)
		})
	}
}

func TestBoardFromFEN_EnPassant(t *testing.T) {
	board, toMove := BoardFromFEN(t, "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3")

	AssertEqual(t, toMove, chess.White)
	skip, ok := board.PawnSkipPosition(chess.Black)
	AssertTrue(t, ok, "black skip square set")
	AssertEqual(t, skip, MustSquare(t, "e6"))
	_, ok = board.PawnSkipPosition(chess.White)
	AssertFalse(t, ok, "white skip square set")

	if !board.Get(MustSquare(t, "f5")).HasMoved {
		t.Error("advanced pawn on f5 not marked as moved")
	}
}

func TestReferenceMoves(t *testing.T) {
	moves := ReferenceMoves(t, InitialFEN)
	if len(moves) != 20 {
		t.Fatalf("len(ReferenceMoves(initial)) = %d, want 20", len(moves))
	}
	if !slices.IsSorted(moves) {
		t.Error("ReferenceMoves() is not sorted")
	}
	AssertTrue(t, slices.Contains(moves, "g1f3"), "g1f3 in %v", moves)
}

func TestMoveStrings(t *testing.T) {
	e2, e4 := MustSquare(t, "e2"), MustSquare(t, "e4")
	moves := []chess.Move{
		chess.NewDoublePawnMove(e2, e4),
		chess.NewNormalMove(MustSquare(t, "b1"), MustSquare(t, "c3")),
	}
	AssertEqual(t, MoveStrings(slices.Values(moves)), []string{"b1c3", "e2e4"})
}
