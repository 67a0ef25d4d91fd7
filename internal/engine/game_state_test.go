package engine

import (
	stderrors "errors"
	"slices"
	"testing"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/errors"
	"github.com/lgbarn/gochess/internal/testutil"
)

// play parses and makes each move in order, failing the test on error.
func play(t *testing.T, game *GameState, moves ...string) {
	t.Helper()
	for _, text := range moves {
		move, err := game.ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q) error: %v", text, err)
		}
		if err := game.MakeMove(move); err != nil {
			t.Fatalf("MakeMove(%q) error: %v", text, err)
		}
	}
}

func TestNewGame(t *testing.T) {
	game := NewGame()

	testutil.AssertEqual(t, game.CurrentPlayer(), chess.White)
	testutil.AssertEqual(t, game.FiftyMoveCounter(), 0)
	testutil.AssertEqual(t, game.Ply(), 0)
	testutil.AssertEqual(t, game.RepetitionCount(), 1)
	testutil.AssertFalse(t, game.IsGameOver(), "IsGameOver()")

	if _, over := game.Result(); over {
		t.Error("Result() reports a finished game")
	}
}

func TestFoolsMate(t *testing.T) {
	game := NewGame()
	play(t, game, "f2f3", "e7e5", "g2g4", "d8h4")

	result, over := game.Result()
	if !over {
		t.Fatal("game not over after Qh4#")
	}
	testutil.AssertEqual(t, result, Result{Winner: chess.Black, Reason: EndCheckmate})
	testutil.AssertEqual(t, result.String(), "Black wins by checkmate")
	testutil.AssertTrue(t, game.IsGameOver(), "IsGameOver()")

	err := game.MakeMove(chess.NewNormalMove(testutil.MustSquare(t, "a2"), testutil.MustSquare(t, "a3")))
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
}

func TestStalemate(t *testing.T) {
	game := gameFromFEN(t, "7k/8/4Q1K1/8/8/8/8/8 w - - 0 1")
	play(t, game, "e6f7")

	result, over := game.Result()
	testutil.AssertTrue(t, over, "game over")
	testutil.AssertEqual(t, result, Result{Winner: chess.NoPlayer, Reason: EndStalemate})
	testutil.AssertTrue(t, result.IsDraw(), "IsDraw()")
}

func TestInsufficientMaterialAfterCapture(t *testing.T) {
	game := gameFromFEN(t, "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1")
	play(t, game, "e1d2")

	result, _ := game.Result()
	testutil.AssertEqual(t, result, Result{Winner: chess.NoPlayer, Reason: EndInsufficientMaterial})
	testutil.AssertEqual(t, result.String(), "Draw by insufficient material")
}

func TestNewGameState_TerminalPosition(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want Result
	}{
		{"already mated", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", Result{Winner: chess.Black, Reason: EndCheckmate}},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", Result{Winner: chess.NoPlayer, Reason: EndInsufficientMaterial}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := gameFromFEN(t, tt.fen)
			got, over := game.Result()
			testutil.AssertTrue(t, over, "game over")
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestFiftyMoveCounter(t *testing.T) {
	game := NewGame()

	play(t, game, "g1f3")
	testutil.AssertEqual(t, game.FiftyMoveCounter(), 1, "after knight move")
	play(t, game, "b8c6")
	testutil.AssertEqual(t, game.FiftyMoveCounter(), 2, "after second knight move")
	play(t, game, "e2e4")
	testutil.AssertEqual(t, game.FiftyMoveCounter(), 0, "after pawn move")
	play(t, game, "c6d4", "f3d4")
	testutil.AssertEqual(t, game.FiftyMoveCounter(), 0, "after capture")
}

func TestFiftyMoveRule(t *testing.T) {
	game := NewGame()
	game.fiftyMoveCounter = FiftyMoveThreshold - 2

	play(t, game, "g1f3")
	testutil.AssertFalse(t, game.IsGameOver(), "game over one half-move early")

	play(t, game, "g8f6")
	result, over := game.Result()
	testutil.AssertTrue(t, over, "game over at threshold")
	testutil.AssertEqual(t, result, Result{Winner: chess.NoPlayer, Reason: EndFiftyMoveRule})
}

func TestThreefoldRepetition(t *testing.T) {
	game := NewGame()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	play(t, game, shuffle...)
	testutil.AssertEqual(t, game.RepetitionCount(), 2)
	testutil.AssertEqual(t, game.Fingerprint(), InitialFingerprint)

	play(t, game, shuffle[:3]...)
	testutil.AssertFalse(t, game.IsGameOver(), "game over before third occurrence")

	play(t, game, shuffle[3])
	result, over := game.Result()
	testutil.AssertTrue(t, over, "game over on third occurrence")
	testutil.AssertEqual(t, result, Result{Winner: chess.NoPlayer, Reason: EndThreefoldRepetition})
	testutil.AssertEqual(t, game.RepetitionCount(), 3)
}

func TestRepetitionResetByIrreversibleMove(t *testing.T) {
	game := NewGame()
	play(t, game, "g1f3", "g8f6", "f3g1", "f6g8")
	testutil.AssertEqual(t, game.RepetitionCount(), 2)

	play(t, game, "e2e4", "e7e5")
	play(t, game, "g1f3", "g8f6", "f3g1", "f6g8")
	testutil.AssertEqual(t, game.RepetitionCount(), 2, "count restarts after pawn moves")
	testutil.AssertFalse(t, game.IsGameOver(), "IsGameOver()")
}

func TestEnPassantWindow(t *testing.T) {
	e5 := testutil.MustSquare(t, "e5")
	d6 := testutil.MustSquare(t, "d6")
	enPassant := chess.NewEnPassantMove(e5, d6)

	t.Run("immediate capture", func(t *testing.T) {
		game := NewGame()
		play(t, game, "e2e4", "a7a6", "e4e5", "d7d5")

		skip, ok := game.Board().PawnSkipPosition(chess.Black)
		if !ok || skip != d6 {
			t.Fatalf("PawnSkipPosition(Black) = %v, %v, want d6, true", skip, ok)
		}
		if !slices.Contains(slices.Collect(game.LegalMovesForPiece(e5)), enPassant) {
			t.Fatal("en passant capture e5d6 not offered")
		}
		testutil.AssertContains(t, game.Fingerprint(), " d6")

		testutil.AssertNoError(t, game.MakeMove(enPassant))
		testutil.AssertTrue(t, game.Board().IsEmpty(testutil.MustSquare(t, "d5")), "captured pawn removed")
		testutil.AssertTrue(t, game.Board().Get(d6).Is(chess.White, chess.Pawn), "white pawn on d6")
		testutil.AssertEqual(t, game.FiftyMoveCounter(), 0)
	})

	t.Run("window closes", func(t *testing.T) {
		game := NewGame()
		play(t, game, "e2e4", "a7a6", "e4e5", "d7d5", "h2h3")

		if _, ok := game.Board().PawnSkipPosition(chess.Black); ok {
			t.Error("black skip square survived a white move")
		}

		play(t, game, "a6a5")
		if slices.Contains(slices.Collect(game.LegalMovesForPiece(e5)), enPassant) {
			t.Error("en passant capture still offered a move later")
		}
		testutil.AssertErrorIs(t, game.MakeMove(enPassant), errors.ErrInvalidMove)
	})
}

func TestMakeMove_Errors(t *testing.T) {
	sq := func(s string) chess.Position { return testutil.MustSquare(t, s) }

	tests := []struct {
		name    string
		fen     string
		move    chess.Move
		wantErr error
	}{
		{"unreachable square", testutil.InitialFEN, chess.NewNormalMove(sq("e2"), sq("e5")), errors.ErrInvalidMove},
		{"opponent's piece", testutil.InitialFEN, chess.NewDoublePawnMove(sq("e7"), sq("e5")), errors.ErrInvalidMove},
		{"empty square", testutil.InitialFEN, chess.NewNormalMove(sq("e4"), sq("e5")), errors.ErrInvalidMove},
		{"wrong variant", testutil.InitialFEN, chess.NewNormalMove(sq("e2"), sq("e4")), errors.ErrInvalidMove},
		{"off board", testutil.InitialFEN, chess.NewNormalMove(chess.NewPosition(9, 9), sq("e4")), errors.ErrInvalidMove},
		{"promotion to king", "8/P7/8/8/8/8/8/4K2k w - - 0 1", chess.NewPromotionMove(sq("a7"), sq("a8"), chess.King), errors.ErrInvalidPromotionType},
		{"promotion to pawn", "8/P7/8/8/8/8/8/4K2k w - - 0 1", chess.NewPromotionMove(sq("a7"), sq("a8"), chess.Pawn), errors.ErrInvalidPromotionType},
		{"pinned piece", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", chess.NewNormalMove(sq("e2"), sq("d3")), errors.ErrInvalidMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := gameFromFEN(t, tt.fen)
			before := game.Fingerprint()

			err := game.MakeMove(tt.move)
			testutil.AssertErrorIs(t, err, tt.wantErr)
			testutil.AssertEqual(t, game.Fingerprint(), before, "position changed by a rejected move")
			testutil.AssertEqual(t, game.Ply(), 0)
		})
	}
}

func TestMakeMove_ErrorContext(t *testing.T) {
	game := NewGame()
	play(t, game, "e2e4")

	err := game.MakeMove(chess.NewNormalMove(testutil.MustSquare(t, "e7"), testutil.MustSquare(t, "e4")))

	var moveErr *errors.MoveError
	if !stderrors.As(err, &moveErr) {
		t.Fatalf("MakeMove() error = %v, want *MoveError", err)
	}
	testutil.AssertEqual(t, moveErr.Ply, 2)
	testutil.AssertEqual(t, moveErr.Player, "Black")
	testutil.AssertEqual(t, moveErr.MoveText, "e7e4")
	testutil.AssertEqual(t, err.Error(), `ply 2, Black, move "e7e4": invalid move`)
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		text     string
		wantMove string
		wantType chess.MoveType
		wantErr  error
	}{
		{"double push", testutil.InitialFEN, "e2e4", "e2e4", chess.DoublePawn, nil},
		{"knight", testutil.InitialFEN, "g1f3", "g1f3", chess.Normal, nil},
		{"upper case and spaces", testutil.InitialFEN, " G1F3 ", "g1f3", chess.Normal, nil},
		{"castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", "e1c1", chess.CastleQueenSide, nil},
		{"en passant", "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3", "f5e6", "f5e6", chess.EnPassant, nil},
		{"promotion", "8/P7/8/8/8/8/8/4K2k w - - 0 1", "a7a8r", "a7a8r", chess.PawnPromotion, nil},
		{"promotion letter missing", "8/P7/8/8/8/8/8/4K2k w - - 0 1", "a7a8", "", 0, errors.ErrInvalidPromotionType},
		{"promotion to king", "8/P7/8/8/8/8/8/4K2k w - - 0 1", "a7a8k", "", 0, errors.ErrInvalidPromotionType},
		{"suffix on plain move", testutil.InitialFEN, "e2e4q", "", 0, errors.ErrInvalidMove},
		{"illegal move", testutil.InitialFEN, "e2e5", "", 0, errors.ErrInvalidMove},
		{"bad square", testutil.InitialFEN, "z2e4", "", 0, errors.ErrInvalidSquare},
		{"too short", testutil.InitialFEN, "e2", "", 0, errors.ErrInvalidSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := gameFromFEN(t, tt.fen)
			move, err := game.ParseMove(tt.text)
			if tt.wantErr != nil {
				testutil.AssertErrorIs(t, err, tt.wantErr)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, move.String(), tt.wantMove)
			testutil.AssertEqual(t, move.Type, tt.wantType)
		})
	}
}

func TestClone(t *testing.T) {
	game := NewGame()
	play(t, game, "g1f3", "g8f6", "f3g1", "f6g8")

	clone := game.Clone()
	testutil.AssertEqual(t, clone.Fingerprint(), game.Fingerprint())
	testutil.AssertEqual(t, clone.RepetitionCount(), 2)

	play(t, clone, "g1f3", "g8f6", "f3g1", "f6g8")
	result, over := clone.Result()
	testutil.AssertTrue(t, over, "clone reached threefold repetition")
	testutil.AssertEqual(t, result.Reason, EndThreefoldRepetition)

	testutil.AssertFalse(t, game.IsGameOver(), "original game ended with the clone")
	testutil.AssertEqual(t, game.Ply(), 4)
	testutil.AssertEqual(t, game.RepetitionCount(), 2)
	testutil.AssertEqual(t, game.Fingerprint(), InitialFingerprint)

	if game.Board() == clone.Board() {
		t.Error("Clone() shares the board with the original")
	}
}

func TestApplyLegal(t *testing.T) {
	game := NewGame()
	for move := range game.AllLegalMovesFor(chess.White) {
		game.ApplyLegal(move)
		break
	}
	testutil.AssertEqual(t, game.CurrentPlayer(), chess.Black)
	testutil.AssertEqual(t, game.Ply(), 1)

	mated := gameFromFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	before := mated.Fingerprint()
	mated.ApplyLegal(chess.NewNormalMove(testutil.MustSquare(t, "a2"), testutil.MustSquare(t, "a3")))
	testutil.AssertEqual(t, mated.Fingerprint(), before, "ApplyLegal changed a finished game")
}
