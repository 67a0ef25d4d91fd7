package engine

import (
	"iter"
	"maps"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/errors"
)

// EndReason says why a game ended.
type EndReason int

const (
	EndCheckmate EndReason = iota + 1
	EndStalemate
	EndFiftyMoveRule
	EndThreefoldRepetition
	EndInsufficientMaterial
)

// String returns the string representation of an end reason.
func (r EndReason) String() string {
	switch r {
	case EndCheckmate:
		return "checkmate"
	case EndStalemate:
		return "stalemate"
	case EndFiftyMoveRule:
		return "fifty-move rule"
	case EndThreefoldRepetition:
		return "threefold repetition"
	case EndInsufficientMaterial:
		return "insufficient material"
	default:
		return "unknown"
	}
}

// Result is the outcome of a finished game. Winner is NoPlayer for a draw.
type Result struct {
	Winner chess.Player
	Reason EndReason
}

// IsDraw returns true if nobody won.
func (r Result) IsDraw() bool {
	return r.Winner == chess.NoPlayer
}

// String returns a one-line description such as "Black wins by checkmate".
func (r Result) String() string {
	if r.IsDraw() {
		return "Draw by " + r.Reason.String()
	}
	return r.Winner.String() + " wins by " + r.Reason.String()
}

// GameState owns a board and drives a game: it enumerates legal moves,
// applies them, keeps the fifty-move counter and repetition history, and
// detects the end of the game.
type GameState struct {
	board            *chess.Board
	current          chess.Player
	result           *Result
	fiftyMoveCounter int
	ply              int
	fingerprint      string
	history          map[string]int
}

// NewGameState creates a game from board with player to move. The game
// takes ownership of board. The starting position counts towards
// repetition, and a position that is already terminal yields a finished game.
func NewGameState(board *chess.Board, player chess.Player) *GameState {
	g := &GameState{
		board:   board,
		current: player,
		history: make(map[string]int),
	}
	g.recordPosition()
	g.result = g.checkForGameOver()
	return g
}

// NewGame creates a game from the standard starting position.
func NewGame() *GameState {
	return NewGameState(chess.NewInitialBoard(), chess.White)
}

// Board returns the current board. Callers must not modify it.
func (g *GameState) Board() *chess.Board {
	return g.board
}

// CurrentPlayer returns the side to move.
func (g *GameState) CurrentPlayer() chess.Player {
	return g.current
}

// FiftyMoveCounter returns the number of half-moves since the last capture
// or pawn move.
func (g *GameState) FiftyMoveCounter() int {
	return g.fiftyMoveCounter
}

// Ply returns the number of moves made since the game was created.
func (g *GameState) Ply() int {
	return g.ply
}

// Fingerprint returns the fingerprint of the current position.
func (g *GameState) Fingerprint() string {
	return g.fingerprint
}

// RepetitionCount returns how often the current position has occurred.
func (g *GameState) RepetitionCount() int {
	return g.history[g.fingerprint]
}

// IsGameOver returns true once the game has a result.
func (g *GameState) IsGameOver() bool {
	return g.result != nil
}

// Result returns the outcome of the game and whether it has ended.
func (g *GameState) Result() (Result, bool) {
	if g.result == nil {
		return Result{}, false
	}
	return *g.result, true
}

// AllLegalMovesFor yields every legal move of the player in board scan
// order.
func (g *GameState) AllLegalMovesFor(player chess.Player) iter.Seq[chess.Move] {
	return func(yield func(chess.Move) bool) {
		for pos := range g.board.PiecePositionsFor(player) {
			for move := range LegalMovesFrom(g.board, pos) {
				if !yield(move) {
					return
				}
			}
		}
	}
}

// LegalMovesForPiece yields the legal moves of the piece on pos. It yields
// nothing unless that piece belongs to the side to move.
func (g *GameState) LegalMovesForPiece(pos chess.Position) iter.Seq[chess.Move] {
	return func(yield func(chess.Move) bool) {
		if !pos.IsInside() || g.board.Get(pos).Color != g.current {
			return
		}
		for move := range LegalMovesFrom(g.board, pos) {
			if !yield(move) {
				return
			}
		}
	}
}

// isListed reports whether move is one of the legal moves of its source
// square.
func (g *GameState) isListed(move chess.Move) bool {
	for m := range g.LegalMovesForPiece(move.From) {
		if m == move {
			return true
		}
	}
	return false
}

// MakeMove plays a move for the side to move. The move must be one of the
// moves LegalMovesForPiece yields for its source square. After the move the
// result is recomputed; once the game is over further moves are refused
// with ErrGameOver.
func (g *GameState) MakeMove(move chess.Move) error {
	if g.result != nil {
		return g.moveError(move, errors.ErrGameOver)
	}
	if move.Type == chess.PawnPromotion && !IsPromotionType(move.Promotion) {
		return g.moveError(move, errors.ErrInvalidPromotionType)
	}
	if !g.isListed(move) {
		return g.moveError(move, errors.ErrInvalidMove)
	}
	g.apply(move)
	return nil
}

// ApplyLegal plays a move already known to be legal, such as one yielded by
// AllLegalMovesFor for the side to move, without validating it again. It is
// a no-op once the game is over.
func (g *GameState) ApplyLegal(move chess.Move) {
	if g.result != nil {
		return
	}
	g.apply(move)
}

// apply executes the move and advances the turn.
func (g *GameState) apply(move chess.Move) {
	g.board.ClearPawnSkipPositions()
	effect := Execute(g.board, move)

	if effect.CaptureOrPawn {
		g.fiftyMoveCounter = 0
		// A capture or pawn move changes material or pawn structure for good,
		// so no earlier position can recur and dropping them never hides a
		// repetition.
		clear(g.history)
	} else {
		g.fiftyMoveCounter++
	}

	g.current = g.current.Opponent()
	g.ply++
	g.recordPosition()
	g.result = g.checkForGameOver()
}

// moveError wraps err with the context of the attempted move.
func (g *GameState) moveError(move chess.Move, err error) error {
	return &errors.MoveError{
		Err:      err,
		MoveText: move.String(),
		Player:   g.current.String(),
		Ply:      g.ply + 1,
	}
}

// recordPosition fingerprints the current position and counts it.
func (g *GameState) recordPosition() {
	g.fingerprint = Fingerprint(g.board, g.current)
	g.history[g.fingerprint]++
}

// checkForGameOver returns the result of the current position, if any.
// The first matching rule wins.
func (g *GameState) checkForGameOver() *Result {
	switch {
	case !HasLegalMoves(g.board, g.current):
		if IsInCheck(g.board, g.current) {
			return &Result{Winner: g.current.Opponent(), Reason: EndCheckmate}
		}
		return &Result{Winner: chess.NoPlayer, Reason: EndStalemate}
	case InsufficientMaterial(g.board):
		return &Result{Winner: chess.NoPlayer, Reason: EndInsufficientMaterial}
	case g.fiftyMoveCounter >= FiftyMoveThreshold:
		return &Result{Winner: chess.NoPlayer, Reason: EndFiftyMoveRule}
	case g.history[g.fingerprint] >= RepetitionThreshold:
		return &Result{Winner: chess.NoPlayer, Reason: EndThreefoldRepetition}
	}
	return nil
}

// Clone returns an independent copy of the game. Moves made on the clone
// never affect the original.
func (g *GameState) Clone() *GameState {
	c := *g
	c.board = g.board.Copy()
	c.history = maps.Clone(g.history)
	if g.result != nil {
		r := *g.result
		c.result = &r
	}
	return &c
}
