// Package bot picks moves with a depth-bounded minimax search with
// alpha-beta pruning over engine.GameState.
package bot

import (
	"log/slog"
	"sync/atomic"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/errors"
	"github.com/lgbarn/gochess/internal/worker"
)

const (
	// DefaultDepth is the number of plies searched beyond each root move.
	DefaultDepth = 2

	// MateScore is the magnitude of a checkmate score, signed by the winner.
	MateScore = 1000.0
)

// Bot selects moves for the side to move. A Bot holds no per-game state
// and may be shared between games.
type Bot struct {
	depth     int
	workers   int
	evaluator Evaluator
	nodes     *atomic.Int64
	logger    *slog.Logger
}

// Option configures a Bot.
type Option func(*Bot)

// WithDepth sets the number of plies searched beyond each root move.
// Negative values are ignored.
func WithDepth(depth int) Option {
	return func(b *Bot) {
		if depth >= 0 {
			b.depth = depth
		}
	}
}

// WithWorkers scores root moves on n goroutines. The selected move is the
// same for any n.
func WithWorkers(n int) Option {
	return func(b *Bot) {
		if n >= 1 {
			b.workers = n
		}
	}
}

// WithEvaluator replaces the static evaluation.
func WithEvaluator(e Evaluator) Option {
	return func(b *Bot) {
		if e != nil {
			b.evaluator = e
		}
	}
}

// WithNodeCounter adds the number of positions visited by every search to
// counter.
func WithNodeCounter(counter *atomic.Int64) Option {
	return func(b *Bot) {
		b.nodes = counter
	}
}

// WithLogger sets the logger for per-move debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates a bot. Defaults: depth 2, one worker, DefaultEvaluator, no
// logging.
func New(opts ...Option) *Bot {
	b := &Bot{
		depth:     DefaultDepth,
		workers:   1,
		evaluator: DefaultEvaluator{},
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Depth returns the configured search depth.
func (b *Bot) Depth() int {
	return b.depth
}

// SelectMove returns the best move for the side to move in game. The game
// itself is never modified. A move that checkmates immediately is returned
// without further search; otherwise ties go to the first move enumerated.
func (b *Bot) SelectMove(game *engine.GameState) (chess.Move, error) {
	player := game.CurrentPlayer()
	if !engine.HasLegalMoves(game.Board(), player) {
		return chess.Move{}, errors.Wrapf(errors.ErrInternalInvariant, "no legal moves for %v", player)
	}
	if game.IsGameOver() {
		return chess.Move{}, errors.ErrGameOver
	}

	var items []worker.WorkItem
	for move := range game.AllLegalMovesFor(player) {
		child := game.Clone()
		child.ApplyLegal(move)
		b.visit()
		if result, over := child.Result(); over && result.Reason == engine.EndCheckmate {
			b.logger.Debug("bot move", "player", player, "move", move.String(), "mate", true)
			return move, nil
		}
		items = append(items, worker.WorkItem{State: child, Move: move, Index: len(items)})
	}

	results := b.scoreAll(items, player == chess.White)
	best := results[0]
	for _, r := range results[1:] {
		if player == chess.White && r.Score > best.Score ||
			player == chess.Black && r.Score < best.Score {
			best = r
		}
	}

	b.logger.Debug("bot move",
		"player", player,
		"move", best.Move.String(),
		"score", best.Score,
		"candidates", len(items),
		"nodes", b.nodeCount())
	return best.Move, nil
}

// scoreAll scores every root candidate, in enumeration order.
func (b *Bot) scoreAll(items []worker.WorkItem, minimizing bool) []worker.ProcessResult {
	score := func(item worker.WorkItem) worker.ProcessResult {
		var s float64
		if !item.State.IsGameOver() {
			s = b.search(item.State, 0, minimizing, negInf, posInf)
		}
		return worker.ProcessResult{Move: item.Move, Index: item.Index, Score: s}
	}

	if b.workers <= 1 || len(items) == 1 {
		results := make([]worker.ProcessResult, len(items))
		for i, item := range items {
			results[i] = score(item)
		}
		return results
	}
	return worker.Run(items, score, worker.WithWorkers(b.workers))
}

// visit counts one position reached by a move, at the root or below it.
func (b *Bot) visit() {
	if b.nodes != nil {
		b.nodes.Add(1)
	}
}

func (b *Bot) nodeCount() int64 {
	if b.nodes == nil {
		return 0
	}
	return b.nodes.Load()
}
