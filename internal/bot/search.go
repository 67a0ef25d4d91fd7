package bot

import (
	"math"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// search returns the minimax value of state, depth plies below the root
// moves. minimizing is true when the side to move is Black.
func (b *Bot) search(state *engine.GameState, depth int, minimizing bool, alpha, beta float64) float64 {
	if result, over := state.Result(); over {
		return terminalScore(result)
	}
	if depth >= b.depth {
		return b.evaluator.Evaluate(state.Board())
	}

	if minimizing {
		best := posInf
		for move := range state.AllLegalMovesFor(state.CurrentPlayer()) {
			child := state.Clone()
			child.ApplyLegal(move)
			b.visit()
			best = min(best, b.search(child, depth+1, false, alpha, beta))
			beta = min(beta, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := negInf
	for move := range state.AllLegalMovesFor(state.CurrentPlayer()) {
		child := state.Clone()
		child.ApplyLegal(move)
		b.visit()
		best = max(best, b.search(child, depth+1, true, alpha, beta))
		alpha = max(alpha, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

// terminalScore scores a finished game: a win is worth MateScore to the
// winner, any draw is worth nothing.
func terminalScore(result engine.Result) float64 {
	switch result.Winner {
	case chess.White:
		return MateScore
	case chess.Black:
		return -MateScore
	default:
		return 0
	}
}
