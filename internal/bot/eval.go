package bot

import "github.com/lgbarn/gochess/internal/chess"

// Evaluator scores a position from White's point of view: positive values
// favour White, negative values favour Black.
type Evaluator interface {
	Evaluate(board *chess.Board) float64
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(board *chess.Board) float64

// Evaluate calls f(board).
func (f EvaluatorFunc) Evaluate(board *chess.Board) float64 {
	return f(board)
}

// UndevelopedPenalty is subtracted for every knight or bishop that has not
// left its starting square.
const UndevelopedPenalty = 0.1

var pieceValues = [...]float64{
	chess.NoPiece: 0,
	chess.Pawn:    1,
	chess.Knight:  3,
	chess.Bishop:  3,
	chess.Rook:    5,
	chess.Queen:   9,
	chess.King:    0,
}

// squareValues holds the positional bonus for White, rank 8 first. Black
// reads the table upside down.
var squareValues = [chess.BoardSize][chess.BoardSize]float64{
	{0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00},
	{0.00, 0.00, 0.10, 0.10, 0.10, 0.10, 0.00, 0.00},
	{-0.05, 0.00, 0.15, 0.20, 0.20, 0.15, 0.00, -0.05},
	{0.00, 0.00, 0.20, 0.25, 0.25, 0.15, 0.00, 0.00},
	{0.00, 0.00, 0.20, 0.25, 0.25, 0.15, 0.00, 0.00},
	{0.00, 0.00, 0.15, 0.20, 0.20, 0.15, 0.00, 0.00},
	{0.00, 0.00, 0.15, 0.15, 0.15, 0.15, 0.00, 0.00},
	{0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00},
}

// DefaultEvaluator counts material, adds the square bonus of every piece and
// penalises undeveloped minor pieces.
type DefaultEvaluator struct{}

// Evaluate returns White's total minus Black's total.
func (DefaultEvaluator) Evaluate(board *chess.Board) float64 {
	var totals [3]float64
	for pos := range board.PiecePositions() {
		piece := board.Get(pos)
		totals[piece.Color] += pieceScore(piece, pos)
	}
	return totals[chess.White] - totals[chess.Black]
}

// pieceScore is the contribution of a single piece to its side's total.
func pieceScore(piece chess.Piece, pos chess.Position) float64 {
	row := pos.Row
	if piece.Color == chess.Black {
		row = chess.BoardSize - 1 - row
	}
	score := pieceValues[piece.Type] + squareValues[row][pos.Column]
	if !piece.HasMoved && (piece.Type == chess.Knight || piece.Type == chess.Bishop) {
		score -= UndevelopedPenalty
	}
	return score
}
