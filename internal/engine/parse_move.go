package engine

import (
	"strings"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/errors"
)

// ParseMove finds the legal move of the side to move written in coordinate
// form: source square, destination square and, for promotions, the piece
// letter ("e2e4", "e1g1", "e7e8q"). The text is matched against the legal
// moves of the source square, so the returned move can be passed straight
// to MakeMove.
func (g *GameState) ParseMove(text string) (chess.Move, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, errors.Wrapf(errors.ErrInvalidSquare, "move %q", text)
	}

	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.Move{}, err
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.Move{}, err
	}

	promotion := chess.NoPiece
	if len(text) == 5 {
		promotion = chess.PieceTypeFromLetter(text[4])
		if !IsPromotionType(promotion) {
			return chess.Move{}, g.moveError(chess.Move{From: from, To: to}, errors.ErrInvalidPromotionType)
		}
	}

	needsPromotion := false
	for move := range g.LegalMovesForPiece(from) {
		if move.To != to {
			continue
		}
		if move.Type != chess.PawnPromotion {
			if promotion == chess.NoPiece {
				return move, nil
			}
			continue
		}
		needsPromotion = true
		if move.Promotion == promotion {
			return move, nil
		}
	}

	attempt := chess.Move{From: from, To: to}
	if needsPromotion && promotion == chess.NoPiece {
		return chess.Move{}, errors.Wrap(g.moveError(attempt, errors.ErrInvalidPromotionType), "promotion piece required")
	}
	return chess.Move{}, g.moveError(attempt, errors.ErrInvalidMove)
}
