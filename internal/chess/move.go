package chess

// MoveType categorizes the move variants. Each variant validates and
// executes differently.
type MoveType int

const (
	Normal MoveType = iota
	DoublePawn
	EnPassant
	CastleKingSide
	CastleQueenSide
	PawnPromotion
)

// String returns the string representation of a move type.
func (t MoveType) String() string {
	names := []string{"Normal", "DoublePawn", "EnPassant", "CastleKingSide", "CastleQueenSide", "PawnPromotion"}
	if int(t) >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Move is one move variant. Fields beyond From and To are only meaningful
// for the variants that use them. Moves are plain values: build them with
// the constructors below and compare them with ==.
type Move struct {
	Type MoveType

	// Source and destination of the moving piece (the king, for castles).
	From Position
	To   Position

	// Piece the pawn becomes (PawnPromotion only).
	Promotion PieceType

	// Square of the pawn taken en passant (EnPassant only).
	Captured Position

	// Rook source and destination (castles only).
	RookFrom Position
	RookTo   Position
}

// NewNormalMove creates a plain move or capture.
func NewNormalMove(from, to Position) Move {
	return Move{Type: Normal, From: from, To: to}
}

// NewDoublePawnMove creates a two-square pawn advance.
func NewDoublePawnMove(from, to Position) Move {
	return Move{Type: DoublePawn, From: from, To: to}
}

// SkippedPosition returns the square a double pawn advance passes over.
func (m Move) SkippedPosition() Position {
	return Position{Row: (m.From.Row + m.To.Row) / 2, Column: m.From.Column}
}

// NewEnPassantMove creates an en passant capture. The captured pawn stands
// beside the capturing pawn, on the destination file.
func NewEnPassantMove(from, to Position) Move {
	return Move{
		Type:     EnPassant,
		From:     from,
		To:       to,
		Captured: Position{Row: from.Row, Column: to.Column},
	}
}

// NewPromotionMove creates a pawn move that promotes to the given type.
func NewPromotionMove(from, to Position, promotion PieceType) Move {
	return Move{Type: PawnPromotion, From: from, To: to, Promotion: promotion}
}

// NewCastleMove creates a castle for the king standing on kingPos. The
// type must be CastleKingSide or CastleQueenSide.
func NewCastleMove(t MoveType, kingPos Position) Move {
	m := Move{Type: t, From: kingPos, RookFrom: kingPos, RookTo: kingPos}
	if t == CastleKingSide {
		m.To = kingPos.Add(East.Times(2))
		m.RookFrom.Column = KingSideRookColumn
		m.RookTo = kingPos.Add(East)
	} else {
		m.To = kingPos.Add(West.Times(2))
		m.RookFrom.Column = QueenSideRookColumn
		m.RookTo = kingPos.Add(West)
	}
	return m
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Type == CastleKingSide || m.Type == CastleQueenSide
}

// String returns the coordinate form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Type == PawnPromotion {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}
