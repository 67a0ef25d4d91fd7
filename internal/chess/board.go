package chess

import "iter"

// Board is the 8x8 grid of pieces plus the square each side's pawn skipped
// over on its most recent double advance.
//
// All fields are values, so copying a Board copies every piece; Copy relies
// on this.
type Board struct {
	squares [BoardSize][BoardSize]Piece
	skips   [numPlayers]skipSquare
}

type skipSquare struct {
	pos Position
	set bool
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places the standard starting pieces.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.squares[0][col] = NewPiece(Black, backRank[col])
		b.squares[1][col] = NewPiece(Black, Pawn)
		b.squares[6][col] = NewPiece(White, Pawn)
		b.squares[7][col] = NewPiece(White, backRank[col])
	}
}

// Get returns the piece at pos. Indexing off the board panics.
func (b *Board) Get(pos Position) Piece {
	return b.squares[pos.Row][pos.Column]
}

// Set places a piece at pos, replacing whatever was there.
func (b *Board) Set(pos Position, piece Piece) {
	b.squares[pos.Row][pos.Column] = piece
}

// Clear empties the square at pos.
func (b *Board) Clear(pos Position) {
	b.squares[pos.Row][pos.Column] = Piece{}
}

// IsEmpty returns true if no piece stands on pos.
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos).IsEmpty()
}

// PiecePositions yields every occupied square in row-major order.
func (b *Board) PiecePositions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				if b.squares[row][col].IsEmpty() {
					continue
				}
				if !yield(Position{Row: row, Column: col}) {
					return
				}
			}
		}
	}
}

// PiecePositionsFor yields the squares occupied by the given player's pieces.
func (b *Board) PiecePositionsFor(player Player) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for pos := range b.PiecePositions() {
			if b.Get(pos).Color != player {
				continue
			}
			if !yield(pos) {
				return
			}
		}
	}
}

// PawnSkipPosition returns the square the player's pawn skipped over on the
// previous move, if any.
func (b *Board) PawnSkipPosition(player Player) (Position, bool) {
	s := b.skips[player]
	return s.pos, s.set
}

// SetPawnSkipPosition records the square the player's pawn skipped over.
func (b *Board) SetPawnSkipPosition(player Player, pos Position) {
	b.skips[player] = skipSquare{pos: pos, set: true}
}

// ClearPawnSkipPositions forgets both players' skip squares.
func (b *Board) ClearPawnSkipPositions() {
	b.skips = [numPlayers]skipSquare{}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Counting holds per-player piece counts.
type Counting struct {
	counts [numPlayers][King + 1]int
	total  int
}

// Count returns how many pieces of the type the player has.
func (c Counting) Count(player Player, t PieceType) int {
	return c.counts[player][t]
}

// Total returns the number of pieces on the board, kings included.
func (c Counting) Total() int {
	return c.total
}

// CountPieces tallies the pieces on the board.
func (b *Board) CountPieces() Counting {
	var c Counting
	for pos := range b.PiecePositions() {
		piece := b.Get(pos)
		c.counts[piece.Color][piece.Type]++
		c.total++
	}
	return c
}

// HomeRow returns the row holding the player's king and rooks at the start.
func HomeRow(player Player) int {
	if player == White {
		return BoardSize - 1
	}
	return 0
}

// Original king and rook columns.
const (
	KingColumn          = 4
	KingSideRookColumn  = 7
	QueenSideRookColumn = 0
)

// isUnmovedKingAndRook returns true if an unmoved king and an unmoved rook of
// the same colour stand on the given squares.
func (b *Board) isUnmovedKingAndRook(kingPos, rookPos Position) bool {
	king := b.Get(kingPos)
	rook := b.Get(rookPos)
	if king.Type != King || rook.Type != Rook || king.Color != rook.Color {
		return false
	}
	return !king.HasMoved && !rook.HasMoved
}

// CastleRightShort reports whether the player keeps the right to castle
// king side. It is derived from HasMoved flags, not stored.
func (b *Board) CastleRightShort(player Player) bool {
	row := HomeRow(player)
	kingPos := NewPosition(row, KingColumn)
	return b.Get(kingPos).Color == player &&
		b.isUnmovedKingAndRook(kingPos, NewPosition(row, KingSideRookColumn))
}

// CastleRightLong reports whether the player keeps the right to castle
// queen side.
func (b *Board) CastleRightLong(player Player) bool {
	row := HomeRow(player)
	kingPos := NewPosition(row, KingColumn)
	return b.Get(kingPos).Color == player &&
		b.isUnmovedKingAndRook(kingPos, NewPosition(row, QueenSideRookColumn))
}
