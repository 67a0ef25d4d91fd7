package chess

import (
	"fmt"

	"github.com/lgbarn/gochess/internal/errors"
)

// Position is a board coordinate. Row 0 is rank 8 and row 7 is rank 1;
// column 0 is the a-file. Arithmetic may produce positions off the board,
// so callers check IsInside before indexing.
type Position struct {
	Row    int
	Column int
}

// NewPosition creates a position from row and column indices.
func NewPosition(row, column int) Position {
	return Position{Row: row, Column: column}
}

// IsInside returns true if the position lies on the board.
func (p Position) IsInside() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Column >= 0 && p.Column < BoardSize
}

// Add returns the position offset by the direction.
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.RowDelta, Column: p.Column + d.ColumnDelta}
}

// IsLight returns true if the square is a light square.
func (p Position) IsLight() bool {
	return (p.Row+p.Column)%2 == 0
}

// Square returns the algebraic name of the position (e.g. "e4").
func (p Position) Square() string {
	return fmt.Sprintf("%c%d", 'a'+p.Column, BoardSize-p.Row)
}

// String implements fmt.Stringer.
func (p Position) String() string {
	if !p.IsInside() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
	}
	return p.Square()
}

// ParseSquare converts an algebraic square name such as "e4" to a position.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, errors.Wrapf(errors.ErrInvalidSquare, "square %q", s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, errors.Wrapf(errors.ErrInvalidSquare, "square %q", s)
	}
	return Position{Row: BoardSize - int(rank-'0'), Column: int(file - 'a')}, nil
}

// Direction is a row/column offset.
type Direction struct {
	RowDelta    int
	ColumnDelta int
}

// Compass directions as seen from White's side of the board.
var (
	North     = Direction{RowDelta: -1, ColumnDelta: 0}
	South     = Direction{RowDelta: 1, ColumnDelta: 0}
	East      = Direction{RowDelta: 0, ColumnDelta: 1}
	West      = Direction{RowDelta: 0, ColumnDelta: -1}
	NorthEast = North.Add(East)
	NorthWest = North.Add(West)
	SouthEast = South.Add(East)
	SouthWest = South.Add(West)
)

// Add combines two directions.
func (d Direction) Add(o Direction) Direction {
	return Direction{RowDelta: d.RowDelta + o.RowDelta, ColumnDelta: d.ColumnDelta + o.ColumnDelta}
}

// Times scales a direction.
func (d Direction) Times(n int) Direction {
	return Direction{RowDelta: d.RowDelta * n, ColumnDelta: d.ColumnDelta * n}
}

// Forward returns the direction pawns of the given player advance in.
func Forward(p Player) Direction {
	if p == White {
		return North
	}
	return South
}
