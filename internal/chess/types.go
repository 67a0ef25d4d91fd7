// Package chess provides core chess types: players, pieces, squares, the
// board grid and the move variants.
package chess

// Player identifies a side. NoPlayer marks the absence of a side, for
// example the winner of a drawn game.
type Player int

const (
	NoPlayer Player = iota
	White
	Black
)

// numPlayers sizes arrays indexed directly by Player.
const numPlayers = 3

// String returns the string representation of a player.
func (p Player) String() string {
	switch p {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opponent returns the other side. NoPlayer has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoPlayer
	}
}

// PieceType represents a chess piece kind.
type PieceType int

const (
	NoPiece PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(t) >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(t) >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// PieceTypeFromLetter converts a piece letter in either case to a piece type.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPiece
	}
}

// Piece is a coloured piece together with whether it has ever moved.
// The zero value is an empty square. HasMoved is the only signal used to
// infer castling rights.
type Piece struct {
	Type     PieceType
	Color    Player
	HasMoved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(color Player, t PieceType) Piece {
	return Piece{Type: t, Color: color}
}

// IsEmpty reports whether p is the empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPiece
}

// Is reports whether p is a piece of the given colour and type.
func (p Piece) Is(color Player, t PieceType) bool {
	return p.Type == t && p.Color == color
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black and a space for the empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return ' '
	}
	l := p.Type.Letter()
	if p.Color == Black {
		l += 'a' - 'A'
	}
	return l
}

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8
