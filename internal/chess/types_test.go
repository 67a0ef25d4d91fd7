package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/gochess/internal/errors"
)

func TestPlayerOpponent(t *testing.T) {
	if White.Opponent() != Black {
		t.Errorf("White.Opponent() = %v; want Black", White.Opponent())
	}
	if Black.Opponent() != White {
		t.Errorf("Black.Opponent() = %v; want White", Black.Opponent())
	}
	if NoPlayer.Opponent() != NoPlayer {
		t.Errorf("NoPlayer.Opponent() = %v; want None", NoPlayer.Opponent())
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{NewPiece(White, King), 'K'},
		{NewPiece(Black, King), 'k'},
		{NewPiece(White, Knight), 'N'},
		{NewPiece(Black, Pawn), 'p'},
		{Piece{}, ' '},
	}
	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%+v.Letter() = %q; want %q", tt.piece, got, tt.want)
		}
	}
}

func TestPieceTypeFromLetter(t *testing.T) {
	for _, pt := range []PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
		if got := PieceTypeFromLetter(pt.Letter()); got != pt {
			t.Errorf("PieceTypeFromLetter(%q) = %v; want %v", pt.Letter(), got, pt)
		}
	}
	if got := PieceTypeFromLetter('x'); got != NoPiece {
		t.Errorf("PieceTypeFromLetter('x') = %v; want None", got)
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{"a8", NewPosition(0, 0), false},
		{"h1", NewPosition(7, 7), false},
		{"e4", NewPosition(4, 4), false},
		{"d5", NewPosition(3, 3), false},
		{"i1", Position{}, true},
		{"a9", Position{}, true},
		{"e", Position{}, true},
		{"", Position{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidSquare) {
					t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", tt.in, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.in, got, tt.want)
			}
			if got.Square() != tt.in {
				t.Errorf("ParseSquare(%q).Square() = %q", tt.in, got.Square())
			}
		})
	}
}

func TestPositionArithmetic(t *testing.T) {
	e4 := NewPosition(4, 4)

	if got := e4.Add(North); got.Square() != "e5" {
		t.Errorf("e4 + North = %v; want e5", got)
	}
	if got := e4.Add(SouthWest); got.Square() != "d3" {
		t.Errorf("e4 + SouthWest = %v; want d3", got)
	}
	if got := e4.Add(North.Times(2).Add(East)); got.Square() != "f6" {
		t.Errorf("e4 + 2N+E = %v; want f6", got)
	}

	off := NewPosition(0, 0).Add(North)
	if off.IsInside() {
		t.Errorf("a8 + North = %v reported inside the board", off)
	}
	if Forward(White) != North || Forward(Black) != South {
		t.Error("Forward() directions are wrong")
	}
}

func TestMoveString(t *testing.T) {
	e2, e4 := NewPosition(6, 4), NewPosition(4, 4)
	e7, e8 := NewPosition(1, 4), NewPosition(0, 4)

	tests := []struct {
		name string
		move Move
		want string
	}{
		{"normal", NewNormalMove(e2, NewPosition(5, 4)), "e2e3"},
		{"double", NewDoublePawnMove(e2, e4), "e2e4"},
		{"promotion", NewPromotionMove(e7, e8, Queen), "e7e8q"},
		{"underpromotion", NewPromotionMove(e7, e8, Knight), "e7e8n"},
		{"white short castle", NewCastleMove(CastleKingSide, NewPosition(7, 4)), "e1g1"},
		{"black long castle", NewCastleMove(CastleQueenSide, NewPosition(0, 4)), "e8c8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestMoveVariantPayload(t *testing.T) {
	t.Run("double pawn skip square", func(t *testing.T) {
		m := NewDoublePawnMove(NewPosition(1, 3), NewPosition(3, 3))
		if got := m.SkippedPosition(); got.Square() != "d6" {
			t.Errorf("SkippedPosition() = %v; want d6", got)
		}
	})

	t.Run("en passant captured square", func(t *testing.T) {
		m := NewEnPassantMove(NewPosition(3, 4), NewPosition(2, 3))
		if got := m.Captured; got.Square() != "d5" {
			t.Errorf("Captured = %v; want d5", got)
		}
	})

	t.Run("castle rook squares", func(t *testing.T) {
		short := NewCastleMove(CastleKingSide, NewPosition(7, 4))
		if short.RookFrom.Square() != "h1" || short.RookTo.Square() != "f1" {
			t.Errorf("short castle rook = %v -> %v; want h1 -> f1", short.RookFrom, short.RookTo)
		}
		long := NewCastleMove(CastleQueenSide, NewPosition(0, 4))
		if long.RookFrom.Square() != "a8" || long.RookTo.Square() != "d8" {
			t.Errorf("long castle rook = %v -> %v; want a8 -> d8", long.RookFrom, long.RookTo)
		}
		if !short.IsCastle() || NewNormalMove(short.From, short.To).IsCastle() {
			t.Error("IsCastle() misclassified a move")
		}
	})

	t.Run("moves compare by value", func(t *testing.T) {
		a := NewPromotionMove(NewPosition(1, 0), NewPosition(0, 0), Rook)
		b := NewPromotionMove(NewPosition(1, 0), NewPosition(0, 0), Rook)
		c := NewPromotionMove(NewPosition(1, 0), NewPosition(0, 0), Queen)
		if a != b {
			t.Error("identical promotion moves compare unequal")
		}
		if a == c {
			t.Error("different promotion moves compare equal")
		}
	})
}
