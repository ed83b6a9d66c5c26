package chess

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-tactics-go/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for sq := Square(0); sq < NumSquares; sq++ {
			if _, ok := b.Get(sq); ok {
				t.Errorf("Get(%v) reported a piece on an empty board", sq)
			}
		}
		if b.Count() != 0 {
			t.Errorf("Count() = %d; want 0", b.Count())
		}
	})

	t.Run("off-board squares", func(t *testing.T) {
		if _, ok := b.Get(NoSquare); ok {
			t.Error("Get(NoSquare) reported a piece")
		}
		b.Set(NoSquare, W(King))
		if b.Count() != 0 {
			t.Error("Set(NoSquare) changed the board")
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white pawn e2", "e2", W(Pawn)},
		{"black pawn e7", "e7", B(Pawn)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black rook h8", "h8", B(Rook)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.Get(MustParseSquare(tt.sq))
			if !ok || got != tt.piece {
				t.Errorf("Get(%s) = %v, %v; want %v", tt.sq, got, ok, tt.piece)
			}
		})
	}

	if b.Count() != 32 {
		t.Errorf("Count() = %d; want 32", b.Count())
	}
	if !b.IsEmpty(MustParseSquare("e4")) {
		t.Error("e4 should be empty in the initial position")
	}
}

func TestBoardMove(t *testing.T) {
	b := NewBoard()
	e2, e4 := MustParseSquare("e2"), MustParseSquare("e4")
	b.Set(e2, W(Pawn))
	b.Set(e4, B(Knight))

	if !b.Move(e2, e4) {
		t.Fatal("Move(e2, e4) = false")
	}
	if !b.IsEmpty(e2) {
		t.Error("e2 should be empty after the move")
	}
	if got, _ := b.Get(e4); got != W(Pawn) {
		t.Errorf("e4 = %v; want White Pawn", got)
	}
	if b.Count() != 1 {
		t.Errorf("Count() = %d; want 1 after capture", b.Count())
	}
	if b.Move(e2, e4) {
		t.Error("Move from an empty square should fail")
	}
}

func TestBoardCopyAndEqual(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()
	c := b.Copy()

	if !b.Equal(c) {
		t.Fatal("copy should equal original")
	}
	c.Clear(MustParseSquare("a1"))
	if b.Equal(c) {
		t.Error("modifying the copy changed equality")
	}
	if _, ok := b.Get(MustParseSquare("a1")); !ok {
		t.Error("modifying the copy changed the original")
	}
}

func TestBoardPiecesOrder(t *testing.T) {
	b := NewBoard()
	b.Set(MustParseSquare("h8"), B(King))
	b.Set(MustParseSquare("a1"), W(King))

	got := b.Pieces()
	if len(got) != 2 {
		t.Fatalf("len(Pieces()) = %d; want 2", len(got))
	}
	if got[0].Square.String() != "a1" || got[1].Square.String() != "h8" {
		t.Errorf("Pieces() order = %v, %v; want a1, h8", got[0].Square, got[1].Square)
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in       string
		wantFile int
		wantRank int
		wantErr  bool
	}{
		{"a1", 0, 0, false},
		{"h8", 7, 7, false},
		{"e4", 4, 3, false},
		{"E4", 4, 3, false},
		{"i1", 0, 0, true},
		{"a9", 0, 0, true},
		{"a0", 0, 0, true},
		{"", 0, 0, true},
		{"e44", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			sq, err := ParseSquare(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSquare(%q) expected error", tt.in)
				}
				if !stderrors.Is(err, errors.ErrInvalidSquare) {
					t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) error = %v", tt.in, err)
			}
			if sq.File() != tt.wantFile || sq.Rank() != tt.wantRank {
				t.Errorf("ParseSquare(%q) = (%d,%d); want (%d,%d)", tt.in, sq.File(), sq.Rank(), tt.wantFile, tt.wantRank)
			}
		})
	}
}

func TestSquareStringRoundTrip(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		parsed, err := ParseSquare(sq.String())
		if err != nil || parsed != sq {
			t.Errorf("ParseSquare(%q) = %v, %v; want %v", sq.String(), parsed, err, sq)
		}
	}
	if NoSquare.String() != "-" {
		t.Errorf("NoSquare.String() = %q; want \"-\"", NoSquare.String())
	}
}

func TestPieceFromLetter(t *testing.T) {
	tests := []struct {
		c    byte
		want Piece
		ok   bool
	}{
		{'K', W(King), true},
		{'q', B(Queen), true},
		{'N', W(Knight), true},
		{'p', B(Pawn), true},
		{'x', Piece{}, false},
		{'1', Piece{}, false},
	}

	for _, tt := range tests {
		got, ok := PieceFromLetter(tt.c)
		if ok != tt.ok || got != tt.want {
			t.Errorf("PieceFromLetter(%q) = %v, %v; want %v, %v", tt.c, got, ok, tt.want, tt.ok)
		}
		if ok && got.Letter() != tt.c {
			t.Errorf("%v.Letter() = %q; want %q", got, got.Letter(), tt.c)
		}
	}
}

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
	if White.Direction() != 1 || Black.Direction() != -1 {
		t.Error("Direction() mismatch")
	}
	if White.PawnRank() != 1 || Black.PawnRank() != 6 {
		t.Error("PawnRank() mismatch")
	}
}
