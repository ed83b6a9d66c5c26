package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-tactics-go/internal/chess"
)

// Board builds a board from "square:letter" specs such as "e2:P" or "d8:q".
// Uppercase letters are white pieces. It calls t.Fatal on a bad spec.
func Board(t testing.TB, specs ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, spec := range specs {
		sqName, letter, ok := strings.Cut(spec, ":")
		if !ok || len(letter) != 1 {
			t.Fatalf("bad placement spec %q, want square:letter", spec)
		}
		sq, err := chess.ParseSquare(sqName)
		if err != nil {
			t.Fatalf("bad placement spec %q: %v", spec, err)
		}
		piece, ok := chess.PieceFromLetter(letter[0])
		if !ok {
			t.Fatalf("bad piece letter in %q", spec)
		}
		b.Set(sq, piece)
	}
	return b
}

// Sq parses a square name and calls t.Fatal on error.
func Sq(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("Sq(%q): %v", name, err)
	}
	return sq
}
