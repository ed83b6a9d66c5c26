package chess

import (
	"fmt"

	"github.com/lgbarn/chess-tactics-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	FileBase = 'a'
)

// Square identifies one of the 64 board cells. Squares are numbered
// a1=0, b1=1, ... h8=63.
type Square int8

// NoSquare marks the absence of a square (e.g. nothing selected).
const NoSquare Square = -1

// NewSquare builds a square from zero-based file and rank indices.
// Out-of-range coordinates yield NoSquare.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// ParseSquare parses a two-character square name such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	f, r := s[0], s[1]
	if f >= 'A' && f <= 'H' {
		f += 'a' - 'A'
	}
	if f < FileBase || f > FileBase+BoardSize-1 || r < RankBase || r > RankBase+BoardSize-1 {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return NewSquare(int(f-FileBase), int(r-RankBase)), nil
}

// MustParseSquare is like ParseSquare but panics on error.
// Intended for constants and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether sq is one of the 64 board squares.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// File returns the zero-based file index (a=0).
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Rank returns the zero-based rank index (rank 1 = 0).
func (sq Square) Rank() int {
	return int(sq) / BoardSize
}

// String returns the algebraic name of the square, or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + sq.File()), byte(RankBase + sq.Rank())})
}

// MarshalText implements encoding.TextMarshaler.
func (sq Square) MarshalText() ([]byte, error) {
	if !sq.Valid() {
		return []byte{}, nil
	}
	return []byte(sq.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value
// decodes to NoSquare.
func (sq *Square) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*sq = NoSquare
		return nil
	}
	parsed, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*sq = parsed
	return nil
}
