// Package chess provides the core board types for the tactics trainer.
package chess

import "unicode"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Direction returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnRank returns the rank index (0-7) pawns of this colour start on.
func (c Colour) PawnRank() int {
	if c == White {
		return 1
	}
	return 6
}

// PieceType represents a chess piece type.
type PieceType int

const (
	Pawn PieceType = iota + 1
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Valid reports whether p names one of the six piece types.
func (p PieceType) Valid() bool {
	return p >= Pawn && p <= King
}

// Piece is a coloured piece. The zero value is not a valid piece.
type Piece struct {
	Colour Colour
	Type   PieceType
}

// W creates a white piece.
func W(t PieceType) Piece {
	return Piece{Colour: White, Type: t}
}

// B creates a black piece.
func B(t PieceType) Piece {
	return Piece{Colour: Black, Type: t}
}

// Valid reports whether the piece has a known type.
func (p Piece) Valid() bool {
	return p.Type.Valid()
}

// Letter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Type.Letter()
	if p.Colour == Black {
		return byte(unicode.ToLower(rune(l)))
	}
	return l
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Type.String()
}

var pieceSymbols = [2][7]rune{
	{'?', '♙', '♘', '♗', '♖', '♕', '♔'},
	{'?', '♟', '♞', '♝', '♜', '♛', '♚'},
}

// Symbol returns the Unicode chess glyph for the piece.
func (p Piece) Symbol() rune {
	if !p.Valid() || (p.Colour != White && p.Colour != Black) {
		return '?'
	}
	return pieceSymbols[p.Colour][p.Type]
}

// PieceFromLetter converts a FEN letter to a piece.
// The second result is false for anything outside KQRBNPkqrbnp.
func PieceFromLetter(c byte) (Piece, bool) {
	var t PieceType
	switch c {
	case 'K', 'k':
		t = King
	case 'Q', 'q':
		t = Queen
	case 'R', 'r':
		t = Rook
	case 'B', 'b':
		t = Bishop
	case 'N', 'n':
		t = Knight
	case 'P', 'p':
		t = Pawn
	default:
		return Piece{}, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return Piece{Colour: colour, Type: t}, true
}
