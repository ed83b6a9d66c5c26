package chess

// Board maps squares to pieces. A square holds at most one piece; an empty
// square has ok == false from Get. Boards are plain snapshots and keep no
// move history.
type Board struct {
	squares  [NumSquares]Piece
	occupied [NumSquares]bool
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Get returns the piece on sq, if any.
func (b *Board) Get(sq Square) (Piece, bool) {
	if !sq.Valid() || !b.occupied[sq] {
		return Piece{}, false
	}
	return b.squares[sq], true
}

// IsEmpty reports whether sq holds no piece. Off-board squares count as empty.
func (b *Board) IsEmpty(sq Square) bool {
	_, ok := b.Get(sq)
	return !ok
}

// Set places a piece on sq, replacing whatever was there.
func (b *Board) Set(sq Square, p Piece) {
	if !sq.Valid() {
		return
	}
	b.squares[sq] = p
	b.occupied[sq] = true
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	if !sq.Valid() {
		return
	}
	b.squares[sq] = Piece{}
	b.occupied[sq] = false
}

// Move relocates the piece on from to to, capturing anything on to.
// It does not check legality. Returns false if from is empty.
func (b *Board) Move(from, to Square) bool {
	p, ok := b.Get(from)
	if !ok || !to.Valid() {
		return false
	}
	b.Clear(from)
	b.Set(to, p)
	return true
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return *b == *other
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for _, occ := range b.occupied {
		if occ {
			n++
		}
	}
	return n
}

// Placement pairs a square with the piece on it.
type Placement struct {
	Square Square
	Piece  Piece
}

// Pieces returns every occupied square in a1..h8 order.
func (b *Board) Pieces() []Placement {
	var out []Placement
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.occupied[sq] {
			out = append(out, Placement{Square: sq, Piece: b.squares[sq]})
		}
	}
	return out
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Set(NewSquare(file, 0), W(backRank[file]))
		b.Set(NewSquare(file, 1), W(Pawn))
		b.Set(NewSquare(file, 6), B(Pawn))
		b.Set(NewSquare(file, 7), B(backRank[file]))
	}
}
