package engine

import "github.com/lgbarn/chess-tactics-go/internal/chess"

// canPawnMove checks a pawn move. A single step needs an empty destination;
// a double step is allowed from the start rank onto an empty destination
// without looking at the square in between; a diagonal step forward must
// land on an opposing piece. There is no en passant or promotion.
func canPawnMove(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	direction := colour.Direction()
	fileDiff := abs(to.File() - from.File())
	rankStep := to.Rank() - from.Rank()
	target, occupied := board.Get(to)

	switch {
	case fileDiff == 0:
		if occupied {
			return false
		}
		if rankStep == direction {
			return true
		}
		return from.Rank() == colour.PawnRank() && rankStep == 2*direction

	case fileDiff == 1 && rankStep == direction:
		return occupied && target.Colour != colour
	}

	return false
}
