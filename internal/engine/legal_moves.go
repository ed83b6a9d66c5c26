package engine

import "github.com/lgbarn/chess-tactics-go/internal/chess"

// IsLegal reports whether moving the piece on from to to is pseudo-legal:
// it follows the piece's movement pattern and path-blocking rules but
// ignores king safety, castling, en passant and promotion. Kings may be
// captured like any other piece.
func IsLegal(board *chess.Board, from, to chess.Square) bool {
	if board == nil || !from.Valid() || !to.Valid() || from == to {
		return false
	}

	piece, ok := board.Get(from)
	if !ok {
		return false
	}

	// No self-capture.
	if target, occupied := board.Get(to); occupied && target.Colour == piece.Colour {
		return false
	}

	if piece.Type == chess.Pawn {
		return canPawnMove(board, piece.Colour, from, to)
	}
	return canPieceMove(board, piece.Type, from, to)
}

// LegalTargets returns every square the piece on from may move to, in
// a1..h8 order. An empty square yields nil.
func LegalTargets(board *chess.Board, from chess.Square) []chess.Square {
	if board == nil || board.IsEmpty(from) {
		return nil
	}

	var targets []chess.Square
	for to := chess.Square(0); to < chess.NumSquares; to++ {
		if IsLegal(board, from, to) {
			targets = append(targets, to)
		}
	}
	return targets
}

// HasLegalMoves returns true if the given colour has at least one
// pseudo-legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, p := range board.Pieces() {
		if p.Piece.Colour != colour {
			continue
		}
		if len(LegalTargets(board, p.Square)) > 0 {
			return true
		}
	}
	return false
}
