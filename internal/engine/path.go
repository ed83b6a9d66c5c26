package engine

import "github.com/lgbarn/chess-tactics-go/internal/chess"

// canPieceMove checks the movement pattern of a non-pawn piece, including
// path obstruction for sliding pieces. Destination occupancy is the
// caller's concern.
func canPieceMove(board *chess.Board, pieceType chess.PieceType, from, to chess.Square) bool {
	fileDiff := abs(to.File() - from.File())
	rankDiff := abs(to.Rank() - from.Rank())

	switch pieceType {
	case chess.Knight:
		return (fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if fileDiff != rankDiff {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if fileDiff != 0 && rankDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if fileDiff == rankDiff || fileDiff == 0 || rankDiff == 0 {
			return isPathClear(board, from, to)
		}
		return false

	case chess.King:
		return fileDiff <= 1 && rankDiff <= 1
	}

	return false
}

// isPathClear reports whether every square strictly between from and to is
// empty. File and rank are stepped independently by the sign of their
// difference, so callers must only pass straight or diagonal lines.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	fileDir := sign(to.File() - from.File())
	rankDir := sign(to.Rank() - from.Rank())

	file := from.File() + fileDir
	rank := from.Rank() + rankDir

	for file != to.File() || rank != to.Rank() {
		if !board.IsEmpty(chess.NewSquare(file, rank)) {
			return false
		}
		file += fileDir
		rank += rankDir
	}

	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
