// Package engine provides FEN decoding and pseudo-legal move validation.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-tactics-go/internal/chess"
	"github.com/lgbarn/chess-tactics-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// InitialPlacement is the placement field of InitialFEN.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// PlacementFromFEN returns the piece placement field of a FEN string.
// Side to move, castling, en passant and clocks are ignored.
func PlacementFromFEN(fen string) string {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// DecodeFEN creates a board from the placement field of a FEN string.
// Errors are *errors.FENError values wrapping errors.ErrMalformedFEN.
func DecodeFEN(fen string) (*chess.Board, error) {
	placement := PlacementFromFEN(fen)
	if placement == "" {
		return nil, &errors.FENError{Reason: "empty FEN string"}
	}

	groups := strings.Split(placement, "/")
	if len(groups) != chess.BoardSize {
		return nil, &errors.FENError{
			FEN:    placement,
			Reason: fmt.Sprintf("expected 8 rank groups, found %d", len(groups)),
		}
	}

	board := chess.NewBoard()
	for i, group := range groups {
		if err := parseRankGroup(board, group, i); err != nil {
			err.FEN = placement
			return nil, err
		}
	}
	return board, nil
}

// parseRankGroup places the pieces of one rank group. Group 0 is rank 8.
func parseRankGroup(board *chess.Board, group string, index int) *errors.FENError {
	rank := chess.BoardSize - 1 - index
	file := 0

	for _, c := range group {
		switch {
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return &errors.FENError{Group: index + 1, Char: c, Reason: "rank overflows 8 files"}
			}
		default:
			piece, ok := chess.PieceFromLetter(byte(c))
			if !ok || c > 0x7f {
				return &errors.FENError{Group: index + 1, Char: c, Reason: "unexpected character"}
			}
			if file >= chess.BoardSize {
				return &errors.FENError{Group: index + 1, Char: c, Reason: "rank overflows 8 files"}
			}
			board.Set(chess.NewSquare(file, rank), piece)
			file++
		}
	}

	if file != chess.BoardSize {
		return &errors.FENError{Group: index + 1, Reason: "rank covers fewer than 8 files"}
	}
	return nil
}

// EncodeFEN converts a board to a FEN placement field.
func EncodeFEN(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := board.Get(chess.NewSquare(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
