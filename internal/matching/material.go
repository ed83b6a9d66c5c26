// Package matching selects positions by the material on the board.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-tactics-go/internal/chess"
	"github.com/lgbarn/chess-tactics-go/internal/engine"
)

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern     string
	exactMatch  bool
	whitePieces map[chess.PieceType]int
	blackPieces map[chess.PieceType]int
}

// NewMaterialMatcher parses a material pattern.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
//
// With exact set, a position matches only when it holds exactly the listed
// pieces; otherwise it must hold at least them.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{
		pattern:     pattern,
		exactMatch:  exact,
		whitePieces: make(map[chess.PieceType]int),
		blackPieces: make(map[chess.PieceType]int),
	}
	if err := mm.parsePattern(pattern); err != nil {
		return nil, err
	}
	return mm, nil
}

// parsePattern parses a material pattern like "QR:qrr"
func (mm *MaterialMatcher) parsePattern(pattern string) error {
	white, black, _ := strings.Cut(pattern, ":")
	if err := parsePieces(white, chess.White, mm.whitePieces); err != nil {
		return err
	}
	return parsePieces(black, chess.Black, mm.blackPieces)
}

func parsePieces(s string, colour chess.Colour, counts map[chess.PieceType]int) error {
	for i := 0; i < len(s); i++ {
		p, ok := chess.PieceFromLetter(s[i])
		if !ok || p.Colour != colour {
			return fmt.Errorf("material pattern: unexpected %q for %s", s[i], strings.ToLower(colour.String()))
		}
		counts[p.Type]++
	}
	return nil
}

// MatchFEN decodes fen and matches its placement.
func (mm *MaterialMatcher) MatchFEN(fen string) (bool, error) {
	board, err := engine.DecodeFEN(fen)
	if err != nil {
		return false, err
	}
	return mm.MatchPosition(board), nil
}

// MatchPosition checks if a position matches the material pattern.
func (mm *MaterialMatcher) MatchPosition(board *chess.Board) bool {
	whiteCounts := make(map[chess.PieceType]int)
	blackCounts := make(map[chess.PieceType]int)

	for _, pl := range board.Pieces() {
		if pl.Piece.Colour == chess.White {
			whiteCounts[pl.Piece.Type]++
		} else {
			blackCounts[pl.Piece.Type]++
		}
	}

	if mm.exactMatch {
		return mm.exactMaterialMatch(whiteCounts, blackCounts)
	}
	return mm.minimalMaterialMatch(whiteCounts, blackCounts)
}

// exactMaterialMatch checks for exact material match.
func (mm *MaterialMatcher) exactMaterialMatch(whiteCounts, blackCounts map[chess.PieceType]int) bool {
	for t := chess.Pawn; t <= chess.King; t++ {
		if whiteCounts[t] != mm.whitePieces[t] || blackCounts[t] != mm.blackPieces[t] {
			return false
		}
	}
	return true
}

// minimalMaterialMatch checks that at least the specified pieces exist.
func (mm *MaterialMatcher) minimalMaterialMatch(whiteCounts, blackCounts map[chess.PieceType]int) bool {
	for piece, count := range mm.whitePieces {
		if whiteCounts[piece] < count {
			return false
		}
	}
	for piece, count := range mm.blackPieces {
		if blackCounts[piece] < count {
			return false
		}
	}
	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}

// Pattern returns the pattern the matcher was built from.
func (mm *MaterialMatcher) Pattern() string {
	return mm.pattern
}
