package engine

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/chess-tactics-go/internal/chess"
	"github.com/lgbarn/chess-tactics-go/internal/errors"
	"github.com/lgbarn/chess-tactics-go/internal/testutil"
)

func TestDecodeFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				k1, _ := b.Get(chess.MustParseSquare("e1"))
				k8, _ := b.Get(chess.MustParseSquare("e8"))
				p2, _ := b.Get(chess.MustParseSquare("e2"))
				return k1 == chess.W(chess.King) &&
					k8 == chess.B(chess.King) &&
					p2 == chess.W(chess.Pawn) &&
					b.Count() == 32
			},
		},
		{
			name: "after 1.e4, extra fields ignored",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				p, ok := b.Get(chess.MustParseSquare("e4"))
				return ok && p == chess.W(chess.Pawn) && b.IsEmpty(chess.MustParseSquare("e2"))
			},
		},
		{
			name: "placement field only",
			fen:  "8/8/8/8/8/8/8/4K3",
			checkFn: func(b *chess.Board) bool {
				p, ok := b.Get(chess.MustParseSquare("e1"))
				return ok && p == chess.W(chess.King) && b.Count() == 1
			},
		},
		{
			name: "empty board",
			fen:  "8/8/8/8/8/8/8/8 w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Count() == 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := DecodeFEN(tt.fen)
			if err != nil {
				t.Fatalf("DecodeFEN() error = %v", err)
			}
			if !tt.checkFn(board) {
				t.Errorf("DecodeFEN(%q) board check failed", tt.fen)
			}
		})
	}
}

func TestDecodeFEN_Malformed(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantGroup int
	}{
		{"empty string", "", 0},
		{"whitespace only", "   ", 0},
		{"seven rank groups", "8/8/8/8/8/8/8", 0},
		{"nine rank groups", "8/8/8/8/8/8/8/8/8", 0},
		{"unknown letter", "8/8/8/8/8/8/8/4X3", 8},
		{"zero digit", "8/8/8/8/0/8/8/8", 5},
		{"digit nine", "9/8/8/8/8/8/8/8", 1},
		{"non-ascii piece", "8/8/8/8/8/8/8/4ŋ3", 8},
		{"rank overflow by digits", "8/8/8/8/8/8/8/44K", 8},
		{"rank overflow by pieces", "rnbqkbnrp/8/8/8/8/8/8/8", 1},
		{"rank underflow", "8/8/8/7/8/8/8/8", 4},
		{"empty rank group", "8/8//8/8/8/8/8", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := DecodeFEN(tt.fen)
			if err == nil {
				t.Fatalf("DecodeFEN(%q) = %v, want error", tt.fen, board)
			}
			if !stderrors.Is(err, errors.ErrMalformedFEN) {
				t.Errorf("DecodeFEN(%q) error = %v, want ErrMalformedFEN", tt.fen, err)
			}
			var fenErr *errors.FENError
			if !stderrors.As(err, &fenErr) {
				t.Fatalf("DecodeFEN(%q) error is not a *FENError", tt.fen)
			}
			if fenErr.Group != tt.wantGroup {
				t.Errorf("FENError.Group = %d, want %d", fenErr.Group, tt.wantGroup)
			}
		})
	}
}

// TestDecodeFEN_CountsPieces checks the decoded board has one occupied
// square per non-digit symbol in the placement field.
func TestDecodeFEN_CountsPieces(t *testing.T) {
	fens := []string{
		InitialPlacement,
		"6k1/5ppp/8/8/8/8/5PPP/R5K1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR",
		"8/8/4k3/8/8/3K4/8/8",
		"8/8/8/8/8/8/8/8",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board, err := DecodeFEN(fen)
			testutil.AssertNoError(t, err)

			want := 0
			for _, c := range fen {
				if c != '/' && (c < '0' || c > '9') {
					want++
				}
			}
			testutil.AssertEqual(t, board.Count(), want, "occupied squares")
		})
	}
}

func TestEncodeFEN_RoundTrip(t *testing.T) {
	tests := []string{
		InitialPlacement,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R",
		"8/8/8/8/8/8/8/4K3",
		"8/8/8/8/8/8/8/8",
		"7k/8/8/8/8/8/8/K7",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			board, err := DecodeFEN(fen)
			if err != nil {
				t.Fatalf("DecodeFEN() error = %v", err)
			}

			encoded := EncodeFEN(board)
			testutil.AssertEqual(t, encoded, fen)

			again, err := DecodeFEN(encoded)
			testutil.AssertNoError(t, err)
			testutil.AssertBoardEqual(t, again, board)
		})
	}
}

func TestEncodeFEN_NormalisesRuns(t *testing.T) {
	b := testutil.Board(t, "a1:K", "h1:R")
	got := EncodeFEN(b)
	if !strings.HasSuffix(got, "/K6R") {
		t.Errorf("EncodeFEN() = %q, want suffix %q", got, "/K6R")
	}
	if !strings.HasPrefix(got, "8/8/8/8/8/8/8") {
		t.Errorf("EncodeFEN() = %q, want seven empty ranks first", got)
	}
}

func TestPlacementFromFEN(t *testing.T) {
	testutil.AssertEqual(t, PlacementFromFEN(InitialFEN), InitialPlacement)
	testutil.AssertEqual(t, PlacementFromFEN("  8/8/8/8/8/8/8/8  w"), "8/8/8/8/8/8/8/8")
	testutil.AssertEqual(t, PlacementFromFEN(""), "")
}

func TestNewInitialBoard(t *testing.T) {
	want, err := DecodeFEN(InitialFEN)
	testutil.AssertNoError(t, err)
	testutil.AssertBoardEqual(t, NewInitialBoard(), want)
	testutil.AssertEqual(t, EncodeFEN(NewInitialBoard()), InitialPlacement)
}
