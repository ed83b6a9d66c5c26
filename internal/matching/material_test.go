package matching

import (
	"testing"

	"github.com/lgbarn/chess-tactics-go/internal/chess"
	"github.com/lgbarn/chess-tactics-go/internal/engine"
	"github.com/lgbarn/chess-tactics-go/internal/testutil"
)

func TestNewMaterialMatcher(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		exact     bool
		wantWhite map[chess.PieceType]int
		wantBlack map[chess.PieceType]int
	}{
		{
			name:      "queen vs queen",
			pattern:   "Q:q",
			wantWhite: map[chess.PieceType]int{chess.Queen: 1},
			wantBlack: map[chess.PieceType]int{chess.Queen: 1},
		},
		{
			name:      "queen and rook vs queen and two rooks",
			pattern:   "QR:qrr",
			wantWhite: map[chess.PieceType]int{chess.Queen: 1, chess.Rook: 1},
			wantBlack: map[chess.PieceType]int{chess.Queen: 1, chess.Rook: 2},
		},
		{
			name:      "king only vs king only",
			pattern:   "K:k",
			exact:     true,
			wantWhite: map[chess.PieceType]int{chess.King: 1},
			wantBlack: map[chess.PieceType]int{chess.King: 1},
		},
		{
			name:      "white only pattern",
			pattern:   "KQ",
			wantWhite: map[chess.PieceType]int{chess.King: 1, chess.Queen: 1},
			wantBlack: map[chess.PieceType]int{},
		},
		{
			name:      "empty pattern",
			pattern:   "",
			wantWhite: map[chess.PieceType]int{},
			wantBlack: map[chess.PieceType]int{},
		},
		{
			name:      "pawns only",
			pattern:   "PPP:ppp",
			wantWhite: map[chess.PieceType]int{chess.Pawn: 3},
			wantBlack: map[chess.PieceType]int{chess.Pawn: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mm, err := NewMaterialMatcher(tt.pattern, tt.exact)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, mm.Pattern(), tt.pattern)
			testutil.AssertEqual(t, mm.exactMatch, tt.exact)
			testutil.AssertEqual(t, mm.whitePieces, tt.wantWhite)
			testutil.AssertEqual(t, mm.blackPieces, tt.wantBlack)
		})
	}
}

func TestNewMaterialMatcher_Errors(t *testing.T) {
	for _, pattern := range []string{"Kq", "K:Q", "X:k", "K1:k"} {
		t.Run(pattern, func(t *testing.T) {
			if _, err := NewMaterialMatcher(pattern, false); err == nil {
				t.Errorf("NewMaterialMatcher(%q) should fail", pattern)
			}
		})
	}
}

func TestMaterialMatcher_HasCriteria(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"non-empty pattern", "Q:q", true},
		{"empty pattern", "", false},
		{"white only", "K", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mm, err := NewMaterialMatcher(tt.pattern, false)
			testutil.AssertNoError(t, err)
			if got := mm.HasCriteria(); got != tt.want {
				t.Errorf("HasCriteria() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaterialMatcher_MatchPosition(t *testing.T) {
	initial := engine.NewInitialBoard()
	backRank := testutil.Board(t, "a1:R", "g1:K", "f2:P", "g2:P", "h2:P", "g8:k", "f7:p", "g7:p", "h7:p")

	tests := []struct {
		name    string
		pattern string
		exact   bool
		board   *chess.Board
		want    bool
	}{
		{"initial has queens", "Q:q", false, initial, true},
		{"initial exact full set", "KQRRBBNNPPPPPPPP:kqrrbbnnpppppppp", true, initial, true},
		{"initial not exact queens", "KQ:kq", true, initial, false},
		{"back rank has a rook", "R", false, backRank, true},
		{"back rank has no queen", "Q", false, backRank, false},
		{"back rank exact", "KRPPP:kppp", true, backRank, true},
		{"back rank exact missing pawn", "KRPP:kppp", true, backRank, false},
		{"back rank needs two rooks", "RR", false, backRank, false},
		{"empty pattern matches anything", "", false, backRank, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mm, err := NewMaterialMatcher(tt.pattern, tt.exact)
			testutil.AssertNoError(t, err)
			if got := mm.MatchPosition(tt.board); got != tt.want {
				t.Errorf("MatchPosition() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaterialMatcher_MatchFEN(t *testing.T) {
	mm, err := NewMaterialMatcher("N:r", false)
	testutil.AssertNoError(t, err)

	ok, err := mm.MatchFEN("r3k3/8/8/3N4/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, ok)

	if _, err := mm.MatchFEN("not a fen"); err == nil {
		t.Error("MatchFEN() should fail on a malformed FEN")
	}
}
