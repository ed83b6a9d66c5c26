package engine

import (
	"testing"

	"github.com/lgbarn/chess-tactics-go/internal/chess"
	"github.com/lgbarn/chess-tactics-go/internal/testutil"
)

type moveCase struct {
	name  string
	board []string
	from  string
	to    string
	want  bool
}

func runMoveCases(t *testing.T, tests []moveCase) {
	t.Helper()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := testutil.Board(t, tt.board...)
			got := IsLegal(b, testutil.Sq(t, tt.from), testutil.Sq(t, tt.to))
			if got != tt.want {
				t.Errorf("IsLegal(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsLegal_SameSquare(t *testing.T) {
	b := NewInitialBoard()
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if IsLegal(b, sq, sq) {
			t.Errorf("IsLegal(%v, %v) = true, want false", sq, sq)
		}
	}
}

func TestIsLegal_EarlyRejections(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"empty origin", nil, "e2", "e4", false},
		{"self capture", []string{"d1:Q", "d2:P"}, "d1", "d2", false},
		{"capture opposing piece", []string{"d1:Q", "d2:p"}, "d1", "d2", true},
		{"king may be captured", []string{"d1:Q", "d8:k"}, "d1", "d8", true},
	})

	b := NewInitialBoard()
	if IsLegal(b, chess.NoSquare, chess.MustParseSquare("e4")) {
		t.Error("IsLegal(NoSquare, e4) = true, want false")
	}
	if IsLegal(nil, chess.MustParseSquare("e2"), chess.MustParseSquare("e4")) {
		t.Error("IsLegal(nil board) = true, want false")
	}
}

func TestIsLegal_Rook(t *testing.T) {
	empty := []string{"d1:R"}
	blocked := []string{"d1:R", "d4:n"}

	runMoveCases(t, []moveCase{
		{"up the file", empty, "d1", "d8", true},
		{"along the rank left", empty, "d1", "a1", true},
		{"along the rank right", empty, "d1", "h1", true},
		{"diagonal", empty, "d1", "e2", false},
		{"knight jump", empty, "d1", "e3", false},
		{"blocked beyond d4", blocked, "d1", "d8", false},
		{"before the blocker", blocked, "d1", "d3", true},
		{"capture the blocker", blocked, "d1", "d4", true},
	})
}

func TestIsLegal_RookReachesWholeFileAndRank(t *testing.T) {
	b := testutil.Board(t, "d1:R")
	from := testutil.Sq(t, "d1")

	for to := chess.Square(0); to < chess.NumSquares; to++ {
		want := to != from && (to.File() == from.File() || to.Rank() == from.Rank())
		if got := IsLegal(b, from, to); got != want {
			t.Errorf("IsLegal(d1, %v) = %v, want %v", to, got, want)
		}
	}
}

func TestIsLegal_BlockerMakesFarSquareIllegal(t *testing.T) {
	// Any piece on d4 blocks d1-d8 while d3 stays reachable.
	for _, letter := range []string{"P", "N", "B", "R", "Q", "K", "p", "n", "b", "r", "q", "k"} {
		b := testutil.Board(t, "d1:R", "d4:"+letter)
		if IsLegal(b, testutil.Sq(t, "d1"), testutil.Sq(t, "d8")) {
			t.Errorf("blocker %s: IsLegal(d1, d8) = true, want false", letter)
		}
		if !IsLegal(b, testutil.Sq(t, "d1"), testutil.Sq(t, "d3")) {
			t.Errorf("blocker %s: IsLegal(d1, d3) = false, want true", letter)
		}
	}
}

func TestIsLegal_Knight(t *testing.T) {
	knight := []string{"b1:N"}
	surrounded := []string{"b1:N", "a2:P", "b2:P", "c2:P", "a1:R", "c1:B"}

	runMoveCases(t, []moveCase{
		{"b1-a3", knight, "b1", "a3", true},
		{"b1-c3", knight, "b1", "c3", true},
		{"b1-d2", knight, "b1", "d2", true},
		{"b1-b3 straight", knight, "b1", "b3", false},
		{"b1-c2 adjacent", knight, "b1", "c2", false},
		{"jumps over pieces", surrounded, "b1", "c3", true},
		{"onto own piece", []string{"b1:N", "d2:P"}, "b1", "d2", false},
	})
}

func TestIsLegal_Bishop(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"long diagonal", []string{"c1:B"}, "c1", "h6", true},
		{"other diagonal", []string{"c1:B"}, "c1", "a3", true},
		{"straight", []string{"c1:B"}, "c1", "c4", false},
		{"blocked", []string{"c1:B", "e3:p"}, "c1", "g5", false},
		{"capture blocker", []string{"c1:B", "e3:p"}, "c1", "e3", true},
		{"c4 to f7 capture", []string{"c4:B", "f7:p"}, "c4", "f7", true},
	})
}

func TestIsLegal_Queen(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"file", []string{"d4:Q"}, "d4", "d8", true},
		{"rank", []string{"d4:Q"}, "d4", "a4", true},
		{"diagonal", []string{"d4:Q"}, "d4", "g7", true},
		{"anti-diagonal", []string{"d4:Q"}, "d4", "a7", true},
		{"knight shape", []string{"d4:Q"}, "d4", "e6", false},
		{"blocked diagonal", []string{"d4:Q", "f6:P"}, "d4", "g7", false},
		{"blocked file", []string{"f3:Q", "f4:p"}, "f3", "f7", false},
		{"open file", []string{"f3:Q", "f7:p"}, "f3", "f7", true},
	})
}

func TestIsLegal_King(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"one up", []string{"e4:K"}, "e4", "e5", true},
		{"one diagonal", []string{"e4:K"}, "e4", "d3", true},
		{"two squares", []string{"e4:K"}, "e4", "e6", false},
		{"castling shape", []string{"e1:K", "h1:R"}, "e1", "g1", false},
		{"into attack is allowed", []string{"d3:K", "e5:k"}, "d3", "d4", true},
	})
}

func TestIsLegal_Pawn(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"white single step", []string{"e2:P"}, "e2", "e3", true},
		{"white double step", []string{"e2:P"}, "e2", "e4", true},
		{"white triple step", []string{"e2:P"}, "e2", "e5", false},
		{"white double step off start rank", []string{"e3:P"}, "e3", "e5", false},
		{"white backwards", []string{"e3:P"}, "e3", "e2", false},
		{"white single step blocked", []string{"e2:P", "e3:p"}, "e2", "e3", false},
		// Pawns never capture straight ahead, so any piece on e4 stops
		// e2-e4, including an enemy piece. Only the jumped square is ignored.
		{"white double step destination blocked", []string{"e2:P", "e4:p"}, "e2", "e4", false},
		{"white diagonal onto empty", []string{"e2:P"}, "e2", "d3", false},
		{"white diagonal capture", []string{"e2:P", "d3:p"}, "e2", "d3", true},
		{"white diagonal backwards", []string{"e3:P", "d2:p"}, "e3", "d2", false},
		{"black single step", []string{"e7:p"}, "e7", "e6", true},
		{"black double step", []string{"e7:p"}, "e7", "e5", true},
		{"black wrong direction", []string{"e7:p"}, "e7", "e8", false},
		{"black diagonal capture", []string{"d5:p", "e4:P"}, "d5", "e4", true},
		{"black double step off start rank", []string{"e6:p"}, "e6", "e4", false},
		{"d4 takes e5", []string{"d4:P", "e5:p"}, "d4", "e5", true},
	})
}

// TestIsLegal_PawnDoubleStepIgnoresIntermediate documents the as-found rule:
// the square a pawn jumps over on its double step is not inspected.
func TestIsLegal_PawnDoubleStepIgnoresIntermediate(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"white jumps over e3", []string{"e2:P", "e3:n"}, "e2", "e4", true},
		{"black jumps over e6", []string{"e7:p", "e6:N"}, "e7", "e5", true},
	})
}

func TestIsLegal_DoesNotMutateBoard(t *testing.T) {
	b := NewInitialBoard()
	before := b.Copy()
	IsLegal(b, testutil.Sq(t, "e2"), testutil.Sq(t, "e4"))
	IsLegal(b, testutil.Sq(t, "g1"), testutil.Sq(t, "f3"))
	testutil.AssertBoardEqual(t, b, before)
}

func TestLegalTargets(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		from string
		want []string
	}{
		{"g1", []string{"f3", "h3"}},
		{"e2", []string{"e3", "e4"}},
		{"a1", nil},
		{"e4", nil},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			var got []string
			for _, sq := range LegalTargets(b, testutil.Sq(t, tt.from)) {
				got = append(got, sq.String())
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestHasLegalMoves(t *testing.T) {
	b := NewInitialBoard()
	testutil.AssertTrue(t, HasLegalMoves(b, chess.White))
	testutil.AssertTrue(t, HasLegalMoves(b, chess.Black))

	lone := testutil.Board(t, "a1:K")
	testutil.AssertFalse(t, HasLegalMoves(lone, chess.Black))
}
