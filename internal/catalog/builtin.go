package catalog

import "github.com/lgbarn/chess-tactics-go/internal/chess"

func sq(name string) chess.Square { return chess.MustParseSquare(name) }

var builtinExercises = []Exercise{
	{
		ID:          "back-rank-mate",
		Title:       "Back Rank Mate",
		Description: "Black's king is boxed in by its own pawns. Find the mate.",
		FEN:         "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1",
		Solution: Solution{
			From:        sq("a1"),
			To:          sq("a8"),
			Move:        "Ra8#",
			Explanation: "The rook checks along the eighth rank and the pawns on f7, g7 and h7 take every flight square.",
		},
		Hint:          &Hint{Square: sq("a1"), Message: "Which rank can the black king not leave?"},
		Tactic:        "Back rank",
		Difficulty:    Beginner,
		Points:        10,
		MovesRequired: 1,
	},
	{
		ID:          "knight-fork",
		Title:       "Royal Fork",
		Description: "Win the rook with a knight jump that attacks two pieces at once.",
		FEN:         "r3k3/8/8/3N4/8/8/8/4K3 w - - 0 1",
		Solution: Solution{
			From:        sq("d5"),
			To:          sq("c7"),
			Move:        "Nc7+",
			Explanation: "The knight checks the king on e8 and attacks the rook on a8. After the king moves, Nxa8 wins the rook.",
		},
		Hint:          &Hint{Square: sq("c7"), Message: "Look for a square that touches both e8 and a8."},
		Tactic:        "Fork",
		Difficulty:    Beginner,
		Points:        15,
		MovesRequired: 1,
	},
	{
		ID:          "open-the-centre",
		Title:       "Open the Centre",
		Description: "Black has just played 1...e5. Take the offered pawn.",
		FEN:         "rnbqkbnr/pppp1ppp/8/4p3/3P4/8/PPP1PPPP/RNBQKBNR w KQkq e6 0 2",
		Solution: Solution{
			From:        sq("d4"),
			To:          sq("e5"),
			Move:        "dxe5",
			Explanation: "Capturing wins a pawn and opens the d-file for the queen.",
		},
		Hint:          &Hint{Square: sq("d4"), Message: "Pawns capture diagonally."},
		Tactic:        "Material",
		Difficulty:    Beginner,
		Points:        5,
		MovesRequired: 1,
	},
	{
		ID:          "fried-liver-sacrifice",
		Title:       "Bishop Sacrifice on f7",
		Description: "f7 is defended only by the king. Strike at it.",
		FEN:         "r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		Solution: Solution{
			From:        sq("c4"),
			To:          sq("f7"),
			Move:        "Bxf7+",
			Explanation: "After Kxf7 the knight comes to g5 with check and the black king is stuck in the centre.",
		},
		Hint:          &Hint{Square: sq("f7"), Message: "Which black pawn has a single defender?"},
		Tactic:        "Sacrifice",
		Difficulty:    Advanced,
		Points:        20,
		MovesRequired: 1,
	},
	{
		ID:          "king-opposition",
		Title:       "Centralise the King",
		Description: "In a bare king ending the more active king wins the race.",
		FEN:         "8/8/4k3/8/8/3K4/8/8 w - - 0 1",
		Solution: Solution{
			From:        sq("d3"),
			To:          sq("d4"),
			Move:        "Kd4",
			Explanation: "Kd4 takes the centre and keeps the opposition against the black king.",
		},
		Hint:          &Hint{Square: sq("d3"), Message: "Kings belong in the centre in the endgame."},
		Tactic:        "Opposition",
		Difficulty:    Master,
		Points:        25,
		MovesRequired: 1,
	},
	{
		ID:          "scholars-mate",
		Title:       "Scholar's Mate",
		Description: "Queen and bishop both aim at f7. Finish the game.",
		FEN:         "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR w KQkq - 4 4",
		Solution: Solution{
			From:        sq("f3"),
			To:          sq("f7"),
			Move:        "Qxf7#",
			Explanation: "The queen takes on f7 protected by the bishop on c4. The king cannot capture and has no flight square.",
		},
		Hint:          &Hint{Square: sq("f3"), Message: "Count the attackers on f7."},
		Tactic:        "Checkmate",
		Difficulty:    Intermediate,
		Points:        30,
		MovesRequired: 1,
	},
}

// Builtin returns the catalog shipped with the trainer.
func Builtin() *Catalog {
	return New(builtinExercises...)
}
