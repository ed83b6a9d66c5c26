package catalog

import (
	"context"
	"fmt"
	"strings"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chess-tactics-go/internal/worker"
)

// Finding is the full-rules audit result for one exercise.
type Finding struct {
	ExerciseID string
	Index      int    // 1-based catalog position
	SAN        string // Standard notation of the solution, if it is legal
	Legal      bool
	Check      bool
	Checkmate  bool
	Problems   []string
}

// OK reports whether the audit found nothing wrong.
func (f Finding) OK() bool {
	return len(f.Problems) == 0
}

func (f *Finding) addf(format string, args ...interface{}) {
	f.Problems = append(f.Problems, fmt.Sprintf(format, args...))
}

// AuditExercise replays the exercise under full chess rules. Unlike the
// pseudo-legal engine it considers king safety, castling rights and the
// remaining FEN fields, and it cross-checks the declared notation.
func AuditExercise(e Exercise) Finding {
	f := Finding{ExerciseID: e.ID}

	opt, err := notnil.FEN(e.FEN)
	if err != nil {
		f.addf("position rejected: %v", err)
		return f
	}
	g := notnil.NewGame(opt)
	if g.Position().Turn() != notnil.White {
		f.addf("black to move, exercises are played by white")
	}

	move := findMove(g, e.Solution)
	if move == nil {
		f.addf("solution %s%s is not legal under full rules", e.Solution.From, e.Solution.To)
		return f
	}
	f.Legal = true
	f.SAN = notnil.AlgebraicNotation{}.Encode(g.Position(), move)
	f.Check = move.HasTag(notnil.Check)

	if err := g.Move(move); err != nil {
		f.addf("replay %s: %v", f.SAN, err)
		return f
	}
	f.Checkmate = g.Method() == notnil.Checkmate

	declared := e.Solution.Move
	if declared != "" && normalizeMove(declared) != normalizeMove(f.SAN) {
		f.addf("declared move %q, full rules give %q", declared, f.SAN)
	}
	if strings.Contains(declared, "#") && !f.Checkmate {
		f.addf("declared mate but %s does not mate", f.SAN)
	} else if strings.Contains(declared, "+") && !f.Check {
		f.addf("declared check but %s does not give check", f.SAN)
	}
	return f
}

// findMove returns the legal move matching the solution squares. Queen
// promotion is preferred when several promotions match.
func findMove(g *notnil.Game, sol Solution) *notnil.Move {
	from, to := sol.From.String(), sol.To.String()
	var found *notnil.Move
	for _, m := range g.ValidMoves() {
		if m.S1().String() != from || m.S2().String() != to {
			continue
		}
		if found == nil || m.Promo() == notnil.Queen {
			found = m
		}
	}
	return found
}

// Audit runs AuditExercise over the catalog on workers goroutines and
// returns the findings in catalog order. A cancelled context returns the
// findings completed so far together with the context error.
func (c *Catalog) Audit(ctx context.Context, workers int) ([]Finding, error) {
	results, err := worker.Run(ctx, c.List(), func(item worker.Item[Exercise]) worker.Result[Finding] {
		f := AuditExercise(item.Value)
		f.Index = item.Index + 1
		return worker.Result[Finding]{Index: item.Index, Value: f}
	}, worker.WithWorkers(workers), worker.WithBufferSize(c.Len()))

	findings := make([]Finding, 0, len(results))
	for _, r := range results {
		findings = append(findings, r.Value)
	}
	return findings, err
}
