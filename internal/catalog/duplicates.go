package catalog

import (
	"github.com/lgbarn/chess-tactics-go/internal/engine"
	"github.com/lgbarn/chess-tactics-go/internal/hashing"
)

// Duplicate records an exercise whose starting placement repeats an
// earlier one.
type Duplicate struct {
	ExerciseID string
	Index      int // 1-based catalog position
	FirstID    string
}

// DuplicateReport summarises the starting placements of a catalog.
type DuplicateReport struct {
	Distinct   int // distinct decodable placements
	Duplicates []Duplicate
}

// DuplicatePositions reports exercises that start from the same piece
// placement as an earlier exercise. Exercises with an undecodable FEN are
// skipped; Validate reports those.
func (c *Catalog) DuplicatePositions() DuplicateReport {
	d := hashing.NewDuplicateDetector()
	var out []Duplicate
	for i, e := range c.exercises {
		board, err := engine.DecodeFEN(e.FEN)
		if err != nil {
			continue
		}
		if first, dup := d.CheckAndAdd(e.ID, board); dup {
			out = append(out, Duplicate{ExerciseID: e.ID, Index: i + 1, FirstID: first})
		}
	}
	return DuplicateReport{Distinct: d.UniqueCount(), Duplicates: out}
}
