package catalog

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-tactics-go/internal/chess"
	"github.com/lgbarn/chess-tactics-go/internal/engine"
	"github.com/lgbarn/chess-tactics-go/internal/errors"
)

// Validate checks every exercise and returns all problems found, or nil.
// Each problem is an *errors.ExerciseError wrapping ErrInvalidCatalog.
func (c *Catalog) Validate() error {
	var result *multierror.Error
	seen := make(map[string]int, len(c.exercises))

	for i := range c.exercises {
		e := &c.exercises[i]
		for _, err := range validateExercise(e, i+1) {
			result = multierror.Append(result, err)
		}
		if e.ID == "" {
			continue
		}
		if first, dup := seen[e.ID]; dup {
			result = multierror.Append(result, problem(e, i+1, "id",
				fmt.Errorf("duplicate ID, first used by exercise #%d", first)))
			continue
		}
		seen[e.ID] = i + 1
	}
	return result.ErrorOrNil()
}

func validateExercise(e *Exercise, index int) []error {
	var errs []error
	add := func(field string, err error) {
		errs = append(errs, problem(e, index, field, err))
	}

	if e.ID == "" {
		add("id", fmt.Errorf("missing ID"))
	}
	if e.Title == "" {
		add("title", fmt.Errorf("missing title"))
	}
	if !e.Difficulty.Valid() {
		add("difficulty", fmt.Errorf("unset difficulty"))
	}
	if e.Points < 0 {
		add("points", fmt.Errorf("negative points %d", e.Points))
	}
	if e.Solution.Move == "" {
		add("solution.move", fmt.Errorf("missing move notation"))
	}
	if e.Hint != nil {
		if e.Hint.Square != chess.NoSquare && !e.Hint.Square.Valid() {
			add("hint.square", errors.ErrInvalidSquare)
		}
		if e.Hint.Square == chess.NoSquare && e.Hint.Message == "" {
			add("hint", fmt.Errorf("empty hint"))
		}
	}

	board, err := engine.DecodeFEN(e.FEN)
	if err != nil {
		add("fen", err)
		return errs
	}
	if !engine.HasLegalMoves(board, chess.White) {
		add("fen", fmt.Errorf("white has no move"))
		return errs
	}
	if err := checkSolution(board, e.Solution); err != nil {
		add("solution", err)
	}
	return errs
}

// checkSolution verifies the solution is a pseudo-legal white move.
func checkSolution(board *chess.Board, sol Solution) error {
	if !sol.From.Valid() || !sol.To.Valid() {
		return errors.ErrInvalidSquare
	}
	piece, ok := board.Get(sol.From)
	if !ok {
		return fmt.Errorf("no piece on %s", sol.From)
	}
	if piece.Colour != chess.White {
		return fmt.Errorf("%s on %s is not a white piece", piece, sol.From)
	}
	if !engine.IsLegal(board, sol.From, sol.To) {
		return fmt.Errorf("%s%s is not a legal move", sol.From, sol.To)
	}
	return nil
}

func problem(e *Exercise, index int, field string, err error) error {
	return &errors.ExerciseError{
		Err:        fmt.Errorf("%w: %w", errors.ErrInvalidCatalog, err),
		ExerciseID: e.ID,
		Index:      index,
		Field:      field,
	}
}
